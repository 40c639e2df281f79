package postgres

import (
	"encoding/json"

	"github.com/streamlift/campaign-service/internal/domain"
	"github.com/streamlift/campaign-service/internal/ports"
)

// Genres are stored as a jsonb column; decode failures degrade to an
// empty tag list rather than failing the whole read.
func decodeGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	var genres []string
	if err := json.Unmarshal([]byte(raw), &genres); err != nil {
		return nil
	}
	return genres
}

func encodeGenres(genres []string) string {
	if len(genres) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(genres)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func toDomainPlaylist(m playlistModel) domain.Playlist {
	return domain.Playlist{
		PlaylistID: m.PlaylistID, VendorID: m.VendorID, Name: m.Name,
		Platform: domain.Platform(m.Platform), Genres: decodeGenres(m.Genres),
		AvgDailyStreams: m.AvgDailyStreams, FollowerCount: m.FollowerCount,
		LastSyncedAt: m.LastSyncedAt, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainVendor(m vendorModel) domain.Vendor {
	return domain.Vendor{
		VendorID: m.VendorID, Name: m.Name, ContactEmail: m.ContactEmail,
		Active: m.Active, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toCommittedAllocation(m campaignAllocationModel) ports.CommittedAllocation {
	return ports.CommittedAllocation{
		AllocationID: m.AllocationID, CampaignID: m.CampaignID, PlaylistID: m.PlaylistID,
		VendorID: m.VendorID, Allocation: m.Allocation, DurationDays: m.DurationDays,
		CommittedAt: m.CommittedAt,
	}
}
