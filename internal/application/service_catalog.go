package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/domain"
	"github.com/streamlift/campaign-service/internal/ports"
)

const catalogCacheKey = "catalog:snapshot"

type catalogSnapshot struct {
	Playlists []domain.Playlist `json:"playlists"`
	Vendors   []domain.Vendor   `json:"vendors"`
}

// loadCatalog returns the candidate pool the planner works from: all
// playlists plus the active vendors. A short-lived cache snapshot keeps
// repeated plan/validate calls off the database; cache failures fall
// through to the repositories.
func (s *Service) loadCatalog(ctx context.Context) ([]domain.Playlist, []domain.Vendor, error) {
	if raw, err := s.cache.Get(ctx, catalogCacheKey); err == nil && raw != "" {
		var snapshot catalogSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err == nil {
			return snapshot.Playlists, snapshot.Vendors, nil
		}
	}

	playlists, err := s.playlists.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	vendors, err := s.vendors.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	if raw, err := json.Marshal(catalogSnapshot{Playlists: playlists, Vendors: vendors}); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, string(raw), s.cfg.CatalogCacheTTL)
	}
	return playlists, vendors, nil
}

func (s *Service) ListPlaylists(ctx context.Context, genre string) ([]PlaylistView, error) {
	var (
		playlists []domain.Playlist
		err       error
	)
	if genre != "" {
		genre = domain.NormalizeGenre(genre)
		if err := domain.ValidateGenre(genre); err != nil {
			return nil, err
		}
		playlists, err = s.playlists.ListByGenre(ctx, genre)
	} else {
		playlists, err = s.playlists.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	views := make([]PlaylistView, 0, len(playlists))
	for _, p := range playlists {
		views = append(views, toPlaylistView(p))
	}
	return views, nil
}

func (s *Service) ListVendors(ctx context.Context) ([]VendorView, error) {
	vendors, err := s.vendors.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]VendorView, 0, len(vendors))
	for _, v := range vendors {
		views = append(views, toVendorView(v))
	}
	return views, nil
}

type playlistSyncedEvent struct {
	Data struct {
		PlaylistID      string   `json:"playlist_id"`
		AvgDailyStreams float64  `json:"avg_daily_streams"`
		FollowerCount   int64    `json:"follower_count"`
		Genres          []string `json:"genres,omitempty"`
		SyncedAt        string   `json:"synced_at"`
	} `json:"data"`
}

// HandlePlaylistSynced applies a catalog sync event from the vendor
// integration pipeline: refreshed delivery stats and genre tags for one
// playlist.
func (s *Service) HandlePlaylistSynced(ctx context.Context, payload []byte) error {
	var event playlistSyncedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: malformed playlist sync payload", domain.ErrInvalidInput)
	}
	playlistID, err := uuid.Parse(event.Data.PlaylistID)
	if err != nil {
		return fmt.Errorf("%w: invalid playlist_id in sync payload", domain.ErrInvalidInput)
	}
	if event.Data.AvgDailyStreams < 0 || event.Data.FollowerCount < 0 {
		return fmt.Errorf("%w: sync stats must be non-negative", domain.ErrInvalidInput)
	}
	genres := make([]string, 0, len(event.Data.Genres))
	for _, genre := range event.Data.Genres {
		normalized := domain.NormalizeGenre(genre)
		if err := domain.ValidateGenre(normalized); err != nil {
			return err
		}
		genres = append(genres, normalized)
	}

	if err := s.playlists.SyncStats(ctx, ports.SyncPlaylistStatsParams{
		PlaylistID:      playlistID,
		AvgDailyStreams: event.Data.AvgDailyStreams,
		FollowerCount:   event.Data.FollowerCount,
		Genres:          genres,
		SyncedAt:        s.nowFn(),
	}); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

type playlistRemovedEvent struct {
	Data struct {
		PlaylistID string `json:"playlist_id"`
	} `json:"data"`
}

// HandlePlaylistRemoved drops a delisted playlist from the catalog.
func (s *Service) HandlePlaylistRemoved(ctx context.Context, payload []byte) error {
	var event playlistRemovedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: malformed playlist removal payload", domain.ErrInvalidInput)
	}
	playlistID, err := uuid.Parse(event.Data.PlaylistID)
	if err != nil {
		return fmt.Errorf("%w: invalid playlist_id in removal payload", domain.ErrInvalidInput)
	}
	if err := s.playlists.Delete(ctx, playlistID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}
