package domain

import (
	"sort"

	"github.com/google/uuid"
)

// BuildPlan greedily distributes the campaign's stream goal across the
// candidate playlists. Candidates are ranked by relevance, then by avg
// daily streams; each is visited once with no backtracking, so a vendor
// or playlist exhausted mid-pass stays exhausted. Vendors absent from
// the cap map (or with a cap <= 0) are treated as unlimited.
//
// BuildPlan never fails: degenerate inputs (empty catalog, zero goal)
// produce an empty but fully populated plan.
func BuildPlan(req AllocationRequest, playlists []Playlist) AllocationPlan {
	matches := make([]GenreMatch, 0, len(playlists))
	for _, p := range playlists {
		matches = append(matches, GenreMatch{
			Playlist:       p,
			RelevanceScore: RelevanceScore(p, req.SubGenre, req.CampaignGenres),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].RelevanceScore == matches[j].RelevanceScore {
			return matches[i].Playlist.AvgDailyStreams > matches[j].Playlist.AvgDailyStreams
		}
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})

	remainingGoal := req.Goal
	if remainingGoal < 0 {
		remainingGoal = 0
	}

	// Only capped vendors are tracked; everyone else is unlimited.
	vendorRemaining := make(map[uuid.UUID]int64, len(req.VendorCaps))
	for vendorID, vendorCap := range req.VendorCaps {
		if vendorCap > 0 {
			vendorRemaining[vendorID] = vendorCap
		}
	}

	var allocations []AllocationItem
	for _, match := range matches {
		if remainingGoal <= 0 {
			break
		}
		p := match.Playlist

		amount := remainingGoal
		remaining, capped := vendorRemaining[p.VendorID]
		if capped {
			if remaining <= 0 {
				continue
			}
			if remaining < amount {
				amount = remaining
			}
		}

		capacity := EstimateCapacity(p, req.DurationDays)
		if capacity <= 0 {
			continue
		}
		if capacity < amount {
			amount = capacity
		}
		if amount <= 0 {
			continue
		}

		allocations = append(allocations, AllocationItem{
			PlaylistID: p.PlaylistID,
			VendorID:   p.VendorID,
			Allocation: amount,
		})
		remainingGoal -= amount
		if capped {
			vendorRemaining[p.VendorID] -= amount
		}
	}

	return AllocationPlan{
		Allocations:  allocations,
		GenreMatches: matches,
		Insights:     SummarizeInsights(allocations, req.Goal, len(playlists) > 0),
	}
}
