package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlaylist(vendorID uuid.UUID, name string, genres []string, avgDaily float64, followers int64) Playlist {
	return Playlist{
		PlaylistID:      uuid.New(),
		VendorID:        vendorID,
		Name:            name,
		Platform:        PlatformSpotify,
		Genres:          genres,
		AvgDailyStreams: avgDaily,
		FollowerCount:   followers,
	}
}

func TestBuildPlanSinglePlaylistFullCoverage(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	p := testPlaylist(vendorID, "Deep House Daily", []string{"house"}, 10000, 0)
	plan := BuildPlan(AllocationRequest{
		CampaignID:     uuid.New(),
		Goal:           200000,
		SubGenre:       "house",
		CampaignGenres: []string{"house"},
		DurationDays:   30,
		VendorCaps:     VendorCaps{vendorID: 1000000},
	}, []Playlist{p})

	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, int64(200000), plan.Allocations[0].Allocation)
	require.Len(t, plan.GenreMatches, 1)
	assert.InDelta(t, 0.84, plan.GenreMatches[0].RelevanceScore, 1e-9)
	assert.InDelta(t, 0.95, plan.Insights.ConfidenceScore, 1e-9)
	assert.Empty(t, plan.Insights.RiskFactors)
	require.Len(t, plan.Insights.Recommendations, 1)
	assert.Contains(t, plan.Insights.Recommendations[0], "proceed")
}

func TestBuildPlanRanksRelevanceBeforeVolume(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	offGenre := testPlaylist(vendorID, "Mega Pop", []string{"pop"}, 45000, 0)
	onGenre := testPlaylist(vendorID, "Small House", []string{"house"}, 2000, 0)
	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         1000,
		SubGenre:     "house",
		DurationDays: 30,
	}, []Playlist{offGenre, onGenre})

	// The goal fits inside the best-fit playlist, so only it is used.
	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, onGenre.PlaylistID, plan.Allocations[0].PlaylistID)
	assert.Equal(t, onGenre.PlaylistID, plan.GenreMatches[0].Playlist.PlaylistID)
}

func TestBuildPlanTieBrokenByVolume(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	smaller := testPlaylist(vendorID, "Indie A", []string{"indie"}, 1000, 0)
	larger := testPlaylist(vendorID, "Indie B", []string{"indie"}, 1000000, 0)
	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         500,
		SubGenre:     "techno",
		DurationDays: 10,
	}, []Playlist{smaller, larger})

	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, larger.PlaylistID, plan.Allocations[0].PlaylistID)
}

func TestBuildPlanRespectsVendorCap(t *testing.T) {
	t.Parallel()

	capped := uuid.New()
	open := uuid.New()
	playlists := []Playlist{
		testPlaylist(capped, "Capped One", []string{"house"}, 10000, 0),
		testPlaylist(capped, "Capped Two", []string{"house"}, 9000, 0),
		testPlaylist(open, "Open One", []string{"house"}, 8000, 0),
	}
	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         500000,
		SubGenre:     "house",
		DurationDays: 30,
		VendorCaps:   VendorCaps{capped: 50000},
	}, playlists)

	totals := map[uuid.UUID]int64{}
	for _, item := range plan.Allocations {
		totals[item.VendorID] += item.Allocation
	}
	assert.Equal(t, int64(50000), totals[capped])
	// remaining demand spills onto the uncapped vendor, bounded by its
	// playlist's own capacity (8000/day over 30 days)
	assert.Equal(t, int64(240000), totals[open])
}

func TestBuildPlanMissingOrZeroCapIsUnlimited(t *testing.T) {
	t.Parallel()

	absent := uuid.New()
	zero := uuid.New()
	playlists := []Playlist{
		testPlaylist(absent, "Absent Cap", []string{"house"}, 20000, 0),
		testPlaylist(zero, "Zero Cap", []string{"house"}, 20000, 0),
	}
	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         1000000,
		SubGenre:     "house",
		DurationDays: 30,
		VendorCaps:   VendorCaps{zero: 0},
	}, playlists)

	var total int64
	for _, item := range plan.Allocations {
		total += item.Allocation
	}
	assert.Equal(t, int64(1000000), total)
	assert.Len(t, plan.Allocations, 2)
}

func TestBuildPlanRespectsPlaylistCapacity(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	playlists := []Playlist{
		testPlaylist(vendorID, "Tiny", []string{"house"}, 100, 0),
		testPlaylist(vendorID, "Fallback Only", []string{"house"}, 0, 4000),
	}
	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         10_000_000,
		SubGenre:     "house",
		DurationDays: 10,
	}, playlists)

	for _, item := range plan.Allocations {
		var p Playlist
		for _, candidate := range playlists {
			if candidate.PlaylistID == item.PlaylistID {
				p = candidate
			}
		}
		assert.LessOrEqual(t, item.Allocation, EstimateCapacity(p, 10))
	}
}

func TestBuildPlanZeroOrNegativeGoal(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	playlists := []Playlist{testPlaylist(vendorID, "Anything", []string{"house"}, 5000, 0)}

	for _, goal := range []int64{0, -250} {
		plan := BuildPlan(AllocationRequest{
			CampaignID:   uuid.New(),
			Goal:         goal,
			SubGenre:     "house",
			DurationDays: 30,
		}, playlists)
		assert.Empty(t, plan.Allocations)
		assert.Equal(t, int64(0), plan.Insights.RealisticStreams)
	}
}

func TestBuildPlanEmptyCatalog(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         50000,
		SubGenre:     "house",
		DurationDays: 30,
	}, nil)

	assert.Empty(t, plan.Allocations)
	assert.Empty(t, plan.GenreMatches)
	assert.Contains(t, plan.Insights.RiskFactors, "no playlists match the campaign genre profile")
}

func TestBuildPlanGoalMonotonicity(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	playlists := []Playlist{
		testPlaylist(vendorID, "A", []string{"house"}, 3000, 0),
		testPlaylist(vendorID, "B", []string{"house", "techno"}, 1500, 0),
		testPlaylist(vendorID, "C", []string{"pop"}, 0, 20000),
	}
	caps := VendorCaps{vendorID: 120000}

	var prev int64
	for goal := int64(0); goal <= 400000; goal += 20000 {
		plan := BuildPlan(AllocationRequest{
			CampaignID:     uuid.New(),
			Goal:           goal,
			SubGenre:       "house",
			CampaignGenres: []string{"house", "techno"},
			DurationDays:   14,
			VendorCaps:     caps,
		}, playlists)
		var total int64
		for _, item := range plan.Allocations {
			total += item.Allocation
		}
		assert.GreaterOrEqual(t, total, prev, "goal %d", goal)
		assert.LessOrEqual(t, total, int64(120000))
		prev = total
	}
}

func TestBuildPlanDeterministic(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	playlists := []Playlist{
		testPlaylist(vendorID, "A", []string{"house"}, 3000, 0),
		testPlaylist(vendorID, "B", []string{"house"}, 3000, 0),
		testPlaylist(vendorID, "C", []string{"techno"}, 8000, 0),
	}
	req := AllocationRequest{
		CampaignID:     uuid.New(),
		Goal:           90000,
		SubGenre:       "house",
		CampaignGenres: []string{"house", "techno"},
		DurationDays:   21,
		VendorCaps:     VendorCaps{vendorID: 80000},
	}

	first := BuildPlan(req, playlists)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildPlan(req, playlists))
	}
}

func TestBuildPlanSkippedVendorNotRevisited(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	first := testPlaylist(vendorID, "Eats The Cap", []string{"house"}, 10000, 0)
	second := testPlaylist(vendorID, "Starved", []string{"house"}, 5000, 0)
	plan := BuildPlan(AllocationRequest{
		CampaignID:   uuid.New(),
		Goal:         900000,
		SubGenre:     "house",
		DurationDays: 30,
		VendorCaps:   VendorCaps{vendorID: 200000},
	}, []Playlist{first, second})

	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, first.PlaylistID, plan.Allocations[0].PlaylistID)
	assert.Equal(t, int64(200000), plan.Allocations[0].Allocation)
}
