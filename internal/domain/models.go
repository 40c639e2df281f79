package domain

import (
	"time"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformSpotify    Platform = "spotify"
	PlatformSoundCloud Platform = "soundcloud"
	PlatformYouTube    Platform = "youtube"
	PlatformInstagram  Platform = "instagram"
)

// Playlist is a single promotable placement slot in the vendor catalog.
// Immutable for the duration of one allocation run.
type Playlist struct {
	PlaylistID      uuid.UUID
	VendorID        uuid.UUID
	Name            string
	Platform        Platform
	Genres          []string
	AvgDailyStreams float64
	FollowerCount   int64
	LastSyncedAt    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Vendor supplies one or more playlists and a shared delivery-capacity
// ceiling for a campaign window.
type Vendor struct {
	VendorID     uuid.UUID
	Name         string
	ContactEmail string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VendorCaps maps a vendor to the total streams it may deliver across
// the campaign window. A missing entry or a cap <= 0 means unlimited.
type VendorCaps map[uuid.UUID]int64

// AllocationRequest carries the campaign parameters for one planning run.
type AllocationRequest struct {
	CampaignID     uuid.UUID
	Goal           int64
	SubGenre       string
	CampaignGenres []string
	DurationDays   int
	VendorCaps     VendorCaps
	// CampaignBudget is accepted for forward compatibility with a
	// cost-aware policy; the allocator does not consult it.
	CampaignBudget float64
}

// AllocationItem assigns a stream quantity to one playlist.
type AllocationItem struct {
	PlaylistID uuid.UUID
	VendorID   uuid.UUID
	Allocation int64
}

// GenreMatch pairs a playlist with its relevance score for a campaign.
type GenreMatch struct {
	Playlist       Playlist
	RelevanceScore float64
}

type LearningInsights struct {
	ConfidenceScore     float64
	OptimisticStreams   int64
	RealisticStreams    int64
	ConservativeStreams int64
	Recommendations     []string
	RiskFactors         []string
}

// AllocationPlan is the allocator's full output for one campaign.
type AllocationPlan struct {
	Allocations  []AllocationItem
	GenreMatches []GenreMatch
	Insights     LearningInsights
}

type ValidationResult struct {
	IsValid bool
	Errors  []string
}
