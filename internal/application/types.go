package application

import (
	"time"

	"github.com/streamlift/campaign-service/internal/domain"
)

type Config struct {
	ServiceName     string
	CatalogCacheTTL time.Duration
	IdempotencyTTL  time.Duration
	MaxDurationDays int
}

type PlanAllocationRequest struct {
	CampaignID     string           `json:"campaign_id"`
	Goal           int64            `json:"goal"`
	SubGenre       string           `json:"sub_genre"`
	CampaignGenres []string         `json:"campaign_genres,omitempty"`
	DurationDays   int              `json:"duration_days"`
	VendorCaps     map[string]int64 `json:"vendor_caps,omitempty"`
	CampaignBudget float64          `json:"campaign_budget,omitempty"`
}

type AllocationItemInput struct {
	PlaylistID string `json:"playlist_id"`
	VendorID   string `json:"vendor_id"`
	Allocation int64  `json:"allocation"`
}

type ValidatePlanRequest struct {
	DurationDays int                   `json:"duration_days"`
	VendorCaps   map[string]int64      `json:"vendor_caps,omitempty"`
	Allocations  []AllocationItemInput `json:"allocations"`
}

type CommitPlanRequest struct {
	CampaignID   string                `json:"campaign_id"`
	DurationDays int                   `json:"duration_days"`
	VendorCaps   map[string]int64      `json:"vendor_caps,omitempty"`
	Allocations  []AllocationItemInput `json:"allocations"`
}

type AllocationItemView struct {
	PlaylistID   string `json:"playlist_id"`
	PlaylistName string `json:"playlist_name,omitempty"`
	VendorID     string `json:"vendor_id"`
	VendorName   string `json:"vendor_name,omitempty"`
	Platform     string `json:"platform,omitempty"`
	Allocation   int64  `json:"allocation"`
}

type GenreMatchView struct {
	PlaylistID     string  `json:"playlist_id"`
	PlaylistName   string  `json:"playlist_name,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
}

type InsightsView struct {
	ConfidenceScore     float64  `json:"confidence_score"`
	OptimisticStreams   int64    `json:"optimistic_streams"`
	RealisticStreams    int64    `json:"realistic_streams"`
	ConservativeStreams int64    `json:"conservative_streams"`
	Recommendations     []string `json:"recommendations"`
	RiskFactors         []string `json:"risk_factors"`
}

type PlanAllocationResponse struct {
	CampaignID     string               `json:"campaign_id"`
	Goal           int64                `json:"goal"`
	AllocatedTotal int64                `json:"allocated_total"`
	Allocations    []AllocationItemView `json:"allocations"`
	GenreMatches   []GenreMatchView     `json:"genre_matches"`
	Insights       InsightsView         `json:"insights"`
}

type ValidatePlanResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

type CommitPlanResponse struct {
	CampaignID     string    `json:"campaign_id"`
	CommittedCount int       `json:"committed_count"`
	AllocatedTotal int64     `json:"allocated_total"`
	CommittedAt    time.Time `json:"committed_at"`
}

type PlaylistView struct {
	PlaylistID      string     `json:"playlist_id"`
	VendorID        string     `json:"vendor_id"`
	Name            string     `json:"name"`
	Platform        string     `json:"platform"`
	Genres          []string   `json:"genres"`
	AvgDailyStreams float64    `json:"avg_daily_streams"`
	FollowerCount   int64      `json:"follower_count"`
	LastSyncedAt    *time.Time `json:"last_synced_at,omitempty"`
}

type VendorView struct {
	VendorID     string `json:"vendor_id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
	Active       bool   `json:"active"`
}

type CommittedAllocationView struct {
	AllocationID string    `json:"allocation_id"`
	CampaignID   string    `json:"campaign_id"`
	PlaylistID   string    `json:"playlist_id"`
	VendorID     string    `json:"vendor_id"`
	Allocation   int64     `json:"allocation"`
	DurationDays int       `json:"duration_days"`
	CommittedAt  time.Time `json:"committed_at"`
}

func toPlaylistView(p domain.Playlist) PlaylistView {
	return PlaylistView{
		PlaylistID:      p.PlaylistID.String(),
		VendorID:        p.VendorID.String(),
		Name:            p.Name,
		Platform:        string(p.Platform),
		Genres:          p.Genres,
		AvgDailyStreams: p.AvgDailyStreams,
		FollowerCount:   p.FollowerCount,
		LastSyncedAt:    p.LastSyncedAt,
	}
}

func toVendorView(v domain.Vendor) VendorView {
	return VendorView{
		VendorID:     v.VendorID.String(),
		Name:         v.Name,
		ContactEmail: v.ContactEmail,
		Active:       v.Active,
	}
}

func toInsightsView(in domain.LearningInsights) InsightsView {
	return InsightsView{
		ConfidenceScore:     in.ConfidenceScore,
		OptimisticStreams:   in.OptimisticStreams,
		RealisticStreams:    in.RealisticStreams,
		ConservativeStreams: in.ConservativeStreams,
		Recommendations:     in.Recommendations,
		RiskFactors:         in.RiskFactors,
	}
}
