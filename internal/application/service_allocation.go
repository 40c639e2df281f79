package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/domain"
	"github.com/streamlift/campaign-service/internal/ports"
)

// PlanAllocation runs the allocation engine against the current catalog
// and returns the proposed plan without persisting anything.
func (s *Service) PlanAllocation(ctx context.Context, req PlanAllocationRequest) (PlanAllocationResponse, error) {
	allocReq, err := s.toAllocationRequest(req)
	if err != nil {
		return PlanAllocationResponse{}, err
	}

	playlists, vendors, err := s.loadCatalog(ctx)
	if err != nil {
		return PlanAllocationResponse{}, err
	}

	plan := domain.BuildPlan(allocReq, playlists)

	playlistName := make(map[uuid.UUID]string, len(playlists))
	playlistPlatform := make(map[uuid.UUID]domain.Platform, len(playlists))
	for _, p := range playlists {
		playlistName[p.PlaylistID] = p.Name
		playlistPlatform[p.PlaylistID] = p.Platform
	}
	vendorName := make(map[uuid.UUID]string, len(vendors))
	for _, v := range vendors {
		vendorName[v.VendorID] = v.Name
	}

	resp := PlanAllocationResponse{
		CampaignID:   allocReq.CampaignID.String(),
		Goal:         req.Goal,
		Allocations:  make([]AllocationItemView, 0, len(plan.Allocations)),
		GenreMatches: make([]GenreMatchView, 0, len(plan.GenreMatches)),
		Insights:     toInsightsView(plan.Insights),
	}
	for _, item := range plan.Allocations {
		resp.AllocatedTotal += item.Allocation
		resp.Allocations = append(resp.Allocations, AllocationItemView{
			PlaylistID:   item.PlaylistID.String(),
			PlaylistName: playlistName[item.PlaylistID],
			VendorID:     item.VendorID.String(),
			VendorName:   vendorName[item.VendorID],
			Platform:     string(playlistPlatform[item.PlaylistID]),
			Allocation:   item.Allocation,
		})
	}
	for _, match := range plan.GenreMatches {
		resp.GenreMatches = append(resp.GenreMatches, GenreMatchView{
			PlaylistID:     match.Playlist.PlaylistID.String(),
			PlaylistName:   match.Playlist.Name,
			RelevanceScore: match.RelevanceScore,
		})
	}
	return resp, nil
}

// ValidatePlan re-checks a possibly hand-edited allocation set against
// the catalog. Constraint violations come back as data, not as an error.
func (s *Service) ValidatePlan(ctx context.Context, req ValidatePlanRequest) (ValidatePlanResponse, error) {
	if req.DurationDays <= 0 || req.DurationDays > s.cfg.MaxDurationDays {
		return ValidatePlanResponse{}, fmt.Errorf("%w: duration_days must be between 1 and %d", domain.ErrInvalidInput, s.cfg.MaxDurationDays)
	}
	items, err := parseAllocationItems(req.Allocations)
	if err != nil {
		return ValidatePlanResponse{}, err
	}
	caps, err := parseVendorCaps(req.VendorCaps)
	if err != nil {
		return ValidatePlanResponse{}, err
	}

	playlists, vendors, err := s.loadCatalog(ctx)
	if err != nil {
		return ValidatePlanResponse{}, err
	}

	result := domain.ValidateAllocations(items, caps, playlists, req.DurationDays, vendors)
	return ValidatePlanResponse{IsValid: result.IsValid, Errors: append([]string{}, result.Errors...)}, nil
}

// CommitPlan validates and then persists an allocation set for a
// campaign. An invalid set is rejected outright; commit never stores a
// plan that fails validation.
func (s *Service) CommitPlan(ctx context.Context, req CommitPlanRequest, idempotencyKey string) (CommitPlanResponse, error) {
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return CommitPlanResponse{}, fmt.Errorf("%w: invalid campaign_id", domain.ErrInvalidInput)
	}
	if req.DurationDays <= 0 || req.DurationDays > s.cfg.MaxDurationDays {
		return CommitPlanResponse{}, fmt.Errorf("%w: duration_days must be between 1 and %d", domain.ErrInvalidInput, s.cfg.MaxDurationDays)
	}
	items, err := parseAllocationItems(req.Allocations)
	if err != nil {
		return CommitPlanResponse{}, err
	}
	caps, err := parseVendorCaps(req.VendorCaps)
	if err != nil {
		return CommitPlanResponse{}, err
	}

	if replayed, err := s.replayCommittedPlan(ctx, idempotencyKey, req); err != nil {
		return CommitPlanResponse{}, err
	} else if replayed != nil {
		return *replayed, nil
	}

	playlists, vendors, err := s.loadCatalog(ctx)
	if err != nil {
		return CommitPlanResponse{}, err
	}
	result := domain.ValidateAllocations(items, caps, playlists, req.DurationDays, vendors)
	if !result.IsValid {
		return CommitPlanResponse{}, fmt.Errorf("%w: %s", domain.ErrPlanInvalid, strings.Join(result.Errors, "; "))
	}

	if err := s.reserveIdempotency(ctx, idempotencyKey, req); err != nil {
		return CommitPlanResponse{}, err
	}

	now := s.nowFn()
	if err := s.allocations.ReplaceForCampaign(ctx, ports.CommitAllocationsParams{
		CampaignID:   campaignID,
		Items:        items,
		DurationDays: req.DurationDays,
		CommittedAt:  now,
	}); err != nil {
		return CommitPlanResponse{}, err
	}

	var total int64
	for _, item := range items {
		total += item.Allocation
	}
	_ = s.enqueueAllocationCommitted(ctx, campaignID, items, total, now)

	resp := CommitPlanResponse{
		CampaignID:     campaignID.String(),
		CommittedCount: len(items),
		AllocatedTotal: total,
		CommittedAt:    now,
	}
	s.storeCommittedPlan(ctx, idempotencyKey, resp)
	return resp, nil
}

// GetCampaignAllocations returns a campaign's committed plan.
func (s *Service) GetCampaignAllocations(ctx context.Context, campaignID uuid.UUID) ([]CommittedAllocationView, error) {
	rows, err := s.allocations.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	views := make([]CommittedAllocationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, CommittedAllocationView{
			AllocationID: row.AllocationID.String(),
			CampaignID:   row.CampaignID.String(),
			PlaylistID:   row.PlaylistID.String(),
			VendorID:     row.VendorID.String(),
			Allocation:   row.Allocation,
			DurationDays: row.DurationDays,
			CommittedAt:  row.CommittedAt,
		})
	}
	return views, nil
}

func (s *Service) toAllocationRequest(req PlanAllocationRequest) (domain.AllocationRequest, error) {
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return domain.AllocationRequest{}, fmt.Errorf("%w: invalid campaign_id", domain.ErrInvalidInput)
	}
	caps, err := parseVendorCaps(req.VendorCaps)
	if err != nil {
		return domain.AllocationRequest{}, err
	}

	genres := make([]string, 0, len(req.CampaignGenres))
	for _, genre := range req.CampaignGenres {
		genres = append(genres, domain.NormalizeGenre(genre))
	}
	allocReq := domain.AllocationRequest{
		CampaignID:     campaignID,
		Goal:           req.Goal,
		SubGenre:       domain.NormalizeGenre(req.SubGenre),
		CampaignGenres: genres,
		DurationDays:   req.DurationDays,
		VendorCaps:     caps,
		CampaignBudget: req.CampaignBudget,
	}
	if err := domain.ValidateAllocationRequest(allocReq); err != nil {
		return domain.AllocationRequest{}, err
	}
	if allocReq.DurationDays > s.cfg.MaxDurationDays {
		return domain.AllocationRequest{}, fmt.Errorf("%w: duration_days must be between 1 and %d", domain.ErrInvalidInput, s.cfg.MaxDurationDays)
	}
	return allocReq, nil
}
