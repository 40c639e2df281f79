package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/domain"
	"github.com/streamlift/campaign-service/internal/ports"
)

type allocationCommittedItem struct {
	PlaylistID string `json:"playlist_id"`
	VendorID   string `json:"vendor_id"`
	Allocation int64  `json:"allocation"`
}

type allocationCommittedEventData struct {
	CampaignID     string                    `json:"campaign_id"`
	AllocatedTotal int64                     `json:"allocated_total"`
	CommittedAt    string                    `json:"committed_at"`
	Allocations    []allocationCommittedItem `json:"allocations"`
}

func (s *Service) enqueueAllocationCommitted(ctx context.Context, campaignID uuid.UUID, items []domain.AllocationItem, total int64, committedAt time.Time) error {
	data := allocationCommittedEventData{
		CampaignID:     campaignID.String(),
		AllocatedTotal: total,
		CommittedAt:    committedAt.Format(time.RFC3339),
		Allocations:    make([]allocationCommittedItem, 0, len(items)),
	}
	for _, item := range items {
		data.Allocations = append(data.Allocations, allocationCommittedItem{
			PlaylistID: item.PlaylistID.String(),
			VendorID:   item.VendorID.String(),
			Allocation: item.Allocation,
		})
	}
	payloadEnvelope := map[string]any{
		"event_id":           uuid.NewString(),
		"event_type":         "campaign.allocation_committed",
		"occurred_at":        committedAt.Format(time.RFC3339),
		"source_service":     s.cfg.ServiceName,
		"trace_id":           "",
		"schema_version":     "1.0",
		"partition_key_path": "data.campaign_id",
		"partition_key":      campaignID.String(),
		"data":               data,
	}
	payload, _ := json.Marshal(payloadEnvelope)
	return s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:          uuid.New(),
		EventType:        "campaign.allocation_committed",
		PartitionKey:     campaignID.String(),
		PartitionKeyPath: "data.campaign_id",
		Payload:          payload,
		OccurredAt:       committedAt,
		SchemaVersion:    "1.0",
	})
}

func hashRequest(v any) string {
	raw, _ := json.Marshal(v)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

const idempotencyStatusCompleted = "completed"

// replayCommittedPlan checks whether an idempotency key has already
// produced a committed plan. A completed record for the same request
// replays the stored response; a record for a different request, or one
// whose commit is still in flight, is a conflict.
func (s *Service) replayCommittedPlan(ctx context.Context, key string, request any) (*CommitPlanResponse, error) {
	if key == "" {
		return nil, nil
	}
	record, err := s.idempotency.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	if record.RequestHash != hashRequest(request) {
		return nil, fmt.Errorf("%w: key %q was already used for a different request", domain.ErrIdempotencyConflict, key)
	}
	if record.Status != idempotencyStatusCompleted || len(record.ResponseBody) == 0 {
		return nil, fmt.Errorf("%w: key %q is still being processed", domain.ErrIdempotencyConflict, key)
	}
	var resp CommitPlanResponse
	if err := json.Unmarshal(record.ResponseBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: key %q holds an unreadable stored response", domain.ErrIdempotencyConflict, key)
	}
	return &resp, nil
}

func (s *Service) reserveIdempotency(ctx context.Context, key string, request any) error {
	if key == "" {
		return nil
	}
	err := s.idempotency.Reserve(ctx, key, hashRequest(request), s.nowFn().Add(s.cfg.IdempotencyTTL))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIdempotencyConflict, err)
	}
	return nil
}

// storeCommittedPlan records the commit response under its idempotency
// key so a retried commit replays instead of conflicting. Best effort:
// a storage failure here costs a replay, not the commit.
func (s *Service) storeCommittedPlan(ctx context.Context, key string, resp CommitPlanResponse) {
	if key == "" {
		return
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = s.idempotency.Complete(ctx, key, http.StatusCreated, body, s.nowFn())
}

func parseVendorCaps(raw map[string]int64) (domain.VendorCaps, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	caps := make(domain.VendorCaps, len(raw))
	for id, limit := range raw {
		vendorID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid vendor id %q in vendor_caps", domain.ErrInvalidInput, id)
		}
		caps[vendorID] = limit
	}
	return caps, nil
}

func parseAllocationItems(raw []AllocationItemInput) ([]domain.AllocationItem, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: allocations must not be empty", domain.ErrInvalidInput)
	}
	items := make([]domain.AllocationItem, 0, len(raw))
	for _, in := range raw {
		playlistID, err := uuid.Parse(in.PlaylistID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid playlist_id %q", domain.ErrInvalidInput, in.PlaylistID)
		}
		vendorID, err := uuid.Parse(in.VendorID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid vendor_id %q", domain.ErrInvalidInput, in.VendorID)
		}
		items = append(items, domain.AllocationItem{
			PlaylistID: playlistID,
			VendorID:   vendorID,
			Allocation: in.Allocation,
		})
	}
	return items, nil
}
