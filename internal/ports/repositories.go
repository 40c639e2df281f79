package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/domain"
)

type SyncPlaylistStatsParams struct {
	PlaylistID      uuid.UUID
	AvgDailyStreams float64
	FollowerCount   int64
	Genres          []string
	SyncedAt        time.Time
}

type PlaylistRepository interface {
	List(ctx context.Context) ([]domain.Playlist, error)
	ListByGenre(ctx context.Context, genre string) ([]domain.Playlist, error)
	SyncStats(ctx context.Context, params SyncPlaylistStatsParams) error
	Delete(ctx context.Context, playlistID uuid.UUID) error
}

type VendorRepository interface {
	ListActive(ctx context.Context) ([]domain.Vendor, error)
}

// CommittedAllocation is one persisted allocation row for a campaign.
type CommittedAllocation struct {
	AllocationID uuid.UUID
	CampaignID   uuid.UUID
	PlaylistID   uuid.UUID
	VendorID     uuid.UUID
	Allocation   int64
	DurationDays int
	CommittedAt  time.Time
}

type CommitAllocationsParams struct {
	CampaignID   uuid.UUID
	Items        []domain.AllocationItem
	DurationDays int
	CommittedAt  time.Time
}

type AllocationRepository interface {
	// ReplaceForCampaign atomically swaps a campaign's committed plan.
	ReplaceForCampaign(ctx context.Context, params CommitAllocationsParams) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]CommittedAllocation, error)
}

type OutboxEvent struct {
	EventID          uuid.UUID
	EventType        string
	PartitionKey     string
	PartitionKeyPath string
	Payload          []byte
	OccurredAt       time.Time
	SchemaVersion    string
	TraceID          string
}

type OutboxRecord struct {
	OutboxID     uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	RetryCount   int
	PublishedAt  *time.Time
	LastError    *string
	LastErrorAt  *time.Time
	FirstSeenAt  time.Time
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, outboxID uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, outboxID uuid.UUID, errMsg string, at time.Time) error
}

type IdempotencyRecord struct {
	Key          string
	RequestHash  string
	Status       string
	ResponseCode int
	ResponseBody []byte
	ExpiresAt    time.Time
}

type IdempotencyRepository interface {
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	Reserve(ctx context.Context, key, requestHash string, expiresAt time.Time) error
	Complete(ctx context.Context, key string, responseCode int, responseBody []byte, at time.Time) error
}
