package postgres

import (
	"time"

	"github.com/google/uuid"
)

type playlistModel struct {
	PlaylistID      uuid.UUID  `gorm:"column:playlist_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID        uuid.UUID  `gorm:"column:vendor_id"`
	Name            string     `gorm:"column:name"`
	Platform        string     `gorm:"column:platform"`
	Genres          string     `gorm:"column:genres"`
	AvgDailyStreams float64    `gorm:"column:avg_daily_streams"`
	FollowerCount   int64      `gorm:"column:follower_count"`
	LastSyncedAt    *time.Time `gorm:"column:last_synced_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (playlistModel) TableName() string { return "playlists" }

type vendorModel struct {
	VendorID     uuid.UUID `gorm:"column:vendor_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name"`
	ContactEmail string    `gorm:"column:contact_email"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (vendorModel) TableName() string { return "vendors" }

type campaignAllocationModel struct {
	AllocationID uuid.UUID `gorm:"column:allocation_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID   uuid.UUID `gorm:"column:campaign_id"`
	PlaylistID   uuid.UUID `gorm:"column:playlist_id"`
	VendorID     uuid.UUID `gorm:"column:vendor_id"`
	Allocation   int64     `gorm:"column:allocation"`
	DurationDays int       `gorm:"column:duration_days"`
	CommittedAt  time.Time `gorm:"column:committed_at"`
}

func (campaignAllocationModel) TableName() string { return "campaign_allocations" }

type allocationOutboxModel struct {
	OutboxID         uuid.UUID  `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType        string     `gorm:"column:event_type"`
	PartitionKey     string     `gorm:"column:partition_key"`
	PartitionKeyPath string     `gorm:"column:partition_key_path"`
	Payload          string     `gorm:"column:payload"`
	SchemaVersion    string     `gorm:"column:schema_version"`
	TraceID          string     `gorm:"column:trace_id"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	FirstSeenAt      time.Time  `gorm:"column:first_seen_at"`
	PublishedAt      *time.Time `gorm:"column:published_at"`
	RetryCount       int        `gorm:"column:retry_count"`
	LastError        *string    `gorm:"column:last_error"`
	LastErrorAt      *time.Time `gorm:"column:last_error_at"`
}

func (allocationOutboxModel) TableName() string { return "allocation_outbox" }

type allocationIdempotencyModel struct {
	IdempotencyKey string    `gorm:"column:idempotency_key;primaryKey"`
	RequestHash    string    `gorm:"column:request_hash"`
	Status         string    `gorm:"column:status"`
	ResponseCode   int       `gorm:"column:response_code"`
	ResponseBody   *string   `gorm:"column:response_body"`
	ExpiresAt      time.Time `gorm:"column:expires_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (allocationIdempotencyModel) TableName() string { return "allocation_idempotency" }
