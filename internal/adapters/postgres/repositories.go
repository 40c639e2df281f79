package postgres

import (
	"github.com/streamlift/campaign-service/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Playlists   ports.PlaylistRepository
	Vendors     ports.VendorRepository
	Allocations ports.AllocationRepository
	Outbox      ports.OutboxRepository
	Idempotency ports.IdempotencyRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Playlists:   &playlistRepository{db: db},
		Vendors:     &vendorRepository{db: db},
		Allocations: &allocationRepository{db: db},
		Outbox:      &outboxRepository{db: db},
		Idempotency: &idempotencyRepository{db: db},
	}
}
