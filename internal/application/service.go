package application

import (
	"time"

	"github.com/streamlift/campaign-service/internal/ports"
)

type Service struct {
	cfg         Config
	playlists   ports.PlaylistRepository
	vendors     ports.VendorRepository
	allocations ports.AllocationRepository
	outbox      ports.OutboxRepository
	idempotency ports.IdempotencyRepository
	cache       ports.Cache
	nowFn       func() time.Time
}

type Dependencies struct {
	Config      Config
	Playlists   ports.PlaylistRepository
	Vendors     ports.VendorRepository
	Allocations ports.AllocationRepository
	Outbox      ports.OutboxRepository
	Idempotency ports.IdempotencyRepository
	Cache       ports.Cache
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "campaign-allocation-service"
	}
	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = 5 * time.Minute
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 7 * 24 * time.Hour
	}
	if cfg.MaxDurationDays <= 0 {
		cfg.MaxDurationDays = 365
	}

	return &Service{
		cfg:         cfg,
		playlists:   deps.Playlists,
		vendors:     deps.Vendors,
		allocations: deps.Allocations,
		outbox:      deps.Outbox,
		idempotency: deps.Idempotency,
		cache:       deps.Cache,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}
