package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/domain"
	"github.com/streamlift/campaign-service/internal/ports"
)

type fakePlaylistRepo struct {
	mu        sync.Mutex
	playlists map[uuid.UUID]domain.Playlist
	listErr   error
}

func newFakePlaylistRepo(playlists ...domain.Playlist) *fakePlaylistRepo {
	repo := &fakePlaylistRepo{playlists: make(map[uuid.UUID]domain.Playlist)}
	for _, p := range playlists {
		repo.playlists[p.PlaylistID] = p
	}
	return repo
}

func (r *fakePlaylistRepo) List(_ context.Context) ([]domain.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Playlist, 0, len(r.playlists))
	for _, p := range r.playlists {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlaylistRepo) ListByGenre(ctx context.Context, genre string) ([]domain.Playlist, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Playlist, 0, len(all))
	for _, p := range all {
		for _, g := range p.Genres {
			if g == genre {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePlaylistRepo) get(playlistID uuid.UUID) (domain.Playlist, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[playlistID]
	return p, ok
}

func (r *fakePlaylistRepo) SyncStats(_ context.Context, params ports.SyncPlaylistStatsParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[params.PlaylistID]
	if !ok {
		return fmt.Errorf("%w: playlist %s", domain.ErrNotFound, params.PlaylistID)
	}
	p.AvgDailyStreams = params.AvgDailyStreams
	p.FollowerCount = params.FollowerCount
	if len(params.Genres) > 0 {
		p.Genres = params.Genres
	}
	syncedAt := params.SyncedAt
	p.LastSyncedAt = &syncedAt
	r.playlists[params.PlaylistID] = p
	return nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, playlistID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.playlists[playlistID]; !ok {
		return fmt.Errorf("%w: playlist %s", domain.ErrNotFound, playlistID)
	}
	delete(r.playlists, playlistID)
	return nil
}

type fakeVendorRepo struct {
	vendors []domain.Vendor
}

func (r *fakeVendorRepo) ListActive(_ context.Context) ([]domain.Vendor, error) {
	out := make([]domain.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		if v.Active {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeAllocationRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]ports.CommittedAllocation
}

func newFakeAllocationRepo() *fakeAllocationRepo {
	return &fakeAllocationRepo{rows: make(map[uuid.UUID][]ports.CommittedAllocation)}
}

func (r *fakeAllocationRepo) ReplaceForCampaign(_ context.Context, params ports.CommitAllocationsParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]ports.CommittedAllocation, 0, len(params.Items))
	for _, item := range params.Items {
		rows = append(rows, ports.CommittedAllocation{
			AllocationID: uuid.New(),
			CampaignID:   params.CampaignID,
			PlaylistID:   item.PlaylistID,
			VendorID:     item.VendorID,
			Allocation:   item.Allocation,
			DurationDays: params.DurationDays,
			CommittedAt:  params.CommittedAt,
		})
	}
	r.rows[params.CampaignID] = rows
	return nil
}

func (r *fakeAllocationRepo) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]ports.CommittedAllocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.CommittedAllocation{}, r.rows[campaignID]...), nil
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []ports.OutboxEvent
}

func (r *fakeOutboxRepo) Enqueue(_ context.Context, event ports.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *fakeOutboxRepo) FetchUnpublished(_ context.Context, _ int) ([]ports.OutboxRecord, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) MarkPublished(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return nil
}

func (r *fakeOutboxRepo) MarkFailed(_ context.Context, _ uuid.UUID, _ string, _ time.Time) error {
	return nil
}

type fakeIdempotencyRepo struct {
	mu      sync.Mutex
	records map[string]ports.IdempotencyRecord
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: make(map[string]ports.IdempotencyRecord)}
}

func (r *fakeIdempotencyRepo) Get(_ context.Context, key string) (*ports.IdempotencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[key]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *fakeIdempotencyRepo) Reserve(_ context.Context, key, requestHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.records[key]; ok {
		if existing.RequestHash != requestHash {
			return fmt.Errorf("idempotency key %q already used with a different request", key)
		}
		return fmt.Errorf("idempotency key %q already reserved", key)
	}
	r.records[key] = ports.IdempotencyRecord{Key: key, RequestHash: requestHash, Status: "reserved", ExpiresAt: expiresAt}
	return nil
}

func (r *fakeIdempotencyRepo) Complete(_ context.Context, key string, responseCode int, responseBody []byte, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[key]
	if !ok {
		return fmt.Errorf("%w: idempotency key %q", domain.ErrNotFound, key)
	}
	record.Status = "completed"
	record.ResponseCode = responseCode
	record.ResponseBody = responseBody
	r.records[key] = record
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	values  map[string]string
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.values, key)
	}
	c.deletes++
	return nil
}

type serviceFixture struct {
	svc         *Service
	playlists   *fakePlaylistRepo
	vendors     *fakeVendorRepo
	allocations *fakeAllocationRepo
	outbox      *fakeOutboxRepo
	idempotency *fakeIdempotencyRepo
	cache       *fakeCache
}

func newServiceFixture(playlists []domain.Playlist, vendors []domain.Vendor) *serviceFixture {
	f := &serviceFixture{
		playlists:   newFakePlaylistRepo(playlists...),
		vendors:     &fakeVendorRepo{vendors: vendors},
		allocations: newFakeAllocationRepo(),
		outbox:      &fakeOutboxRepo{},
		idempotency: newFakeIdempotencyRepo(),
		cache:       newFakeCache(),
	}
	f.svc = NewService(Dependencies{
		Playlists:   f.playlists,
		Vendors:     f.vendors,
		Allocations: f.allocations,
		Outbox:      f.outbox,
		Idempotency: f.idempotency,
		Cache:       f.cache,
	})
	return f
}
