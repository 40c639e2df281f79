package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/domain"
	"github.com/streamlift/campaign-service/internal/ports"
	"gorm.io/gorm"
)

type playlistRepository struct {
	db *gorm.DB
}

func (r *playlistRepository) List(ctx context.Context) ([]domain.Playlist, error) {
	var rows []playlistModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Playlist, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPlaylist(row))
	}
	return out, nil
}

func (r *playlistRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Playlist, error) {
	var rows []playlistModel
	if err := r.db.WithContext(ctx).Where("genres::jsonb @> ?::jsonb", encodeGenres([]string{genre})).Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Playlist, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPlaylist(row))
	}
	return out, nil
}

func (r *playlistRepository) SyncStats(ctx context.Context, params ports.SyncPlaylistStatsParams) error {
	updates := map[string]any{
		"avg_daily_streams": params.AvgDailyStreams,
		"follower_count":    params.FollowerCount,
		"last_synced_at":    params.SyncedAt,
		"updated_at":        params.SyncedAt,
	}
	if len(params.Genres) > 0 {
		updates["genres"] = encodeGenres(params.Genres)
	}
	res := r.db.WithContext(ctx).Model(&playlistModel{}).Where("playlist_id = ?", params.PlaylistID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, playlistID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("playlist_id = ?", playlistID).Delete(&playlistModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
