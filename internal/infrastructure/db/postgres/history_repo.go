package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream/internal/domain"
)

type HistoryRepo struct {
	pool *pgxpool.Pool
}

func NewHistoryRepo(pool *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

func (r *HistoryRepo) Delete(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM watch_history WHERE user_id = $1 AND video_id = $2
`, userID, videoID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *HistoryRepo) Insert(ctx context.Context, e *domain.WatchHistoryEntry) error {
	// ON CONFLICT refreshes the timestamp if a concurrent call for the same
	// (user, video) slipped between our delete and insert.
	_, err := r.pool.Exec(ctx, `
INSERT INTO watch_history (id, user_id, video_id, watched_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at
`, e.ID, e.UserID, e.VideoID, e.WatchedAt)
	return err
}

func (r *HistoryRepo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM watch_history WHERE user_id = $1
`, userID).Scan(&n)
	return n, err
}

func (r *HistoryRepo) TrimOldest(ctx context.Context, userID uuid.UUID, n int) error {
	_, err := r.pool.Exec(ctx, `
DELETE FROM watch_history
WHERE id IN (
    SELECT id FROM watch_history
    WHERE user_id = $1
    ORDER BY watched_at ASC
    LIMIT $2
)
`, userID, n)
	return err
}

func (r *HistoryRepo) Clear(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM watch_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *HistoryRepo) ListWatched(ctx context.Context, userID uuid.UUID) ([]domain.WatchedVideo, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+videoColumns+`, `+ownerColumns+`, h.watched_at
FROM watch_history h
JOIN videos v ON v.id = h.video_id
JOIN users u ON u.id = v.owner_id
WHERE h.user_id = $1
ORDER BY h.watched_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.WatchedVideo{}
	for rows.Next() {
		var w domain.WatchedVideo
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Title, &w.Description, &w.MediaURL, &w.ThumbnailURL,
			&w.Duration, &w.Views, &w.Tags, &w.IsPublished, &w.CreatedAt, &w.UpdatedAt,
			&w.Owner.ID, &w.Owner.UserName, &w.Owner.FullName, &w.Owner.Avatar,
			&w.WatchedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
