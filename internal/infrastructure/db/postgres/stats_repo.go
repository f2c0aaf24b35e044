package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream/internal/domain"
)

// StatsRepo computes channel aggregates by joining the catalog with the
// engagement ledger. Everything is derived at read time.
type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

func (r *StatsRepo) ChannelStats(ctx context.Context, channelID uuid.UUID) (*domain.ChannelStats, error) {
	stats := &domain.ChannelStats{ChannelID: channelID}

	row := r.pool.QueryRow(ctx, `
SELECT
    (SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_id = $1),
    (SELECT COUNT(*) FROM videos WHERE owner_id = $1),
    (SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1),
    (SELECT COUNT(*) FROM tweets WHERE owner_id = $1),
    (SELECT COUNT(*) FROM playlists WHERE owner_id = $1),
    (SELECT COUNT(*) FROM likes l JOIN videos v ON v.id = l.target_id
        WHERE l.kind = 'video' AND v.owner_id = $1),
    (SELECT COUNT(*) FROM likes l JOIN tweets t ON t.id = l.target_id
        WHERE l.kind = 'tweet' AND t.owner_id = $1)
`, channelID)

	if err := row.Scan(&stats.TotalViews, &stats.TotalVideos, &stats.SubscribersCount,
		&stats.TweetsCount, &stats.PlaylistsCount, &stats.TotalVideoLikes, &stats.TotalTweetLikes); err != nil {
		return nil, err
	}
	return stats, nil
}
