package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream/internal/domain"
)

// EngagementRepo backs the ledger. Inserts lean on the unique constraints
// over (kind, target_id, liked_by) and (subscriber_id, channel_id); a lost
// race reports false instead of erroring.
type EngagementRepo struct {
	pool *pgxpool.Pool
}

func NewEngagementRepo(pool *pgxpool.Pool) *EngagementRepo {
	return &EngagementRepo{pool: pool}
}

func (r *EngagementRepo) InsertLike(ctx context.Context, rec *domain.LikeRecord) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO likes (id, kind, target_id, liked_by, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (kind, target_id, liked_by) DO NOTHING
`, rec.ID, string(rec.Kind), rec.TargetID, rec.LikedBy, rec.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EngagementRepo) DeleteLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM likes WHERE kind = $1 AND target_id = $2 AND liked_by = $3
`, string(kind), targetID, actorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EngagementRepo) CountLikes(ctx context.Context, kind domain.LikeKind, targetID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM likes WHERE kind = $1 AND target_id = $2
`, string(kind), targetID).Scan(&n)
	return n, err
}

func (r *EngagementRepo) HasLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM likes WHERE kind = $1 AND target_id = $2 AND liked_by = $3)
`, string(kind), targetID, actorID).Scan(&exists)
	return exists, err
}

func (r *EngagementRepo) ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]domain.VideoWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+videoColumns+`, `+ownerColumns+`
FROM likes l
JOIN videos v ON v.id = l.target_id
JOIN users u ON u.id = v.owner_id
WHERE l.kind = 'video' AND l.liked_by = $1
ORDER BY l.created_at DESC
`, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VideoWithOwner{}
	for rows.Next() {
		var v domain.VideoWithOwner
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.MediaURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.Tags, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.UserName, &v.Owner.FullName, &v.Owner.Avatar); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *EngagementRepo) InsertSubscription(ctx context.Context, rec *domain.SubscriptionRecord) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (subscriber_id, channel_id) DO NOTHING
`, rec.ID, rec.SubscriberID, rec.ChannelID, rec.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EngagementRepo) DeleteSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2
`, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EngagementRepo) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1
`, channelID).Scan(&n)
	return n, err
}

func (r *EngagementRepo) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)
`, subscriberID, channelID).Scan(&exists)
	return exists, err
}

const channelInfoColumns = `u.id, u.user_name, u.full_name, u.avatar_url,
       (SELECT COUNT(*) FROM subscriptions sc WHERE sc.channel_id = u.id),
       EXISTS (SELECT 1 FROM subscriptions sv WHERE sv.channel_id = u.id AND sv.subscriber_id = $2)`

func (r *EngagementRepo) ListChannelSubscribers(ctx context.Context, channelID, viewerID uuid.UUID) ([]domain.ChannelInfo, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+channelInfoColumns+`
FROM subscriptions s
JOIN users u ON u.id = s.subscriber_id
WHERE s.channel_id = $1
ORDER BY s.created_at DESC
`, channelID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanChannelInfos(rows)
}

func (r *EngagementRepo) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]domain.ChannelInfo, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+channelInfoColumns+`
FROM subscriptions s
JOIN users u ON u.id = s.channel_id
WHERE s.subscriber_id = $1
ORDER BY s.created_at DESC
`, subscriberID, subscriberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanChannelInfos(rows)
}

func scanChannelInfos(rows pgx.Rows) ([]domain.ChannelInfo, error) {
	out := []domain.ChannelInfo{}
	for rows.Next() {
		var c domain.ChannelInfo
		if err := rows.Scan(&c.ID, &c.UserName, &c.FullName, &c.Avatar,
			&c.SubscriberCount, &c.IsSubscribed); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
