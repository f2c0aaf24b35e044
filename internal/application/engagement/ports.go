package engagement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// LedgerRepo is the store side of the engagement ledger. Delete and insert
// are individually atomic; insert relies on a unique constraint over the
// (kind, target, actor) tuple and reports false instead of erroring when the
// record already exists.
type LedgerRepo interface {
	InsertLike(ctx context.Context, rec *domain.LikeRecord) (bool, error)
	DeleteLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, kind domain.LikeKind, targetID uuid.UUID) (int, error)
	HasLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error)
	ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]domain.VideoWithOwner, error)

	InsertSubscription(ctx context.Context, rec *domain.SubscriptionRecord) (bool, error)
	DeleteSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	ListChannelSubscribers(ctx context.Context, channelID, viewerID uuid.UUID) ([]domain.ChannelInfo, error)
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]domain.ChannelInfo, error)
}
