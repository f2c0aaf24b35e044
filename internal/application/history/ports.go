package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// HistoryRepo persists the capped per-user watch ledger. Each method is a
// single store operation; the service sequences them.
type HistoryRepo interface {
	Delete(ctx context.Context, userID, videoID uuid.UUID) (bool, error)
	Insert(ctx context.Context, entry *domain.WatchHistoryEntry) error
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	// TrimOldest deletes the n oldest entries by watched_at ascending.
	TrimOldest(ctx context.Context, userID uuid.UUID, n int) error
	Clear(ctx context.Context, userID uuid.UUID) (int, error)
	ListWatched(ctx context.Context, userID uuid.UUID) ([]domain.WatchedVideo, error)
}

// PreferenceRepo stores per-user tag weights. IncrementTags must be a
// per-tag atomic upsert so concurrent views never lose increments.
type PreferenceRepo interface {
	IncrementTags(ctx context.Context, userID uuid.UUID, tags []string, now time.Time) error
	Weights(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
}
