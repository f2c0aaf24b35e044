package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryLimit caps watch history per user; the oldest entries are evicted
// first once the cap is exceeded.
const HistoryLimit = 50

type WatchHistoryEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VideoID   uuid.UUID
	WatchedAt time.Time
}

// WatchedVideo is a history entry joined with its video summary.
type WatchedVideo struct {
	VideoWithOwner
	WatchedAt time.Time
}

type TagPreference struct {
	UserID    uuid.UUID
	Tag       string
	Weight    float64
	UpdatedAt time.Time
}
