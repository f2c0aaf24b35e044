package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type VideoRepo interface {
	Insert(ctx context.Context, v *domain.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	// GetDetail joins the owner summary plus subscriberCount/isSubscribed
	// relative to the viewer (uuid.Nil for anonymous).
	GetDetail(ctx context.Context, id, viewerID uuid.UUID) (*domain.VideoDetail, error)
	Update(ctx context.Context, v *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, q ListQuery) ([]domain.VideoWithOwner, int, error)
}

type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// MediaAsset is what the media store hands back for a stored file. Duration
// is only meaningful for video uploads.
type MediaAsset struct {
	URL      string
	Duration float64
}

// MediaStore takes a local file and returns a durable URL plus metadata.
type MediaStore interface {
	Upload(ctx context.Context, localPath string, kind MediaKind) (*MediaAsset, error)
	Remove(ctx context.Context, url string, kind MediaKind) error
}

// ViewTracker feeds the watch-history ledger and tag-preference model as part
// of the "video viewed" event.
type ViewTracker interface {
	RecordView(ctx context.Context, userID, videoID uuid.UUID) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, tags []string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Cache backs anonymous detail reads; nil disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
