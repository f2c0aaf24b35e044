package playlist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type PlaylistRepo interface {
	Insert(ctx context.Context, p *domain.Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.PlaylistDetail, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PlaylistSummary, error)
	Rename(ctx context.Context, id uuid.UUID, name, description string, now time.Time) (*domain.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends atomically and reports false when the video is
	// already a member (or the playlist is gone).
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID, now time.Time) (bool, error)
	// RemoveVideo is a silent no-op for non-members; false only when the
	// playlist itself is missing.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID, now time.Time) (bool, error)
}
