package playlist

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type Service struct {
	repo  PlaylistRepo
	clock Clock
}

func New(repo PlaylistRepo, clock Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*domain.Playlist, error) {
	p, err := domain.NewPlaylist(ownerID, name, description, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PlaylistSummary, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.PlaylistDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// AddVideo rejects duplicate membership with a conflict, per the ordered-set
// invariant; membership order is append order.
func (s *Service) AddVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) (*domain.Playlist, error) {
	p, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, domain.ErrForbidden("only the owner can modify this playlist")
	}

	added, err := s.repo.AddVideo(ctx, playlistID, videoID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, domain.ErrConflict("video already exists in playlist")
	}
	return s.repo.GetByID(ctx, playlistID)
}

// RemoveVideo is idempotent: removing a non-member video succeeds silently.
func (s *Service) RemoveVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) (*domain.Playlist, error) {
	p, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, domain.ErrForbidden("only the owner can modify this playlist")
	}

	if _, err := s.repo.RemoveVideo(ctx, playlistID, videoID, s.clock.Now()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, playlistID)
}

func (s *Service) Rename(ctx context.Context, playlistID, actorID uuid.UUID, name, description string) (*domain.Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, domain.ErrValidation("name and description are required")
	}

	p, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, domain.ErrForbidden("only the owner can modify this playlist")
	}
	return s.repo.Rename(ctx, playlistID, name, description, s.clock.Now())
}

func (s *Service) Delete(ctx context.Context, playlistID, actorID uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if p.OwnerID != actorID {
		return domain.ErrForbidden("only the owner can delete this playlist")
	}
	return s.repo.Delete(ctx, playlistID)
}
