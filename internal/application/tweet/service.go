package tweet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type TweetRepo interface {
	Insert(ctx context.Context, t *domain.Tweet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo  TweetRepo
	clock Clock
}

func New(repo TweetRepo, clock Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, content string) (*domain.Tweet, error) {
	t, err := domain.NewTweet(ownerID, content, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tweet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, tweetID, actorID uuid.UUID, content string) (*domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrValidation("content is required")
	}
	t, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if t.OwnerID != actorID {
		return nil, domain.ErrForbidden("only the owner can edit this tweet")
	}
	if err := s.repo.UpdateContent(ctx, tweetID, content); err != nil {
		return nil, err
	}
	t.Content = content
	return t, nil
}

func (s *Service) Delete(ctx context.Context, tweetID, actorID uuid.UUID) error {
	t, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if t.OwnerID != actorID {
		return domain.ErrForbidden("only the owner can delete this tweet")
	}
	return s.repo.Delete(ctx, tweetID)
}
