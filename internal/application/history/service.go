package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
)

type Service struct {
	repo  HistoryRepo
	prefs PreferenceRepo
	clock Clock
}

func New(repo HistoryRepo, prefs PreferenceRepo, clock Clock) *Service {
	return &Service{repo: repo, prefs: prefs, clock: clock}
}

// RecordView refreshes the (user, video) history entry and enforces the cap.
// Order matters: delete, insert, then trim, so a re-watch moves to the front
// instead of duplicating, and the entry just written is never the one evicted
// by this call. No cross-step transaction; every step is safe to retry.
func (s *Service) RecordView(ctx context.Context, userID, videoID uuid.UUID) error {
	if _, err := s.repo.Delete(ctx, userID, videoID); err != nil {
		return err
	}

	entry := &domain.WatchHistoryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return err
	}

	count, err := s.repo.Count(ctx, userID)
	if err != nil {
		return err
	}
	if count > domain.HistoryLimit {
		if err := s.repo.TrimOldest(ctx, userID, count-domain.HistoryLimit); err != nil {
			// the new entry is already in place; a failed trim only leaves
			// the ledger briefly over cap until the next view
			logger.Ctx(ctx).Warn().Err(err).Str("user_id", userID.String()).Msg("history trim failed")
		}
	}
	return nil
}

// UpdatePreferences bumps the user's weight for each tag by one unit.
// Increments commute, so the repo upserts per tag with no read-modify-write.
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, tags []string) error {
	tags = domain.NormalizeTags(tags)
	if len(tags) == 0 {
		return nil
	}
	return s.prefs.IncrementTags(ctx, userID, tags, s.clock.Now())
}

func (s *Service) Remove(ctx context.Context, userID, videoID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, userID, videoID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound("video not found in watch history")
	}
	return nil
}

// Clear wipes the user's history and reports how many entries went; zero is
// a valid result, not an error.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.Clear(ctx, userID)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.WatchedVideo, error) {
	return s.repo.ListWatched(ctx, userID)
}

func (s *Service) Preferences(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	return s.prefs.Weights(ctx, userID)
}
