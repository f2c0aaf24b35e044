package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

// ToggleLike flips the like state for (kind, target, actor). Delete-first
// keeps the flip race-free without locks: a lost insert means a concurrent
// toggle created the record between our delete and insert, so the flip
// completes by deleting that record instead.
func (s *Service) ToggleLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (domain.ToggleOutcome, error) {
	if !kind.Valid() {
		return domain.ToggleOutcome{}, domain.ErrValidationMeta("invalid like kind", map[string]string{
			"kind": "must be one of: video, tweet, comment",
		})
	}

	deleted, err := s.repo.DeleteLike(ctx, kind, targetID, actorID)
	if err != nil {
		return domain.ToggleOutcome{}, err
	}
	if deleted {
		return domain.ToggleOutcome{Removed: true}, nil
	}

	rec := &domain.LikeRecord{
		ID:        uuid.New(),
		Kind:      kind,
		TargetID:  targetID,
		LikedBy:   actorID,
		CreatedAt: s.clock.Now(),
	}
	inserted, err := s.repo.InsertLike(ctx, rec)
	if err != nil {
		return domain.ToggleOutcome{}, err
	}
	if inserted {
		return domain.ToggleOutcome{Created: rec}, nil
	}

	// Insert lost to a concurrent create; deleting it finishes our flip.
	// A no-op delete here means a third party got there first, which is
	// still the removed state.
	if _, err := s.repo.DeleteLike(ctx, kind, targetID, actorID); err != nil {
		return domain.ToggleOutcome{}, err
	}
	return domain.ToggleOutcome{Removed: true}, nil
}

// ToggleSubscription flips the subscriber relation. Self-subscription is a
// client error and never touches the ledger.
func (s *Service) ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (domain.ToggleOutcome, error) {
	if subscriberID == channelID {
		return domain.ToggleOutcome{}, domain.ErrConflict("you cannot subscribe to your own channel")
	}

	deleted, err := s.repo.DeleteSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return domain.ToggleOutcome{}, err
	}
	if deleted {
		return domain.ToggleOutcome{Removed: true}, nil
	}

	rec := &domain.SubscriptionRecord{
		ID:           uuid.New(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    s.clock.Now(),
	}
	inserted, err := s.repo.InsertSubscription(ctx, rec)
	if err != nil {
		return domain.ToggleOutcome{}, err
	}
	if inserted {
		return domain.ToggleOutcome{Created: rec}, nil
	}

	if _, err := s.repo.DeleteSubscription(ctx, subscriberID, channelID); err != nil {
		return domain.ToggleOutcome{}, err
	}
	return domain.ToggleOutcome{Removed: true}, nil
}
