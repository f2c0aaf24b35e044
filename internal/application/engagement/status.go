package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

// LikeStatus derives the count and did-I boolean for one target by querying
// the ledger. Nothing is cached on the target row.
func (s *Service) LikeStatus(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (domain.EngagementStatus, error) {
	if !kind.Valid() {
		return domain.EngagementStatus{}, domain.ErrValidation("invalid like kind")
	}
	count, err := s.repo.CountLikes(ctx, kind, targetID)
	if err != nil {
		return domain.EngagementStatus{}, err
	}
	engaged := false
	if actorID != uuid.Nil {
		engaged, err = s.repo.HasLike(ctx, kind, targetID, actorID)
		if err != nil {
			return domain.EngagementStatus{}, err
		}
	}
	return domain.EngagementStatus{Count: count, Engaged: engaged}, nil
}

func (s *Service) SubscriptionStatus(ctx context.Context, channelID, viewerID uuid.UUID) (domain.EngagementStatus, error) {
	count, err := s.repo.CountSubscribers(ctx, channelID)
	if err != nil {
		return domain.EngagementStatus{}, err
	}
	engaged := false
	if viewerID != uuid.Nil {
		engaged, err = s.repo.IsSubscribed(ctx, viewerID, channelID)
		if err != nil {
			return domain.EngagementStatus{}, err
		}
	}
	return domain.EngagementStatus{Count: count, Engaged: engaged}, nil
}
