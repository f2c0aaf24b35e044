package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
)

// Delete removes the catalog row; media artifact removal is the media store's
// concern and failures there never block the delete.
func (s *Service) Delete(ctx context.Context, videoID, actorID uuid.UUID) error {
	v, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if v.OwnerID != actorID {
		return domain.ErrForbidden("only the owner can delete this video")
	}

	if err := s.media.Remove(ctx, v.MediaURL, MediaVideo); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("url", v.MediaURL).Msg("media removal failed")
	}
	if err := s.media.Remove(ctx, v.ThumbnailURL, MediaImage); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("url", v.ThumbnailURL).Msg("thumbnail removal failed")
	}

	if err := s.repo.Delete(ctx, videoID); err != nil {
		return err
	}
	s.evictDetail(ctx, videoID)
	return nil
}

// TogglePublish flips the publish state; unpublished videos drop out of the
// public listing but stay in the owner's.
func (s *Service) TogglePublish(ctx context.Context, videoID, actorID uuid.UUID) (*domain.Video, error) {
	v, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != actorID {
		return nil, domain.ErrForbidden("only the owner can change publish state")
	}

	v.IsPublished = !v.IsPublished
	v.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.evictDetail(ctx, videoID)
	return v, nil
}
