package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
)

type UpdateCmd struct {
	ActorID uuid.UUID
	VideoID uuid.UUID

	Title       string
	Description string
	Tags        []string

	// optional replacement thumbnail, local temp path
	ThumbnailPath string
}

// Update edits owner-mutable fields; a replacement thumbnail goes through the
// media store and the old artifact is removed best effort.
func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.VideoDetail, error) {
	defer removeTempFiles(cmd.ThumbnailPath)

	if strings.TrimSpace(cmd.Title) == "" || strings.TrimSpace(cmd.Description) == "" {
		return nil, domain.ErrValidation("title and description are required")
	}
	tags := domain.NormalizeTags(cmd.Tags)
	if len(tags) == 0 {
		return nil, domain.ErrValidation("at least one tag is required")
	}

	v, err := s.repo.GetByID(ctx, cmd.VideoID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != cmd.ActorID {
		return nil, domain.ErrForbidden("only the owner can edit this video")
	}

	if cmd.ThumbnailPath != "" {
		asset, err := s.media.Upload(ctx, cmd.ThumbnailPath, MediaImage)
		if err != nil {
			return nil, domain.ErrUpstream("failed to upload thumbnail")
		}
		if v.ThumbnailURL != "" {
			if err := s.media.Remove(ctx, v.ThumbnailURL, MediaImage); err != nil {
				logger.Ctx(ctx).Warn().Err(err).Str("url", v.ThumbnailURL).Msg("old thumbnail removal failed")
			}
		}
		v.ThumbnailURL = asset.URL
	}

	v.Title = strings.TrimSpace(cmd.Title)
	v.Description = strings.TrimSpace(cmd.Description)
	v.Tags = tags
	v.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.evictDetail(ctx, v.ID)
	return s.repo.GetDetail(ctx, v.ID, uuid.Nil)
}
