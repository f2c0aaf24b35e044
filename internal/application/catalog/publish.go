package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
)

type PublishCmd struct {
	ActorID     uuid.UUID
	Title       string
	Description string
	Tags        []string

	// local temp paths handed over by the transport layer
	VideoPath     string
	ThumbnailPath string
}

// Publish uploads both artifacts to the media store and creates the catalog
// row. Temp files are removed on every exit path.
func (s *Service) Publish(ctx context.Context, cmd PublishCmd) (*domain.VideoDetail, error) {
	defer removeTempFiles(cmd.VideoPath, cmd.ThumbnailPath)

	if strings.TrimSpace(cmd.Title) == "" || strings.TrimSpace(cmd.Description) == "" {
		return nil, domain.ErrValidation("title and description are required")
	}
	if len(domain.NormalizeTags(cmd.Tags)) == 0 {
		return nil, domain.ErrValidation("at least one tag is required")
	}
	if cmd.VideoPath == "" || cmd.ThumbnailPath == "" {
		return nil, domain.ErrValidation("video and thumbnail are required")
	}

	videoAsset, err := s.media.Upload(ctx, cmd.VideoPath, MediaVideo)
	if err != nil {
		return nil, domain.ErrUpstream("failed to upload video")
	}
	thumbAsset, err := s.media.Upload(ctx, cmd.ThumbnailPath, MediaImage)
	if err != nil {
		return nil, domain.ErrUpstream("failed to upload thumbnail")
	}

	v, err := domain.NewVideo(cmd.ActorID, cmd.Title, cmd.Description,
		videoAsset.URL, thumbAsset.URL, videoAsset.Duration, cmd.Tags, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, v); err != nil {
		return nil, err
	}

	if err := s.pub.Publish(ctx, "video.published", map[string]string{
		"video_id": v.ID.String(),
		"owner_id": v.OwnerID.String(),
	}); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("publish video.published failed")
	}

	return s.repo.GetDetail(ctx, v.ID, uuid.Nil)
}
