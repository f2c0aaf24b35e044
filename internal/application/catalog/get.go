package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
)

// Get returns the joined video detail and, for an authenticated viewer, runs
// the view side effects: watch-history refresh, tag-preference update, then
// the view-counter increment. History must land before the increment; a crash
// in between leaves benign partial state, never corruption.
//
// Anonymous reads have no side effects and are served through the read cache.
func (s *Service) Get(ctx context.Context, videoID, viewerID uuid.UUID) (*domain.VideoDetail, error) {
	if viewerID == uuid.Nil {
		return s.cachedDetail(ctx, videoID)
	}

	v, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.tracker.RecordView(ctx, viewerID, videoID); err != nil {
		return nil, err
	}
	if err := s.tracker.UpdatePreferences(ctx, viewerID, v.Tags); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("video_id", videoID.String()).Msg("tag preference update failed")
	}
	if err := s.repo.IncrementViews(ctx, videoID); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("video_id", videoID.String()).Msg("view increment failed")
	}
	if err := s.pub.Publish(ctx, "video.viewed", map[string]string{
		"video_id": videoID.String(),
		"user_id":  viewerID.String(),
	}); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("publish video.viewed failed")
	}

	return s.repo.GetDetail(ctx, videoID, viewerID)
}

func cacheKeyDetail(videoID uuid.UUID) string {
	return "video:detail:" + videoID.String()
}

// cachedDetail serves the anonymous read model. Cached views lag live counts
// by at most the TTL; mutations evict the key eagerly.
func (s *Service) cachedDetail(ctx context.Context, videoID uuid.UUID) (*domain.VideoDetail, error) {
	key := cacheKeyDetail(videoID)
	if s.cache != nil {
		var cached domain.VideoDetail
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("detail cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	detail, err := s.repo.GetDetail(ctx, videoID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, detail, s.detailTTL); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("detail cache set failed")
		}
	}
	return detail, nil
}

func (s *Service) evictDetail(ctx context.Context, videoID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyDetail(videoID)); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("video_id", videoID.String()).Msg("detail cache evict failed")
	}
}
