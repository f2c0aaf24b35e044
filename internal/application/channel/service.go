package channel

import (
	"context"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/vidstream/vidstream/internal/domain"
)

// StatsRepo derives channel aggregates by joining the catalog and the
// engagement ledger.
type StatsRepo interface {
	ChannelStats(ctx context.Context, channelID uuid.UUID) (*domain.ChannelStats, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}

type Service struct {
	repo  StatsRepo
	cache Cache
	ttl   time.Duration
}

func New(repo StatsRepo, cache Cache, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

func cacheKeyStats(channelID uuid.UUID) string {
	return "channel:stats:" + channelID.String()
}

// Stats recomputes every aggregate by query; the short-lived cache only
// smooths bursts and is best effort.
func (s *Service) Stats(ctx context.Context, channelID uuid.UUID) (*domain.ChannelStats, error) {
	key := cacheKeyStats(channelID)
	if s.cache != nil {
		var cached domain.ChannelStats
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("stats cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	stats, err := s.repo.ChannelStats(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats, s.ttl); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("stats cache set failed")
		}
	}
	return stats, nil
}
