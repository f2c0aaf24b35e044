package channel

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidstream/vidstream/internal/domain"
	rediscache "github.com/vidstream/vidstream/internal/infrastructure/caching/redis"
)

type countingStatsRepo struct {
	stats map[uuid.UUID]*domain.ChannelStats
	calls int
}

func (r *countingStatsRepo) ChannelStats(ctx context.Context, channelID uuid.UUID) (*domain.ChannelStats, error) {
	r.calls++
	if s, ok := r.stats[channelID]; ok {
		return s, nil
	}
	return &domain.ChannelStats{ChannelID: channelID}, nil
}

func newTestCache(t *testing.T) *rediscache.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return rediscache.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
}

func TestService_Stats_CacheHit(t *testing.T) {
	channelID := uuid.New()
	repo := &countingStatsRepo{stats: map[uuid.UUID]*domain.ChannelStats{
		channelID: {
			ChannelID:        channelID,
			TotalViews:       120,
			TotalVideos:      4,
			SubscribersCount: 9,
		},
	}}
	svc := New(repo, newTestCache(t), time.Minute)

	ctx := context.Background()
	first, err := svc.Stats(ctx, channelID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), first.TotalViews)
	assert.Equal(t, 1, repo.calls)

	second, err := svc.Stats(ctx, channelID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls, "second read must come from cache")
}

func TestService_Stats_NilCacheQueriesEveryTime(t *testing.T) {
	channelID := uuid.New()
	repo := &countingStatsRepo{stats: map[uuid.UUID]*domain.ChannelStats{}}
	svc := New(repo, nil, time.Minute)

	ctx := context.Background()
	_, err := svc.Stats(ctx, channelID)
	require.NoError(t, err)
	_, err = svc.Stats(ctx, channelID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestService_Stats_ZeroChannel(t *testing.T) {
	channelID := uuid.New()
	svc := New(&countingStatsRepo{stats: map[uuid.UUID]*domain.ChannelStats{}}, nil, 0)

	st, err := svc.Stats(context.Background(), channelID)
	require.NoError(t, err)
	assert.Equal(t, channelID, st.ChannelID)
	assert.Zero(t, st.TotalViews, "a channel with no content reports zeros")
	assert.Zero(t, st.SubscribersCount)
}
