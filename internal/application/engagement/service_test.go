package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidstream/vidstream/internal/domain"
)

// --- Mocks & Helpers ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type likeKey struct {
	kind   domain.LikeKind
	target uuid.UUID
	actor  uuid.UUID
}

type subKey struct {
	subscriber uuid.UUID
	channel    uuid.UUID
}

type memLedger struct {
	likes map[likeKey]*domain.LikeRecord
	subs  map[subKey]*domain.SubscriptionRecord
}

func newMemLedger() *memLedger {
	return &memLedger{
		likes: map[likeKey]*domain.LikeRecord{},
		subs:  map[subKey]*domain.SubscriptionRecord{},
	}
}

func (m *memLedger) InsertLike(ctx context.Context, rec *domain.LikeRecord) (bool, error) {
	k := likeKey{rec.Kind, rec.TargetID, rec.LikedBy}
	if _, ok := m.likes[k]; ok {
		return false, nil
	}
	m.likes[k] = rec
	return true, nil
}

func (m *memLedger) DeleteLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error) {
	k := likeKey{kind, targetID, actorID}
	if _, ok := m.likes[k]; !ok {
		return false, nil
	}
	delete(m.likes, k)
	return true, nil
}

func (m *memLedger) CountLikes(ctx context.Context, kind domain.LikeKind, targetID uuid.UUID) (int, error) {
	n := 0
	for k := range m.likes {
		if k.kind == kind && k.target == targetID {
			n++
		}
	}
	return n, nil
}

func (m *memLedger) HasLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error) {
	_, ok := m.likes[likeKey{kind, targetID, actorID}]
	return ok, nil
}

func (m *memLedger) ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]domain.VideoWithOwner, error) {
	return nil, nil
}

func (m *memLedger) InsertSubscription(ctx context.Context, rec *domain.SubscriptionRecord) (bool, error) {
	k := subKey{rec.SubscriberID, rec.ChannelID}
	if _, ok := m.subs[k]; ok {
		return false, nil
	}
	m.subs[k] = rec
	return true, nil
}

func (m *memLedger) DeleteSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	k := subKey{subscriberID, channelID}
	if _, ok := m.subs[k]; !ok {
		return false, nil
	}
	delete(m.subs, k)
	return true, nil
}

func (m *memLedger) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int, error) {
	n := 0
	for k := range m.subs {
		if k.channel == channelID {
			n++
		}
	}
	return n, nil
}

func (m *memLedger) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	_, ok := m.subs[subKey{subscriberID, channelID}]
	return ok, nil
}

func (m *memLedger) ListChannelSubscribers(ctx context.Context, channelID, viewerID uuid.UUID) ([]domain.ChannelInfo, error) {
	return nil, nil
}

func (m *memLedger) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]domain.ChannelInfo, error) {
	return nil, nil
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tt.UTC()
}

// --- Test Cases ---

func TestService_ToggleLike_FlipPairs(t *testing.T) {
	now := mustTime(t, "2025-06-01T10:00:00Z")
	repo := newMemLedger()
	svc := New(repo, fakeClock{t: now})

	target := uuid.New()
	actor := uuid.New()
	ctx := context.Background()

	t.Run("first_toggle_creates", func(t *testing.T) {
		out, err := svc.ToggleLike(ctx, domain.LikeVideo, target, actor)
		require.NoError(t, err)
		assert.False(t, out.Removed)
		assert.NotNil(t, out.Created)

		st, err := svc.LikeStatus(ctx, domain.LikeVideo, target, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, st.Count)
		assert.True(t, st.Engaged)
	})

	t.Run("second_toggle_removes", func(t *testing.T) {
		out, err := svc.ToggleLike(ctx, domain.LikeVideo, target, actor)
		require.NoError(t, err)
		assert.True(t, out.Removed)
		assert.Nil(t, out.Created)

		st, err := svc.LikeStatus(ctx, domain.LikeVideo, target, actor)
		require.NoError(t, err)
		assert.Equal(t, 0, st.Count)
		assert.False(t, st.Engaged)
	})

	t.Run("third_toggle_creates_again", func(t *testing.T) {
		out, err := svc.ToggleLike(ctx, domain.LikeVideo, target, actor)
		require.NoError(t, err)
		assert.False(t, out.Removed)

		st, err := svc.LikeStatus(ctx, domain.LikeVideo, target, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, st.Count)
	})
}

func TestService_ToggleLike_KindsAreIndependent(t *testing.T) {
	now := mustTime(t, "2025-06-01T10:00:00Z")
	repo := newMemLedger()
	svc := New(repo, fakeClock{t: now})

	// same id used for a video and a tweet must not collide
	target := uuid.New()
	actor := uuid.New()
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, domain.LikeVideo, target, actor)
	require.NoError(t, err)
	_, err = svc.ToggleLike(ctx, domain.LikeTweet, target, actor)
	require.NoError(t, err)

	video, err := svc.LikeStatus(ctx, domain.LikeVideo, target, actor)
	require.NoError(t, err)
	tweet, err := svc.LikeStatus(ctx, domain.LikeTweet, target, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, video.Count)
	assert.Equal(t, 1, tweet.Count)
}

func TestService_ToggleLike_InvalidKind(t *testing.T) {
	svc := New(newMemLedger(), fakeClock{t: time.Now()})

	_, err := svc.ToggleLike(context.Background(), domain.LikeKind("channel"), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid like kind")
}

func TestService_ToggleLike_LostInsertRace(t *testing.T) {
	now := mustTime(t, "2025-06-01T10:00:00Z")
	repo := newMemLedger()
	_ = New(repo, fakeClock{t: now})

	target := uuid.New()
	actor := uuid.New()

	// a concurrent toggle creates the record after our delete found nothing
	raced := &racingLedger{memLedger: repo, target: target, actor: actor, clock: fakeClock{t: now}}
	svcRaced := New(raced, fakeClock{t: now})

	out, err := svcRaced.ToggleLike(context.Background(), domain.LikeVideo, target, actor)
	require.NoError(t, err)
	assert.True(t, out.Removed, "a lost insert must finish as a removal")

	count, err := repo.CountLikes(context.Background(), domain.LikeVideo, target)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "the racing record must be gone")
}

// racingLedger injects a competing like between the delete and insert steps.
type racingLedger struct {
	*memLedger
	target uuid.UUID
	actor  uuid.UUID
	clock  fakeClock
	fired  bool
}

func (r *racingLedger) DeleteLike(ctx context.Context, kind domain.LikeKind, targetID, actorID uuid.UUID) (bool, error) {
	deleted, err := r.memLedger.DeleteLike(ctx, kind, targetID, actorID)
	if !r.fired && !deleted {
		r.fired = true
		_, _ = r.memLedger.InsertLike(ctx, &domain.LikeRecord{
			ID:        uuid.New(),
			Kind:      kind,
			TargetID:  r.target,
			LikedBy:   r.actor,
			CreatedAt: r.clock.Now(),
		})
	}
	return deleted, err
}

func TestService_ToggleSubscription(t *testing.T) {
	now := mustTime(t, "2025-06-01T10:00:00Z")
	repo := newMemLedger()
	svc := New(repo, fakeClock{t: now})

	subscriber := uuid.New()
	channel := uuid.New()
	ctx := context.Background()

	t.Run("subscribe_then_unsubscribe", func(t *testing.T) {
		out, err := svc.ToggleSubscription(ctx, subscriber, channel)
		require.NoError(t, err)
		assert.False(t, out.Removed)

		st, err := svc.SubscriptionStatus(ctx, channel, subscriber)
		require.NoError(t, err)
		assert.Equal(t, 1, st.Count)
		assert.True(t, st.Engaged)

		out, err = svc.ToggleSubscription(ctx, subscriber, channel)
		require.NoError(t, err)
		assert.True(t, out.Removed)

		st, err = svc.SubscriptionStatus(ctx, channel, subscriber)
		require.NoError(t, err)
		assert.Equal(t, 0, st.Count)
		assert.False(t, st.Engaged)
	})

	t.Run("self_subscribe_rejected", func(t *testing.T) {
		_, err := svc.ToggleSubscription(ctx, channel, channel)
		require.Error(t, err)

		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeConflict, ae.Code)

		st, err := svc.SubscriptionStatus(ctx, channel, channel)
		require.NoError(t, err)
		assert.Equal(t, 0, st.Count, "rejected toggle must not write")
	})
}
