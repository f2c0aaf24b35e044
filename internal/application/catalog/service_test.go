package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

// --- Mocks & Helpers ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type memVideoRepo struct {
	byID        map[uuid.UUID]*domain.Video
	views       map[uuid.UUID]int
	detailCalls int
}

func newMemVideoRepo() *memVideoRepo {
	return &memVideoRepo{
		byID:  map[uuid.UUID]*domain.Video{},
		views: map[uuid.UUID]int{},
	}
}

func (m *memVideoRepo) Insert(ctx context.Context, v *domain.Video) error {
	m.byID[v.ID] = v
	return nil
}

func (m *memVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	v, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("video not found")
	}
	return v, nil
}

func (m *memVideoRepo) GetDetail(ctx context.Context, id, viewerID uuid.UUID) (*domain.VideoDetail, error) {
	m.detailCalls++
	v, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("video not found")
	}
	return &domain.VideoDetail{
		VideoWithOwner: domain.VideoWithOwner{Video: *v},
	}, nil
}

func (m *memVideoRepo) Update(ctx context.Context, v *domain.Video) error {
	m.byID[v.ID] = v
	return nil
}

func (m *memVideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	return nil
}

func (m *memVideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	m.views[id]++
	return nil
}

func (m *memVideoRepo) List(ctx context.Context, q ListQuery) ([]domain.VideoWithOwner, int, error) {
	return nil, 0, nil
}

type memTracker struct {
	views [][2]uuid.UUID
	tags  [][]string
}

func (m *memTracker) RecordView(ctx context.Context, userID, videoID uuid.UUID) error {
	m.views = append(m.views, [2]uuid.UUID{userID, videoID})
	return nil
}

func (m *memTracker) UpdatePreferences(ctx context.Context, userID uuid.UUID, tags []string) error {
	m.tags = append(m.tags, tags)
	return nil
}

type memMedia struct {
	uploads  []string
	removals []string
	fail     bool
}

func (m *memMedia) Upload(ctx context.Context, localPath string, kind MediaKind) (*MediaAsset, error) {
	if m.fail {
		return nil, errors.New("store down")
	}
	m.uploads = append(m.uploads, localPath)
	return &MediaAsset{URL: "https://cdn.test/" + string(kind) + "/" + localPath, Duration: 42}, nil
}

func (m *memMedia) Remove(ctx context.Context, url string, kind MediaKind) error {
	m.removals = append(m.removals, url)
	return nil
}

func tempFile(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "artifact-*")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

type memCache struct {
	entries map[string][]byte
	gets    int
	sets    int
	deletes []string
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (m *memCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.gets++
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	m.sets++
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
		m.deletes = append(m.deletes, k)
	}
	return nil
}

func newSvc(repo *memVideoRepo, media *memMedia, tracker *memTracker) *Service {
	return New(repo, media, tracker, NoopPublisher{}, nil, 0, fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)})
}

func newCachedSvc(repo *memVideoRepo, cache Cache) *Service {
	return New(repo, &memMedia{}, &memTracker{}, NoopPublisher{}, cache, time.Minute, fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)})
}

// --- Test Cases ---

func TestService_Get_AnonymousSkipsSideEffects(t *testing.T) {
	repo := newMemVideoRepo()
	tracker := &memTracker{}
	svc := newSvc(repo, &memMedia{}, tracker)

	v := &domain.Video{ID: uuid.New(), Tags: []string{"go"}}
	repo.byID[v.ID] = v

	got, err := svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	assert.Empty(t, tracker.views, "anonymous views leave no history")
	assert.Empty(t, tracker.tags)
	assert.Equal(t, 0, repo.views[v.ID], "anonymous views do not count")
}

func TestService_Get_ViewerSideEffects(t *testing.T) {
	repo := newMemVideoRepo()
	tracker := &memTracker{}
	svc := newSvc(repo, &memMedia{}, tracker)

	v := &domain.Video{ID: uuid.New(), Tags: []string{"go", "backend"}}
	repo.byID[v.ID] = v
	viewer := uuid.New()

	_, err := svc.Get(context.Background(), v.ID, viewer)
	require.NoError(t, err)

	require.Len(t, tracker.views, 1)
	assert.Equal(t, [2]uuid.UUID{viewer, v.ID}, tracker.views[0])
	require.Len(t, tracker.tags, 1)
	assert.Equal(t, []string{"go", "backend"}, tracker.tags[0])
	assert.Equal(t, 1, repo.views[v.ID])
}

func TestService_Get_MissingVideoHasNoSideEffects(t *testing.T) {
	repo := newMemVideoRepo()
	tracker := &memTracker{}
	svc := newSvc(repo, &memMedia{}, tracker)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)

	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeNotFound, ae.Code)
	assert.Empty(t, tracker.views, "a missing video must not enter history")
}

func TestService_Publish(t *testing.T) {
	t.Run("success_stores_both_artifacts", func(t *testing.T) {
		repo := newMemVideoRepo()
		media := &memMedia{}
		svc := newSvc(repo, media, &memTracker{})

		videoPath := tempFile(t)
		thumbPath := tempFile(t)

		got, err := svc.Publish(context.Background(), PublishCmd{
			ActorID:       uuid.New(),
			Title:         "intro to pgx",
			Description:   "batching and pools",
			Tags:          []string{"Go", "databases"},
			VideoPath:     videoPath,
			ThumbnailPath: thumbPath,
		})
		require.NoError(t, err)
		assert.Len(t, media.uploads, 2)
		assert.Len(t, repo.byID, 1)
		assert.Equal(t, float64(42), got.Duration)
		assert.Equal(t, []string{"go", "databases"}, got.Tags)

		assert.NoFileExists(t, videoPath, "temp artifacts are cleaned up")
		assert.NoFileExists(t, thumbPath)
	})

	t.Run("media_failure_is_upstream_error", func(t *testing.T) {
		repo := newMemVideoRepo()
		svc := newSvc(repo, &memMedia{fail: true}, &memTracker{})

		videoPath := tempFile(t)
		thumbPath := tempFile(t)

		_, err := svc.Publish(context.Background(), PublishCmd{
			ActorID:       uuid.New(),
			Title:         "t",
			Description:   "d",
			Tags:          []string{"go"},
			VideoPath:     videoPath,
			ThumbnailPath: thumbPath,
		})
		require.Error(t, err)

		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeUpstream, ae.Code)
		assert.Empty(t, repo.byID, "no row without stored media")
		assert.NoFileExists(t, videoPath, "temp artifacts are cleaned up on failure too")
	})

	t.Run("validation", func(t *testing.T) {
		svc := newSvc(newMemVideoRepo(), &memMedia{}, &memTracker{})

		_, err := svc.Publish(context.Background(), PublishCmd{
			ActorID: uuid.New(), Title: " ", Description: "d", Tags: []string{"go"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title and description are required")

		_, err = svc.Publish(context.Background(), PublishCmd{
			ActorID: uuid.New(), Title: "t", Description: "d", Tags: []string{" "},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one tag is required")
	})
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	repo := newMemVideoRepo()
	media := &memMedia{}
	svc := newSvc(repo, media, &memTracker{})

	owner := uuid.New()
	v := &domain.Video{ID: uuid.New(), OwnerID: owner, MediaURL: "https://cdn.test/v", ThumbnailURL: "https://cdn.test/t"}
	repo.byID[v.ID] = v

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		err := svc.Delete(context.Background(), v.ID, uuid.New())
		require.Error(t, err)

		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeForbidden, ae.Code)
		assert.Contains(t, repo.byID, v.ID)
	})

	t.Run("owner_deletes_row_and_media", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), v.ID, owner))
		assert.NotContains(t, repo.byID, v.ID)
		assert.Equal(t, []string{"https://cdn.test/v", "https://cdn.test/t"}, media.removals)
	})
}

func TestService_TogglePublish(t *testing.T) {
	repo := newMemVideoRepo()
	svc := newSvc(repo, &memMedia{}, &memTracker{})

	owner := uuid.New()
	v := &domain.Video{ID: uuid.New(), OwnerID: owner, IsPublished: true}
	repo.byID[v.ID] = v

	got, err := svc.TogglePublish(context.Background(), v.ID, owner)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)

	got, err = svc.TogglePublish(context.Background(), v.ID, owner)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)

	_, err = svc.TogglePublish(context.Background(), v.ID, uuid.New())
	require.Error(t, err)
}

func TestService_Get_AnonymousServedFromCache(t *testing.T) {
	repo := newMemVideoRepo()
	cache := newMemCache()
	svc := newCachedSvc(repo, cache)

	v := &domain.Video{ID: uuid.New(), OwnerID: uuid.New(), Title: "cached", Tags: []string{"go"}}
	repo.byID[v.ID] = v

	first, err := svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.detailCalls)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.detailCalls, "second anonymous read must hit the cache")
	assert.Equal(t, first.Title, second.Title)
}

func TestService_Get_ViewerBypassesCache(t *testing.T) {
	repo := newMemVideoRepo()
	cache := newMemCache()
	svc := newCachedSvc(repo, cache)

	v := &domain.Video{ID: uuid.New(), OwnerID: uuid.New(), Tags: []string{"go"}}
	repo.byID[v.ID] = v
	viewer := uuid.New()

	_, err := svc.Get(context.Background(), v.ID, viewer)
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), v.ID, viewer)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.detailCalls)
	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 2, repo.views[v.ID])
}

func TestService_Mutations_EvictCachedDetail(t *testing.T) {
	repo := newMemVideoRepo()
	cache := newMemCache()
	svc := newCachedSvc(repo, cache)

	owner := uuid.New()
	v := &domain.Video{ID: uuid.New(), OwnerID: owner, Title: "old", Description: "d", Tags: []string{"go"}, IsPublished: true}
	repo.byID[v.ID] = v

	_, err := svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	require.Contains(t, cache.entries, cacheKeyDetail(v.ID))

	_, err = svc.Update(context.Background(), UpdateCmd{
		ActorID: owner, VideoID: v.ID,
		Title: "new", Description: "d", Tags: []string{"go"},
	})
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, cacheKeyDetail(v.ID))

	_, err = svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	require.Contains(t, cache.entries, cacheKeyDetail(v.ID))

	_, err = svc.TogglePublish(context.Background(), v.ID, owner)
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, cacheKeyDetail(v.ID))
}

func TestService_Get_NilCacheQueriesRepo(t *testing.T) {
	repo := newMemVideoRepo()
	svc := newSvc(repo, &memMedia{}, &memTracker{})

	v := &domain.Video{ID: uuid.New(), OwnerID: uuid.New()}
	repo.byID[v.ID] = v

	_, err := svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), v.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.detailCalls)
}
