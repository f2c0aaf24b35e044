package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidstream/vidstream/internal/application/catalog"
	"github.com/vidstream/vidstream/internal/application/channel"
	"github.com/vidstream/vidstream/internal/application/engagement"
	"github.com/vidstream/vidstream/internal/application/history"
	"github.com/vidstream/vidstream/internal/application/playlist"
	"github.com/vidstream/vidstream/internal/application/tweet"
	"github.com/vidstream/vidstream/internal/config"
	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/logger"
	"github.com/vidstream/vidstream/internal/transport/http/handlers"
	authmw "github.com/vidstream/vidstream/internal/transport/http/middleware"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

// stubVideoRepo serves an empty catalog; routing tests only care about
// status codes and envelope shape.
type stubVideoRepo struct{}

func (stubVideoRepo) Insert(ctx context.Context, v *domain.Video) error { return nil }
func (stubVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	return nil, domain.ErrNotFound("video not found")
}
func (stubVideoRepo) GetDetail(ctx context.Context, id, viewerID uuid.UUID) (*domain.VideoDetail, error) {
	return nil, domain.ErrNotFound("video not found")
}
func (stubVideoRepo) Update(ctx context.Context, v *domain.Video) error       { return nil }
func (stubVideoRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (stubVideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error  { return nil }
func (stubVideoRepo) List(ctx context.Context, q catalog.ListQuery) ([]domain.VideoWithOwner, int, error) {
	return nil, 0, nil
}

type stubTracker struct{}

func (stubTracker) RecordView(ctx context.Context, userID, videoID uuid.UUID) error { return nil }
func (stubTracker) UpdatePreferences(ctx context.Context, userID uuid.UUID, tags []string) error {
	return nil
}

type stubMedia struct{}

func (stubMedia) Upload(ctx context.Context, localPath string, kind catalog.MediaKind) (*catalog.MediaAsset, error) {
	return &catalog.MediaAsset{URL: "https://cdn.test/x"}, nil
}
func (stubMedia) Remove(ctx context.Context, url string, kind catalog.MediaKind) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTIssuer: "vidstream",
		RLEnabled: false,
	}

	clock := fakeClock{}
	catalogSvc := catalog.New(stubVideoRepo{}, stubMedia{}, stubTracker{}, catalog.NoopPublisher{}, nil, 0, clock)
	h := Handlers{
		Videos:     handlers.NewVideosHandler(catalogSvc),
		Engagement: handlers.NewEngagementHandler(&engagement.Service{}),
		History:    handlers.NewHistoryHandler(&history.Service{}),
		Playlists:  handlers.NewPlaylistsHandler(&playlist.Service{}),
		Tweets:     handlers.NewTweetsHandler(&tweet.Service{}),
		Channel:    handlers.NewChannelHandler(&channel.Service{}),
		Health:     handlers.NewHealthHandler(),
	}
	return New(h, authmw.NewAuth(cfg.JWTSecret, cfg.JWTIssuer), cfg)
}

func TestRouter_Healthz(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouter_PublicListWithoutToken(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		StatusCode int  `json:"statusCode"`
		Success    bool `json:"success"`
		Data       struct {
			Videos      []json.RawMessage `json:"videos"`
			Page        int               `json:"page"`
			Limit       int               `json:"limit"`
			TotalVideos int               `json:"totalVideos"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusOK, env.StatusCode)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &keys))
	require.Contains(t, keys, "data")
	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(keys["data"], &page))
	for _, k := range []string{"videos", "page", "limit", "totalVideos"} {
		assert.Contains(t, page, k)
	}
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/videos"},
		{http.MethodGet, "/api/v1/videos/mine"},
		{http.MethodPost, "/api/v1/likes/video/" + uuid.NewString()},
		{http.MethodGet, "/api/v1/likes/videos"},
		{http.MethodPost, "/api/v1/subscriptions/" + uuid.NewString()},
		{http.MethodGet, "/api/v1/history"},
		{http.MethodDelete, "/api/v1/history"},
		{http.MethodPost, "/api/v1/playlists"},
		{http.MethodGet, "/api/v1/channels/stats"},
		{http.MethodPost, "/api/v1/tweets"},
		{http.MethodPatch, "/api/v1/tweets/" + uuid.NewString()},
	}

	for _, tc := range protected {
		t.Run(tc.method+"_"+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_InvalidPathParam(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/videos/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
