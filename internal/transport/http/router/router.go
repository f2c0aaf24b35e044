package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/vidstream/vidstream/internal/config"
	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/transport/http/handlers"
	authmw "github.com/vidstream/vidstream/internal/transport/http/middleware"
)

type Handlers struct {
	Videos     *handlers.VideosHandler
	Engagement *handlers.EngagementHandler
	History    *handlers.HistoryHandler
	Playlists  *handlers.PlaylistsHandler
	Tweets     *handlers.TweetsHandler
	Channel    *handlers.ChannelHandler
	Health     *handlers.HealthHandler
}

func New(h Handlers, auth *authmw.AuthMiddleware, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(authmw.RequestID)
	r.Use(authmw.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(authmw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", h.Health.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/videos", func(r chi.Router) {
			r.With(auth.Optional).Get("/", h.Videos.List)
			r.With(auth.Optional).Get("/{videoId}", h.Videos.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.Require)
				r.Get("/mine", h.Videos.ListMine)
				r.Post("/", h.Videos.Publish)
				r.Patch("/{videoId}", h.Videos.Update)
				r.Delete("/{videoId}", h.Videos.Delete)
				r.Post("/{videoId}/toggle-publish", h.Videos.TogglePublish)
			})
		})

		r.Route("/likes", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.Require)
				r.Post("/video/{targetId}", h.Engagement.ToggleLike(domain.LikeVideo))
				r.Post("/tweet/{targetId}", h.Engagement.ToggleLike(domain.LikeTweet))
				r.Post("/comment/{targetId}", h.Engagement.ToggleLike(domain.LikeComment))
				r.Get("/videos", h.Engagement.LikedVideos)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.Optional)
				r.Get("/video/{targetId}", h.Engagement.LikeStatus(domain.LikeVideo))
				r.Get("/tweet/{targetId}", h.Engagement.LikeStatus(domain.LikeTweet))
				r.Get("/comment/{targetId}", h.Engagement.LikeStatus(domain.LikeComment))
			})
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.With(auth.Require).Post("/{channelId}", h.Engagement.ToggleSubscription)
			r.With(auth.Optional).Get("/{channelId}", h.Engagement.SubscriptionStatus)
			r.With(auth.Require).Get("/", h.Engagement.SubscribedChannels)
		})

		r.Route("/channels", func(r chi.Router) {
			r.With(auth.Optional).Get("/{channelId}/subscribers", h.Engagement.ChannelSubscribers)
			r.With(auth.Require).Get("/stats", h.Channel.Stats)
		})

		r.Route("/history", func(r chi.Router) {
			r.Use(auth.Require)
			r.Get("/", h.History.List)
			r.Delete("/{videoId}", h.History.Remove)
			r.Delete("/", h.History.Clear)
			r.Get("/preferences", h.History.Preferences)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.With(auth.Optional).Get("/{playlistId}", h.Playlists.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.Require)
				r.Post("/", h.Playlists.Create)
				r.Get("/", h.Playlists.ListMine)
				r.Patch("/{playlistId}", h.Playlists.Update)
				r.Delete("/{playlistId}", h.Playlists.Delete)
				r.Post("/{playlistId}/videos/{videoId}", h.Playlists.AddVideo)
				r.Delete("/{playlistId}/videos/{videoId}", h.Playlists.RemoveVideo)
			})
		})

		r.Route("/tweets", func(r chi.Router) {
			r.With(auth.Optional).Get("/user/{userId}", h.Tweets.ListByOwner)

			r.Group(func(r chi.Router) {
				r.Use(auth.Require)
				r.Post("/", h.Tweets.Create)
				r.Patch("/{tweetId}", h.Tweets.Update)
				r.Delete("/{tweetId}", h.Tweets.Delete)
			})
		})
	})

	return r
}
