package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/vidstream/vidstream/internal/application/catalog"
	"github.com/vidstream/vidstream/internal/application/channel"
	"github.com/vidstream/vidstream/internal/application/engagement"
	"github.com/vidstream/vidstream/internal/application/history"
	"github.com/vidstream/vidstream/internal/application/playlist"
	"github.com/vidstream/vidstream/internal/application/tweet"
	"github.com/vidstream/vidstream/internal/config"
	rediscache "github.com/vidstream/vidstream/internal/infrastructure/caching/redis"
	"github.com/vidstream/vidstream/internal/infrastructure/db/postgres"
	"github.com/vidstream/vidstream/internal/infrastructure/media"
	rabbitpub "github.com/vidstream/vidstream/internal/infrastructure/messaging/rabbitmq"
	"github.com/vidstream/vidstream/internal/logger"
	"github.com/vidstream/vidstream/internal/transport/http/handlers"
	authmw "github.com/vidstream/vidstream/internal/transport/http/middleware"
	"github.com/vidstream/vidstream/internal/transport/http/router"
)

// sysClock feeds system time to every service through the Clock port.
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all wired dependencies.
type App struct {
	Config *config.Config
	Server *http.Server

	Publisher *rabbitpub.Publisher
	Cache     *rediscache.Client
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	app, err := NewApp(cfg, pool)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app wiring failed")
	}
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
		if app.Cache != nil {
			_ = app.Cache.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, pool *pgxpool.Pool) (*App, error) {
	clock := sysClock{}

	// 1) Infrastructure
	videoRepo := postgres.NewVideoRepo(pool)
	ledgerRepo := postgres.NewEngagementRepo(pool)
	historyRepo := postgres.NewHistoryRepo(pool)
	prefRepo := postgres.NewPreferenceRepo(pool)
	playlistRepo := postgres.NewPlaylistRepo(pool)
	tweetRepo := postgres.NewTweetRepo(pool)
	statsRepo := postgres.NewStatsRepo(pool)

	cache, err := rediscache.New(cfg.RedisURL)
	if err != nil {
		zlog.Warn().Err(err).Msg("redis unavailable: channel stats cache disabled")
		cache = nil
	}

	var rabbit *rabbitpub.Publisher
	var pub catalog.EventPublisher = catalog.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return nil, err
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	var store catalog.MediaStore = media.Disabled{}
	if cfg.S3Endpoint != "" {
		s3store, err := media.NewS3Store(cfg, zlog.Logger)
		if err != nil {
			return nil, err
		}
		store = s3store
	} else {
		zlog.Warn().Msg("S3_ENDPOINT empty: video publishing disabled")
	}

	// 2) Application
	var detailCache catalog.Cache
	if cache != nil {
		detailCache = cache
	}
	historySvc := history.New(historyRepo, prefRepo, clock)
	catalogSvc := catalog.New(videoRepo, store, historySvc, pub, detailCache, cfg.CacheTTLDetails, clock)
	engagementSvc := engagement.New(ledgerRepo, clock)
	playlistSvc := playlist.New(playlistRepo, clock)
	tweetSvc := tweet.New(tweetRepo, clock)

	var statsCache channel.Cache
	if cache != nil {
		statsCache = cache
	}
	channelSvc := channel.New(statsRepo, statsCache, cfg.CacheTTLStats)

	// 3) Transport
	h := router.Handlers{
		Videos:     handlers.NewVideosHandler(catalogSvc),
		Engagement: handlers.NewEngagementHandler(engagementSvc),
		History:    handlers.NewHistoryHandler(historySvc),
		Playlists:  handlers.NewPlaylistsHandler(playlistSvc),
		Tweets:     handlers.NewTweetsHandler(tweetSvc),
		Channel:    handlers.NewChannelHandler(channelSvc),
		Health:     handlers.NewHealthHandler(),
	}
	auth := authmw.NewAuth(cfg.JWTSecret, cfg.JWTIssuer)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, auth, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		Publisher: rabbit,
		Cache:     cache,
	}, nil
}
