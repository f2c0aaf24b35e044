package catalog

import (
	"os"
	"time"

	"github.com/vidstream/vidstream/internal/logger"
)

type Service struct {
	repo      VideoRepo
	media     MediaStore
	tracker   ViewTracker
	pub       EventPublisher
	cache     Cache
	detailTTL time.Duration
	clock     Clock
}

func New(repo VideoRepo, media MediaStore, tracker ViewTracker, pub EventPublisher, cache Cache, detailTTL time.Duration, clock Clock) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	if detailTTL == 0 {
		detailTTL = 2 * time.Minute
	}
	return &Service{
		repo:      repo,
		media:     media,
		tracker:   tracker,
		pub:       pub,
		cache:     cache,
		detailTTL: detailTTL,
		clock:     clock,
	}
}

// removeTempFiles deletes leftover local upload artifacts. Runs on every exit
// path of a multi-step upload, success included.
func removeTempFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn().Err(err).Str("path", p).Msg("temp file cleanup failed")
		}
	}
}
