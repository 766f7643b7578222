package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/index"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
	"github.com/MrSnakeDoc/songjournal/internal/sources/moods"
)

// MoodReloader handles periodic reloading of the preset moods file
type MoodReloader struct {
	loader        *moods.Loader
	catalog       *index.MoodCatalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewMoodReloader creates a new mood reloader
func NewMoodReloader(
	moodsFile string,
	catalog *index.MoodCatalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *MoodReloader {
	return &MoodReloader{
		loader:        moods.NewLoader(moodsFile),
		catalog:       catalog,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the file once, then keeps reloading it in the background.
// A failed initial load is logged and the built-in moods stay in place.
func (mr *MoodReloader) Start(ctx context.Context) error {
	if mr.interval <= 0 {
		return fmt.Errorf("mood reload interval must be > 0, got %v", mr.interval)
	}

	if err := mr.Reload(ctx); err != nil {
		mr.logger.Warn("initial mood reload failed, keeping current moods",
			logger.String("file", mr.loader.Path()),
			logger.Error(err))
	}

	ticker := time.NewTicker(mr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := mr.Reload(ctx); err != nil {
					mr.logger.Error("failed to reload moods",
						logger.Error(err))
				}
			case <-mr.manualTrigger:
				mr.logger.Info("manual mood reload triggered")
				if err := mr.Reload(ctx); err != nil {
					mr.logger.Error("failed to reload moods",
						logger.Error(err))
				}
			case <-mr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (mr *MoodReloader) Stop() {
	close(mr.stopCh)
}

// Reload reads the moods file and swaps the catalog. On error the catalog is untouched.
func (mr *MoodReloader) Reload(_ context.Context) error {
	loaded, err := mr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load moods: %w", err)
	}

	mr.catalog.Update(loaded, mr.loader.Path())

	mr.logger.Info("loaded moods",
		logger.String("file", mr.loader.Path()),
		logger.Int("count", len(loaded)))

	return nil
}
