package reaper

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/meeting-service/internal/config"
)

const (
	metricSweep       = "reaper_sweep"
	metricSweepFailed = "reaper_sweep_failed"
	metricPurged      = "reaper_sessions_purged"
)

var (
	ErrInvalidInterval = errors.New("reaper interval must be positive")
	ErrMemoryBackend   = errors.New("memory sessions only live in the serving process")
)

// Reaper periodically drops sessions whose TTL has passed.
type Reaper struct {
	store    SessionPurger
	interval time.Duration
	now      func() time.Time
}

// Validate rejects configurations the reaper cannot serve.
func Validate(cfg *config.Config) error {
	if cfg.Reaper.Interval <= 0 {
		return fmt.Errorf("%w, got %s", ErrInvalidInterval, cfg.Reaper.Interval)
	}
	if cfg.Sessions.Backend == config.SessionBackendMemory {
		return ErrMemoryBackend
	}
	return nil
}

func New(store SessionPurger, interval time.Duration) (*Reaper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidInterval, interval)
	}

	return &Reaper{
		store:    store,
		interval: interval,
		now:      time.Now,
	}, nil
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (r *Reaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.Sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Reaper) Sweep(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Sweep")

	metrics, _ := ctx.Value(config.KeyMetrics).(Metrics)
	increment := func(name string) {
		if metrics != nil {
			metrics.Increment(name)
		}
	}

	increment(metricSweep)

	purged, err := r.store.PurgeExpired(ctx, r.now())
	if err != nil {
		increment(metricSweepFailed)
		logger.Error(fmt.Sprintf("failed to purge expired sessions: %v", err))
		return
	}

	for i := 0; i < purged; i++ {
		increment(metricPurged)
	}

	if purged > 0 {
		logger.Info(fmt.Sprintf("purged %d expired sessions", purged))
	}
}
