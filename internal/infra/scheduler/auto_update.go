package scheduler

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	refdatauc "github.com/berezovskyivalerii/refdatasvc/internal/usecase/refdata"
)

// AutoUpdater re-runs the reference-data sync on a fixed interval.
// Overlapping runs are skipped, not queued.
type AutoUpdater struct {
	Sync     *refdatauc.Orchestrator
	Interval time.Duration
	Logger   *slog.Logger

	running int32
}

func (a *AutoUpdater) log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

func (a *AutoUpdater) Start(ctx context.Context) {
	interval := a.Interval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	go func() {
		// spread restarts of multiple instances apart
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(5+rand.Intn(20)) * time.Second):
		}

		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if !atomic.CompareAndSwapInt32(&a.running, 0, 1) {
					continue
				}
				func() {
					defer atomic.StoreInt32(&a.running, 0)
					if sum, err := a.Sync.Run(ctx); err != nil {
						a.log().Warn("auto-update failed", "err", err)
					} else {
						a.log().Info("auto-update done",
							"fetched", sum.Fetched, "added", sum.Added, "updated", sum.Updated)
					}
				}()
			}
		}
	}()
}
