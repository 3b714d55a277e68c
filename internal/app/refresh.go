package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bethropolis/ignore-export/internal/utils"
)

// Refresher serializes collection passes. A pass runs to completion
// before the next may start; a refresh requested while one is in flight
// is dropped rather than queued, since the next tick fires anyway.
type Refresher struct {
	run      func() error
	interval time.Duration
	log      utils.Logger
	inFlight atomic.Bool
}

// NewRefresher creates a Refresher driving run every interval.
func NewRefresher(run func() error, interval time.Duration, log utils.Logger) *Refresher {
	if log == nil {
		log = utils.NoopLogger{}
	}
	return &Refresher{
		run:      run,
		interval: interval,
		log:      log,
	}
}

// Refresh runs one pass unless another is already in flight. Reports
// whether the pass ran.
func (r *Refresher) Refresh() bool {
	if !r.inFlight.CompareAndSwap(false, true) {
		r.log.Debug("refresh already in flight, dropping request")
		return false
	}
	defer r.inFlight.Store(false)

	if err := r.run(); err != nil {
		r.log.Error("refresh failed: %v", err)
	}
	return true
}

// Run performs an immediate pass, then refreshes on every tick until ctx
// is cancelled.
func (r *Refresher) Run(ctx context.Context) error {
	r.Refresh()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Refresh()
		}
	}
}
