// Package maintenance runs periodic housekeeping over the persisted
// stores. Admission and chat behavior never depend on it; it only
// bounds file growth.
package maintenance

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/liftloop/coach/internal/store"
)

// Sweeper prunes rate windows for sessions that have gone idle beyond
// the rate-limit window.
type Sweeper struct {
	cron   *cron.Cron
	rates  *store.RateWindows
	window time.Duration
}

// NewSweeper creates a sweeper over the rate-window store.
func NewSweeper(rates *store.RateWindows, window time.Duration) *Sweeper {
	return &Sweeper{
		cron:   cron.New(),
		rates:  rates,
		window: window,
	}
}

// Start schedules the sweep on the given cron spec (e.g. "@every 5m")
// and starts the scheduler.
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return fmt.Errorf("invalid sweeper schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler, waiting for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	if n := s.rates.PruneIdle(s.window, time.Now()); n > 0 {
		fmt.Printf("[Sweeper] Pruned %d idle rate window(s)\n", n)
	}
}
