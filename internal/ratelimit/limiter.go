// Package ratelimit implements per-session sliding-window request
// admission control over the persisted rate-window store.
package ratelimit

import (
	"time"

	"github.com/liftloop/coach/internal/store"
)

// Defaults for the admission window.
const (
	DefaultMaxRequests = 20
	DefaultWindow      = 60 * time.Second
)

// Limiter admits or rejects requests per session. This is a fixed
// sliding window, not a token bucket: bursts straddling a window
// boundary can momentarily admit close to twice MaxRequests. Good
// enough for abuse deterrence, not a hard guarantee.
type Limiter struct {
	windows     *store.RateWindows
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// New creates a limiter over the given store. maxRequests and window
// fall back to the defaults when zero.
func New(windows *store.RateWindows, maxRequests int, window time.Duration) *Limiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		windows:     windows,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (l *Limiter) SetClock(now func() time.Time) {
	l.now = now
}

// Window returns the configured window duration.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Check prunes the session's timestamps to the trailing window and
// decides admission. On rejection it reports how long the caller
// should wait (whole seconds, floored) and records nothing. On
// admission it appends the current timestamp and persists.
func (l *Limiter) Check(sessionID string) (allowed bool, wait time.Duration) {
	now := float64(l.now().UnixNano()) / 1e9
	cutoff := now - l.window.Seconds()

	pruned := make([]float64, 0, l.maxRequests)
	for _, ts := range l.windows.Get(sessionID) {
		if ts >= cutoff {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) >= l.maxRequests {
		// pruned is non-empty here because maxRequests > 0, so the
		// oldest retained timestamp always exists.
		waitSecs := int(l.window.Seconds() - (now - pruned[0]))
		if waitSecs < 1 {
			waitSecs = 1
		}
		return false, time.Duration(waitSecs) * time.Second
	}

	pruned = append(pruned, now)
	l.windows.Put(sessionID, pruned)
	return true, 0
}
