package store

import (
	"sync"
	"time"
)

// RateWindows persists per-session request timestamps (epoch seconds)
// for the sliding-window rate limiter.
type RateWindows struct {
	path   string
	mu     sync.Mutex
	data   map[string][]float64
	loaded bool
}

// NewRateWindows creates a rate-window store backed by the given file.
func NewRateWindows(path string) *RateWindows {
	return &RateWindows{path: path}
}

func (r *RateWindows) load() {
	if r.loaded {
		return
	}
	r.data = make(map[string][]float64)
	loadJSON(r.path, &r.data)
	r.loaded = true
}

// Get returns a copy of the session's recorded timestamps.
func (r *RateWindows) Get(sessionID string) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()
	ts := r.data[sessionID]
	out := make([]float64, len(ts))
	copy(out, ts)
	return out
}

// Put replaces the session's timestamps and flushes.
func (r *RateWindows) Put(sessionID string, timestamps []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()
	r.data[sessionID] = timestamps
	saveJSON(r.path, r.data)
}

// PruneIdle drops sessions whose every timestamp is older than window,
// bounding file growth for sessions that went quiet. Returns the
// number of sessions removed. Run periodically by the sweeper;
// admission decisions never depend on it.
func (r *RateWindows) PruneIdle(window time.Duration, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()
	cutoff := float64(now.Add(-window).UnixNano()) / 1e9
	removed := 0
	for id, ts := range r.data {
		stale := true
		for _, t := range ts {
			if t >= cutoff {
				stale = false
				break
			}
		}
		if stale {
			delete(r.data, id)
			removed++
		}
	}
	if removed > 0 {
		saveJSON(r.path, r.data)
	}
	return removed
}
