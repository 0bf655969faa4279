package store

import (
	"sync"
	"time"
)

// UsageRecord tracks request volume for one session. TotalRequests is
// monotonically incrementing and is never rolled back, even when the
// request later times out.
type UsageRecord struct {
	TotalRequests int       `json:"total_requests"`
	FirstSeen     time.Time `json:"first_seen"`
	LastSeen      time.Time `json:"last_seen"`
}

// Usage persists per-session usage statistics.
type Usage struct {
	path   string
	mu     sync.Mutex
	data   map[string]UsageRecord
	loaded bool
}

// NewUsage creates a usage store backed by the given file.
func NewUsage(path string) *Usage {
	return &Usage{path: path}
}

func (u *Usage) load() {
	if u.loaded {
		return
	}
	u.data = make(map[string]UsageRecord)
	loadJSON(u.path, &u.data)
	u.loaded = true
}

// Record increments the session's request counter, stamps the
// timestamps, flushes, and returns the updated record.
func (u *Usage) Record(sessionID string, now time.Time) UsageRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.load()
	rec, ok := u.data[sessionID]
	if !ok {
		rec.FirstSeen = now
	}
	rec.TotalRequests++
	rec.LastSeen = now
	u.data[sessionID] = rec
	saveJSON(u.path, u.data)
	return rec
}

// Get returns the session's usage record, if any.
func (u *Usage) Get(sessionID string) (UsageRecord, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.load()
	rec, ok := u.data[sessionID]
	return rec, ok
}

// All returns a copy of every session's usage record.
func (u *Usage) All() map[string]UsageRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.load()
	out := make(map[string]UsageRecord, len(u.data))
	for id, rec := range u.data {
		out[id] = rec
	}
	return out
}
