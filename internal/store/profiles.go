package store

import (
	"sync"

	"github.com/liftloop/coach/internal/profile"
)

// Profiles persists per-session user profiles.
type Profiles struct {
	path   string
	mu     sync.Mutex
	data   map[string]profile.Profile
	loaded bool
}

// NewProfiles creates a profile store backed by the given file.
func NewProfiles(path string) *Profiles {
	return &Profiles{path: path}
}

func (p *Profiles) load() {
	if p.loaded {
		return
	}
	p.data = make(map[string]profile.Profile)
	loadJSON(p.path, &p.data)
	p.loaded = true
}

// Get returns the session's profile, creating an empty one on first
// access for the session.
func (p *Profiles) Get(sessionID string) profile.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	prof, ok := p.data[sessionID]
	if !ok {
		return profile.New()
	}
	return prof
}

// Put stores the session's profile and flushes the whole store.
// This re-serializes every session's profile per call — O(all
// sessions) — which is acceptable at the scale this runs at.
func (p *Profiles) Put(sessionID string, prof profile.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	p.data[sessionID] = prof
	saveJSON(p.path, p.data)
}

// Reset discards the session's profile (out-of-band reset; profiles
// never shrink otherwise).
func (p *Profiles) Reset(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	delete(p.data, sessionID)
	saveJSON(p.path, p.data)
}
