package store

import (
	"sync"

	"github.com/liftloop/coach/internal/history"
)

// Memory persists per-session conversation turns. Each session's
// history is append-only and truncated to the most recent
// history.MaxTurns entries on write.
type Memory struct {
	path   string
	mu     sync.Mutex
	data   map[string][]history.Turn
	loaded bool
}

// NewMemory creates a memory store backed by the given file.
func NewMemory(path string) *Memory {
	return &Memory{path: path}
}

func (m *Memory) load() {
	if m.loaded {
		return
	}
	m.data = make(map[string][]history.Turn)
	loadJSON(m.path, &m.data)
	m.loaded = true
}

// Turns returns a copy of the session's conversation history, oldest
// first. A session with no history yields an empty slice.
func (m *Memory) Turns(sessionID string) []history.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.load()
	turns := m.data[sessionID]
	out := make([]history.Turn, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to the session's history, truncates to the
// retention cap, and flushes to disk.
func (m *Memory) Append(sessionID string, turns ...history.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.load()
	m.data[sessionID] = history.Truncate(append(m.data[sessionID], turns...), history.MaxTurns)
	saveJSON(m.path, m.data)
}

// Reset discards the session's history.
func (m *Memory) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.load()
	delete(m.data, sessionID)
	saveJSON(m.path, m.data)
}

// Sessions returns the IDs of all sessions with recorded history.
func (m *Memory) Sessions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.load()
	out := make([]string, 0, len(m.data))
	for id := range m.data {
		out = append(out, id)
	}
	return out
}
