// Package store persists the coach's four per-session stores as
// human-inspectable JSON files: conversation memory, user profiles,
// usage statistics, and rate-limit windows.
//
// Each store is lazily loaded once, mutated in memory, and flushed
// synchronously after each mutation. A load failure yields an empty
// store with a warning; a save failure is logged and swallowed, so the
// in-memory state stays authoritative for the rest of the process.
// There is no atomic rename and no cross-process locking — persistence
// is single-process, best-effort. In-process access is serialized with
// a mutex per store so concurrent HTTP requests cannot interleave a
// read-modify-write.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store file names within the data directory.
const (
	memoryFile  = "user_memory.json"
	profileFile = "user_profiles.json"
	usageFile   = "usage_stats.json"
	rateFile    = "rate_limits.json"
)

// Stores bundles the four repositories the orchestrator works with.
type Stores struct {
	Memory   *Memory
	Profiles *Profiles
	Usage    *Usage
	Rates    *RateWindows
}

// Open creates the repositories backed by JSON files under dataDir.
// Nothing is read from disk until first use.
func Open(dataDir string) *Stores {
	return &Stores{
		Memory:   NewMemory(filepath.Join(dataDir, memoryFile)),
		Profiles: NewProfiles(filepath.Join(dataDir, profileFile)),
		Usage:    NewUsage(filepath.Join(dataDir, usageFile)),
		Rates:    NewRateWindows(filepath.Join(dataDir, rateFile)),
	}
}

// loadJSON fills v from path. Absent or unparseable files leave v
// untouched and report false; a parse failure is logged, never raised.
func loadJSON(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("[Store] Failed to read %s: %v\n", path, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		fmt.Printf("[Store] Failed to parse %s, starting empty: %v\n", path, err)
		return false
	}
	return true
}

// saveJSON serializes v to path, overwriting. Failures are logged and
// swallowed; the caller's in-memory state remains authoritative.
func saveJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("[Store] Failed to serialize %s: %v\n", path, err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		fmt.Printf("[Store] Failed to create dir for %s: %v\n", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		fmt.Printf("[Store] Failed to write %s: %v\n", path, err)
	}
}
