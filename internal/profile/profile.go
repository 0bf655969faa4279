// Package profile derives a structured user profile from recent
// conversation turns by keyword matching and merges it into the
// persisted per-session profile.
package profile

import "time"

// Experience levels. ExperienceUnknown is the zero state before any
// mention is detected.
const (
	ExperienceUnknown      = "unknown"
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// Canonical training goals. These match the first axis of the
// sets/reps tool's table.
const (
	GoalMuscleGain     = "muscle gain"
	GoalStrength       = "strength"
	GoalFatLoss        = "fat loss"
	GoalGeneralFitness = "general fitness"
)

// Profile is the derived per-session user profile. Goals and equipment
// grow by union, experience level is overwritten, limitations keep
// insertion order with duplicates suppressed. It never shrinks except
// through an out-of-band reset.
type Profile struct {
	Goals           []string  `json:"goals"`
	ExperienceLevel string    `json:"experience_level"`
	Equipment       []string  `json:"equipment"`
	Limitations     []string  `json:"limitations"`
	LastUpdated     time.Time `json:"last_updated"`
}

// New returns an empty profile with defaults.
func New() Profile {
	return Profile{
		Goals:           []string{},
		ExperienceLevel: ExperienceUnknown,
		Equipment:       []string{},
		Limitations:     []string{},
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
