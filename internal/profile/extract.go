package profile

import (
	"strings"
	"time"

	"github.com/liftloop/coach/internal/history"
)

// goalKeywords maps trigger keywords to canonical goals. Every keyword
// found in the scan buffer whose goal is not yet recorded is unioned in.
var goalKeywords = []struct {
	Keyword string
	Goal    string
}{
	{"muscle", GoalMuscleGain},
	{"bulk", GoalMuscleGain},
	{"bigger", GoalMuscleGain},
	{"mass", GoalMuscleGain},
	{"strength", GoalStrength},
	{"stronger", GoalStrength},
	{"powerlifting", GoalStrength},
	{"fat loss", GoalFatLoss},
	{"lose weight", GoalFatLoss},
	{"weight loss", GoalFatLoss},
	{"lose fat", GoalFatLoss},
	{"lean", GoalFatLoss},
	{"tone", GoalGeneralFitness},
	{"general fitness", GoalGeneralFitness},
	{"stay fit", GoalGeneralFitness},
	{"get in shape", GoalGeneralFitness},
}

// experienceKeywords is scanned in table order; the FIRST keyword found
// in the buffer wins and scanning stops. Contradictory mentions in the
// same window therefore resolve to whichever keyword appears first in
// this table, not first in the text. Intentional simplification.
var experienceKeywords = []struct {
	Keyword string
	Level   string
}{
	{"beginner", ExperienceBeginner},
	{"never worked out", ExperienceBeginner},
	{"just starting", ExperienceBeginner},
	{"new to", ExperienceBeginner},
	{"intermediate", ExperienceIntermediate},
	{"some experience", ExperienceIntermediate},
	{"a few years", ExperienceIntermediate},
	{"advanced", ExperienceAdvanced},
	{"experienced", ExperienceAdvanced},
	{"competitive", ExperienceAdvanced},
	{"many years", ExperienceAdvanced},
}

// equipmentKeywords are recorded verbatim when mentioned.
var equipmentKeywords = []string{
	"dumbbells",
	"barbell",
	"kettlebell",
	"bands",
	"pull-up bar",
	"bench",
	"machine",
	"treadmill",
	"gym",
	"home",
	"bodyweight",
}

// limitationKeywords signal pain, injury, or another constraint worth
// carrying into every future prompt.
var limitationKeywords = []string{
	"pain",
	"injury",
	"injured",
	"hurt",
	"sore",
	"surgery",
	"bad knee",
	"bad back",
	"bad shoulder",
	"asthma",
	"pregnant",
}

// Extractor scans recent conversation turns for profile signals.
type Extractor struct {
	// ScanTurns is how many of the most recent turns are considered.
	ScanTurns int
	// MaxLimitations caps the recorded limitation sentences; when
	// exceeded the oldest entries are dropped.
	MaxLimitations int
}

// NewExtractor returns an extractor with the default scan depth (10
// turns) and limitation cap (25).
func NewExtractor() *Extractor {
	return &Extractor{ScanTurns: 10, MaxLimitations: 25}
}

// Extract scans the most recent turns and merges any findings into p,
// stamping LastUpdated when something changed. It reports whether the
// profile was modified.
func (e *Extractor) Extract(p *Profile, turns []history.Turn, now time.Time) bool {
	recent := turns
	if e.ScanTurns > 0 && len(recent) > e.ScanTurns {
		recent = recent[len(recent)-e.ScanTurns:]
	}

	// One lower-cased buffer of all human-authored text in the window.
	var human []string
	var buf strings.Builder
	for _, t := range recent {
		if t.Role != history.RoleHuman {
			continue
		}
		human = append(human, t.Text)
		buf.WriteString(strings.ToLower(t.Text))
		buf.WriteString(" ")
	}
	scan := buf.String()
	if scan == "" {
		return false
	}

	changed := false

	for _, gk := range goalKeywords {
		if strings.Contains(scan, gk.Keyword) && !contains(p.Goals, gk.Goal) {
			p.Goals = append(p.Goals, gk.Goal)
			changed = true
		}
	}

	for _, ek := range experienceKeywords {
		if strings.Contains(scan, ek.Keyword) {
			if p.ExperienceLevel != ek.Level {
				p.ExperienceLevel = ek.Level
				changed = true
			}
			break
		}
	}

	for _, eq := range equipmentKeywords {
		if strings.Contains(scan, eq) && !contains(p.Equipment, eq) {
			p.Equipment = append(p.Equipment, eq)
			changed = true
		}
	}

	for _, lk := range limitationKeywords {
		if !strings.Contains(scan, lk) {
			continue
		}
		// Record the first human message mentioning this keyword,
		// verbatim, then move on to the next keyword.
		for _, msg := range human {
			if !strings.Contains(strings.ToLower(msg), lk) {
				continue
			}
			sentence := strings.TrimSpace(msg)
			if !contains(p.Limitations, sentence) {
				p.Limitations = append(p.Limitations, sentence)
				changed = true
			}
			break
		}
	}

	if e.MaxLimitations > 0 && len(p.Limitations) > e.MaxLimitations {
		p.Limitations = p.Limitations[len(p.Limitations)-e.MaxLimitations:]
		changed = true
	}

	if changed {
		p.LastUpdated = now
	}
	return changed
}
