package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// setsRepsTable maps goal × experience level to a sets-by-reps scheme.
var setsRepsTable = map[string]map[string]string{
	"muscle gain": {
		"beginner":     "3x10",
		"intermediate": "4x10",
		"advanced":     "5x8",
	},
	"strength": {
		"beginner":     "3x5",
		"intermediate": "4x5",
		"advanced":     "5x3",
	},
	"fat loss": {
		"beginner":     "2x12",
		"intermediate": "3x12",
		"advanced":     "4x15",
	},
	"general fitness": {
		"beginner":     "2x10",
		"intermediate": "3x10",
		"advanced":     "4x10",
	},
}

const (
	fallbackGoal   = "general fitness"
	fallbackScheme = "3x10"
)

// SetsRepsTool recommends training volume for a goal and experience level.
type SetsRepsTool struct{}

type setsRepsInput struct {
	Goal            string `json:"goal"`
	ExperienceLevel string `json:"experience_level"`
}

// Name returns the tool name
func (t *SetsRepsTool) Name() string { return "adjust_sets_reps" }

// Description returns the tool description for the model
func (t *SetsRepsTool) Description() string {
	return "Calculate sets and reps ONLY when the user asks about training volume, reps, or intensity."
}

// Schema returns the input schema
func (t *SetsRepsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"goal": {"type": "string", "description": "Training goal: muscle gain, strength, fat loss, or general fitness"},
			"experience_level": {"type": "string", "description": "User experience: beginner, intermediate, or advanced"}
		},
		"required": ["goal", "experience_level"]
	}`)
}

// Execute resolves the scheme from the static grid. Unknown goals map
// to general fitness; unknown levels map to the 3x10 default.
func (t *SetsRepsTool) Execute(_ context.Context, input json.RawMessage) (*Result, error) {
	var in setsRepsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	byLevel, ok := setsRepsTable[strings.ToLower(in.Goal)]
	if !ok {
		byLevel = setsRepsTable[fallbackGoal]
	}
	scheme, ok := byLevel[strings.ToLower(in.ExperienceLevel)]
	if !ok {
		scheme = fallbackScheme
	}
	return &Result{Content: scheme}, nil
}
