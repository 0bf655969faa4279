package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// exerciseTable maps muscle groups to suggested exercises.
var exerciseTable = map[string][]string{
	"chest":     {"Push-ups", "Bench Press", "Dumbbell Flyes"},
	"back":      {"Pull-ups", "Lat Pulldown", "Seated Rows"},
	"legs":      {"Squats", "Lunges", "Leg Press", "Glute Bridges"},
	"shoulders": {"Overhead Press", "Lateral Raises"},
	"arms":      {"Bicep Curls", "Tricep Dips", "Hammer Curls"},
	"core":      {"Plank", "Bicycle Crunches", "Leg Raises"},
}

// ExerciseTool suggests exercises for a muscle group.
type ExerciseTool struct{}

type exerciseInput struct {
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
}

// Name returns the tool name
func (t *ExerciseTool) Name() string { return "suggest_exercises" }

// Description returns the tool description for the model
func (t *ExerciseTool) Description() string {
	return "Suggest exercises ONLY when the user explicitly asks for exercises or workouts for a muscle group."
}

// Schema returns the input schema
func (t *ExerciseTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"muscle_group": {"type": "string", "description": "Target muscle group, e.g. chest, back, legs, shoulders, arms, core"},
			"equipment": {"type": "string", "description": "Equipment the user has available"}
		},
		"required": ["muscle_group", "equipment"]
	}`)
}

// Execute looks up the muscle group in the static table. Unknown
// groups fall back to a generic bodyweight suggestion.
func (t *ExerciseTool) Execute(_ context.Context, input json.RawMessage) (*Result, error) {
	var in exerciseInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if in.MuscleGroup == "" {
		return &Result{Content: "muscle_group is required", IsError: true}, nil
	}

	chosen, ok := exerciseTable[strings.ToLower(in.MuscleGroup)]
	if !ok {
		chosen = []string{"Bodyweight exercise"}
	}
	return &Result{
		Content: fmt.Sprintf("Suggested %s exercises using %s: %s",
			in.MuscleGroup, in.Equipment, strings.Join(chosen, ", ")),
	}, nil
}
