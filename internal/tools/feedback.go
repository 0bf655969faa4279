package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// FeedbackTool acknowledges progress updates, pain reports, and
// preferences so the model records them explicitly.
type FeedbackTool struct{}

type feedbackInput struct {
	Feedback string `json:"feedback"`
}

// Name returns the tool name
func (t *FeedbackTool) Name() string { return "process_feedback" }

// Description returns the tool description for the model
func (t *FeedbackTool) Description() string {
	return "Process feedback ONLY when the user gives progress updates, pain, or preferences."
}

// Schema returns the input schema
func (t *FeedbackTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"feedback": {"type": "string", "description": "The user's feedback, verbatim"}
		},
		"required": ["feedback"]
	}`)
}

// Execute echoes the feedback as an acknowledgement.
func (t *FeedbackTool) Execute(_ context.Context, input json.RawMessage) (*Result, error) {
	var in feedbackInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if strings.TrimSpace(in.Feedback) == "" {
		return &Result{Content: "feedback is required", IsError: true}, nil
	}
	return &Result{Content: fmt.Sprintf("Feedback noted: %s", in.Feedback)}, nil
}
