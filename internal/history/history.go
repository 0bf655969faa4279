// Package history models persisted conversation turns and builds the
// bounded context window handed to the reasoning step.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/liftloop/coach/internal/ai"
)

// Roles stored in conversation memory.
const (
	RoleHuman     = "human"
	RoleAssistant = "assistant"
)

// MaxTurns is the number of turns kept per session. Older turns are
// discarded on write.
const MaxTurns = 50

// Turn is one message exchange unit, tagged human or assistant.
// It serializes as a two-element array ["role", "text"] to keep the
// memory file compact and human-inspectable.
type Turn struct {
	Role string
	Text string
}

// MarshalJSON encodes the turn as ["role", "text"].
func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Role, t.Text})
}

// UnmarshalJSON decodes a ["role", "text"] pair.
func (t *Turn) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("turn must be a [role, text] pair: %w", err)
	}
	t.Role = pair[0]
	t.Text = pair[1]
	return nil
}

// Human returns a human-authored turn.
func Human(text string) Turn { return Turn{Role: RoleHuman, Text: text} }

// Assistant returns an assistant-authored turn.
func Assistant(text string) Turn { return Turn{Role: RoleAssistant, Text: text} }

// Truncate returns the most recent max turns, discarding the oldest.
func Truncate(turns []Turn, max int) []Turn {
	if max <= 0 || len(turns) <= max {
		return turns
	}
	return turns[len(turns)-max:]
}

// Prepare converts stored turns into the prompt-ready message sequence.
// When the history fits within maxMessages every turn is mapped in
// order. When it does not, the overflow is not dropped silently: one
// synthetic assistant message discloses how many earlier messages were
// omitted, followed by the most recent maxMessages turns.
func Prepare(turns []Turn, maxMessages int) []ai.Message {
	if maxMessages <= 0 || len(turns) <= maxMessages {
		return toMessages(turns)
	}

	omitted := len(turns) - maxMessages
	out := make([]ai.Message, 0, maxMessages+1)
	out = append(out, ai.Message{
		Role:    ai.RoleAssistant,
		Content: fmt.Sprintf("[Conversation summary: %d earlier messages were omitted to fit the context window.]", omitted),
	})
	return append(out, toMessages(turns[omitted:])...)
}

func toMessages(turns []Turn) []ai.Message {
	out := make([]ai.Message, 0, len(turns))
	for _, t := range turns {
		role := ai.RoleUser
		if t.Role == RoleAssistant {
			role = ai.RoleAssistant
		}
		out = append(out, ai.Message{Role: role, Content: t.Text})
	}
	return out
}
