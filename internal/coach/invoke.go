package coach

import (
	"context"
	"errors"

	"github.com/liftloop/coach/internal/ai"
)

// Reasoning-step invocation parameters. Temperature and token budget
// match what the coach persona was tuned against; the tool-round cap
// keeps a confused model from looping.
const (
	maxToolRounds     = 3
	invokeMaxTokens   = 1500
	invokeTemperature = 0.6
)

// invoke runs the reasoning step under a per-call wall-clock deadline,
// executing up to maxToolRounds rounds of requested tool calls and
// feeding the results back. The deadline is a per-call context, so
// concurrent sessions never contend on a shared timer, and it is
// always released on exit.
func (c *Coach) invoke(ctx context.Context, input string, window []ai.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	msgs := make([]ai.Message, 0, len(window)+1)
	msgs = append(msgs, window...)
	msgs = append(msgs, ai.Message{Role: ai.RoleUser, Content: input})

	for round := 0; ; round++ {
		completion, err := c.provider.Complete(ctx, &ai.ChatRequest{
			System:      systemPrompt,
			Messages:    msgs,
			Tools:       c.registry.List(),
			MaxTokens:   invokeMaxTokens,
			Temperature: invokeTemperature,
		})
		if err != nil {
			return "", err
		}

		// Final answer: no tool calls requested, or the round budget
		// is spent and whatever text came back has to do.
		if len(completion.ToolCalls) == 0 || round >= maxToolRounds {
			return completion.Text, nil
		}

		msgs = append(msgs, ai.Message{
			Role:      ai.RoleAssistant,
			Content:   completion.Text,
			ToolCalls: completion.ToolCalls,
		})

		results := make([]ai.ToolResult, 0, len(completion.ToolCalls))
		for i := range completion.ToolCalls {
			call := &completion.ToolCalls[i]
			res := c.registry.Execute(ctx, call)
			results = append(results, ai.ToolResult{
				ToolCallID: call.ID,
				Content:    res.Content,
				IsError:    res.IsError,
			})
		}
		msgs = append(msgs, ai.Message{Role: ai.RoleTool, ToolResults: results})
	}
}

// isTimeout reports whether the invocation failed because the deadline
// elapsed, regardless of how the provider wrapped it.
func isTimeout(err error) bool {
	return errors.Is(err, ai.ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}
