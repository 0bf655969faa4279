// Package ai defines the provider abstraction for the external
// reasoning step: a request/response contract over a prompt, bounded
// conversation history, and a declared set of callable tools.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Message roles understood by providers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ErrTimeout is returned when a bounded invocation exceeds its
// wall-clock deadline. Callers surface it as a friendly retry message,
// never as a crash.
var ErrTimeout = errors.New("reasoning step timed out")

// Message is one entry of the prompt-ready conversation sequence.
type Message struct {
	Role        string       `json:"role"`
	Content     string       `json:"content,omitempty"`
	ToolCalls   []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
}

// ToolCall represents a tool invocation requested by the model.
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult carries the outcome of an executed tool call back to the model.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}

// ToolDefinition describes a tool available to the model.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ChatRequest is a single request to the reasoning step.
type ChatRequest struct {
	Messages    []Message        `json:"messages"`
	Tools       []ToolDefinition `json:"tools,omitempty"`
	System      string           `json:"system,omitempty"`
	Model       string           `json:"model,omitempty"` // Override the provider default
	MaxTokens   int              `json:"max_tokens,omitempty"`
	Temperature float64          `json:"temperature,omitempty"`
}

// Completion is the reasoning step's answer: text plus zero or more
// requested tool invocations.
type Completion struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Provider is the interface all reasoning-step backends implement.
type Provider interface {
	// ID returns the provider identifier (e.g., "groq", "anthropic")
	ID() string

	// Complete sends a request and blocks for the full response.
	// The caller bounds the call through ctx; providers must honor
	// cancellation.
	Complete(ctx context.Context, req *ChatRequest) (*Completion, error)
}

// ProviderError represents an error reported by a provider backend.
type ProviderError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

func (e *ProviderError) Error() string {
	return e.Message
}

// IsRateLimitOrAuth checks if an error is due to provider-side rate
// limiting or auth issues. These are operator problems, not user
// problems, and get logged accordingly.
func IsRateLimitOrAuth(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code == "rate_limit_exceeded" ||
			pe.Code == "authentication_error" ||
			pe.Type == "rate_limit_error" ||
			pe.Type == "authentication_error"
	}
	return false
}

// New builds a provider from its configured name. The API key must
// already be resolved; an empty key is a programming error caught at
// startup, not here.
func New(name, apiKey, model, baseURL string) (Provider, error) {
	switch strings.ToLower(name) {
	case "groq", "openai":
		return NewGroqProvider(apiKey, model, baseURL), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (supported: groq, anthropic)", name)
	}
}
