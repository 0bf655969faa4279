// Package tools holds the closed set of coaching lookup tools exposed
// to the reasoning step. Each tool is a deterministic pure function
// over a static table with a validated, typed input.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/liftloop/coach/internal/ai"
)

// Result represents the outcome of a tool execution.
type Result struct {
	Content string `json:"content"`
	IsError bool   `json:"is_error,omitempty"`
}

// Tool interface that all tools implement.
type Tool interface {
	// Name returns the tool's unique name
	Name() string

	// Description returns a description for the model
	Description() string

	// Schema returns the JSON schema for the tool's input
	Schema() json.RawMessage

	// Execute runs the tool with the given input
	Execute(ctx context.Context, input json.RawMessage) (*Result, error)
}

// Registry manages available tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// NewDefaultRegistry creates a registry with the three coaching tools.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ExerciseTool{})
	r.Register(&SetsRepsTool{})
	r.Register(&FeedbackTool{})
	return r
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[tool.Name()]; ok {
		fmt.Printf("[Tools] WARNING: tool %q already registered, overwriting\n", tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all tools as provider tool definitions.
func (r *Registry) List() []ai.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ai.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, ai.ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.Schema(),
		})
	}
	return defs
}

// Execute runs a tool call and returns its result. Unknown tool names
// produce an error result listing the available tools so the model can
// self-correct instead of retrying blindly.
func (r *Registry) Execute(ctx context.Context, call *ai.ToolCall) *Result {
	r.mu.RLock()
	tool, ok := r.tools[call.Name]
	r.mu.RUnlock()

	if !ok {
		r.mu.RLock()
		available := make([]string, 0, len(r.tools))
		for name := range r.tools {
			available = append(available, name)
		}
		r.mu.RUnlock()
		return &Result{
			Content: fmt.Sprintf("TOOL ERROR: %q does not exist. Available tools: %s",
				call.Name, strings.Join(available, ", ")),
			IsError: true,
		}
	}

	result, err := tool.Execute(ctx, call.Input)
	if err != nil {
		return &Result{Content: fmt.Sprintf("tool %s failed: %v", call.Name, err), IsError: true}
	}
	return result
}
