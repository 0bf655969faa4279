package ai

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewProviderFactory(t *testing.T) {
	cases := []struct {
		name   string
		wantID string
	}{
		{"groq", "groq"},
		{"Groq", "groq"},
		{"openai", "groq"}, // OpenAI-compatible endpoint, same client
		{"anthropic", "anthropic"},
	}

	for _, tc := range cases {
		p, err := New(tc.name, "test-key", "", "")
		if err != nil {
			t.Fatalf("New(%q): %v", tc.name, err)
		}
		if p.ID() != tc.wantID {
			t.Errorf("New(%q).ID() = %q, want %q", tc.name, p.ID(), tc.wantID)
		}
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := New("mainframe", "key", "", ""); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestIsRateLimitOrAuth(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&ProviderError{Code: "rate_limit_exceeded", Message: "slow down"}, true},
		{&ProviderError{Type: "authentication_error", Message: "bad key"}, true},
		{fmt.Errorf("wrapped: %w", &ProviderError{Code: "authentication_error", Message: "bad key"}), true},
		{&ProviderError{Code: "server_error", Message: "oops"}, false},
		{errors.New("plain error"), false},
		{nil, false},
	}

	for _, tc := range cases {
		if got := IsRateLimitOrAuth(tc.err); got != tc.want {
			t.Errorf("IsRateLimitOrAuth(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
