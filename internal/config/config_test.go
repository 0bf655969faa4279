package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHistory != 50 {
		t.Errorf("MaxHistory = %d, want 50", cfg.MaxHistory)
	}
	if cfg.ContextMessages != 20 {
		t.Errorf("ContextMessages = %d, want 20", cfg.ContextMessages)
	}
	if cfg.RateLimit.MaxRequests != 20 || cfg.RateLimit.WindowSeconds != 60 {
		t.Errorf("rate limit = %d/%ds, want 20/60s", cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Timeout())
	}
	if cfg.Window() != time.Minute {
		t.Errorf("Window() = %v, want 1m", cfg.Window())
	}
	if cfg.Provider.Name != "groq" {
		t.Errorf("provider = %q, want groq", cfg.Provider.Name)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
data_dir: /tmp/coach-test
context_messages: 12
timeout_seconds: 5
rate_limit:
  max_requests: 3
  window_seconds: 10
provider:
  name: anthropic
  model: claude-sonnet-4-20250514
server:
  port: 9000
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.DataDir != "/tmp/coach-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.ContextMessages != 12 {
		t.Errorf("ContextMessages = %d, want 12", cfg.ContextMessages)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
	if cfg.RateLimit.MaxRequests != 3 {
		t.Errorf("MaxRequests = %d, want 3", cfg.RateLimit.MaxRequests)
	}
	if cfg.Provider.Name != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider.Name)
	}
	// Unset fields keep their defaults.
	if cfg.MaxHistory != 50 {
		t.Errorf("MaxHistory = %d, want default 50", cfg.MaxHistory)
	}
	if cfg.Sweeper.Schedule != "@every 5m" {
		t.Errorf("Sweeper.Schedule = %q, want default", cfg.Sweeper.Schedule)
	}
}

func TestLoadFromExpandsEnv(t *testing.T) {
	t.Setenv("COACH_TEST_KEY", "sk-test-123")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
provider:
  name: groq
  api_key: ${COACH_TEST_KEY}
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Provider.APIKey != "sk-test-123" {
		t.Errorf("APIKey = %q, want expanded env value", cfg.Provider.APIKey)
	}
}

func TestLoadFromExpandsTilde(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: ~/coach-data\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.DataDir != filepath.Join(home, "coach-data") {
		t.Errorf("DataDir = %q, want tilde expanded", cfg.DataDir)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestResolveCredential(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg := DefaultConfig()
	if _, err := cfg.ResolveCredential(); err == nil {
		t.Fatal("expected error with no key configured")
	}

	t.Setenv("GROQ_API_KEY", "gsk-from-env")
	key, err := cfg.ResolveCredential()
	if err != nil {
		t.Fatalf("ResolveCredential: %v", err)
	}
	if key != "gsk-from-env" {
		t.Errorf("key = %q, want env value", key)
	}

	// Config value beats the environment.
	cfg.Provider.APIKey = "gsk-from-config"
	key, _ = cfg.ResolveCredential()
	if key != "gsk-from-config" {
		t.Errorf("key = %q, want config value", key)
	}
}

func TestResolveCredentialUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider.Name = "mainframe"
	if _, err := cfg.ResolveCredential(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
