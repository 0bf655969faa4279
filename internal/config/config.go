// Package config loads the coach configuration from YAML with
// environment expansion, and resolves the reasoning-step credential.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the coach configuration.
type Config struct {
	// DataDir is where the four JSON stores live.
	DataDir string `yaml:"data_dir"`

	// Conversation settings
	MaxHistory       int `yaml:"max_history"`        // Turns kept per session (default: 50)
	ContextMessages  int `yaml:"context_messages"`   // Turns handed to the reasoning step (default: 20)
	ProfileScanTurns int `yaml:"profile_scan_turns"` // Recent turns scanned for profile signals (default: 10)
	MaxLimitations   int `yaml:"max_limitations"`    // Cap on recorded limitation sentences (default: 25)

	// Invocation settings
	TimeoutSeconds int `yaml:"timeout_seconds"` // Per-call reasoning deadline (default: 30)

	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Provider  ProviderConfig  `yaml:"provider"`
	Server    ServerConfig    `yaml:"server"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
}

// RateLimitConfig bounds per-session request volume.
type RateLimitConfig struct {
	MaxRequests   int `yaml:"max_requests"`   // default: 20
	WindowSeconds int `yaml:"window_seconds"` // default: 60
}

// ProviderConfig selects and configures the reasoning-step backend.
type ProviderConfig struct {
	Name    string `yaml:"name"`               // "groq" or "anthropic"
	Model   string `yaml:"model,omitempty"`    // Provider default when empty
	APIKey  string `yaml:"api_key,omitempty"`  // Falls back to the provider's env var
	BaseURL string `yaml:"base_url,omitempty"` // Groq/OpenAI-compatible endpoint override
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"` // default: 8432
}

// SweeperConfig schedules the store maintenance job.
type SweeperConfig struct {
	// Schedule is a cron spec; "@every 5m" by default. Empty disables
	// the sweeper.
	Schedule string `yaml:"schedule"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:          defaultDataDir(),
		MaxHistory:       50,
		ContextMessages:  20,
		ProfileScanTurns: 10,
		MaxLimitations:   25,
		TimeoutSeconds:   30,
		RateLimit: RateLimitConfig{
			MaxRequests:   20,
			WindowSeconds: 60,
		},
		Provider: ProviderConfig{
			Name: "groq",
		},
		Server: ServerConfig{
			Port: 8432,
		},
		Sweeper: SweeperConfig{
			Schedule: "@every 5m",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coach"
	}
	return filepath.Join(home, ".coach")
}

// Load loads config from <data dir>/config.yaml, falling back to
// defaults when the file does not exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(cfg.DataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := cfg.apply(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFrom loads config from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.apply(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}

	// Config files may carry tilde paths and env references
	if strings.HasPrefix(c.DataDir, "~/") {
		home, _ := os.UserHomeDir()
		c.DataDir = filepath.Join(home, c.DataDir[2:])
	}
	c.Provider.APIKey = os.ExpandEnv(c.Provider.APIKey)
	c.Provider.BaseURL = os.ExpandEnv(c.Provider.BaseURL)
	return nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}

// Timeout returns the per-call reasoning deadline.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Window returns the rate-limit window duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

// credentialEnvVars maps provider names to the env var carrying their
// API key.
var credentialEnvVars = map[string]string{
	"groq":      "GROQ_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
}

// ResolveCredential returns the API key for the configured provider,
// checking the config value first and the provider's environment
// variable second. A missing credential is a startup failure: the
// process must refuse to serve rather than fail per request.
func (c *Config) ResolveCredential() (string, error) {
	if c.Provider.APIKey != "" {
		return c.Provider.APIKey, nil
	}
	name := strings.ToLower(c.Provider.Name)
	envVar, ok := credentialEnvVars[name]
	if !ok {
		return "", fmt.Errorf("unknown provider %q", c.Provider.Name)
	}
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("no API key for provider %q: set %s or provider.api_key in config.yaml", c.Provider.Name, envVar)
}
