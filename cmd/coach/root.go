package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liftloop/coach/internal/ai"
	"github.com/liftloop/coach/internal/coach"
	"github.com/liftloop/coach/internal/config"
	"github.com/liftloop/coach/internal/store"
	"github.com/liftloop/coach/internal/tools"
)

// Shared CLI flags (used across multiple command files)
var (
	cfgFile    string
	sessionKey string
)

// setupRootCmd configures the root command with all subcommands and flags
func setupRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coach",
		Short: "Coach - AI workout coach",
		Long: `Coach is a conversational AI workout coach with persistent memory.

Just type 'coach serve' to start the web UI, or 'coach chat' to talk
from the terminal.`,
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.coach/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sessionKey, "session", "s", "default", "session key for conversation history")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(sessionsCmd())
	rootCmd.AddCommand(resetCmd())

	return rootCmd
}

// loadConfig loads the configuration from --config or the default path.
func loadConfig() *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// buildCoach wires the provider, tool registry and stores into a Coach.
// A missing API credential is a startup failure, not a per-request one.
func buildCoach(cfg *config.Config) *coach.Coach {
	apiKey, err := cfg.ResolveCredential()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider, err := ai.New(cfg.Provider.Name, apiKey, cfg.Provider.Model, cfg.Provider.BaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry := tools.NewDefaultRegistry()
	stores := store.Open(cfg.DataDir)
	return coach.New(cfg, provider, registry, stores)
}
