package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liftloop/coach/internal/maintenance"
	"github.com/liftloop/coach/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web chat server",
		Long: `Start the HTTP server with the chat UI.

The server keeps one conversation per browser session, enforces the
per-session rate limit, and persists memory under the data directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	}
}

func runServe() {
	cfg := loadConfig()
	c := buildCoach(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\n[Coach] Received signal: %v - shutting down\n", sig)
		cancel()
	}()

	sweeper := maintenance.NewSweeper(c.Stores().Rates, cfg.Window())
	if err := sweeper.Start(cfg.Sweeper.Schedule); err != nil {
		fmt.Printf("[Coach] Warning: could not start rate window sweeper: %v\n", err)
	} else {
		defer sweeper.Stop()
	}

	srv := server.New(cfg, c)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
