package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liftloop/coach/internal/store"
)

func sessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored conversation sessions",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			stores := store.Open(cfg.DataDir)

			ids := stores.Memory.Sessions()
			if len(ids) == 0 {
				fmt.Println("No sessions found.")
				return
			}

			fmt.Println("Sessions:")
			for _, id := range ids {
				turns := len(stores.Memory.Turns(id))
				if rec, ok := stores.Usage.Get(id); ok {
					fmt.Printf("  %s (%d turns, %d requests, last seen %s)\n",
						id, turns, rec.TotalRequests, rec.LastSeen.Format("2006-01-02 15:04"))
				} else {
					fmt.Printf("  %s (%d turns)\n", id, turns)
				}
			}
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [session]",
		Short: "Clear a session's conversation history and profile",
		Run: func(cmd *cobra.Command, args []string) {
			id := sessionKey
			if len(args) > 0 {
				id = args[0]
			}

			cfg := loadConfig()
			stores := store.Open(cfg.DataDir)
			stores.Memory.Reset(id)
			stores.Profiles.Reset(id)
			fmt.Printf("Session %q cleared.\n", id)
		},
	}
}
