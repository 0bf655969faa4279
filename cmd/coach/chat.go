package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liftloop/coach/internal/coach"
)

func chatCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Chat with the coach from the terminal",
		Long: `Send a message to the coach and print the reply.

Examples:
  coach chat "Build muscle, 4 days a week"
  coach chat --interactive
  coach chat -s gym-buddy "What did we plan last time?"`,
		Run: func(cmd *cobra.Command, args []string) {
			runChat(args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start interactive chat session")

	return cmd
}

func runChat(args []string, interactive bool) {
	cfg := loadConfig()
	c := buildCoach(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted")
		cancel()
	}()

	if interactive || len(args) == 0 {
		runInteractive(ctx, c)
		return
	}

	reply := c.Chat(ctx, sessionKey, strings.Join(args, " "))
	fmt.Println(reply)
}

func runInteractive(ctx context.Context, c *coach.Coach) {
	fmt.Println("Coach Interactive Mode")
	fmt.Println("Type your message and press Enter. Use /help for commands, Ctrl+C to exit.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if handleCommand(line, c) {
				continue
			}
		}

		fmt.Printf("\n%s\n\n", c.Chat(ctx, sessionKey, line))
	}
}

// handleCommand handles interactive slash commands
func handleCommand(cmd string, c *coach.Coach) bool {
	switch cmd {
	case "/help":
		fmt.Println(`Commands:
  /help     - Show this help
  /clear    - Clear current session
  /sessions - List all sessions
  /quit     - Exit`)
		return true

	case "/clear":
		c.Stores().Memory.Reset(sessionKey)
		c.Stores().Profiles.Reset(sessionKey)
		fmt.Println("Session cleared.")
		return true

	case "/sessions":
		fmt.Println("Sessions:")
		for _, id := range c.Stores().Memory.Sessions() {
			marker := " "
			if id == sessionKey {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, id)
		}
		return true

	case "/quit", "/exit":
		os.Exit(0)
		return true
	}

	return false
}
