package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present so GROQ_API_KEY and friends are picked up
	// without exporting them in the shell. Missing file is fine.
	_ = godotenv.Load()

	rootCmd := setupRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
