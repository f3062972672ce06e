// Package main provides the notevault CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
