// Package main provides the entry point for the Placement Portal HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement_portal",
	Short: "Placement Portal HTTP API Server",
	Long:  "Placement Portal collects student placement experiences through a guided submission flow and serves them with AI-generated summaries and company preparation insights via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
