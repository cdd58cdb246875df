// Package main provides the tradecheck CLI for batch validation of trade
// logs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradecheck",
	Short: "Trade log validation engine",
	Long:  "Tradecheck validates a tabular trade log against data-quality and business-correctness rules, producing pass/fail outcomes, per-row violation reports, and informational metrics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
