// Package cmd implements the CLI commands for cargotab using Cobra.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cargotab",
	Short: "cargotab — normalize cargo-tracking report tables",
	Long: `cargotab fetches a cargo-tracking page, extracts every report table
from its HTML, and normalizes the inconsistent markup into uniform
key/value records.

Usage:
  cargotab parse <tracking-id> --source skycargo --json`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
