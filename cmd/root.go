// Package cmd implements the CLI commands for storyfetch using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storyfetch",
	Short: "storyfetch — archive the official Strixhaven stories as Markdown",
	Long: `storyfetch retrieves a fixed set of official Magic story pages, extracts
their readable content as Markdown, fetches the Simplified-Chinese edition
when the site offers one, and caches every referenced image locally with
stable relative references.

Usage:
  storyfetch scrape [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
