// Package cmd implements the CLI commands for clipmark using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clipmark",
	Short: "clipmark — clip web pages to clean Markdown",
	Long: `clipmark converts a web page, or a CSS-selected fragment of it, into a
clean Markdown document with all relative links and images resolved to
absolute URLs.

Usage:
  clipmark clip <url|file|-> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
