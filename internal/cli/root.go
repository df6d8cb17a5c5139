// Package cli provides the Cobra command structure for latexmark.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/latexmark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root latexmark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "latexmark",
		Short: "An incremental, resumable structural tokenizer for LaTeX",
		Long: `latexmark tokenizes LaTeX source the way a host editor feeds it:
line by line, resuming from wherever its pushdown stack left off rather
than reparsing a file from scratch.

It reports the structural marks it finds - sections, environments,
citations, math, labels, and the rest of the closed mark vocabulary -
as text, a table, or JSON.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTokenizeCommand())
	rootCmd.AddCommand(newKindsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
