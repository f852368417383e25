// Package cli provides the Cobra command structure for inkwell.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellmd/inkwell/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root inkwell command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "An arena-allocated Markdown engine and static site generator",
		Long: `inkwell parses CommonMark and GitHub Flavored Markdown with an
arena-allocated parser, renders it to HTML, and builds static
documentation sites with full-text search.

Point it at a directory of Markdown files and it produces a linked,
searchable site; or use the render and search subcommands directly
against single files and built indexes.`,
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
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to site config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newI18nCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
