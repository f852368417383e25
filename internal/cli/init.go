package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

const configTemplate = `# inkwell site configuration
title: My Documentation
base_url: /
input_dir: content
output_dir: public

# Detect the language of unlabeled code blocks.
detect_language: false

# Navigation links shown on every page. Omit to derive from page titles.
# nav:
#   - title: Home
#     path: index.html
#   - title: Guide
#     path: guide.html
`

const indexTemplate = `# My Documentation

Welcome. Edit ` + "`content/index.md`" + ` and run ` + "`inkwell build`" + `.
`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new inkwell site",
		Long: `Create an inkwell.yaml configuration file and a content directory with
a starter page in the current directory.

Examples:
  inkwell init                     Create inkwell.yaml and content/index.md
  inkwell init --output site.yaml  Write the config to a custom path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Config file path (default: inkwell.yaml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = DefaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, []byte(configTemplate), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if err := fsutil.EnsureDir("content"); err != nil {
		return fmt.Errorf("create content dir: %w", err)
	}

	indexPath := filepath.Join("content", "index.md")
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := os.WriteFile(indexPath, []byte(indexTemplate), configFilePermissions); err != nil {
			return fmt.Errorf("write starter page: %w", err)
		}
		logger.Info("created starter page", logging.FieldPath, indexPath)
	}

	logger.Info("run 'inkwell build' to build the site")

	return nil
}
