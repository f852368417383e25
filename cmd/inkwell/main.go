// Package main is the entry point for the inkwell CLI.
package main

import (
	"errors"
	"os"

	"github.com/inkwellmd/inkwell/internal/cli"
	"github.com/inkwellmd/inkwell/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Validation findings are already printed; the error is just
		// the exit-code signal.
		if !errors.Is(err, cli.ErrTranslationIssues) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitFailure
	}

	return cli.ExitSuccess
}
