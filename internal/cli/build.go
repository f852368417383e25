package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/internal/ui/pretty"
	"github.com/inkwellmd/inkwell/pkg/sitegen"
)

// DefaultConfigFile is the site config looked for when --config is not
// given.
const DefaultConfigFile = "inkwell.yaml"

type buildFlags struct {
	watch   bool
	summary bool
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static site",
		Long: `Build the static site described by the config file: parse every
Markdown file under the input directory, render each page into the
HTML shell, and write the pages plus a search index to the output
directory.

Examples:
  inkwell build                  # Build using ./inkwell.yaml
  inkwell build --config doc.yaml
  inkwell build --watch          # Rebuild on source changes
  inkwell build --summary        # Print a summary block after the build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "watch for changes and rebuild")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a build summary block")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	cfg, err := loadSiteConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logging.Default())

	gen := sitegen.New(cfg)

	if flags.watch {
		logging.Default().Info("starting watch mode",
			logging.FieldInput, cfg.InputDir,
			logging.FieldWatch, true,
		)
		return gen.Watch(ctx)
	}

	result, err := gen.Build(ctx)
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	styles := stylesFor(cmd)
	if flags.summary {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatBuildSummary(*result))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatBuildOneLine(*result))
	}
	return nil
}

// loadSiteConfig resolves the site config: the --config flag when
// given, otherwise ./inkwell.yaml when present, otherwise defaults.
func loadSiteConfig(cmd *cobra.Command) (sitegen.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return sitegen.Config{}, fmt.Errorf("get config flag: %w", err)
	}

	if configPath == "" {
		if _, statErr := os.Stat(DefaultConfigFile); statErr == nil {
			configPath = DefaultConfigFile
		} else if errors.Is(statErr, os.ErrNotExist) {
			return sitegen.DefaultConfig(), nil
		} else {
			return sitegen.Config{}, fmt.Errorf("stat %s: %w", DefaultConfigFile, statErr)
		}
	}

	cfg, err := sitegen.LoadConfig(configPath)
	if err != nil {
		return sitegen.Config{}, errors.Join(errors.New("failed to load configuration"), err)
	}
	logging.Default().Debug("loaded site config", logging.FieldConfig, configPath)
	return cfg, nil
}

// stylesFor builds output styles honoring the root --color flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}
