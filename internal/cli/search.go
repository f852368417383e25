package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/internal/ui/pretty"
	"github.com/inkwellmd/inkwell/pkg/search"
	"github.com/inkwellmd/inkwell/pkg/sitegen"
)

type searchFlags struct {
	index    string
	limit    int
	noPrefix bool
	asJSON   bool
}

func newSearchCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search a built site index",
		Long: `Query the search index produced by inkwell build. The index location
defaults to the configured output directory.

Examples:
  inkwell search getting started
  inkwell search --limit 3 arena
  inkwell search --json parser   # machine-readable results`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), flags)
		},
	}

	cmd.Flags().StringVar(&flags.index, "index", "", "path to search-index.json (default: from site config)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 10, "maximum number of results")
	cmd.Flags().BoolVar(&flags.noPrefix, "no-prefix", false, "disable prefix matching on the last query term")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "emit results as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, flags *searchFlags) error {
	indexPath := flags.index
	if indexPath == "" {
		cfg, err := loadSiteConfig(cmd)
		if err != nil {
			return err
		}
		indexPath = filepath.Join(cfg.OutputDir, sitegen.IndexFileName)
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("read index %s (run 'inkwell build' first): %w", indexPath, err)
	}
	idx, err := search.FromJSON(data)
	if err != nil {
		return fmt.Errorf("load index %s: %w", indexPath, err)
	}

	opts := search.DefaultOptions()
	opts.Limit = flags.limit
	opts.Prefix = !flags.noPrefix
	results := idx.Search(query, opts)
	logging.Default().Debug("search complete",
		logging.FieldQuery, query,
		logging.FieldResults, len(results),
		logging.FieldLimit, opts.Limit,
	)

	out := cmd.OutOrStdout()
	if flags.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	styles := stylesFor(cmd)
	formatter := pretty.NewResultFormatter(styles, pretty.TerminalWidth(out))
	fmt.Fprint(out, formatter.FormatResults(query, results))
	if len(results) > 0 {
		fmt.Fprint(out, formatter.FormatResultCount(len(results)))
	}
	return nil
}
