package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/pkg/arena"
	"github.com/inkwellmd/inkwell/pkg/fsutil"
	"github.com/inkwellmd/inkwell/pkg/parser"
	"github.com/inkwellmd/inkwell/pkg/render/html"
)

type renderFlags struct {
	output         string
	flavor         string
	xhtml          bool
	detectLanguage bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a Markdown file to HTML",
		Long: `Parse a single Markdown file and print the HTML fragment to stdout,
or write it to a file with --output.

Examples:
  inkwell render README.md             # HTML fragment to stdout
  inkwell render README.md -o out.html
  inkwell render --flavor commonmark doc.md
  inkwell render --detect-language doc.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to a file instead of stdout")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "markdown flavor: gfm or commonmark")
	cmd.Flags().BoolVar(&flags.xhtml, "xhtml", false, "emit self-closing void tags")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false,
		"detect the language of unlabeled code blocks")

	return cmd
}

func runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	var parseOpts parser.Options
	switch flags.flavor {
	case "gfm":
		parseOpts = parser.GFMOptions()
	case "commonmark":
		parseOpts = parser.Options{}
	default:
		return fmt.Errorf("invalid flavor %q: must be gfm or commonmark", flags.flavor)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	a := arena.New()
	doc, err := parser.NewWithOptions(a, string(source), parseOpts).Parse()
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	opts := html.DefaultOptions()
	opts.XHTML = flags.xhtml
	opts.DetectLanguage = flags.detectLanguage
	fragment := html.NewWithOptions(opts).Render(doc)

	if flags.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), fragment)
		return nil
	}

	if _, err := fsutil.WriteAtomicIfChanged(flags.output, []byte(fragment), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	logging.Default().Info("rendered",
		logging.FieldInput, path,
		logging.FieldOutput, flags.output,
	)
	return nil
}
