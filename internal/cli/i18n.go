package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/pkg/i18n"
	"github.com/inkwellmd/inkwell/pkg/i18n/message"
)

// ErrTranslationIssues is returned when validation finds problems.
var ErrTranslationIssues = errors.New("translation issues found")

type i18nFlags struct {
	sourceLocale string
}

func newI18nCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "i18n",
		Short: "Work with translation dictionaries",
	}
	cmd.AddCommand(newI18nValidateCommand())
	return cmd
}

func newI18nValidateCommand() *cobra.Command {
	flags := &i18nFlags{}

	cmd := &cobra.Command{
		Use:   "validate DIR",
		Short: "Validate translation dictionaries against the source locale",
		Long: `Load a locale directory tree (one subdirectory per locale, JSON or
YAML dictionaries inside) and check every translation against the
source locale: message patterns must parse, and placeholders must match
the source message's variables.

Examples:
  inkwell i18n validate locales/
  inkwell i18n validate --source-locale en locales/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runI18nValidate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.sourceLocale, "source-locale", "en", "locale the translations are checked against")

	return cmd
}

func runI18nValidate(cmd *cobra.Command, dir string, flags *i18nFlags) error {
	logger := logging.Default()

	set, err := i18n.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("load %s: %w", dir, err)
	}

	source, ok := set.Dictionary(flags.sourceLocale)
	if !ok {
		return fmt.Errorf("source locale %q not found in %s", flags.sourceLocale, dir)
	}

	issues := 0
	for _, locale := range set.Locales() {
		if locale == flags.sourceLocale {
			continue
		}
		dict, _ := set.Dictionary(locale)
		issues += validateDictionary(cmd, locale, source, dict)
	}

	out := cmd.OutOrStdout()
	if issues > 0 {
		fmt.Fprintf(out, "%d issues across %d locales\n", issues, len(set.Locales())-1)
		return ErrTranslationIssues
	}
	logger.Info("translations are consistent",
		logging.FieldPath, dir,
		logging.FieldResults, len(set.Locales())-1,
	)
	fmt.Fprintln(out, "OK")
	return nil
}

// validateDictionary checks one locale's entries against the source
// dictionary and prints findings. It returns the issue count.
func validateDictionary(cmd *cobra.Command, locale string, source, dict *i18n.Dictionary) int {
	out := cmd.OutOrStdout()
	issues := 0

	for _, key := range dict.Keys() {
		value, _ := dict.Get(key)
		translated, err := message.Parse(value)
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", locale, key, err)
			issues++
			continue
		}

		srcValue, ok := source.Get(key)
		if !ok {
			fmt.Fprintf(out, "%s %s: no source message\n", locale, key)
			issues++
			continue
		}
		srcMsg, err := message.Parse(srcValue)
		if err != nil {
			// Broken source messages are reported once per locale key.
			fmt.Fprintf(out, "%s %s: source: %v\n", locale, key, err)
			issues++
			continue
		}

		for _, issue := range message.Validate(srcMsg, translated) {
			fmt.Fprintf(out, "%s %s: %s\n", locale, key, issue)
			issues++
		}
	}

	return issues
}
