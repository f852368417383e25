// Package i18n loads per-locale translation dictionaries and resolves
// keys with locale fallback.
//
// Dictionaries are directories of flat-or-nested JSON or YAML files,
// one directory per BCP 47 locale; file names become key namespaces
// and nesting flattens into dot-separated key paths. Lookup falls back
// from the requested locale to its closest available match and then to
// the configured default locale. Message values use the pattern syntax
// implemented in the message subpackage.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale is a validated BCP 47 tag.
type Locale struct {
	tag language.Tag
	raw string
}

// ParseLocale validates tag and returns the locale. The original
// spelling is preserved for display and map keys.
func ParseLocale(tag string) (Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	return Locale{tag: parsed, raw: tag}, nil
}

// MustParseLocale is ParseLocale for known-good literals.
func MustParseLocale(tag string) Locale {
	l, err := ParseLocale(tag)
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the primary language subtag, e.g. "en" for "en-US".
func (l Locale) Language() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Tag returns the parsed language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) String() string {
	return l.raw
}
