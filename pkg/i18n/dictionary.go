package i18n

import (
	"sort"

	"golang.org/x/text/language"
)

// Dictionary is a flat map of dot-separated key paths to message
// strings for one locale.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]string)}
}

// Insert adds or replaces an entry.
func (d *Dictionary) Insert(key, value string) {
	d.entries[key] = value
}

// Get looks up a key.
func (d *Dictionary) Get(key string) (string, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Keys returns all keys, sorted.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set holds one dictionary per locale plus the fallback rules.
type Set struct {
	dicts         map[string]*Dictionary
	locales       []Locale
	defaultLocale string

	matcher language.Matcher
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{dicts: make(map[string]*Dictionary)}
}

// SetDefaultLocale sets the final fallback locale.
func (s *Set) SetDefaultLocale(l Locale) {
	s.defaultLocale = l.String()
}

// DefaultLocale returns the configured fallback locale tag, empty when
// unset.
func (s *Set) DefaultLocale() string {
	return s.defaultLocale
}

// Insert registers a dictionary for a locale, replacing any previous
// one.
func (s *Set) Insert(locale Locale, dict *Dictionary) {
	if _, exists := s.dicts[locale.String()]; !exists {
		s.locales = append(s.locales, locale)
	}
	s.dicts[locale.String()] = dict
	s.matcher = nil
}

// Locales returns the registered locale tags, sorted.
func (s *Set) Locales() []string {
	tags := make([]string, 0, len(s.dicts))
	for tag := range s.dicts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Dictionary returns the dictionary registered under exactly the
// given tag.
func (s *Set) Dictionary(locale string) (*Dictionary, bool) {
	d, ok := s.dicts[locale]
	return d, ok
}

// Translate resolves key for locale: the exact locale first, then the
// closest registered locale per x/text matching, then the default
// locale. The second return is false when no dictionary has the key.
func (s *Set) Translate(locale, key string) (string, bool) {
	if dict, ok := s.dicts[locale]; ok {
		if v, ok := dict.Get(key); ok {
			return v, true
		}
	}

	if nearest, ok := s.match(locale); ok && nearest != locale {
		if v, ok := s.dicts[nearest].Get(key); ok {
			return v, true
		}
	}

	if s.defaultLocale != "" && s.defaultLocale != locale {
		if dict, ok := s.dicts[s.defaultLocale]; ok {
			if v, ok := dict.Get(key); ok {
				return v, true
			}
		}
	}

	return "", false
}

// match finds the registered locale closest to the requested one.
func (s *Set) match(locale string) (string, bool) {
	if len(s.locales) == 0 {
		return "", false
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return "", false
	}

	if s.matcher == nil {
		tags := make([]language.Tag, len(s.locales))
		for i, l := range s.locales {
			tags[i] = l.Tag()
		}
		s.matcher = language.NewMatcher(tags)
	}

	_, index, conf := s.matcher.Match(requested)
	if conf < language.High {
		return "", false
	}
	return s.locales[index].String(), true
}
