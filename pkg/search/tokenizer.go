package search

import (
	"strings"
	"unicode"
)

// stopwords are dropped at index time. Query tokenization keeps them so
// a phrase query still lines up token-for-token with user input.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"or": {}, "that": {}, "the": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {}, "this": {}, "but": {}, "they": {},
	"have": {}, "had": {}, "what": {}, "when": {}, "where": {},
	"who": {}, "which": {}, "why": {}, "how": {}, "all": {},
	"each": {}, "every": {}, "both": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "so": {},
	"than": {}, "too": {}, "very": {}, "can": {}, "just": {},
	"should": {}, "now": {}, "if": {}, "you": {}, "your": {},
}

// Tokenize splits text into index terms: lowercase, split on anything
// that is not alphanumeric or underscore, stopwords and one-character
// terms dropped. CJK characters become single-character tokens so that
// unsegmented text stays searchable.
func Tokenize(text string) []string {
	return tokenize(text, true)
}

// TokenizeQuery splits a query string the same way but keeps stopwords
// and short tokens.
func TokenizeQuery(text string) []string {
	return tokenize(text, false)
}

func tokenize(text string, strict bool) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		token := strings.ToLower(current.String())
		current.Reset()
		if strict {
			if _, stop := stopwords[token]; stop || len(token) < 2 {
				return
			}
		}
		tokens = append(tokens, token)
	}

	for _, r := range text {
		switch {
		case isCJK(r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// isCJK reports whether r falls in the CJK ideograph, kana, or hangul
// ranges.
func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Extension A
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // Hangul Syllables
		return true
	}
	return false
}
