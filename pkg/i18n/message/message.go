// Package message parses and formats translation message patterns.
//
// A pattern is literal text with placeholders of the form {$name} or
// {$name :function}. Backslash escapes \\, \{ and \} produce the
// literal character. The Validate function compares a translated
// pattern against its source to catch placeholder drift.
package message

import (
	"fmt"
	"sort"
	"strings"
)

// PartKind discriminates pattern parts.
type PartKind uint8

const (
	// KindText is a literal text run.
	KindText PartKind = iota
	// KindPlaceholder is a {$variable} reference.
	KindPlaceholder
)

// Part is one segment of a parsed pattern.
type Part struct {
	Kind PartKind

	// Text holds the literal run for KindText parts.
	Text string

	// Variable is the placeholder name, without the $ sigil.
	Variable string
	// Function is the optional annotation name, without the : sigil.
	Function string
}

// Message is a parsed pattern.
type Message struct {
	parts []Part
}

// ParseError reports a syntax error with its byte offset in the
// pattern.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("message syntax error at offset %d: %s", e.Offset, e.Reason)
}

// Parse parses a message pattern.
func Parse(pattern string) (*Message, error) {
	var (
		parts []Part
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, Part{Kind: KindText, Text: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(pattern) {
		switch pattern[i] {
		case '\\':
			if i+1 >= len(pattern) {
				return nil, &ParseError{Offset: i, Reason: "trailing backslash"}
			}
			next := pattern[i+1]
			if next != '\\' && next != '{' && next != '}' {
				return nil, &ParseError{Offset: i, Reason: fmt.Sprintf("unknown escape \\%c", next)}
			}
			text.WriteByte(next)
			i += 2
		case '{':
			flush()
			part, consumed, err := parsePlaceholder(pattern[i:], i)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
			i += consumed
		case '}':
			return nil, &ParseError{Offset: i, Reason: "unmatched }"}
		default:
			text.WriteByte(pattern[i])
			i++
		}
	}
	flush()
	return &Message{parts: parts}, nil
}

// parsePlaceholder parses {$name} or {$name :function} at the start of
// s. base is the offset of s in the full pattern, for error positions.
func parsePlaceholder(s string, base int) (Part, int, error) {
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return Part{}, 0, &ParseError{Offset: base, Reason: "unterminated placeholder"}
	}
	inner := strings.TrimSpace(s[1:end])

	name := inner
	function := ""
	if sp := strings.IndexByte(inner, ' '); sp >= 0 {
		name = inner[:sp]
		rest := strings.TrimSpace(inner[sp+1:])
		if !strings.HasPrefix(rest, ":") || len(rest) < 2 {
			return Part{}, 0, &ParseError{Offset: base, Reason: "expected :function annotation"}
		}
		function = rest[1:]
		if !validName(function) {
			return Part{}, 0, &ParseError{Offset: base, Reason: fmt.Sprintf("invalid function name %q", function)}
		}
	}

	if !strings.HasPrefix(name, "$") || len(name) < 2 {
		return Part{}, 0, &ParseError{Offset: base, Reason: "placeholder must name a $variable"}
	}
	variable := name[1:]
	if !validName(variable) {
		return Part{}, 0, &ParseError{Offset: base, Reason: fmt.Sprintf("invalid variable name %q", variable)}
	}

	return Part{Kind: KindPlaceholder, Variable: variable, Function: function}, end + 1, nil
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9', c == '_', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Parts returns the parsed segments in order.
func (m *Message) Parts() []Part {
	return m.parts
}

// Variables returns the distinct placeholder names, sorted.
func (m *Message) Variables() []string {
	seen := make(map[string]struct{})
	for _, p := range m.parts {
		if p.Kind == KindPlaceholder {
			seen[p.Variable] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format substitutes vars into the pattern. Placeholders with no
// binding render as {$name} so missing values are visible in output.
func (m *Message) Format(vars map[string]string) string {
	var out strings.Builder
	for _, p := range m.parts {
		switch p.Kind {
		case KindText:
			out.WriteString(p.Text)
		case KindPlaceholder:
			if v, ok := vars[p.Variable]; ok {
				out.WriteString(applyFunction(v, p.Function))
			} else {
				out.WriteString("{$" + p.Variable + "}")
			}
		}
	}
	return out.String()
}

// applyFunction applies a placeholder annotation to a bound value.
// Unknown functions pass the value through unchanged.
func applyFunction(value, function string) string {
	switch function {
	case "upper":
		return strings.ToUpper(value)
	case "lower":
		return strings.ToLower(value)
	default:
		return value
	}
}
