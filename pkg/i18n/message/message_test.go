package message_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/inkwellmd/inkwell/pkg/i18n/message"
)

func mustParse(t *testing.T, pattern string) *message.Message {
	t.Helper()
	m, err := message.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return m
}

func TestParse_TextOnly(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "Hello world")
	parts := m.Parts()
	if len(parts) != 1 || parts[0].Kind != message.KindText || parts[0].Text != "Hello world" {
		t.Errorf("parts = %+v", parts)
	}
}

func TestParse_Placeholder(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "Hello, {$name}!")
	parts := m.Parts()
	if len(parts) != 3 {
		t.Fatalf("got %d parts", len(parts))
	}
	if parts[1].Kind != message.KindPlaceholder || parts[1].Variable != "name" {
		t.Errorf("placeholder = %+v", parts[1])
	}
	if parts[0].Text != "Hello, " || parts[2].Text != "!" {
		t.Errorf("text parts = %+v", parts)
	}
}

func TestParse_FunctionAnnotation(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "{$name :upper}")
	parts := m.Parts()
	if len(parts) != 1 || parts[0].Variable != "name" || parts[0].Function != "upper" {
		t.Errorf("parts = %+v", parts)
	}
}

func TestParse_Escapes(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `literal \{braces\} and \\ backslash`)
	parts := m.Parts()
	if len(parts) != 1 {
		t.Fatalf("got %d parts", len(parts))
	}
	want := `literal {braces} and \ backslash`
	if parts[0].Text != want {
		t.Errorf("text = %q, want %q", parts[0].Text, want)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{
		"{$unterminated",
		"{no_sigil}",
		"{$}",
		"stray } brace",
		`trailing \`,
		`bad \n escape`,
		"{$x :}",
		"{$x noannotation}",
	} {
		_, err := message.Parse(pattern)
		if err == nil {
			t.Errorf("Parse(%q) succeeded", pattern)
			continue
		}
		var perr *message.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error type %T", pattern, err)
		}
	}
}

func TestVariables(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "{$b} then {$a} then {$b} again")
	if got := m.Variables(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Variables = %v", got)
	}
	if got := mustParse(t, "no vars").Variables(); len(got) != 0 {
		t.Errorf("Variables = %v", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "Hello, {$name}! You have {$count} messages.")
	got := m.Format(map[string]string{"name": "Ada", "count": "3"})
	if got != "Hello, Ada! You have 3 messages." {
		t.Errorf("Format = %q", got)
	}
}

func TestFormat_MissingVariable(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "Hi {$name}")
	if got := m.Format(nil); got != "Hi {$name}" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormat_Functions(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "{$a :upper} {$b :lower} {$c :unknown}")
	got := m.Format(map[string]string{"a": "go", "b": "GO", "c": "Go"})
	if got != "GO go Go" {
		t.Errorf("Format = %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	source := mustParse(t, "Hello, {$name}! Today is {$day}.")

	if issues := message.Validate(source, mustParse(t, "{$day}曜日、{$name}さん")); issues != nil {
		t.Errorf("consistent translation flagged: %v", issues)
	}

	issues := message.Validate(source, mustParse(t, "Hello, {$nom}!"))
	if len(issues) != 3 {
		t.Fatalf("issues = %v", issues)
	}

	var missing, unknown int
	for _, issue := range issues {
		switch issue.Reason {
		case "missing from translation":
			missing++
		case "not present in source message":
			unknown++
		}
	}
	if missing != 2 || unknown != 1 {
		t.Errorf("missing = %d, unknown = %d: %v", missing, unknown, issues)
	}
}
