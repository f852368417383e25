package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/inkwellmd/inkwell/pkg/search"
)

const (
	defaultTermWidth = 100
	snippetIndent    = "     "
)

// ResultFormatter renders search hits for terminal output.
type ResultFormatter struct {
	styles    *Styles
	termWidth int
}

// NewResultFormatter creates a formatter. termWidth <= 0 falls back to
// a sensible default.
func NewResultFormatter(styles *Styles, termWidth int) *ResultFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &ResultFormatter{styles: styles, termWidth: termWidth}
}

// TerminalWidth returns the width of the terminal behind w, or zero
// when w is not a terminal.
func TerminalWidth(w any) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// FormatResults renders a ranked hit list:
//
//	1. Getting Started                                    0.83
//	   /getting-started.html
//	     Install the toolchain, then run the build ...
func (f *ResultFormatter) FormatResults(query string, results []search.Result) string {
	if len(results) == 0 {
		return f.styles.Dim.Render(fmt.Sprintf("No results for %q.", query)) + "\n"
	}

	var builder strings.Builder
	for i, res := range results {
		rank := f.styles.Rank.Render(fmt.Sprintf("%2d.", i+1))
		title := f.styles.Title.Render(res.Title)
		score := f.styles.Score.Render(fmt.Sprintf("%.2f", res.Score))

		line := fmt.Sprintf("%s %s", rank, title)
		pad := f.termWidth - visibleWidth(line) - visibleWidth(score) - 1
		if pad < 2 {
			pad = 2
		}
		builder.WriteString(line + strings.Repeat(" ", pad) + score + "\n")
		builder.WriteString("    " + f.styles.URL.Render(res.URL) + "\n")

		if res.Snippet != "" {
			snippet := f.highlightMatches(res.Snippet, res.Matches)
			builder.WriteString(snippetIndent + f.styles.Snippet.Render(snippet) + "\n")
		}
		if i < len(results)-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

// FormatResultCount renders the trailing "N results" line.
func (f *ResultFormatter) FormatResultCount(n int) string {
	word := "results"
	if n == 1 {
		word = "result"
	}
	return f.styles.Dim.Render(fmt.Sprintf("%d %s", n, word)) + "\n"
}

// highlightMatches emphasizes matched terms inside a snippet. Matching
// is case-insensitive on whole word prefixes so stemless index terms
// still line up with the display text.
func (f *ResultFormatter) highlightMatches(snippet string, matches []string) string {
	if len(matches) == 0 {
		return snippet
	}

	var out strings.Builder
	lower := strings.ToLower(snippet)
	pos := 0
	for pos < len(snippet) {
		next, matchLen := -1, 0
		for _, m := range matches {
			if m == "" {
				continue
			}
			idx := strings.Index(lower[pos:], strings.ToLower(m))
			if idx < 0 {
				continue
			}
			if next == -1 || pos+idx < next {
				next = pos + idx
				matchLen = len(m)
			}
		}
		if next < 0 {
			out.WriteString(snippet[pos:])
			break
		}
		out.WriteString(snippet[pos:next])
		out.WriteString(f.styles.Match.Render(snippet[next : next+matchLen]))
		pos = next + matchLen
	}
	return out.String()
}

// visibleWidth counts display columns, skipping ANSI escape sequences
// that styled rendering introduces.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}
