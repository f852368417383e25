package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inkwellmd/inkwell/pkg/sitegen"
)

const (
	summaryDividerWidth = 40
	wordPage            = "page"
	wordPages           = "pages"
)

// FormatBuildOneLine formats build statistics as a single line.
// Example: "Built 12 pages (3 written) in 48ms, 12 documents indexed".
func (s *Styles) FormatBuildOneLine(result sitegen.Result) string {
	pageWord := wordPages
	if result.Pages == 1 {
		pageWord = wordPage
	}

	var parts []string
	parts = append(parts, s.Success.Render(fmt.Sprintf("Built %d %s", result.Pages, pageWord)))
	if result.PagesWritten < result.Pages {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("(%d written)", result.PagesWritten)))
	}
	parts = append(parts, s.Dim.Render("in "+formatDuration(result.Duration)))

	line := strings.Join(parts, " ")
	if result.IndexDocs > 0 {
		line += s.Dim.Render(fmt.Sprintf(", %d documents indexed", result.IndexDocs))
	}
	return line + "\n"
}

// FormatBuildSummary formats build statistics as a summary block.
func (s *Styles) FormatBuildSummary(result sitegen.Result) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Build summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Pages rendered:    " +
		s.SummaryValue.Render(strconv.Itoa(result.Pages)) + "\n")
	builder.WriteString("  Pages written:     " +
		s.SummaryValue.Render(strconv.Itoa(result.PagesWritten)) + "\n")
	builder.WriteString("  Documents indexed: " +
		s.SummaryValue.Render(strconv.Itoa(result.IndexDocs)) + "\n")
	builder.WriteString("  Duration:          " +
		s.SummaryValue.Render(formatDuration(result.Duration)) + "\n")

	builder.WriteString("\n")
	builder.WriteString(s.Success.Render("Build succeeded"))
	builder.WriteString("\n")

	return builder.String()
}

// formatDuration rounds so short builds still show a nonzero value.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(100 * time.Microsecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
