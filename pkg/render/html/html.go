// Package html renders an mdast document tree to an HTML fragment.
//
// The renderer is a mdast.Visitor; each node kind maps to a fixed tag
// shape, inline text and attribute values are entity-escaped, and URLs
// get a narrower escaping that keeps them clickable. Output is a
// fragment, not a full page; page shells are the site generator's job.
package html

import (
	"strconv"
	"strings"

	"github.com/inkwellmd/inkwell/pkg/langdetect"
	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// Options controls the renderer's output shape.
type Options struct {
	// XHTML switches void elements to self-closing form (<hr />).
	XHTML bool
	// SoftBreak is emitted between flow elements.
	SoftBreak string
	// HardBreak is emitted for explicit break nodes.
	HardBreak string
	// Sanitize escapes raw HTML blocks instead of passing them through.
	Sanitize bool
	// DetectLanguage runs language detection on fenced code blocks
	// that carry no info string, so they still get a language-* class.
	DetectLanguage bool
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		SoftBreak: "\n",
		HardBreak: "<br>\n",
	}
}

// Renderer converts documents to HTML. A Renderer is reusable but not
// safe for concurrent use.
type Renderer struct {
	mdast.BaseVisitor
	options Options
	buf     strings.Builder
}

// New creates a renderer with default options.
func New() *Renderer {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a renderer with the given options.
func NewWithOptions(options Options) *Renderer {
	r := &Renderer{options: options}
	r.Self = r
	return r
}

// Render returns the HTML fragment for doc. Earlier output is
// discarded, so one renderer can serve many documents in sequence.
func (r *Renderer) Render(doc *mdast.Document) string {
	r.buf.Reset()
	mdast.VisitDocument(r, doc)
	return r.buf.String()
}

func (r *Renderer) write(s string) {
	r.buf.WriteString(s)
}

// writeEscaped entity-escapes text content and attribute values.
func (r *Renderer) writeEscaped(s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			r.buf.WriteString("&amp;")
		case '<':
			r.buf.WriteString("&lt;")
		case '>':
			r.buf.WriteString("&gt;")
		case '"':
			r.buf.WriteString("&quot;")
		case '\'':
			r.buf.WriteString("&#39;")
		default:
			r.buf.WriteByte(s[i])
		}
	}
}

// writeURLEscaped escapes href/src values: ampersands become entities,
// the rest percent-encodes only what would break the attribute.
func (r *Renderer) writeURLEscaped(s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			r.buf.WriteString("&amp;")
		case '<':
			r.buf.WriteString("%3C")
		case '>':
			r.buf.WriteString("%3E")
		case '"':
			r.buf.WriteString("%22")
		case ' ':
			r.buf.WriteString("%20")
		default:
			r.buf.WriteByte(s[i])
		}
	}
}

func (r *Renderer) VisitParagraph(n *mdast.Node) {
	r.write("<p>")
	r.VisitChildren(n)
	r.write("</p>\n")
}

func (r *Renderer) VisitHeading(n *mdast.Node) {
	depth := n.Depth
	if depth < 1 || depth > 6 {
		depth = 6
	}
	tag := "h" + strconv.Itoa(int(depth))
	r.write("<" + tag + ">")
	r.VisitChildren(n)
	r.write("</" + tag + ">\n")
}

func (r *Renderer) VisitThematicBreak(n *mdast.Node) {
	if r.options.XHTML {
		r.write("<hr />\n")
	} else {
		r.write("<hr>\n")
	}
}

func (r *Renderer) VisitBlockQuote(n *mdast.Node) {
	r.write("<blockquote>\n")
	r.VisitChildren(n)
	r.write("</blockquote>\n")
}

func (r *Renderer) VisitList(n *mdast.Node) {
	tag := "ul"
	if n.Ordered {
		tag = "ol"
	}
	if n.Ordered && n.Start > 1 {
		r.write("<ol start=\"" + strconv.FormatUint(uint64(n.Start), 10) + "\">\n")
	} else {
		r.write("<" + tag + ">\n")
	}
	r.VisitChildren(n)
	r.write("</" + tag + ">\n")
}

func (r *Renderer) VisitListItem(n *mdast.Node) {
	r.write("<li>")
	switch n.Checked {
	case mdast.TaskChecked:
		r.write("<input type=\"checkbox\" checked disabled> ")
	case mdast.TaskUnchecked:
		r.write("<input type=\"checkbox\" disabled> ")
	case mdast.TaskNone:
	}
	r.VisitChildren(n)
	r.write("</li>\n")
}

func (r *Renderer) VisitCodeBlock(n *mdast.Node) {
	lang := n.Lang
	if lang == "" && r.options.DetectLanguage {
		lang = langdetect.Detect([]byte(n.Value))
	}

	r.write("<pre><code")
	if lang != "" {
		r.write(" class=\"language-")
		r.writeEscaped(lang)
		r.write("\"")
	}
	r.write(">")
	r.writeEscaped(n.Value)
	r.write("</code></pre>\n")
}

func (r *Renderer) VisitHTML(n *mdast.Node) {
	if r.options.Sanitize {
		r.writeEscaped(n.Value)
	} else {
		r.write(n.Value)
	}
	r.write("\n")
}

func (r *Renderer) VisitTable(n *mdast.Node) {
	r.write("<table>\n")
	for i, row := range n.Children {
		if i == 0 {
			r.write("<thead>\n")
		} else if i == 1 {
			r.write("<tbody>\n")
		}
		r.renderTableRow(row, i == 0)
		if i == 0 {
			r.write("</thead>\n")
		}
	}
	if len(n.Children) > 0 {
		r.write("</tbody>\n")
	}
	r.write("</table>\n")
}

func (r *Renderer) renderTableRow(row *mdast.Node, header bool) {
	tag := "td"
	if header {
		tag = "th"
	}
	r.write("<tr>\n")
	for _, cell := range row.Children {
		r.write("<" + tag + ">")
		r.VisitChildren(cell)
		r.write("</" + tag + ">\n")
	}
	r.write("</tr>\n")
}

// VisitTableRow and VisitTableCell are unreachable through VisitTable,
// which renders its rows directly, but stay correct for callers that
// visit a detached row.
func (r *Renderer) VisitTableRow(n *mdast.Node) {
	r.renderTableRow(n, false)
}

func (r *Renderer) VisitTableCell(n *mdast.Node) {
	r.VisitChildren(n)
}

func (r *Renderer) VisitDefinition(n *mdast.Node) {
	// Link definitions are consumed by reference resolution, never
	// rendered.
}

func (r *Renderer) VisitFootnoteDefinition(n *mdast.Node) {
	r.write("<div id=\"fn-")
	r.writeEscaped(n.Identifier)
	r.write("\" class=\"footnote\">\n")
	r.VisitChildren(n)
	r.write("<a href=\"#fnref-")
	r.writeEscaped(n.Identifier)
	r.write("\">↩</a>\n</div>\n")
}

func (r *Renderer) VisitText(n *mdast.Node) {
	r.writeEscaped(n.Value)
}

func (r *Renderer) VisitEmphasis(n *mdast.Node) {
	r.write("<em>")
	r.VisitChildren(n)
	r.write("</em>")
}

func (r *Renderer) VisitStrong(n *mdast.Node) {
	r.write("<strong>")
	r.VisitChildren(n)
	r.write("</strong>")
}

func (r *Renderer) VisitInlineCode(n *mdast.Node) {
	r.write("<code>")
	r.writeEscaped(n.Value)
	r.write("</code>")
}

func (r *Renderer) VisitBreak(n *mdast.Node) {
	r.write(r.options.HardBreak)
}

func (r *Renderer) VisitLink(n *mdast.Node) {
	r.write("<a href=\"")
	r.writeURLEscaped(n.URL)
	r.write("\"")
	if n.Title != "" {
		r.write(" title=\"")
		r.writeEscaped(n.Title)
		r.write("\"")
	}
	r.write(">")
	r.VisitChildren(n)
	r.write("</a>")
}

func (r *Renderer) VisitImage(n *mdast.Node) {
	r.write("<img src=\"")
	r.writeURLEscaped(n.URL)
	r.write("\" alt=\"")
	r.writeEscaped(n.Alt)
	r.write("\"")
	if n.Title != "" {
		r.write(" title=\"")
		r.writeEscaped(n.Title)
		r.write("\"")
	}
	if r.options.XHTML {
		r.write(" />")
	} else {
		r.write(">")
	}
}

func (r *Renderer) VisitDelete(n *mdast.Node) {
	r.write("<del>")
	r.VisitChildren(n)
	r.write("</del>")
}

func (r *Renderer) VisitFootnoteReference(n *mdast.Node) {
	r.write("<sup><a href=\"#fn-")
	r.writeEscaped(n.Identifier)
	r.write("\" id=\"fnref-")
	r.writeEscaped(n.Identifier)
	r.write("\">")
	r.writeEscaped(n.Identifier)
	r.write("</a></sup>")
}
