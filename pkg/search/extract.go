package search

import (
	"strings"

	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// Extractor pulls searchable fields out of a parsed document: the
// first level-one heading becomes the title, every heading's text is
// collected separately, inline text and inline code join the body, and
// fenced code blocks land in the code field.
type Extractor struct {
	mdast.BaseVisitor

	title    string
	headings []string
	body     strings.Builder
	code     []string

	heading   strings.Builder
	inHeading bool
}

// NewExtractor creates an extractor ready for one document.
func NewExtractor() *Extractor {
	e := &Extractor{}
	e.Self = e
	return e
}

// Extract walks doc and accumulates its fields. Calling Extract on
// several documents merges them; use one extractor per document.
func (e *Extractor) Extract(doc *mdast.Document) {
	mdast.VisitDocument(e, doc)
}

// Document packages the extracted fields under the given id and url.
func (e *Extractor) Document(id, url string) Document {
	return Document{
		ID:       id,
		Title:    e.title,
		URL:      url,
		Body:     e.body.String(),
		Headings: e.headings,
		Code:     e.code,
	}
}

// Title returns the extracted title, empty when the document has no
// level-one heading.
func (e *Extractor) Title() string { return e.title }

// Headings returns the collected heading texts in document order.
func (e *Extractor) Headings() []string { return e.headings }

// Body returns the accumulated body text.
func (e *Extractor) Body() string { return e.body.String() }

func (e *Extractor) VisitHeading(n *mdast.Node) {
	e.inHeading = true
	e.heading.Reset()
	e.VisitChildren(n)
	e.inHeading = false

	text := e.heading.String()
	if text == "" {
		return
	}
	if n.Depth == 1 && e.title == "" {
		e.title = text
	}
	e.headings = append(e.headings, text)
}

func (e *Extractor) VisitText(n *mdast.Node) {
	e.collect(n.Value)
}

func (e *Extractor) VisitInlineCode(n *mdast.Node) {
	e.collect(n.Value)
}

func (e *Extractor) VisitCodeBlock(n *mdast.Node) {
	e.code = append(e.code, n.Value)
}

func (e *Extractor) collect(text string) {
	if e.inHeading {
		e.heading.WriteString(text)
		return
	}
	if e.body.Len() > 0 {
		e.body.WriteByte(' ')
	}
	e.body.WriteString(text)
}
