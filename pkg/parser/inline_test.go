package parser_test

import (
	"strings"
	"testing"

	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// inlineChildren parses source as a single paragraph and returns its
// inline children.
func inlineChildren(t *testing.T, source string) []*mdast.Node {
	t.Helper()
	doc := parseGFM(t, source)
	if len(doc.Children) != 1 || doc.Children[0].Kind != mdast.KindParagraph {
		t.Fatalf("%q: expected a single paragraph", source)
	}
	return doc.Children[0].Children
}

func TestInline_Emphasis(t *testing.T) {
	t.Parallel()

	for _, marker := range []string{"*", "_"} {
		nodes := inlineChildren(t, marker+"word"+marker)
		if len(nodes) != 1 || nodes[0].Kind != mdast.KindEmphasis {
			t.Fatalf("marker %q: expected emphasis, got %+v", marker, nodes)
		}
		if nodes[0].Children[0].Value != "word" {
			t.Fatalf("marker %q: unexpected inner text", marker)
		}
	}
}

func TestInline_Strong(t *testing.T) {
	t.Parallel()

	for _, marker := range []string{"**", "__"} {
		nodes := inlineChildren(t, marker+"word"+marker)
		if len(nodes) != 1 || nodes[0].Kind != mdast.KindStrong {
			t.Fatalf("marker %q: expected strong, got %+v", marker, nodes)
		}
	}
}

func TestInline_EmphasisInContext(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "before *mid* after")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].Value != "before " || nodes[2].Value != " after" {
		t.Fatalf("surrounding text mangled: %+v", nodes)
	}
	if nodes[1].Kind != mdast.KindEmphasis {
		t.Fatalf("expected emphasis in the middle, got %s", nodes[1].Kind)
	}
}

func TestInline_UnterminatedEmphasisDegrades(t *testing.T) {
	t.Parallel()

	// The unmatched run becomes its own text node; the rest of the
	// content is scanned separately and follows it.
	nodes := inlineChildren(t, "*abc")
	if len(nodes) != 2 {
		t.Fatalf("expected 2 text nodes, got %+v", nodes)
	}
	var got strings.Builder
	for _, n := range nodes {
		if n.Kind != mdast.KindText {
			t.Fatalf("expected literal text, got %s", n.Kind)
		}
		got.WriteString(n.Value)
	}
	if got.String() != "*abc" {
		t.Fatalf("expected %q, got %q", "*abc", got.String())
	}
}

func TestInline_Strikethrough(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "~~gone~~")
	if len(nodes) != 1 || nodes[0].Kind != mdast.KindDelete {
		t.Fatalf("expected delete, got %+v", nodes)
	}
	if nodes[0].Children[0].Value != "gone" {
		t.Fatalf("unexpected inner text %q", nodes[0].Children[0].Value)
	}
}

func TestInline_StrikethroughRequiresOption(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, "~~plain~~")
	nodes := doc.Children[0].Children
	for _, n := range nodes {
		if n.Kind == mdast.KindDelete {
			t.Fatal("strikethrough should be off by default")
		}
	}
}

func TestInline_Code(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "run `go test` now")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	code := nodes[1]
	if code.Kind != mdast.KindInlineCode {
		t.Fatalf("expected inline code, got %s", code.Kind)
	}
	if code.Value != "go test" {
		t.Fatalf("unexpected value %q", code.Value)
	}
}

func TestInline_UnterminatedCodeDegrades(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "text `open")
	last := nodes[len(nodes)-1]
	if last.Kind != mdast.KindText || last.Value != "`open" {
		t.Fatalf("expected literal tail, got %+v", last)
	}
}

func TestInline_Link(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "[label](https://example.com)")
	if len(nodes) != 1 || nodes[0].Kind != mdast.KindLink {
		t.Fatalf("expected link, got %+v", nodes)
	}
	link := nodes[0]
	if link.URL != "https://example.com" {
		t.Fatalf("unexpected URL %q", link.URL)
	}
	if link.Children[0].Value != "label" {
		t.Fatalf("unexpected label %q", link.Children[0].Value)
	}
}

func TestInline_LinkNestedBrackets(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "[a [b] c](u)")
	if len(nodes) != 1 || nodes[0].Kind != mdast.KindLink {
		t.Fatalf("balanced inner brackets should parse, got %+v", nodes)
	}
}

func TestInline_BrokenLinkDegrades(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "[no target")
	if nodes[0].Kind != mdast.KindText || nodes[0].Value != "[" {
		t.Fatalf("expected literal bracket first, got %+v", nodes[0])
	}
}

func TestInline_Image(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "![alt text](image.png)")
	if len(nodes) != 1 || nodes[0].Kind != mdast.KindImage {
		t.Fatalf("expected image, got %+v", nodes)
	}
	img := nodes[0]
	if img.URL != "image.png" || img.Alt != "alt text" {
		t.Fatalf("unexpected image fields: url=%q alt=%q", img.URL, img.Alt)
	}
}

func TestInline_BangWithoutBracketIsText(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "wow! indeed")
	var joined string
	for _, n := range nodes {
		if n.Kind != mdast.KindText {
			t.Fatalf("lone bang should stay text, got %s", n.Kind)
		}
		joined += n.Value
	}
	if joined != "wow! indeed" {
		t.Fatalf("expected text preserved, got %q", joined)
	}
}

func TestInline_Escape(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, `\*not emphasis\*`)
	for _, n := range nodes {
		if n.Kind != mdast.KindText {
			t.Fatalf("escaped markers must stay literal, got %s", n.Kind)
		}
	}

	var joined string
	for _, n := range nodes {
		joined += n.Value
	}
	if joined != "*not emphasis*" {
		t.Fatalf("expected unescaped text, got %q", joined)
	}
}

func TestInline_TrailingBackslash(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, `tail\`)
	last := nodes[len(nodes)-1]
	if last.Kind != mdast.KindText || last.Value != `\` {
		t.Fatalf("lone trailing backslash should be literal, got %+v", last)
	}
}

func TestInline_AdjacentConstructs(t *testing.T) {
	t.Parallel()

	nodes := inlineChildren(t, "*a***b**`c`")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != mdast.KindEmphasis ||
		nodes[1].Kind != mdast.KindStrong ||
		nodes[2].Kind != mdast.KindInlineCode {
		t.Fatalf("unexpected kinds: %s, %s, %s", nodes[0].Kind, nodes[1].Kind, nodes[2].Kind)
	}
}
