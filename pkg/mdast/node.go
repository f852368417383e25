// Package mdast defines the Markdown AST: a closed set of block and
// inline node kinds, byte-offset spans into the source text, and a
// visitor for traversal.
//
// Every node reachable from a Document is allocated from the same arena
// as the document itself and shares its lifetime. The tree is immutable
// once Parse returns; concurrent read-only traversal is safe as long as
// the backing arena is not reset.
package mdast

//go:generate stringer -type=NodeKind -trimprefix=Kind

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for block-level and inline-level Markdown elements.
const (
	// Block-level kinds.
	KindParagraph NodeKind = iota
	KindHeading
	KindThematicBreak
	KindCodeBlock
	KindBlockQuote
	KindList
	KindListItem
	KindTable
	KindTableRow
	KindTableCell
	KindHTML
	KindDefinition
	KindFootnoteDefinition

	// Inline-level kinds.
	KindText
	KindEmphasis
	KindStrong
	KindInlineCode
	KindLink
	KindImage
	KindDelete
	KindBreak
	KindFootnoteReference
)

// AlignKind is the alignment of one table column, derived from the
// delimiter row.
type AlignKind uint8

// Table column alignments.
const (
	AlignNone AlignKind = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// TaskState records a GFM task-list checkbox. TaskNone means the item
// carries no checkbox at all.
type TaskState uint8

// Task-list states.
const (
	TaskNone TaskState = iota
	TaskUnchecked
	TaskChecked
)

// Node is one element of the Markdown tree. The node set is closed:
// Kind selects the variant and only that variant's fields are
// meaningful. All nodes and their string fields live in the arena that
// produced the document.
type Node struct {
	Kind NodeKind

	// Span covers the node's source bytes.
	Span Span

	// Children holds child nodes in document order. Inline nodes never
	// contain block nodes.
	Children []*Node

	// Value is the literal content of Text, InlineCode, CodeBlock, and
	// HTML nodes.
	Value string

	// Depth is the heading level, 1 through 6.
	Depth uint8

	// Lang and Meta come from a code fence info string.
	Lang string
	Meta string

	// Ordered, Start, and Spread describe a List. Start is the first
	// ordinal of an ordered list; 0 means unset. Spread is the
	// loose/tight flag and is never computed in the current design.
	Ordered bool
	Start   uint32
	Spread  bool

	// Checked is the task-list state of a ListItem.
	Checked TaskState

	// Align holds per-column alignment for a Table, parallel to the
	// columns of its rows.
	Align []AlignKind

	// URL and Title belong to Link, Image, and Definition nodes.
	URL   string
	Title string

	// Alt is the alternative text of an Image.
	Alt string

	// Identifier names a Definition, FootnoteDefinition, or
	// FootnoteReference.
	Identifier string
}

// IsBlock returns true for block-level kinds.
func (n *Node) IsBlock() bool {
	return n.Kind <= KindFootnoteDefinition
}

// IsInline returns true for inline-level kinds.
func (n *Node) IsInline() bool {
	return n.Kind >= KindText
}

// Document is the result of one parse: the ordered top-level blocks and
// a span covering the whole source. It is owned by whichever caller
// holds the backing arena.
type Document struct {
	Children []*Node
	Span     Span
}
