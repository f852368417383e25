package mdast

// Visitor has one method per node kind. Embed BaseVisitor to get a
// default implementation that simply walks children, then override only
// the kinds the visitor cares about.
type Visitor interface {
	VisitParagraph(n *Node)
	VisitHeading(n *Node)
	VisitThematicBreak(n *Node)
	VisitCodeBlock(n *Node)
	VisitBlockQuote(n *Node)
	VisitList(n *Node)
	VisitListItem(n *Node)
	VisitTable(n *Node)
	VisitTableRow(n *Node)
	VisitTableCell(n *Node)
	VisitHTML(n *Node)
	VisitDefinition(n *Node)
	VisitFootnoteDefinition(n *Node)
	VisitText(n *Node)
	VisitEmphasis(n *Node)
	VisitStrong(n *Node)
	VisitInlineCode(n *Node)
	VisitLink(n *Node)
	VisitImage(n *Node)
	VisitDelete(n *Node)
	VisitBreak(n *Node)
	VisitFootnoteReference(n *Node)
}

// Visit dispatches n to the visitor method matching its kind.
func Visit(v Visitor, n *Node) {
	switch n.Kind {
	case KindParagraph:
		v.VisitParagraph(n)
	case KindHeading:
		v.VisitHeading(n)
	case KindThematicBreak:
		v.VisitThematicBreak(n)
	case KindCodeBlock:
		v.VisitCodeBlock(n)
	case KindBlockQuote:
		v.VisitBlockQuote(n)
	case KindList:
		v.VisitList(n)
	case KindListItem:
		v.VisitListItem(n)
	case KindTable:
		v.VisitTable(n)
	case KindTableRow:
		v.VisitTableRow(n)
	case KindTableCell:
		v.VisitTableCell(n)
	case KindHTML:
		v.VisitHTML(n)
	case KindDefinition:
		v.VisitDefinition(n)
	case KindFootnoteDefinition:
		v.VisitFootnoteDefinition(n)
	case KindText:
		v.VisitText(n)
	case KindEmphasis:
		v.VisitEmphasis(n)
	case KindStrong:
		v.VisitStrong(n)
	case KindInlineCode:
		v.VisitInlineCode(n)
	case KindLink:
		v.VisitLink(n)
	case KindImage:
		v.VisitImage(n)
	case KindDelete:
		v.VisitDelete(n)
	case KindBreak:
		v.VisitBreak(n)
	case KindFootnoteReference:
		v.VisitFootnoteReference(n)
	}
}

// VisitDocument dispatches every top-level block of doc to v.
func VisitDocument(v Visitor, doc *Document) {
	for _, child := range doc.Children {
		Visit(v, child)
	}
}

// BaseVisitor implements every Visitor method by visiting the node's
// children, so a concrete visitor need only override the kinds it cares
// about. The Self field must point back at the outer visitor before the
// first dispatch, otherwise overridden methods are skipped for nested
// nodes.
type BaseVisitor struct {
	Self Visitor
}

// VisitChildren dispatches each child of n through the outer visitor.
func (b *BaseVisitor) VisitChildren(n *Node) {
	for _, child := range n.Children {
		Visit(b.Self, child)
	}
}

func (b *BaseVisitor) VisitParagraph(n *Node)          { b.VisitChildren(n) }
func (b *BaseVisitor) VisitHeading(n *Node)            { b.VisitChildren(n) }
func (b *BaseVisitor) VisitThematicBreak(n *Node)      { b.VisitChildren(n) }
func (b *BaseVisitor) VisitCodeBlock(n *Node)          { b.VisitChildren(n) }
func (b *BaseVisitor) VisitBlockQuote(n *Node)         { b.VisitChildren(n) }
func (b *BaseVisitor) VisitList(n *Node)               { b.VisitChildren(n) }
func (b *BaseVisitor) VisitListItem(n *Node)           { b.VisitChildren(n) }
func (b *BaseVisitor) VisitTable(n *Node)              { b.VisitChildren(n) }
func (b *BaseVisitor) VisitTableRow(n *Node)           { b.VisitChildren(n) }
func (b *BaseVisitor) VisitTableCell(n *Node)          { b.VisitChildren(n) }
func (b *BaseVisitor) VisitHTML(n *Node)               { b.VisitChildren(n) }
func (b *BaseVisitor) VisitDefinition(n *Node)         { b.VisitChildren(n) }
func (b *BaseVisitor) VisitFootnoteDefinition(n *Node) { b.VisitChildren(n) }
func (b *BaseVisitor) VisitText(n *Node)               { b.VisitChildren(n) }
func (b *BaseVisitor) VisitEmphasis(n *Node)           { b.VisitChildren(n) }
func (b *BaseVisitor) VisitStrong(n *Node)             { b.VisitChildren(n) }
func (b *BaseVisitor) VisitInlineCode(n *Node)         { b.VisitChildren(n) }
func (b *BaseVisitor) VisitLink(n *Node)               { b.VisitChildren(n) }
func (b *BaseVisitor) VisitImage(n *Node)              { b.VisitChildren(n) }
func (b *BaseVisitor) VisitDelete(n *Node)             { b.VisitChildren(n) }
func (b *BaseVisitor) VisitBreak(n *Node)              { b.VisitChildren(n) }
func (b *BaseVisitor) VisitFootnoteReference(n *Node)  { b.VisitChildren(n) }
