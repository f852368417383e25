package parser

import (
	"strconv"
	"strings"

	"github.com/inkwellmd/inkwell/pkg/arena"
	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// parseHeading consumes an ATX heading. The prefix run sets the depth;
// the remainder of the line, with any trailing hash run and whitespace
// stripped, is inline-parsed.
func (p *Parser) parseHeading(start int) *mdast.Node {
	depth := uint8(0)
	for c, ok := p.peek(); ok && c == '#'; c, ok = p.peek() {
		depth++
		p.pos++
	}

	p.skipWhitespace()
	contentStart := p.pos

	for c, ok := p.peek(); ok && c != '\n'; c, ok = p.peek() {
		p.pos++
	}
	content := p.source[contentStart:p.pos]
	content = strings.TrimRight(content, " \t")
	content = strings.TrimRight(content, "#")
	content = strings.TrimRight(content, " \t")

	if c, ok := p.peek(); ok && c == '\n' {
		p.pos++
	}

	var children []*mdast.Node
	if content != "" {
		children = p.parseInline(content, contentStart)
	}

	return arena.Alloc(p.arena, mdast.Node{
		Kind:     mdast.KindHeading,
		Depth:    depth,
		Children: children,
		Span:     mdast.NewSpan(uint32(start), uint32(p.pos)),
	})
}

// parseThematicBreak consumes the rest of the break line.
func (p *Parser) parseThematicBreak(start int) *mdast.Node {
	p.consumeLine()
	return arena.Alloc(p.arena, mdast.Node{
		Kind: mdast.KindThematicBreak,
		Span: mdast.NewSpan(uint32(start), uint32(p.pos)),
	})
}

// parseFencedCode consumes a fenced code block. The info string after
// the fence splits on the first space into lang and meta. Content runs
// until a fence run at least as long as the opener; a missing closing
// fence runs content to end of input.
func (p *Parser) parseFencedCode(start int) *mdast.Node {
	fenceChar, _ := p.peek()
	fenceLen := 0
	for c, ok := p.peek(); ok && c == fenceChar; c, ok = p.peek() {
		fenceLen++
		p.pos++
	}

	p.skipWhitespace()
	infoStart := p.pos
	for c, ok := p.peek(); ok && c != '\n'; c, ok = p.peek() {
		p.pos++
	}
	info := strings.TrimSpace(p.source[infoStart:p.pos])

	var lang, meta string
	if info != "" {
		if space := strings.IndexByte(info, ' '); space >= 0 {
			lang = info[:space]
			meta = info[space+1:]
		} else {
			lang = info
		}
	}

	if c, ok := p.peek(); ok && c == '\n' {
		p.pos++
	}

	contentStart := p.pos
	contentEnd := contentStart
	for !p.isAtEnd() {
		lineStart := p.pos

		closingLen := 0
		for c, ok := p.peek(); ok && c == fenceChar; c, ok = p.peek() {
			closingLen++
			p.pos++
		}
		if closingLen >= fenceLen {
			p.consumeLine()
			contentEnd = lineStart
			break
		}

		p.pos = lineStart
		p.consumeLine()
		contentEnd = p.pos
	}

	return arena.Alloc(p.arena, mdast.Node{
		Kind:  mdast.KindCodeBlock,
		Lang:  lang,
		Meta:  meta,
		Value: p.source[contentStart:contentEnd],
		Span:  mdast.NewSpan(uint32(start), uint32(p.pos)),
	})
}

// parseTable consumes a pipe table. Row 0 is the header; the delimiter
// row supplies per-column alignment; body rows accumulate while lines
// keep containing a pipe.
func (p *Parser) parseTable(start int) *mdast.Node {
	headerCells := splitTableRow(p.consumeLine())

	align := arena.NewSlice[mdast.AlignKind](p.arena)
	for _, cell := range strings.Split(p.consumeLine(), "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		startsColon := strings.HasPrefix(cell, ":")
		endsColon := strings.HasSuffix(cell, ":")
		switch {
		case startsColon && endsColon:
			align.Push(mdast.AlignCenter)
		case startsColon:
			align.Push(mdast.AlignLeft)
		case endsColon:
			align.Push(mdast.AlignRight)
		default:
			align.Push(mdast.AlignNone)
		}
	}

	rows := [][]string{headerCells}
	for !p.isAtEnd() {
		lineStart := p.pos
		p.skipWhitespace()
		if c, ok := p.peek(); !ok || c == '\n' {
			p.pos = lineStart
			break
		}
		p.pos = lineStart
		if !strings.Contains(p.currentLine(), "|") {
			break
		}
		rows = append(rows, splitTableRow(p.consumeLine()))
	}

	children := arena.NewSliceWithCapacity[*mdast.Node](p.arena, len(rows))
	for _, cells := range rows {
		rowChildren := arena.NewSliceWithCapacity[*mdast.Node](p.arena, len(cells))
		for _, cell := range cells {
			rowChildren.Push(arena.Alloc(p.arena, mdast.Node{
				Kind:     mdast.KindTableCell,
				Children: p.parseInline(cell, 0),
			}))
		}
		children.Push(arena.Alloc(p.arena, mdast.Node{
			Kind:     mdast.KindTableRow,
			Children: rowChildren.Items(),
		}))
	}

	return arena.Alloc(p.arena, mdast.Node{
		Kind:     mdast.KindTable,
		Align:    align.Items(),
		Children: children.Items(),
		Span:     mdast.NewSpan(uint32(start), uint32(p.pos)),
	})
}

// splitTableRow splits a table line into trimmed cell strings, dropping
// the outer pipes.
func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// parseList consumes a list. Items at the baseline indentation are
// siblings; a deeper line that is itself a list marker becomes a nested
// list attached to the last item; other deeper lines are consumed and
// discarded. A line indented less than the baseline ends the list.
func (p *Parser) parseList(start int) (*mdast.Node, error) {
	if err := p.checkDepth(); err != nil {
		return nil, err
	}

	baseline := p.calcIndentation(start)

	firstLine := strings.TrimLeft(p.currentLine(), " \t")
	ordered := len(firstLine) > 0 && firstLine[0] >= '0' && firstLine[0] <= '9'
	var listStart uint32
	if ordered {
		digits := 0
		for digits < len(firstLine) && firstLine[digits] >= '0' && firstLine[digits] <= '9' {
			digits++
		}
		if n, err := strconv.ParseUint(firstLine[:digits], 10, 32); err == nil {
			listStart = uint32(n)
		}
	}

	items := arena.NewSlice[*mdast.Node](p.arena)

	for !p.isAtEnd() {
		lineStart := p.pos
		p.skipWhitespace()
		if c, ok := p.peek(); !ok || c == '\n' {
			p.pos = lineStart
			break
		}

		indent := p.calcIndentation(lineStart)
		if indent < baseline {
			p.pos = lineStart
			break
		}

		if indent > baseline {
			p.pos = lineStart
			if p.atList() {
				p.depth++
				nested, err := p.parseList(lineStart)
				p.depth--
				if err != nil {
					return nil, err
				}
				if nested != nil && items.Len() > 0 {
					last := items.At(items.Len() - 1)
					last.Children = appendChild(p.arena, last.Children, nested)
				}
			} else {
				// Continuation content is not supported; skip the line
				// so the loop keeps progressing.
				p.consumeLine()
			}
			continue
		}

		p.pos = lineStart
		trimmed := strings.TrimLeft(p.currentLine(), " \t")

		content, checked, isItem := p.matchListItem(trimmed, ordered)
		if !isItem {
			break
		}

		p.consumeLine()

		para := arena.Alloc(p.arena, mdast.Node{
			Kind:     mdast.KindParagraph,
			Children: p.parseInline(content, 0),
		})
		items.Push(arena.Alloc(p.arena, mdast.Node{
			Kind:     mdast.KindListItem,
			Checked:  checked,
			Children: arena.AllocSlice(p.arena, []*mdast.Node{para}),
		}))
	}

	return arena.Alloc(p.arena, mdast.Node{
		Kind:     mdast.KindList,
		Ordered:  ordered,
		Start:    listStart,
		Children: items.Items(),
		Span:     mdast.NewSpan(uint32(start), uint32(p.pos)),
	}), nil
}

// matchListItem checks whether a trimmed line is an item of the current
// list type and, if so, extracts its content and task state.
func (p *Parser) matchListItem(trimmed string, ordered bool) (content string, checked mdast.TaskState, ok bool) {
	if strings.HasPrefix(trimmed, "- ") ||
		strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "+ ") {
		content = trimmed[2:]
		if p.options.taskListsEnabled() {
			content, checked = stripTaskMarker(content)
		}
		return content, checked, true
	}

	if !ordered {
		return "", mdast.TaskNone, false
	}

	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits >= len(trimmed) {
		return "", mdast.TaskNone, false
	}
	punct := trimmed[digits]
	if (punct != '.' && punct != ')') || digits+1 >= len(trimmed) || trimmed[digits+1] != ' ' {
		return "", mdast.TaskNone, false
	}
	return trimmed[digits+2:], mdast.TaskNone, true
}

// stripTaskMarker recognizes a leading [x]/[X]/[ ] checkbox followed by
// a space or end of content.
func stripTaskMarker(content string) (string, mdast.TaskState) {
	if len(content) < 3 {
		return content, mdast.TaskNone
	}
	head := content[:3]

	var state mdast.TaskState
	switch head {
	case "[x]", "[X]":
		state = mdast.TaskChecked
	case "[ ]":
		state = mdast.TaskUnchecked
	default:
		return content, mdast.TaskNone
	}

	if len(content) == 3 {
		return "", state
	}
	if content[3] == ' ' {
		return content[4:], state
	}
	return content, mdast.TaskNone
}

// parseParagraph accumulates consecutive non-blank lines that do not
// start a higher-priority block, then inline-parses the trimmed text.
// All-blank accumulation yields no node.
func (p *Parser) parseParagraph(start int) *mdast.Node {
	contentEnd := start

	for !p.isAtEnd() {
		lineStart := p.pos
		p.skipWhitespace()
		if c, ok := p.peek(); !ok || c == '\n' {
			p.pos = lineStart
			break
		}
		p.pos = lineStart

		if p.atHeading() || p.atThematicBreak() || p.atFencedCode() ||
			(p.options.tablesEnabled() && p.atTable()) || p.atList() {
			break
		}

		p.consumeLine()
		contentEnd = p.pos
	}

	content := strings.TrimSpace(p.source[start:contentEnd])
	if content == "" {
		return nil
	}

	return arena.Alloc(p.arena, mdast.Node{
		Kind:     mdast.KindParagraph,
		Children: p.parseInline(content, start),
		Span:     mdast.NewSpan(uint32(start), uint32(contentEnd)),
	})
}

// appendChild extends an arena-backed child slice by one node. The old
// backing array stays in the arena; reclaim happens only at Reset.
func appendChild(a *arena.Arena, children []*mdast.Node, child *mdast.Node) []*mdast.Node {
	if len(children) < cap(children) {
		return append(children, child)
	}
	grown := arena.MakeSlice[*mdast.Node](a, len(children), len(children)+1)
	copy(grown, children)
	return append(grown, child)
}
