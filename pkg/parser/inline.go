package parser

import (
	"strings"

	"github.com/inkwellmd/inkwell/pkg/arena"
	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// isSpecialByte reports whether c can open an inline construct. All
// detection operates on ASCII bytes; UTF-8 continuation bytes are
// >= 0x80 and never match, so multi-byte sequences pass through text
// runs untouched.
func isSpecialByte(c byte) bool {
	switch c {
	case '*', '_', '`', '[', '!', '~', '\\':
		return true
	default:
		return false
	}
}

// parseInline resolves inline constructs within one contiguous text
// slice. offset is the slice's absolute byte position in the source,
// used for span computation. Every structural mismatch degrades to
// literal text, so the scanner always progresses and never fails.
func (p *Parser) parseInline(content string, offset int) []*mdast.Node {
	children := arena.NewSlice[*mdast.Node](p.arena)
	pos := 0

	for pos < len(content) {
		runStart := pos
		for pos < len(content) && !isSpecialByte(content[pos]) {
			pos++
		}
		if pos > runStart {
			children.Push(p.textNode(content[runStart:pos], offset+runStart, offset+pos))
		}
		if pos >= len(content) {
			break
		}

		switch c := content[pos]; c {
		case '\\':
			if pos+1 < len(content) {
				children.Push(p.textNode(content[pos+1:pos+2], offset+pos, offset+pos+2))
				pos += 2
			} else {
				children.Push(p.textNode(content[pos:pos+1], offset+pos, offset+pos+1))
				pos++
			}

		case '*', '_':
			pos = p.parseEmphasis(children, content, pos, offset)

		case '~':
			if p.options.Strikethrough || p.options.GFM {
				pos = p.parseStrikethrough(children, content, pos, offset)
			} else {
				children.Push(p.textNode(content[pos:pos+1], offset+pos, offset+pos+1))
				pos++
			}

		case '`':
			pos = p.parseInlineCode(children, content, pos, offset)

		case '[':
			pos = p.parseLink(children, content, pos, offset)

		case '!':
			if pos+1 < len(content) && content[pos+1] == '[' {
				pos = p.parseImage(children, content, pos, offset)
			} else {
				children.Push(p.textNode(content[pos:pos+1], offset+pos, offset+pos+1))
				pos++
			}

		default:
			children.Push(p.textNode(content[pos:pos+1], offset+pos, offset+pos+1))
			pos++
		}
	}

	return children.Items()
}

func (p *Parser) textNode(value string, start, end int) *mdast.Node {
	return arena.Alloc(p.arena, mdast.Node{
		Kind:  mdast.KindText,
		Value: value,
		Span:  mdast.NewSpan(uint32(start), uint32(end)),
	})
}

type sliceOfNodes = arena.Slice[*mdast.Node]

// parseEmphasis handles a * or _ delimiter run. A run of length one
// yields Emphasis, two or more yields Strong. The closing run must be
// of the same character and at least as long; only the matched portion
// is consumed, leaving trailing delimiters for further scanning. An
// unmatched opening run degrades to literal text.
func (p *Parser) parseEmphasis(children *sliceOfNodes, content string, pos, offset int) int {
	marker := content[pos]
	count := delimiterRun(content, pos, marker)

	innerStart := pos + count
	innerEnd, found := findClosingRun(content, innerStart, marker, count)
	if !found {
		children.Push(p.textNode(content[pos:pos+count], offset+pos, offset+pos+count))
		return pos + count
	}

	inner := p.parseInline(content[innerStart:innerEnd], offset+innerStart)
	kind := mdast.KindEmphasis
	if count >= 2 {
		kind = mdast.KindStrong
	}
	children.Push(arena.Alloc(p.arena, mdast.Node{
		Kind:     kind,
		Children: inner,
		Span:     mdast.NewSpan(uint32(offset+pos), uint32(offset+innerEnd+count)),
	}))
	return innerEnd + count
}

// parseStrikethrough handles a GFM ~~ run, mirroring the emphasis
// matching rules. A single tilde is never a delimiter.
func (p *Parser) parseStrikethrough(children *sliceOfNodes, content string, pos, offset int) int {
	count := delimiterRun(content, pos, '~')
	if count < 2 {
		children.Push(p.textNode(content[pos:pos+count], offset+pos, offset+pos+count))
		return pos + count
	}

	innerStart := pos + count
	innerEnd, found := findClosingRun(content, innerStart, '~', count)
	if !found {
		children.Push(p.textNode(content[pos:pos+count], offset+pos, offset+pos+count))
		return pos + count
	}

	inner := p.parseInline(content[innerStart:innerEnd], offset+innerStart)
	children.Push(arena.Alloc(p.arena, mdast.Node{
		Kind:     mdast.KindDelete,
		Children: inner,
		Span:     mdast.NewSpan(uint32(offset+pos), uint32(offset+innerEnd+count)),
	}))
	return innerEnd + count
}

// delimiterRun counts the maximal run of marker starting at pos.
func delimiterRun(content string, pos int, marker byte) int {
	count := 1
	for pos+count < len(content) && content[pos+count] == marker {
		count++
	}
	return count
}

// findClosingRun scans forward from start for the next run of marker
// with length >= count, returning the run's starting index.
func findClosingRun(content string, start int, marker byte, count int) (int, bool) {
	for i := start; i < len(content); {
		if content[i] != marker {
			i++
			continue
		}
		runLen := 1
		for i+runLen < len(content) && content[i+runLen] == marker {
			runLen++
		}
		if runLen >= count {
			return i, true
		}
		i += runLen
	}
	return 0, false
}

// parseInlineCode scans to the next backtick. Content between is taken
// verbatim, never recursively parsed. A missing closing backtick
// degrades the whole remainder to text.
func (p *Parser) parseInlineCode(children *sliceOfNodes, content string, pos, offset int) int {
	codeStart := pos + 1
	rel := strings.IndexByte(content[codeStart:], '`')
	if rel < 0 {
		children.Push(p.textNode(content[pos:], offset+pos, offset+len(content)))
		return len(content)
	}

	codeEnd := codeStart + rel
	children.Push(arena.Alloc(p.arena, mdast.Node{
		Kind:  mdast.KindInlineCode,
		Value: content[codeStart:codeEnd],
		Span:  mdast.NewSpan(uint32(offset+pos), uint32(offset+codeEnd+1)),
	}))
	return codeEnd + 1
}

// scanLinkTarget matches [text](url) starting at the opening bracket,
// honoring nested brackets and parentheses. ok is false on any
// structural mismatch; end is the index just past the closing paren.
func scanLinkTarget(content string, pos int) (text, url string, textStart, end int, ok bool) {
	textStart = pos + 1
	i := textStart
	bracketDepth := 1
	for i < len(content) && bracketDepth > 0 {
		switch content[i] {
		case '[':
			bracketDepth++
		case ']':
			bracketDepth--
		}
		if bracketDepth > 0 {
			i++
		}
	}

	if i >= len(content) || i+1 >= len(content) || content[i+1] != '(' {
		return "", "", 0, 0, false
	}
	text = content[textStart:i]

	urlStart := i + 2
	j := urlStart
	parenDepth := 1
	for j < len(content) && parenDepth > 0 {
		switch content[j] {
		case '(':
			parenDepth++
		case ')':
			parenDepth--
		}
		if parenDepth > 0 {
			j++
		}
	}
	if j >= len(content) {
		return "", "", 0, 0, false
	}

	return text, content[urlStart:j], textStart, j + 1, true
}

// parseLink handles [text](url). Link text is recursively
// inline-parsed. Any mismatch degrades the bracket to a literal
// one-character text node and resumes just past it.
func (p *Parser) parseLink(children *sliceOfNodes, content string, pos, offset int) int {
	text, url, textStart, end, ok := scanLinkTarget(content, pos)
	if !ok {
		children.Push(p.textNode("[", offset+pos, offset+pos+1))
		return pos + 1
	}

	children.Push(arena.Alloc(p.arena, mdast.Node{
		Kind:     mdast.KindLink,
		URL:      url,
		Children: p.parseInline(text, offset+textStart),
		Span:     mdast.NewSpan(uint32(offset+pos), uint32(offset+end)),
	}))
	return end
}

// parseImage handles ![alt](url). Alt text is taken literally, not
// recursively parsed. A mismatch degrades the bang to literal text.
func (p *Parser) parseImage(children *sliceOfNodes, content string, pos, offset int) int {
	text, url, _, end, ok := scanLinkTarget(content, pos+1)
	if !ok {
		children.Push(p.textNode("!", offset+pos, offset+pos+1))
		return pos + 1
	}

	children.Push(arena.Alloc(p.arena, mdast.Node{
		Kind: mdast.KindImage,
		URL:  url,
		Alt:  text,
		Span: mdast.NewSpan(uint32(offset+pos), uint32(offset+end)),
	}))
	return end
}
