// Package parser implements the arena-allocated Markdown parsing
// engine: a hand-written, lexer-less recursive-descent parser that
// operates directly on byte offsets into the source string and builds
// an mdast tree whose every node lives in a single arena.
//
// The parser recognizes headings, thematic breaks, fenced code blocks,
// pipe tables, lists (with nesting and GFM task markers), and
// paragraphs, with emphasis, strong, strikethrough, inline code, links,
// images, and escapes resolved inside text runs. Malformed constructs
// degrade to literal text; the only fatal condition is exceeding the
// configured nesting depth.
package parser

import (
	"strings"

	"github.com/inkwellmd/inkwell/pkg/arena"
	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// Parser parses one source string into one Document. A Parser is
// consumed by its Parse call and must not be reused; construct a new
// Parser per source. The parser borrows the arena and the source and
// must not be shared across goroutines while parsing.
type Parser struct {
	arena   *arena.Arena
	source  string
	options Options

	// pos is the byte-offset cursor into source.
	pos int
	// depth is the current block nesting depth, incremented on
	// recursive list descent.
	depth int

	consumed bool
}

// New creates a parser with default options over source.
func New(a *arena.Arena, source string) *Parser {
	return &Parser{arena: a, source: source}
}

// NewWithOptions creates a parser with the given options.
func NewWithOptions(a *arena.Arena, source string, options Options) *Parser {
	return &Parser{arena: a, source: source, options: options}
}

// Parse walks the block grammar over the whole source and returns the
// document. It may be called once per Parser; the second call returns
// ErrParserReused. The only parse failure is *NestingTooDeepError.
func (p *Parser) Parse() (*mdast.Document, error) {
	if p.consumed {
		return nil, ErrParserReused
	}
	p.consumed = true

	children := arena.NewSlice[*mdast.Node](p.arena)
	for !p.isAtEnd() {
		node, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if node != nil {
			children.Push(node)
		}
	}

	return arena.Alloc(p.arena, mdast.Document{
		Children: children.Items(),
		Span:     mdast.NewSpan(0, uint32(len(p.source))),
	}), nil
}

// ---------------------------------------------------------------------------
// Cursor primitives
// ---------------------------------------------------------------------------

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.source)
}

// rest returns the unconsumed tail of the source.
func (p *Parser) rest() string {
	return p.source[p.pos:]
}

// peek returns the byte at the cursor without consuming it.
func (p *Parser) peek() (byte, bool) {
	if p.isAtEnd() {
		return 0, false
	}
	return p.source[p.pos], true
}

// skipWhitespace consumes spaces and tabs.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.source) {
		c := p.source[p.pos]
		if c != ' ' && c != '\t' {
			break
		}
		p.pos++
	}
}

// skipBlankLines consumes lines that hold only spaces and tabs. A
// whitespace-only tail with no final newline is consumed too, so the
// cursor always lands on end of input or a non-blank line.
func (p *Parser) skipBlankLines() {
	for !p.isAtEnd() {
		start := p.pos
		p.skipWhitespace()
		c, ok := p.peek()
		if !ok {
			break
		}
		if c != '\n' {
			p.pos = start
			break
		}
		p.pos++
	}
}

// currentLine returns the rest of the current line without consuming it.
func (p *Parser) currentLine() string {
	rest := p.rest()
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// consumeLine consumes through the next newline and returns the line
// without its trailing newline.
func (p *Parser) consumeLine() string {
	start := p.pos
	if i := strings.IndexByte(p.rest(), '\n'); i >= 0 {
		p.pos += i + 1
		return p.source[start : p.pos-1]
	}
	p.pos = len(p.source)
	return p.source[start:]
}

// calcIndentation counts the leading indentation width of the line
// starting at offset start. A tab counts as four columns.
func (p *Parser) calcIndentation(start int) int {
	indent := 0
	for i := start; i < len(p.source); i++ {
		switch p.source[i] {
		case ' ':
			indent++
		case '\t':
			indent += 4
		default:
			return indent
		}
	}
	return indent
}

// checkDepth enforces the nesting guard. A zero MaxNestingDepth means
// no limit.
func (p *Parser) checkDepth() error {
	if p.options.MaxNestingDepth > 0 && p.depth > p.options.MaxNestingDepth {
		return &NestingTooDeepError{
			Span:     mdast.NewSpan(uint32(p.pos), uint32(p.pos)),
			MaxDepth: p.options.MaxNestingDepth,
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Block dispatch
// ---------------------------------------------------------------------------

// parseBlock parses exactly one block at the cursor. It returns nil
// without error when only blank space remained.
func (p *Parser) parseBlock() (*mdast.Node, error) {
	p.skipBlankLines()
	if p.isAtEnd() {
		return nil, nil
	}

	if err := p.checkDepth(); err != nil {
		return nil, err
	}

	start := p.pos
	switch {
	case p.atHeading():
		return p.parseHeading(start), nil
	case p.atThematicBreak():
		return p.parseThematicBreak(start), nil
	case p.atFencedCode():
		return p.parseFencedCode(start), nil
	case p.options.tablesEnabled() && p.atTable():
		return p.parseTable(start), nil
	case p.atList():
		return p.parseList(start)
	default:
		return p.parseParagraph(start), nil
	}
}

// atHeading reports whether the cursor starts an ATX heading: one to
// six # characters followed by space, tab, newline, or end of input.
func (p *Parser) atHeading() bool {
	rest := p.rest()
	hashes := 0
	for hashes < len(rest) && rest[hashes] == '#' {
		hashes++
		if hashes > 6 {
			return false
		}
	}
	if hashes == 0 {
		return false
	}
	if hashes == len(rest) {
		return true
	}
	c := rest[hashes]
	return c == ' ' || c == '\t' || c == '\n'
}

// atThematicBreak reports whether the current line, trimmed, is at
// least three repetitions of one of -, *, _ mixed only with spaces and
// tabs.
func (p *Parser) atThematicBreak() bool {
	trimmed := strings.TrimSpace(p.currentLine())
	if len(trimmed) < 3 {
		return false
	}

	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}

	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// atFencedCode reports whether the cursor starts a code fence.
func (p *Parser) atFencedCode() bool {
	rest := p.rest()
	return strings.HasPrefix(rest, "```") || strings.HasPrefix(rest, "~~~")
}

// atTable reports whether the cursor starts a pipe table: a line
// containing | followed by a delimiter row of -, :, and pipes.
func (p *Parser) atTable() bool {
	rest := p.rest()
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return false
	}
	first := strings.TrimSpace(rest[:nl])
	if !strings.Contains(first, "|") {
		return false
	}

	secondEnd := strings.IndexByte(rest[nl+1:], '\n')
	var second string
	if secondEnd < 0 {
		second = strings.TrimSpace(rest[nl+1:])
	} else {
		second = strings.TrimSpace(rest[nl+1 : nl+1+secondEnd])
	}
	if !strings.Contains(second, "|") || !strings.Contains(second, "-") {
		return false
	}

	for _, cell := range strings.Split(second, "|") {
		if cell == "" {
			continue
		}
		trimmed := strings.TrimSpace(cell)
		for i := 0; i < len(trimmed); i++ {
			if trimmed[i] != '-' && trimmed[i] != ':' {
				return false
			}
		}
	}
	return true
}

// atList reports whether the current line, trimmed, starts a list item:
// a bullet marker followed by a space, or a digit run followed by . or
// ) and a space.
func (p *Parser) atList() bool {
	trimmed := strings.TrimLeft(p.currentLine(), " \t")

	if strings.HasPrefix(trimmed, "- ") ||
		strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "+ ") {
		return true
	}

	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+1 >= len(trimmed) {
		return false
	}
	punct := trimmed[digits]
	return (punct == '.' || punct == ')') && trimmed[digits+1] == ' '
}
