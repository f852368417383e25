package mdast

// Span is a half-open byte range [Start, End) into the original source
// text. Start <= End always holds for spans produced by the parser. The
// zero value is the empty span at offset 0.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan creates a span covering [start, end).
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Merge returns a span covering both s and other.
func (s Span) Merge(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Contains returns true if offset falls inside the span.
func (s Span) Contains(offset uint32) bool {
	return s.Start <= offset && offset < s.End
}

// ContainsSpan returns true if other lies entirely inside s.
func (s Span) ContainsSpan(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// SourceText extracts the source substring the span covers.
func (s Span) SourceText(source string) string {
	return source[s.Start:s.End]
}

// Position is a human-facing location in source text. The parser's hot
// path never computes positions; they exist for diagnostics only.
type Position struct {
	// Line is 1-indexed.
	Line uint32
	// Column is 1-indexed, counted in bytes.
	Column uint32
	// Offset is the 0-indexed byte offset.
	Offset uint32
}

// PositionAt computes the line/column position of a byte offset. Offsets
// past the end of source are clamped.
func PositionAt(source string, offset uint32) Position {
	if int(offset) > len(source) {
		offset = uint32(len(source))
	}
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for i := range int(offset) {
		if source[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
