package parser

import (
	"errors"
	"fmt"

	"github.com/inkwellmd/inkwell/pkg/mdast"
)

// ErrParserReused is returned when Parse is called a second time on the
// same Parser. A parser is consumed by its one successful or failed
// parse; construct a new one per source.
var ErrParserReused = errors.New("parser already consumed by a previous Parse call")

// NestingTooDeepError is the single fatal parse error: block nesting
// exceeded Options.MaxNestingDepth. Every other malformed construct
// degrades to literal text in-band, so a returned error indicates
// pathological input rather than ordinary bad Markdown.
type NestingTooDeepError struct {
	// Span marks where the parser stopped.
	Span mdast.Span
	// MaxDepth is the configured limit that was exceeded.
	MaxDepth int
}

func (e *NestingTooDeepError) Error() string {
	return fmt.Sprintf("nesting too deep at offset %d: exceeds maximum depth %d",
		e.Span.Start, e.MaxDepth)
}
