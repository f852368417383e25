package mdast_test

import (
	"testing"

	"github.com/inkwellmd/inkwell/pkg/mdast"
)

func TestSpan_Len(t *testing.T) {
	t.Parallel()

	span := mdast.NewSpan(10, 20)
	if span.Len() != 10 {
		t.Fatalf("expected length 10, got %d", span.Len())
	}
}

func TestSpan_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var span mdast.Span
	if !span.IsEmpty() {
		t.Fatal("zero-value span should be empty")
	}
	if span.Start != 0 || span.End != 0 {
		t.Fatalf("zero-value span should sit at offset 0, got %+v", span)
	}
}

func TestSpan_Merge(t *testing.T) {
	t.Parallel()

	merged := mdast.NewSpan(0, 10).Merge(mdast.NewSpan(5, 20))
	if merged.Start != 0 || merged.End != 20 {
		t.Fatalf("expected [0,20), got [%d,%d)", merged.Start, merged.End)
	}

	// Merge is symmetric.
	flipped := mdast.NewSpan(5, 20).Merge(mdast.NewSpan(0, 10))
	if flipped != merged {
		t.Fatalf("merge should be symmetric: %+v vs %+v", flipped, merged)
	}
}

func TestSpan_Contains(t *testing.T) {
	t.Parallel()

	span := mdast.NewSpan(10, 20)
	if !span.Contains(10) || !span.Contains(15) {
		t.Fatal("span should contain interior offsets")
	}
	if span.Contains(20) {
		t.Fatal("half-open span should not contain its end")
	}
	if span.Contains(5) {
		t.Fatal("span should not contain offsets before start")
	}
}

func TestSpan_ContainsSpan(t *testing.T) {
	t.Parallel()

	outer := mdast.NewSpan(0, 100)
	if !outer.ContainsSpan(mdast.NewSpan(10, 20)) {
		t.Fatal("expected containment")
	}
	if outer.ContainsSpan(mdast.NewSpan(50, 101)) {
		t.Fatal("overhanging span should not be contained")
	}
}

func TestSpan_SourceText(t *testing.T) {
	t.Parallel()

	source := "hello world"
	if got := mdast.NewSpan(0, 5).SourceText(source); got != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
	if got := mdast.NewSpan(6, 11).SourceText(source); got != "world" {
		t.Fatalf("expected %q, got %q", "world", got)
	}
}

func TestPositionAt(t *testing.T) {
	t.Parallel()

	source := "ab\ncd\nef"

	tests := []struct {
		offset uint32
		line   uint32
		column uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
	}
	for _, tt := range tests {
		pos := mdast.PositionAt(source, tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("offset %d: expected %d:%d, got %d:%d",
				tt.offset, tt.line, tt.column, pos.Line, pos.Column)
		}
	}

	// Offsets past the end are clamped.
	pos := mdast.PositionAt(source, 999)
	if pos.Offset != uint32(len(source)) {
		t.Fatalf("expected clamped offset %d, got %d", len(source), pos.Offset)
	}
}
