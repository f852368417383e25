package arena_test

import (
	"strings"
	"testing"

	"github.com/inkwellmd/inkwell/pkg/arena"
)

func TestArena_AllocValue(t *testing.T) {
	t.Parallel()

	a := arena.New()
	v := arena.Alloc(a, 42)
	if *v != 42 {
		t.Fatalf("expected 42, got %d", *v)
	}

	*v = 7
	if *v != 7 {
		t.Fatalf("expected mutation through arena pointer, got %d", *v)
	}
}

func TestArena_AllocManyKeepsPointersStable(t *testing.T) {
	t.Parallel()

	a := arena.New()
	ptrs := make([]*int, 0, 1000)
	for i := range 1000 {
		ptrs = append(ptrs, arena.Alloc(a, i))
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("pointer %d: expected %d, got %d", i, i, *p)
		}
	}
}

func TestArena_AllocString(t *testing.T) {
	t.Parallel()

	a := arena.New()
	s := a.AllocString("hello")
	if s != "hello" {
		t.Fatalf("expected %q, got %q", "hello", s)
	}
	if a.AllocString("") != "" {
		t.Fatal("empty string should stay empty")
	}

	// Larger than a single page.
	big := strings.Repeat("x", 100_000)
	if got := a.AllocString(big); got != big {
		t.Fatal("oversized string roundtrip failed")
	}
}

func TestArena_AllocatedBytes(t *testing.T) {
	t.Parallel()

	a := arena.New()
	if a.AllocatedBytes() != 0 {
		t.Fatalf("fresh arena should report 0 bytes, got %d", a.AllocatedBytes())
	}

	a.AllocString("hello")
	if a.AllocatedBytes() == 0 {
		t.Fatal("expected committed bytes after allocation")
	}
}

func TestArena_Reset(t *testing.T) {
	t.Parallel()

	a := arena.New()
	arena.Alloc(a, "value")
	a.AllocString("string data")
	if a.AllocatedBytes() == 0 {
		t.Fatal("expected allocations before reset")
	}

	a.Reset()
	if a.AllocatedBytes() != 0 {
		t.Fatalf("expected 0 bytes after reset, got %d", a.AllocatedBytes())
	}

	// The arena is reusable after reset.
	if s := a.AllocString("again"); s != "again" {
		t.Fatalf("post-reset allocation failed: %q", s)
	}
}

func TestSlice_PushAndItems(t *testing.T) {
	t.Parallel()

	a := arena.New()
	s := arena.NewSlice[int](a)
	for i := range 100 {
		s.Push(i)
	}

	if s.Len() != 100 {
		t.Fatalf("expected 100 items, got %d", s.Len())
	}
	for i, v := range s.Items() {
		if v != i {
			t.Fatalf("index %d: expected %d, got %d", i, i, v)
		}
	}
}

func TestSlice_WithCapacity(t *testing.T) {
	t.Parallel()

	a := arena.New()
	s := arena.NewSliceWithCapacity[string](a, 8)
	s.Push("a")
	s.Push("b")
	if s.Len() != 2 || s.At(0) != "a" || s.At(1) != "b" {
		t.Fatalf("unexpected contents: %v", s.Items())
	}
}

func TestBuffer_Write(t *testing.T) {
	t.Parallel()

	a := arena.New()
	b := arena.NewBuffer(a)
	b.WriteString("hello")
	_ = b.WriteByte(' ')
	b.WriteString("world")

	if b.String() != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", b.String())
	}
	if b.Len() != 11 {
		t.Fatalf("expected length 11, got %d", b.Len())
	}
}

func TestBuffer_From(t *testing.T) {
	t.Parallel()

	a := arena.New()
	b := arena.NewBufferFrom(a, "seed")
	b.WriteString("ling")
	if b.String() != "seedling" {
		t.Fatalf("expected %q, got %q", "seedling", b.String())
	}
}

func TestAllocSlice_Copies(t *testing.T) {
	t.Parallel()

	a := arena.New()
	src := []int{1, 2, 3}
	dst := arena.AllocSlice(a, src)
	src[0] = 99
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("arena slice should be independent of source: %v", dst)
	}
}
