package arena

// Slice is a growable sequence whose backing storage lives in an arena.
// Growing abandons the old backing array inside the arena, which is the
// usual bump-allocator trade: space is reclaimed only by Reset.
//
// The zero value is not usable; call NewSlice.
type Slice[T any] struct {
	arena *Arena
	items []T
}

// NewSlice creates an empty arena-backed slice.
func NewSlice[T any](a *Arena) *Slice[T] {
	return &Slice[T]{arena: a}
}

// NewSliceWithCapacity creates an arena-backed slice with room for n
// elements before the first regrow.
func NewSliceWithCapacity[T any](a *Arena, n int) *Slice[T] {
	return &Slice[T]{arena: a, items: MakeSlice[T](a, 0, n)}
}

// Push appends v.
func (s *Slice[T]) Push(v T) {
	if len(s.items) == cap(s.items) {
		newCap := cap(s.items) * 2
		if newCap < 4 {
			newCap = 4
		}
		grown := MakeSlice[T](s.arena, len(s.items), newCap)
		copy(grown, s.items)
		s.items = grown
	}
	s.items = append(s.items, v)
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s *Slice[T]) At(i int) T {
	return s.items[i]
}

// Items returns the underlying arena-backed slice. The result aliases
// the sequence: it is valid until the next Push that triggers a regrow,
// and at most until Reset.
func (s *Slice[T]) Items() []T {
	return s.items
}
