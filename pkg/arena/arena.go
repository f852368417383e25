// Package arena provides a single-lifetime bump allocator for AST
// construction. All allocations made from an Arena share one lifetime:
// there is no per-object free, and Reset invalidates everything at once.
//
// The arena is not safe for concurrent use. One arena backs exactly one
// parse session; independent sessions on separate arenas may run in
// parallel. References handed out by an arena must not be used after
// Reset is called - this is a documented contract, not a runtime check.
package arena

import (
	"reflect"
	"unsafe"
)

// defaultPageSize is the size of string-storage pages.
const defaultPageSize = 32 * 1024

// Arena is a bump allocator. Typed values are served from per-type
// chunk pools; string data is interned into byte pages. The zero value
// is not usable; call New or NewWithCapacity.
type Arena struct {
	// pages holds string storage. The current page is pages[len(pages)-1].
	pages   [][]byte
	pageOff int

	// pools maps a reflect.Type to its *pool[T]. Typed pools keep their
	// chunks reachable so the garbage collector never reclaims memory
	// that outstanding node pointers still reference.
	pools map[reflect.Type]any

	allocated int
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{pools: make(map[reflect.Type]any)}
}

// NewWithCapacity creates an arena with an initial string-storage page
// of at least n bytes.
func NewWithCapacity(n int) *Arena {
	a := New()
	if n > 0 {
		a.pages = append(a.pages, make([]byte, n))
		a.allocated = n
	}
	return a
}

// AllocatedBytes reports the total bytes committed by this arena across
// all pages and typed pools.
func (a *Arena) AllocatedBytes() int {
	return a.allocated
}

// Reset invalidates every allocation made so far and returns the arena
// to its empty state. All previously returned pointers, strings, and
// slices become invalid. The caller must guarantee no live references
// remain.
func (a *Arena) Reset() {
	a.pages = nil
	a.pageOff = 0
	a.allocated = 0
	clear(a.pools)
}

// AllocString copies s into arena storage and returns a string whose
// backing bytes live in the arena.
func (a *Arena) AllocString(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.allocBytes(len(s))
	copy(b, s)
	return unsafe.String(&b[0], len(b))
}

// AllocBytes copies b into arena storage.
func (a *Arena) AllocBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	dst := a.allocBytes(len(b))
	copy(dst, b)
	return dst
}

// allocBytes carves n bytes out of the current page, opening a new page
// when the current one cannot hold the request.
func (a *Arena) allocBytes(n int) []byte {
	if len(a.pages) == 0 || a.pageOff+n > len(a.pages[len(a.pages)-1]) {
		size := defaultPageSize
		if n > size {
			size = n
		}
		a.pages = append(a.pages, make([]byte, size))
		a.pageOff = 0
		a.allocated += size
	}
	page := a.pages[len(a.pages)-1]
	b := page[a.pageOff : a.pageOff+n : a.pageOff+n]
	a.pageOff += n
	return b
}

// Alloc moves v into arena storage and returns a pointer to it. The
// pointer remains valid until Reset.
func Alloc[T any](a *Arena, v T) *T {
	p := poolFor[T](a)
	ptr := p.take()
	*ptr = v
	return ptr
}

// AllocSlice copies src into an arena-backed slice. The result has
// length and capacity equal to len(src).
func AllocSlice[T any](a *Arena, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := poolFor[T](a).takeSlice(len(src))
	copy(dst, src)
	return dst
}

// MakeSlice returns an arena-backed slice with the given length and
// capacity. Elements are zero valued.
func MakeSlice[T any](a *Arena, length, capacity int) []T {
	if capacity == 0 {
		return nil
	}
	return poolFor[T](a).takeSlice(capacity)[:length]
}

// chunkStart is the element count of the first chunk in a typed pool.
const chunkStart = 16

// pool is a typed bump allocator. Chunks grow by 1.5x; full chunks stay
// referenced from the chunks list so their memory remains GC-reachable
// for as long as the arena itself is.
type pool[T any] struct {
	arena  *Arena
	chunks [][]T
	index  int
}

func poolFor[T any](a *Arena) *pool[T] {
	key := reflect.TypeOf((*T)(nil))
	if existing, ok := a.pools[key]; ok {
		return existing.(*pool[T])
	}
	p := &pool[T]{arena: a}
	p.grow(chunkStart)
	a.pools[key] = p
	return p
}

func (p *pool[T]) take() *T {
	cur := p.chunks[len(p.chunks)-1]
	if p.index == len(cur) {
		p.grow(len(cur) + len(cur)>>1)
		cur = p.chunks[len(p.chunks)-1]
	}
	ptr := &cur[p.index]
	p.index++
	return ptr
}

func (p *pool[T]) takeSlice(n int) []T {
	cur := p.chunks[len(p.chunks)-1]
	if p.index+n > len(cur) {
		size := len(cur) + len(cur)>>1
		if size < n {
			size = n
		}
		p.grow(size)
		cur = p.chunks[len(p.chunks)-1]
	}
	s := cur[p.index : p.index+n : p.index+n]
	p.index += n
	return s
}

func (p *pool[T]) grow(n int) {
	var zero T
	p.chunks = append(p.chunks, make([]T, n))
	p.index = 0
	p.arena.allocated += n * int(unsafe.Sizeof(zero))
}
