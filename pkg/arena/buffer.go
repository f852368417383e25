package arena

import "unsafe"

// Buffer is a growable string builder whose storage lives in an arena.
// The zero value is not usable; call NewBuffer.
type Buffer struct {
	arena *Arena
	buf   []byte
}

// NewBuffer creates an empty arena-backed buffer.
func NewBuffer(a *Arena) *Buffer {
	return &Buffer{arena: a}
}

// NewBufferFrom creates an arena-backed buffer seeded with s.
func NewBufferFrom(a *Arena, s string) *Buffer {
	b := &Buffer{arena: a}
	b.WriteString(s)
	return b
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) {
	b.ensure(len(s))
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.ensure(1)
	b.buf = append(b.buf, c)
	return nil
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// String returns the contents as an arena-backed string. The result
// aliases the buffer: further writes may move the storage, so callers
// should take the string only once writing is complete.
func (b *Buffer) String() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], len(b.buf))
}

func (b *Buffer) ensure(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < len(b.buf)+n {
		newCap = len(b.buf) + n
	}
	if newCap < 64 {
		newCap = 64
	}
	grown := b.arena.allocBytes(newCap)[:len(b.buf)]
	copy(grown, b.buf)
	b.buf = grown
}
