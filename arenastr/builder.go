// Package arenastr provides an arena-backed string builder — adapted from
// the teacher's Buffer (buffer.go), rewired onto the new core Arena's
// public Grow protocol instead of the teacher's Allocator.Remove.
package arenastr

import (
	"unicode/utf8"
	"unsafe"

	"github.com/gobump/arena"
)

const initialCapacity = 32

// Builder accumulates bytes in arena memory and exposes the result as a
// string or []byte without ever touching the Go heap (until CloneString /
// CloneBytes is called, which deliberately escapes the content).
type Builder struct {
	arena *arena.Arena
	buf   []byte
}

// New creates an empty Builder backed by a.
func New(a *arena.Arena) *Builder {
	return &Builder{
		arena: a,
		buf:   arena.AllocSliceFillWith(a, initialCapacity, func(int) byte { return 0 })[:0],
	}
}

// NewString creates a Builder pre-populated with s.
func NewString(a *arena.Arena, s string) *Builder {
	b := &Builder{
		arena: a,
		buf:   arena.AllocSliceFillWith(a, max(len(s)*2, initialCapacity), func(int) byte { return 0 })[:0],
	}
	b.WriteString(s)
	return b
}

// Len returns the current length in bytes.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the current capacity in bytes.
func (b *Builder) Cap() int { return cap(b.buf) }

// String returns the current contents as a string sharing memory with the
// Builder; it remains valid only until the next write or until the arena
// is reset or closed.
func (b *Builder) String() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b.buf), len(b.buf))
}

// Bytes returns the current contents, sharing memory with the Builder.
func (b *Builder) Bytes() []byte { return b.buf }

// Write appends p, satisfying io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.grow(len(p))
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	b.grow(len(s))
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte, satisfying io.ByteWriter.
func (b *Builder) WriteByte(c byte) error {
	b.grow(1)
	b.buf = append(b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Builder) WriteRune(r rune) (int, error) {
	if r < utf8.RuneSelf {
		b.WriteByte(byte(r))
		return 1, nil
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	b.grow(n)
	b.buf = append(b.buf, enc[:n]...)
	return n, nil
}

// Reset clears the Builder's contents but keeps its backing capacity.
func (b *Builder) Reset() { b.buf = b.buf[:0] }

// CloneString returns a heap-allocated copy, independent of the arena's
// lifetime.
func (b *Builder) CloneString() string {
	if len(b.buf) == 0 {
		return ""
	}
	return string(b.buf)
}

// CloneBytes returns a heap-allocated copy of the contents.
func (b *Builder) CloneBytes() []byte {
	if len(b.buf) == 0 {
		return nil
	}
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// grow ensures the backing array has room for needed more bytes, routing
// the reallocation through the arena's Grow protocol so a Builder holding
// the arena's most recent allocation extends in place.
func (b *Builder) grow(needed int) {
	if len(b.buf)+needed <= cap(b.buf) {
		return
	}
	newCap := max(max(cap(b.buf)*2, len(b.buf)+needed), initialCapacity)

	oldLayout := arena.Layout{Size: uintptr(cap(b.buf)), Align: 1}
	newLayout := arena.Layout{Size: uintptr(newCap), Align: 1}

	var ptr unsafe.Pointer
	if cap(b.buf) == 0 {
		ptr = b.arena.AllocLayout(newLayout.Size, newLayout.Align)
	} else {
		// Grow already copies the old bytes to the new address on both its
		// in-place and fresh-allocation paths; copying again here would pay
		// for that twice and defeat the in-place case's whole point.
		ptr = b.arena.Grow(unsafe.Pointer(unsafe.SliceData(b.buf)), oldLayout, newLayout)
	}
	grown := unsafe.Slice((*byte)(ptr), newCap)
	b.buf = grown[:len(b.buf)]
}
