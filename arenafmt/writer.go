// Package arenafmt adapts an arena-backed byte buffer to io.Writer so
// fmt.Fprintf and friends can format directly into arena memory. It is
// adapted from the teacher's Writer/Reader (rw.go), rewired onto the new
// core Arena's Grow protocol.
package arenafmt

import (
	"io"
	"unsafe"

	"github.com/gobump/arena"
)

const initialCapacity = 32

// Writer is an io.Writer, io.StringWriter, and io.ByteWriter whose backing
// array lives in arena memory. Use with fmt.Fprintf(w, ...) to format
// without a single Go-heap allocation for the formatted output.
type Writer struct {
	arena  *arena.Arena
	buffer []byte
	offset int
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
)

// NewWriter creates a Writer backed by a.
func NewWriter(a *arena.Arena) *Writer {
	buf := arena.AllocSliceFillWith(a, initialCapacity, func(int) byte { return 0 })
	return &Writer{arena: a, buffer: buf, offset: 0}
}

// Write appends p, growing the buffer as needed.
func (w *Writer) Write(p []byte) (int, error) {
	needed := w.offset + len(p)
	if needed > cap(w.buffer) {
		w.grow(needed)
	}
	copy(w.buffer[w.offset:], p)
	w.offset += len(p)
	return len(p), nil
}

// WriteString appends s, growing the buffer as needed.
func (w *Writer) WriteString(s string) (int, error) {
	needed := w.offset + len(s)
	if needed > cap(w.buffer) {
		w.grow(needed)
	}
	copy(w.buffer[w.offset:], s)
	w.offset += len(s)
	return len(s), nil
}

// WriteByte appends a single byte, growing the buffer as needed.
func (w *Writer) WriteByte(c byte) error {
	if w.offset >= cap(w.buffer) {
		w.grow(w.offset + 1)
	}
	w.buffer[w.offset] = c
	w.offset++
	return nil
}

// Bytes returns the written bytes, sharing memory with the Writer.
func (w *Writer) Bytes() []byte { return w.buffer[:w.offset] }

// String returns the written bytes as a string, sharing memory with the
// Writer.
func (w *Writer) String() string {
	if w.offset == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(w.buffer), w.offset)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.offset }

// Cap returns the buffer's current capacity.
func (w *Writer) Cap() int { return cap(w.buffer) }

// Reset discards written bytes but keeps the backing buffer.
func (w *Writer) Reset() { w.offset = 0 }

// grow ensures the buffer has room for at least size bytes total, routing
// the reallocation through the arena's Grow protocol.
func (w *Writer) grow(size int) {
	newCap := cap(w.buffer) * 2
	if newCap < size {
		newCap = size
	}
	if newCap < initialCapacity {
		newCap = initialCapacity
	}

	oldLayout := arena.Layout{Size: uintptr(cap(w.buffer)), Align: 1}
	newLayout := arena.Layout{Size: uintptr(newCap), Align: 1}

	var ptr unsafe.Pointer
	if cap(w.buffer) == 0 {
		ptr = w.arena.AllocLayout(newLayout.Size, newLayout.Align)
	} else {
		// Grow already copies the old bytes to the new address on both its
		// in-place and fresh-allocation paths; copying again here would pay
		// for that twice and defeat the in-place case's whole point.
		ptr = w.arena.Grow(unsafe.Pointer(unsafe.SliceData(w.buffer)), oldLayout, newLayout)
	}
	grown := unsafe.Slice((*byte)(ptr), newCap)
	w.buffer = grown
}

// Reader provides io.Reader, io.ByteReader access over an arena-allocated
// or arbitrary byte slice, adapted from the teacher's Reader (rw.go).
type Reader struct {
	buffer []byte
	offset int
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
)

// NewReader creates a Reader over data. data is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{buffer: data}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.offset >= len(r.buffer) {
		return 0, io.EOF
	}
	n := copy(p, r.buffer[r.offset:])
	r.offset += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.offset >= len(r.buffer) {
		return 0, io.EOF
	}
	c := r.buffer[r.offset]
	r.offset++
	return c, nil
}

// Len returns the number of bytes remaining to be read.
func (r *Reader) Len() int { return len(r.buffer) - r.offset }

// Size returns the total length of the underlying buffer.
func (r *Reader) Size() int { return len(r.buffer) }

// Reset rewinds the Reader to the start of its buffer.
func (r *Reader) Reset() { r.offset = 0 }
