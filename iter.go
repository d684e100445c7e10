package arena

import (
	"iter"
	"unsafe"
)

// IterAllocatedChunks returns a lazy, single-pass, finite sequence of
// byte-slices — one per chunk, newest first — each covering exactly
// [cursor, footer_ptr) of that chunk at the moment of iteration (spec.md
// §4.6). Callers may read but must not mutate the arena while iterating.
func (a *Arena) IterAllocatedChunks() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for c := a.current; c != nil; c = c.prev {
			n := c.ptr - c.cursor
			if n == 0 {
				if !yield(nil) {
					return
				}
				continue
			}
			b := unsafe.Slice((*byte)(unsafe.Pointer(c.cursor)), n)
			if !yield(b) {
				return
			}
		}
	}
}
