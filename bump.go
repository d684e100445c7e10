package arena

import "unsafe"

// tryAllocInChunk is the bump primitive (spec.md §4.1): try to carve size
// bytes aligned to align out of f's free space without touching the system
// allocator. The cursor moves downward toward base, which turns alignment
// into a single mask and the capacity test into a single comparison.
//
// Returns the aligned address and true on success. On failure, f is left
// completely unmodified (no partial mutation on the None path).
func tryAllocInChunk(f *footer, size, align uintptr) (uintptr, bool) {
	c := f.cursor

	if size == 0 {
		// A zero-sized request never consumes capacity: align the current
		// cursor down for a well-formed, non-null, dereferenceable-for-zero
		// address without committing the move.
		aligned := alignDown(c, align)
		if aligned < f.base {
			aligned = alignUp(f.base, align)
		}
		return aligned, true
	}

	// Saturating "do we have size bytes at all" check: (c - f.base) is the
	// total remaining room in the chunk; if size overshoots it, bail before
	// underflowing the subtraction below.
	if size > c-f.base {
		return 0, false
	}

	newC := c - size
	aligned := alignDown(newC, align)
	if aligned < f.base {
		return 0, false
	}

	f.cursor = aligned
	return aligned, true
}

// owns reports whether ptr falls within the usable region of any chunk in
// the chain rooted at f (spec.md §9 "back references" — a pure
// relation+lookup, not ownership). Walks the prev chain since chunks form a
// singly-linked list rather than an indexable array; adapted from the
// teacher's binary-search Owns, which assumed a contiguous chunk slice.
func owns(f *footer, ptr unsafe.Pointer) bool {
	if ptr == nil {
		return false
	}
	addr := uintptr(ptr)
	for c := f; c != nil; c = c.prev {
		if addr >= c.base && addr < c.ptr {
			return true
		}
	}
	return false
}
