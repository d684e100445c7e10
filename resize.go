package arena

import "unsafe"

// TryGrow implements the grow half of the generic allocator's resize
// protocol (spec.md §4.4). If ptr is the arena's most recent allocation and
// newLayout.Align does not exceed oldLayout.Align, the cursor is simply
// lowered further and the bytes are shifted down in place; otherwise a
// fresh block is allocated and the old bytes are copied. The old region is
// leaked until Reset — the fundamental bump tradeoff.
func (a *Arena) TryGrow(ptr unsafe.Pointer, oldLayout, newLayout Layout) (unsafe.Pointer, error) {
	if a.current == nil {
		return nil, &ErrArenaClosed{}
	}
	if !isPowerOfTwo(newLayout.Align) {
		return nil, &InvalidLayoutError{Align: newLayout.Align}
	}
	if newLayout.Size < oldLayout.Size {
		return nil, &InvalidLayoutError{Align: newLayout.Align}
	}

	f := a.current
	addr := uintptr(ptr)
	delta := newLayout.Size - oldLayout.Size

	if addr == f.cursor && newLayout.Align <= oldLayout.Align && delta <= f.cursor-f.base {
		movedCursor := f.cursor - delta
		aligned := alignDown(movedCursor, newLayout.Align)
		if aligned >= f.base {
			src := unsafe.Slice((*byte)(ptr), oldLayout.Size)
			dst := unsafe.Slice((*byte)(unsafe.Pointer(aligned)), oldLayout.Size)
			copy(dst, src)
			f.cursor = aligned
			return unsafe.Pointer(aligned), nil
		}
	}

	newPtr, err := a.TryAllocLayout(newLayout.Size, newLayout.Align)
	if err != nil {
		return nil, err
	}
	if oldLayout.Size > 0 {
		src := unsafe.Slice((*byte)(ptr), oldLayout.Size)
		dst := unsafe.Slice((*byte)(newPtr), oldLayout.Size)
		copy(dst, src)
	}
	return newPtr, nil
}

// Grow is the infallible counterpart of TryGrow.
func (a *Arena) Grow(ptr unsafe.Pointer, oldLayout, newLayout Layout) unsafe.Pointer {
	p, err := a.TryGrow(ptr, oldLayout, newLayout)
	if err != nil {
		panic(err)
	}
	return p
}

// Shrink implements the shrink half of the resize protocol (spec.md §4.4).
//
// If ptr is the current allocation (addr == cursor) and the new alignment
// is no stricter than the old one, the freed capacity is the low end of the
// allocation — the end nearest the cursor/free boundary — so the cursor
// advances by old_size-new_size and the first new_size bytes are moved up
// (an overlapping copy) to the advanced address, which is returned. A later
// allocation of exactly old_size-new_size bytes bumps the cursor straight
// back down into the reclaimed gap (spec.md §8 "Shrink reclaims").
//
// This moves the returned pointer for the in-place case, which spec.md's
// Open Questions explicitly leave to the implementation ("callers must not
// depend on pointer stability across shrink unless the allocation is the
// most recent"); keeping the object's *upper* boundary fixed is what lets
// the freed bytes rejoin the normal downward-bump free list, mirroring how
// Grow keeps the upper boundary fixed while the lower boundary moves.
//
// If ptr is not the current allocation, it is returned unchanged with no
// reclamation — semantics are still satisfied, just without the optimization.
func (a *Arena) Shrink(ptr unsafe.Pointer, oldLayout, newLayout Layout) unsafe.Pointer {
	if a.current == nil {
		panic(&ErrArenaClosed{})
	}
	if newLayout.Size > oldLayout.Size {
		panic(&InvalidLayoutError{Align: newLayout.Align})
	}
	f := a.current
	addr := uintptr(ptr)
	if addr == f.cursor && newLayout.Align <= oldLayout.Align {
		delta := oldLayout.Size - newLayout.Size
		newCursor := f.cursor + delta
		if newLayout.Size == 0 {
			f.cursor = newCursor
			return unsafe.Pointer(newCursor)
		}
		aligned := alignUp(newCursor, newLayout.Align)
		if aligned != 0 && aligned+newLayout.Size <= addr+oldLayout.Size {
			src := unsafe.Slice((*byte)(ptr), newLayout.Size)
			dst := unsafe.Slice((*byte)(unsafe.Pointer(aligned)), newLayout.Size)
			copy(dst, src)
			f.cursor = aligned
			return unsafe.Pointer(aligned)
		}
	}
	return ptr
}
