package arena

// allocSlow is the slow path (spec.md §4.2): grow the chunk list on
// exhaustion and retry the bump primitive in the fresh chunk, which must
// now succeed by construction. cap is this arena's configured growth cap
// (spec.md §6 "Chunk size cap").
func (a *Arena) allocSlow(size, align, cap uintptr) (uintptr, error) {
	prevUsable := a.current.usable()

	doubled := prevUsable * 2
	if doubled < prevUsable {
		// overflow: clamp to the cap
		doubled = cap
	}
	if doubled > cap {
		doubled = cap
	}

	// The new chunk must be able to fit the triggering request regardless
	// of the doubling cap: a single oversized request still gets its own
	// suitably-sized chunk (spec.md §4.2, §6).
	needed := size + align
	if needed < size {
		return 0, &AllocFailError{Size: size, Align: align}
	}
	newSize := doubled
	if needed > newSize {
		newSize = roundUpToPowerOfTwo(needed)
		if newSize == 0 {
			return 0, &AllocFailError{Size: size, Align: align}
		}
	}

	next, err := newChunk(newSize, needed, a.current)
	if err != nil {
		// The arena is left in a consistent, usable state: the old current
		// chunk is unchanged.
		return 0, err
	}

	a.current = next
	ptr, ok := tryAllocInChunk(a.current, size, align)
	if !ok {
		// Construction guarantees this always succeeds; treat failure as a
		// programming error in the sizing above rather than silently
		// returning a bad pointer.
		return 0, &AllocFailError{Size: size, Align: align}
	}
	return ptr, nil
}
