package arena

import "unsafe"

// AllocatedBytes returns the sum over chunks of footer_ptr - cursor: every
// byte handed out since the last Reset (spec.md invariant 7).
func (a *Arena) AllocatedBytes() uintptr {
	var sum uintptr
	for c := a.current; c != nil; c = c.prev {
		sum += c.ptr - c.cursor
	}
	return sum
}

// ChunkCapacity returns the usable-region size of the current chunk.
func (a *Arena) ChunkCapacity() uintptr {
	if a.current == nil {
		return 0
	}
	return a.current.usable()
}

// Capacity returns the total usable-region size across every chunk in the
// chain.
func (a *Arena) Capacity() uintptr {
	var sum uintptr
	for c := a.current; c != nil; c = c.prev {
		sum += c.usable()
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena) NumChunks() int {
	n := 0
	for c := a.current; c != nil; c = c.prev {
		n++
	}
	return n
}

// Owns reports whether ptr falls within the usable region of any chunk
// this arena currently owns. Returns false for nil.
func (a *Arena) Owns(ptr unsafe.Pointer) bool {
	return owns(a.current, ptr)
}

// Stats is a point-in-time snapshot of arena memory usage, adopted from
// pavanmanishd-arena's ArenaMetrics shape (see SPEC_FULL.md "SUPPLEMENTED
// FEATURES").
type Stats struct {
	AllocatedBytes uintptr
	Capacity       uintptr
	NumChunks      int
}

// Utilization returns the ratio of allocated bytes to total capacity, in
// [0, 1]. Returns 0 if the arena has no capacity (e.g. after Close).
func (s Stats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.AllocatedBytes) / float64(s.Capacity)
}

// Stats returns a snapshot of this arena's current memory usage.
func (a *Arena) Stats() Stats {
	return Stats{
		AllocatedBytes: a.AllocatedBytes(),
		Capacity:       a.Capacity(),
		NumChunks:      a.NumChunks(),
	}
}
