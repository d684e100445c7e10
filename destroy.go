package arena

// Close walks the chunk chain from current to the sentinel and releases
// each block to the system allocator as the exact mmap slice recorded in
// its footer (spec.md §4.7). No destructors are run on user data — the arena
// never tracked individual objects to begin with. After Close the Arena
// must not be used again.
func (a *Arena) Close() {
	for c := a.current; c != nil; {
		next := c.prev
		c.free()
		c = next
	}
	a.current = nil
}

// Closed reports whether Close has already released this arena's chunks.
func (a *Arena) Closed() bool {
	return a.current == nil
}
