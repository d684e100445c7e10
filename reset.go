package arena

// Reset bulk-deallocates every chunk but the largest, then rewinds that
// chunk's cursor to its footer_ptr (spec.md §4.5). Requires that the
// caller hold no outstanding borrows into the arena — exactly the same
// exclusive-access discipline that guards any single-owner container; this
// package cannot enforce it at compile time and relies on the caller.
//
// No destructors run on user data; clients that need destruction wrap
// their values in arenabox.Box, which runs its destructor at its own scope
// exit, independent of Reset (spec.md §9).
func (a *Arena) Reset() {
	if a.current == nil {
		panic(&ErrArenaClosed{})
	}
	largest := a.current
	for c := a.current; c != nil; c = c.prev {
		if c.usable() > largest.usable() {
			largest = c
		}
	}
	for c := a.current; c != nil; {
		next := c.prev
		if c != largest {
			c.free()
		}
		c = next
	}
	largest.prev = nil
	largest.cursor = largest.ptr
	a.current = largest
}
