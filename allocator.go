package arena

import "unsafe"

// Allocator is the generic allocator protocol an Arena can conform to
// (spec.md §9 "Polymorphism", §6 "generic allocator protocol conformance"):
// allocate, a no-op deallocate, grow, and shrink. Any collection written
// against this interface — not just arenavec.Vec — can adopt an *Arena as
// its backing store, the same way the teacher's Allocator interface lets
// BumpAllocator/SlabAllocator/BuddyAllocator stand in for each other.
type Allocator interface {
	// Alloc returns an aligned, uninitialized pointer valid for layout.Size
	// bytes. Panics on OOM, overflow, or a malformed alignment.
	Alloc(layout Layout) unsafe.Pointer

	// Dealloc is a no-op: individual deallocation is not supported
	// (spec.md §1 Non-goals). It exists only so the protocol's shape
	// matches allocators that do support it.
	Dealloc(ptr unsafe.Pointer, layout Layout)

	// Grow and Shrink implement the resize protocol (spec.md §4.4).
	Grow(ptr unsafe.Pointer, oldLayout, newLayout Layout) unsafe.Pointer
	Shrink(ptr unsafe.Pointer, oldLayout, newLayout Layout) unsafe.Pointer
}

var _ Allocator = (*Arena)(nil)

// Alloc implements Allocator.
func (a *Arena) Alloc(layout Layout) unsafe.Pointer {
	return a.AllocLayout(layout.Size, layout.Align)
}

// Dealloc implements Allocator; it is a deliberate no-op (spec.md §1).
func (a *Arena) Dealloc(ptr unsafe.Pointer, layout Layout) {}
