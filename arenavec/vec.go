// Package arenavec provides a growable, arena-backed dynamic array — the
// "Collections" feature capability spec.md §6 names as a client built on
// top of the core allocator, not part of it. It is adapted from the
// teacher's Vec[T] (vec.go), rewired to go through the arena's public
// infallible alloc and Grow protocol (package arena) instead of
// the teacher's own Allocator.Alloc/Remove pair.
package arenavec

import (
	"iter"
	"sort"
	"unsafe"

	"github.com/gobump/arena"
)

// ssoThreshold is the initial capacity granted to a freshly constructed
// empty Vec, avoiding a second allocation for the common case of a handful
// of elements (small slice optimization, as in the teacher's Vec).
const ssoThreshold = 16

// Vec is an appendable slice whose backing array lives in arena memory.
// Push and AppendSlice never touch the Go heap; growth reuses the arena's Grow
// protocol so the most recent Vec in an arena extends in place.
type Vec[T any] struct {
	arena *arena.Arena
	data  []T
	align uintptr
}

// New creates an empty Vec backed by a.
func New[T any](a *arena.Arena) *Vec[T] {
	var zero T
	v := &Vec[T]{arena: a, align: unsafe.Alignof(zero)}
	v.data = makeSlice[T](a, ssoThreshold)[:0]
	return v
}

// NewWith creates a Vec pre-populated with the given initial elements.
func NewWith[T any](a *arena.Arena, initial ...T) *Vec[T] {
	v := New[T](a)
	v.AppendSlice(initial)
	return v
}

// Len returns the current length.
func (v *Vec[T]) Len() int { return len(v.data) }

// Cap returns the current capacity.
func (v *Vec[T]) Cap() int { return cap(v.data) }

// Slice returns the current backing slice (zero-copy). The slice shares
// memory with the Vec and remains valid until the arena is Reset or Close,
// or until the Vec grows again.
func (v *Vec[T]) Slice() []T { return v.data }

// Push appends one element, growing the backing array via the arena's
// Grow protocol when needed.
func (v *Vec[T]) Push(val T) {
	v.ensure(len(v.data) + 1)
	v.data = v.data[:len(v.data)+1]
	v.data[len(v.data)-1] = val
}

// AppendSlice appends multiple elements with a single capacity check.
func (v *Vec[T]) AppendSlice(src []T) {
	if len(src) == 0 {
		return
	}
	v.ensure(len(v.data) + len(src))
	oldLen := len(v.data)
	v.data = v.data[:oldLen+len(src)]
	copy(v.data[oldLen:], src)
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, bool) {
	if len(v.data) == 0 {
		var zero T
		return zero, false
	}
	val := v.data[len(v.data)-1]
	v.data = v.data[:len(v.data)-1]
	return val, true
}

// Get returns the element at i, or false if i is out of range.
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// Set replaces the element at i, reporting whether i was in range.
func (v *Vec[T]) Set(i int, val T) bool {
	if i < 0 || i >= len(v.data) {
		return false
	}
	v.data[i] = val
	return true
}

// Insert shifts elements right to make room for val at index i.
func (v *Vec[T]) Insert(i int, val T) bool {
	if i < 0 || i > len(v.data) {
		return false
	}
	v.ensure(len(v.data) + 1)
	v.data = v.data[:len(v.data)+1]
	copy(v.data[i+1:], v.data[i:len(v.data)-1])
	v.data[i] = val
	return true
}

// Remove shifts elements left to close the gap at index i.
func (v *Vec[T]) Remove(i int) bool {
	if i < 0 || i >= len(v.data) {
		return false
	}
	copy(v.data[i:], v.data[i+1:])
	v.data = v.data[:len(v.data)-1]
	return true
}

// Reset clears the length but keeps the backing capacity, letting the
// arena's allocations for this Vec be reused without a fresh Grow.
func (v *Vec[T]) Reset() { v.data = v.data[:0] }

// ToSlice returns a heap-allocated copy, independent of the arena's
// lifetime.
func (v *Vec[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Sort sorts the Vec in place using less.
func (v *Vec[T]) Sort(less func(a, b T) bool) {
	sort.Slice(v.data, func(i, j int) bool { return less(v.data[i], v.data[j]) })
}

// Reverse reverses the Vec in place.
func (v *Vec[T]) Reverse() {
	for i, j := 0, len(v.data)-1; i < j; i, j = i+1, j-1 {
		v.data[i], v.data[j] = v.data[j], v.data[i]
	}
}

// All returns a Go 1.23 iterator over values.
func (v *Vec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.data {
			if !yield(val) {
				return
			}
		}
	}
}

// All2 returns a Go 1.23 iterator over index-value pairs.
func (v *Vec[T]) All2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.data {
			if !yield(i, val) {
				return
			}
		}
	}
}

// ensure grows the backing array to at least needed elements, doubling
// capacity (or adopting needed, whichever is larger) and routing the
// reallocation through the arena's Grow so a Vec that is the arena's most
// recent allocation extends in place rather than copying.
func (v *Vec[T]) ensure(needed int) {
	if needed <= cap(v.data) {
		return
	}

	var newCap int
	switch {
	case cap(v.data) == 0:
		if needed <= ssoThreshold {
			newCap = ssoThreshold
		} else {
			newCap = max(needed, 64)
		}
	default:
		newCap = max(cap(v.data)*2, needed)
	}

	var zero T
	elemSize := unsafe.Sizeof(zero)
	oldLayout := arena.Layout{Size: elemSize * uintptr(cap(v.data)), Align: v.align}
	newLayout := arena.Layout{Size: elemSize * uintptr(newCap), Align: v.align}

	var ptr unsafe.Pointer
	if cap(v.data) == 0 {
		ptr = v.arena.AllocLayout(newLayout.Size, newLayout.Align)
	} else {
		// Grow already copies the old bytes to the new address on both its
		// in-place and fresh-allocation paths; copying again here would pay
		// for that twice and defeat the in-place case's whole point.
		ptr = v.arena.Grow(unsafe.Pointer(unsafe.SliceData(v.data)), oldLayout, newLayout)
	}
	grown := unsafe.Slice((*T)(ptr), newCap)
	v.data = grown[:len(v.data)]
}

func makeSlice[T any](a *arena.Arena, n int) []T {
	return arena.AllocSliceFillWith(a, n, func(int) T {
		var zero T
		return zero
	})
}
