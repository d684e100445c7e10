// Package arenabox provides a scoped owner that runs a destructor when it
// goes out of scope while its storage stays arena-owned until reset
// (spec.md §6 "Boxed", §9 "Destructors"). It is grounded on the teacher's
// object.go allocation helpers (Alloc[T]/Ptr[T]), generalized with an
// explicit drop callback since the teacher's arena never tracked
// individual-object destruction.
package arenabox

import "github.com/gobump/arena"

// Box owns a value allocated in an arena together with a destructor that
// runs exactly once, when Close is called or the scope that deferred it
// exits. The value's storage is not reclaimed by Close — it is reclaimed
// only when the arena itself is Reset or Close'd — this split between
// storage lifetime and value lifetime is the whole point of Box.
type Box[T any] struct {
	value   *T
	destroy func(*T)
	closed  bool
}

// New wraps an arena-allocated value v with a destructor. destroy is
// invoked at most once, by Close, and never by the arena itself.
func New[T any](a *arena.Arena, v T, destroy func(*T)) *Box[T] {
	ptr := arena.AllocValue(a, v)
	return &Box[T]{value: ptr, destroy: destroy}
}

// NewDefault wraps a zero-initialized arena-allocated T with a destructor.
func NewDefault[T any](a *arena.Arena, destroy func(*T)) *Box[T] {
	ptr := arena.AllocDefault[T](a)
	return &Box[T]{value: ptr, destroy: destroy}
}

// Get returns the boxed value's pointer. It panics if the Box has already
// been closed — a closed Box's value has run its destructor and must not
// be observed again.
func (b *Box[T]) Get() *T {
	if b.closed {
		panic("arenabox: use of Box after Close")
	}
	return b.value
}

// Closed reports whether Close has already run.
func (b *Box[T]) Closed() bool { return b.closed }

// Close runs the destructor, if any, exactly once. Safe to call multiple
// times or via defer immediately after New. The value's storage remains
// in the arena; only the destructor's side effect (e.g. closing a file
// descriptor referenced by the value) runs here.
func (b *Box[T]) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.destroy != nil {
		b.destroy(b.value)
	}
}
