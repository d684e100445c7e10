// Package arena implements a chunked bump allocator: a single-owner memory
// arena optimized for phase-oriented allocation, where a cohort of objects
// is allocated, used, and released en masse. See spec.md for the full
// design (chunk/footer layout, bump discipline, grow/shrink protocol, and
// the invariants that keep it memory-safe).
//
// Collections that consume the arena — a dynamic array, a scoped owner
// that runs destructors, a string builder, a formatter adapter — are not
// part of this package; they are independent clients in the arenavec,
// arenabox, arenastr, and arenafmt subpackages.
package arena

import "unsafe"

// DefaultChunkSize is the usable-region size of the first chunk created by
// New, absent an explicit capacity hint.
const DefaultChunkSize = 4096

// Arena is a single owner of a singly-linked chain of chunks. It is not
// goroutine-safe, and nothing in this package tracks borrows of its
// allocations: Reset and Close invalidate every outstanding allocation, and
// callers must not hold any across them (spec.md §5). Moving an Arena
// between goroutines as a whole is safe;
// concurrent shared use requires an external lock and is outside this
// package.
type Arena struct {
	current *footer
	growCap uintptr
}

// Option configures an Arena at construction time.
type Option func(*arenaConfig)

type arenaConfig struct {
	growCap uintptr
}

// WithGrowthCap overrides maxChunkSize for one arena: chunks stop doubling
// once they would exceed cap (spec.md §6 "Chunk size cap"). A single
// request larger than cap still gets its own suitably-sized chunk. Chunks
// are never smaller than minChunkSize rounded up to whole pages, so a cap
// below that size does not make chunks any smaller.
func WithGrowthCap(cap uintptr) Option {
	return func(c *arenaConfig) {
		c.growCap = cap
	}
}

// New creates an empty Arena with one initial chunk of DefaultChunkSize.
func New(opts ...Option) *Arena {
	return WithCapacity(DefaultChunkSize, opts...)
}

// WithCapacity creates an Arena whose first chunk covers at least n bytes
// of usable space.
func WithCapacity(n uintptr, opts ...Option) *Arena {
	cfg := arenaConfig{growCap: maxChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	size := n
	if size < minChunkSize {
		size = minChunkSize
	}
	size = roundUpToPowerOfTwo(size)
	if size == 0 {
		// n was large enough that rounding up overflowed uintptr.
		panic(&AllocFailError{Size: n, Align: uintptr(pagesize)})
	}
	f, err := newChunk(size, size, nil)
	if err != nil {
		// The system allocator refused the very first page: there is no
		// consistent empty Arena to hand back, so this mirrors the
		// infallible-operation contract (spec.md §7) and aborts.
		panic(err)
	}
	return &Arena{current: f, growCap: cfg.growCap}
}

// TryAllocLayout returns an aligned, uninitialized pointer valid for size
// bytes, or an AllocFailError on overflow or OOM (spec.md §4.3). align must
// be a power of two or an InvalidLayoutError is returned.
func (a *Arena) TryAllocLayout(size, align uintptr) (unsafe.Pointer, error) {
	if a.current == nil {
		return nil, &ErrArenaClosed{}
	}
	if !isPowerOfTwo(align) {
		return nil, &InvalidLayoutError{Align: align}
	}
	if ptr, ok := tryAllocInChunk(a.current, size, align); ok {
		return unsafe.Pointer(ptr), nil
	}
	ptr, err := a.allocSlow(size, align, a.growCap)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(ptr), nil
}

// AllocLayout is the infallible counterpart of TryAllocLayout: it panics on
// OOM, overflow, or a malformed alignment instead of returning an error.
func (a *Arena) AllocLayout(size, align uintptr) unsafe.Pointer {
	ptr, err := a.TryAllocLayout(size, align)
	if err != nil {
		panic(err)
	}
	return ptr
}
