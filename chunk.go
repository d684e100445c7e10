package arena

import "unsafe"

// minChunkSize is the smallest chunk this arena will request from the
// system allocator. The footer lives outside the chunk (see footer), so
// all of it is usable region. spec.md §6 recommends >= 512 bytes;
// systemAlloc then rounds every request up to whole pages, the way the
// teacher's page-counted New(pages, ...) constructor does.
const minChunkSize = 512

// maxChunkSize is the cap beyond which chunks stop doubling (spec.md §4.2,
// §6). A single oversized request still gets its own suitably-sized chunk
// beyond this cap.
const maxChunkSize uintptr = 1 << 22

// footer is the bookkeeping record spec.md §3 places "at the end of each
// raw block": base pointer, bump cursor (the next free address, growing
// down toward base), a link to the previous chunk's footer, and the
// layout needed to release the raw block.
//
//	[ usable region ...................... | footer ]
//	 ^ base                                ^ ptr (footer_ptr)
//
// The diagram is the conceptual memory layout spec.md describes. This
// implementation keeps the footer itself as an ordinary Go-heap value
// rather than literally carving it out of the mmap'd block: footer.prev
// and footer.raw are Go pointers/slices, and Go's concurrent garbage
// collector requires pointer-containing values to live in memory the
// runtime's write barriers know about. Splicing a *footer into raw mmap
// memory would hide those pointers from the GC — a real memory-safety bug
// in Go, not just a style choice — so base/ptr/cursor track the same
// addresses spec.md's diagram describes, but the footer record recording
// them lives on the Go heap next to, not inside, the chunk it describes.
type footer struct {
	base   uintptr // first usable byte of this chunk
	ptr    uintptr // footer_ptr: top of the usable region, where cursor starts
	cursor uintptr // next address to hand out; base <= cursor <= ptr
	prev   *footer // previous chunk's footer, nil at the sentinel
	layout Layout  // size+align of the raw block as obtained from systemAlloc
	raw    []byte  // the exact mmap block backing [base, ptr)
}

// usable returns the capacity, in bytes, of this chunk's usable region.
func (f *footer) usable() uintptr {
	return f.ptr - f.base
}

// newChunk obtains a raw block from the system allocator large enough to
// hold at least minUsable bytes of usable region, and links it to prev.
//
// size is the caller's proposed usable-region size (already doubled /
// capped by the grower); newChunk raises it to minUsable and to
// minChunkSize where those are larger, and systemAlloc rounds the result up
// to whole pages.
func newChunk(size uintptr, minUsable uintptr, prev *footer) (*footer, error) {
	if minUsable > size {
		size = minUsable
	}
	if size < minChunkSize {
		size = minChunkSize
	}
	// Guard against size + alignment padding overflowing uintptr before it
	// ever reaches the allocator.
	if size+uintptr(pagesize) < size {
		return nil, &AllocFailError{Size: minUsable, Align: uintptr(pagesize)}
	}

	raw, err := systemAlloc(size)
	if err != nil {
		return nil, &AllocFailError{Size: size, Align: uintptr(pagesize), Cause: err}
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	ptr := base + uintptr(len(raw))

	return &footer{
		base:   base,
		ptr:    ptr,
		cursor: ptr,
		prev:   prev,
		layout: Layout{Size: uintptr(len(raw)), Align: uintptr(pagesize)},
		raw:    raw,
	}, nil
}

// free releases this chunk's raw block back to the system allocator by
// passing it the exact mmap slice recorded in its own footer.
func (f *footer) free() {
	systemFree(f.raw)
}
