// mem.go adapts the teacher's page-allocation helpers into the system
// allocator the chunk grower (grow_chunk.go) calls on exhaustion. Memory
// obtained here lives outside Go's garbage collector, which is what makes
// it safe to hand out raw unsafe.Pointers whose lifetime is governed by the
// arena rather than the GC, and what gives the footer's recorded Layout
// something real to release at Close.
package arena

import "syscall"

var pagesize int

func init() {
	pagesize = syscall.Getpagesize()
}

// systemAlloc requests at least size bytes, rounded up to a whole number of
// pages, from the OS via mmap. The returned slice is the exact block that
// must later be passed to systemFree.
func systemAlloc(size uintptr) ([]byte, error) {
	rounded := (int(size) + pagesize - 1) / pagesize * pagesize
	data, err := syscall.Mmap(-1, 0, rounded, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_PRIVATE|syscall.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// systemFree returns a block obtained from systemAlloc to the OS.
// Note: data must be the exact slice returned by systemAlloc, not a
// subslice; after this call the block must not be dereferenced again.
func systemFree(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = syscall.Munmap(data)
}
