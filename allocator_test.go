package arena

import "testing"

func TestArenaSatisfiesAllocator(t *testing.T) {
	var _ Allocator = New()
}

func TestAllocatorAllocDelegates(t *testing.T) {
	a := New()
	var alloc Allocator = a
	p := alloc.Alloc(Layout{Size: 16, Align: 8})
	if p == nil {
		t.Fatal("Alloc via Allocator interface returned nil")
	}
	if !a.Owns(p) {
		t.Fatal("arena should own the pointer it returned via the Allocator interface")
	}
}

func TestAllocatorDeallocIsNoop(t *testing.T) {
	a := New()
	p := a.AllocLayout(16, 8)
	before := a.AllocatedBytes()
	a.Dealloc(p, Layout{Size: 16, Align: 8})
	if a.AllocatedBytes() != before {
		t.Fatal("Dealloc must not change allocated byte count")
	}
}
