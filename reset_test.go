package arena

import "testing"

func TestResetReusesLargestChunk(t *testing.T) {
	a := WithCapacity(64)
	first := a.AllocLayout(8, 8)

	// force growth to a second, bigger chunk
	for i := 0; i < 200; i++ {
		a.AllocLayout(32, 8)
	}
	if a.NumChunks() < 2 {
		t.Fatal("setup failed to grow past one chunk")
	}

	a.Reset()
	if a.NumChunks() != 1 {
		t.Fatalf("expected exactly one chunk after Reset, got %d", a.NumChunks())
	}
	if a.AllocatedBytes() != 0 {
		t.Fatalf("expected zero allocated bytes after Reset, got %d", a.AllocatedBytes())
	}

	second := a.AllocLayout(8, 8)
	_ = first
	if second == nil {
		t.Fatal("alloc after reset failed")
	}
}

func TestResetAllowsReuseOfCursor(t *testing.T) {
	a := WithCapacity(4096)
	p1 := a.AllocLayout(64, 8)
	a.Reset()
	p2 := a.AllocLayout(64, 8)
	if p1 != p2 {
		t.Fatalf("expected Reset on a single-chunk arena to return the cursor to the same address: %v != %v", p1, p2)
	}
}
