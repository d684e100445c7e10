package arenastr

import (
	"testing"

	"github.com/gobump/arena"
)

func TestWriteStringAndString(t *testing.T) {
	a := arena.New()
	b := New(a)
	b.WriteString("hello, ")
	b.WriteString("arena")
	if got := b.String(); got != "hello, arena" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteByteAndRune(t *testing.T) {
	a := arena.New()
	b := New(a)
	b.WriteByte('h')
	b.WriteRune('i')
	b.WriteRune('世')
	if got := b.String(); got != "hi世" {
		t.Fatalf("got %q", got)
	}
}

func TestNewStringPrepopulates(t *testing.T) {
	a := arena.New()
	b := NewString(a, "seed")
	b.WriteString(" value")
	if got := b.String(); got != "seed value" {
		t.Fatalf("got %q", got)
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	a := arena.New()
	b := New(a)
	b.WriteString("some text")
	capBefore := b.Cap()
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("expected len 0 after Reset, got %d", b.Len())
	}
	if b.Cap() != capBefore {
		t.Fatalf("expected capacity retained across Reset: got %d, want %d", b.Cap(), capBefore)
	}
}

func TestCloneStringIsIndependent(t *testing.T) {
	a := arena.New()
	b := New(a)
	b.WriteString("clone me")
	cloned := b.CloneString()
	b.Reset()
	b.WriteString("mutated")
	if cloned != "clone me" {
		t.Fatalf("clone mutated alongside builder: %q", cloned)
	}
}

func TestGrowthAcrossManyWrites(t *testing.T) {
	a := arena.New()
	b := New(a)
	for i := 0; i < 1000; i++ {
		b.WriteString("0123456789")
	}
	if b.Len() != 10000 {
		t.Fatalf("expected len 10000, got %d", b.Len())
	}
}

func TestOpsHelpers(t *testing.T) {
	if !Contains("hello world", "world") {
		t.Fatal("Contains failed")
	}
	if !HasPrefix("hello", "he") {
		t.Fatal("HasPrefix failed")
	}
	if !HasSuffix("hello", "lo") {
		t.Fatal("HasSuffix failed")
	}
	if TrimSpace("  hi  ") != "hi" {
		t.Fatal("TrimSpace failed")
	}
	if !IsBlank("   ") {
		t.Fatal("IsBlank failed")
	}
	if Index("hello", "l") != 2 {
		t.Fatalf("Index = %d, want 2", Index("hello", "l"))
	}
	if LastIndex("hello", "l") != 3 {
		t.Fatalf("LastIndex = %d, want 3", LastIndex("hello", "l"))
	}
}
