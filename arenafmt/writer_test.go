package arenafmt

import (
	"fmt"
	"testing"

	"github.com/gobump/arena"
)

func TestFprintfTargetsArenaMemory(t *testing.T) {
	a := arena.New()
	w := NewWriter(a)
	fmt.Fprintf(w, "%s has %d items worth $%.2f", "cart", 3, 19.999)
	if got := w.String(); got != "cart has 3 items worth $20.00" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteByteAndString(t *testing.T) {
	a := arena.New()
	w := NewWriter(a)
	w.WriteByte('x')
	w.WriteString("yz")
	if got := w.String(); got != "xyz" {
		t.Fatalf("got %q", got)
	}
}

func TestWriterGrowsAcrossManyWrites(t *testing.T) {
	a := arena.New()
	w := NewWriter(a)
	for i := 0; i < 1000; i++ {
		w.Write([]byte("0123456789"))
	}
	if w.Len() != 10000 {
		t.Fatalf("expected len 10000, got %d", w.Len())
	}
}

func TestWriterReset(t *testing.T) {
	a := arena.New()
	w := NewWriter(a)
	w.WriteString("content")
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("expected len 0 after Reset, got %d", w.Len())
	}
	w.WriteString("new")
	if w.String() != "new" {
		t.Fatalf("got %q", w.String())
	}
}

func TestReaderReadsBackWriterOutput(t *testing.T) {
	a := arena.New()
	w := NewWriter(a)
	w.WriteString("round-trip")

	r := NewReader(w.Bytes())
	buf := make([]byte, r.Size())
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf[:n]) != "round-trip" {
		t.Fatalf("got %q", buf[:n])
	}
	if _, err := r.Read(buf); err == nil {
		t.Fatal("expected EOF on subsequent read")
	}
}

func TestReaderReadByte(t *testing.T) {
	r := NewReader([]byte("ab"))
	b, err := r.ReadByte()
	if err != nil || b != 'a' {
		t.Fatalf("ReadByte() = (%v, %v), want ('a', nil)", b, err)
	}
	b, err = r.ReadByte()
	if err != nil || b != 'b' {
		t.Fatalf("ReadByte() = (%v, %v), want ('b', nil)", b, err)
	}
	if _, err := r.ReadByte(); err == nil {
		t.Fatal("expected EOF")
	}
}
