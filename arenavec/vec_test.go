package arenavec

import (
	"testing"

	"github.com/gobump/arena"
)

func TestPushAndGet(t *testing.T) {
	a := arena.New()
	v := New[int](a)
	for i := 0; i < 100; i++ {
		v.Push(i)
	}
	if v.Len() != 100 {
		t.Fatalf("expected len 100, got %d", v.Len())
	}
	for i := 0; i < 100; i++ {
		got, ok := v.Get(i)
		if !ok || got != i {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", i, got, ok, i)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	a := arena.New()
	v := New[int](a)
	if _, ok := v.Get(0); ok {
		t.Fatal("expected Get on empty Vec to fail")
	}
	v.Push(1)
	if _, ok := v.Get(-1); ok {
		t.Fatal("expected Get(-1) to fail")
	}
	if _, ok := v.Get(1); ok {
		t.Fatal("expected Get(len) to fail")
	}
}

func TestPop(t *testing.T) {
	a := arena.New()
	v := NewWith(a, 1, 2, 3)
	val, ok := v.Pop()
	if !ok || val != 3 {
		t.Fatalf("Pop() = (%d, %v), want (3, true)", val, ok)
	}
	if v.Len() != 2 {
		t.Fatalf("expected len 2 after pop, got %d", v.Len())
	}
	v.Pop()
	v.Pop()
	if _, ok := v.Pop(); ok {
		t.Fatal("expected Pop on empty Vec to fail")
	}
}

func TestInsertAndRemove(t *testing.T) {
	a := arena.New()
	v := NewWith(a, 1, 2, 4)
	if !v.Insert(2, 3) {
		t.Fatal("Insert failed")
	}
	want := []int{1, 2, 3, 4}
	for i, w := range want {
		got, _ := v.Get(i)
		if got != w {
			t.Fatalf("after insert: [%d] = %d, want %d", i, got, w)
		}
	}
	if !v.Remove(0) {
		t.Fatal("Remove failed")
	}
	want = []int{2, 3, 4}
	for i, w := range want {
		got, _ := v.Get(i)
		if got != w {
			t.Fatalf("after remove: [%d] = %d, want %d", i, got, w)
		}
	}
}

func TestAppendSlice(t *testing.T) {
	a := arena.New()
	v := New[int](a)
	v.AppendSlice([]int{1, 2, 3})
	v.AppendSlice([]int{4, 5})
	if v.Len() != 5 {
		t.Fatalf("expected len 5, got %d", v.Len())
	}
	slice := v.Slice()
	for i, w := range []int{1, 2, 3, 4, 5} {
		if slice[i] != w {
			t.Fatalf("slice[%d] = %d, want %d", i, slice[i], w)
		}
	}
}

func TestSortAndReverse(t *testing.T) {
	a := arena.New()
	v := NewWith(a, 3, 1, 4, 1, 5, 9, 2, 6)
	v.Sort(func(x, y int) bool { return x < y })
	want := []int{1, 1, 2, 3, 4, 5, 6, 9}
	for i, w := range want {
		got, _ := v.Get(i)
		if got != w {
			t.Fatalf("sorted[%d] = %d, want %d", i, got, w)
		}
	}
	v.Reverse()
	for i, w := range want {
		got, _ := v.Get(len(want) - 1 - i)
		if got != w {
			t.Fatalf("reversed[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestAllIteration(t *testing.T) {
	a := arena.New()
	v := NewWith(a, 10, 20, 30)
	var sum int
	for val := range v.All() {
		sum += val
	}
	if sum != 60 {
		t.Fatalf("sum = %d, want 60", sum)
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	a := arena.New()
	v := NewWith(a, 1, 2, 3)
	capBefore := v.Cap()
	v.Reset()
	if v.Len() != 0 {
		t.Fatalf("expected len 0 after Reset, got %d", v.Len())
	}
	if v.Cap() != capBefore {
		t.Fatalf("expected capacity to be retained across Reset: got %d, want %d", v.Cap(), capBefore)
	}
}

func TestToSliceIsIndependentCopy(t *testing.T) {
	a := arena.New()
	v := NewWith(a, 1, 2, 3)
	out := v.ToSlice()
	out[0] = 999
	got, _ := v.Get(0)
	if got == 999 {
		t.Fatal("ToSlice should return an independent copy")
	}
}

func TestGrowthAcrossManyPushes(t *testing.T) {
	a := arena.New()
	v := New[int](a)
	for i := 0; i < 10000; i++ {
		v.Push(i)
	}
	if v.Len() != 10000 {
		t.Fatalf("expected len 10000, got %d", v.Len())
	}
	for i := 0; i < 10000; i += 1000 {
		got, _ := v.Get(i)
		if got != i {
			t.Fatalf("Get(%d) = %d after growth, want %d", i, got, i)
		}
	}
}
