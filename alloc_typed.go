package arena

import "unsafe"

// Generic allocation helpers (spec.md §4.3). Go's lack of method type
// parameters means these are free functions taking *Arena, the same shape
// the teacher's object.go uses for Alloc[T]/Ptr[T]/MakeSlice[T].

// TryAllocDefault allocates a zero-initialized T in the arena.
func TryAllocDefault[T any](a *Arena) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)
	ptr, err := a.TryAllocLayout(size, align)
	if err != nil {
		return nil, err
	}
	// Memory reused after Reset or Shrink still holds old bytes.
	p := (*T)(ptr)
	*p = zero
	return p, nil
}

// AllocDefault is the infallible counterpart of TryAllocDefault.
func AllocDefault[T any](a *Arena) *T {
	p, err := TryAllocDefault[T](a)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocValue moves v into the arena and returns a pointer to the copy.
func TryAllocValue[T any](a *Arena, v T) (*T, error) {
	p, err := TryAllocDefault[T](a)
	if err != nil {
		return nil, err
	}
	*p = v
	return p, nil
}

// AllocValue is the infallible counterpart of TryAllocValue.
func AllocValue[T any](a *Arena, v T) *T {
	p, err := TryAllocValue(a, v)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocSliceCopy allocates a slice of len(src) elements and bit-copies
// src into it.
func TryAllocSliceCopy[T any](a *Arena, src []T) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)
	total, overflow := checkedMul(elemSize, uintptr(len(src)))
	if overflow {
		return nil, &AllocFailError{Size: elemSize, Align: align}
	}
	ptr, err := a.TryAllocLayout(total, align)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*T)(ptr), len(src))
	copy(dst, src)
	return dst, nil
}

// AllocSliceCopy is the infallible counterpart of TryAllocSliceCopy.
func AllocSliceCopy[T any](a *Arena, src []T) []T {
	s, err := TryAllocSliceCopy(a, src)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocSliceClone allocates a slice of len(src) elements and
// deep-copies each element via clone, for T whose zero-cost bit copy would
// not be a correct duplicate (e.g. types holding slices or pointers that
// must themselves be re-homed in the arena).
func TryAllocSliceClone[T any](a *Arena, src []T, clone func(T) T) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst, err := TryAllocSliceFillWith(a, len(src), func(i int) T { return clone(src[i]) })
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// AllocSliceClone is the infallible counterpart of TryAllocSliceClone.
func AllocSliceClone[T any](a *Arena, src []T, clone func(T) T) []T {
	s, err := TryAllocSliceClone(a, src, clone)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocSliceFillWith allocates n elements and initializes each by
// calling f with its index.
func TryAllocSliceFillWith[T any](a *Arena, n int, f func(i int) T) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)
	total, overflow := checkedMul(elemSize, uintptr(n))
	if overflow {
		return nil, &AllocFailError{Size: elemSize, Align: align}
	}
	ptr, err := a.TryAllocLayout(total, align)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*T)(ptr), n)
	for i := range dst {
		dst[i] = f(i)
	}
	return dst, nil
}

// AllocSliceFillWith is the infallible counterpart of TryAllocSliceFillWith.
func AllocSliceFillWith[T any](a *Arena, n int, f func(i int) T) []T {
	s, err := TryAllocSliceFillWith(a, n, f)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocStr copies s's bytes into the arena and returns a string backed
// by arena memory.
func (a *Arena) TryAllocStr(s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	ptr, err := a.TryAllocLayout(uintptr(len(s)), 1)
	if err != nil {
		return "", err
	}
	dst := unsafe.Slice((*byte)(ptr), len(s))
	copy(dst, s)
	return unsafe.String(unsafe.SliceData(dst), len(dst)), nil
}

// AllocStr is the infallible counterpart of TryAllocStr.
func (a *Arena) AllocStr(s string) string {
	out, err := a.TryAllocStr(s)
	if err != nil {
		panic(err)
	}
	return out
}

// checkedMul returns a*b and whether the multiplication overflowed uintptr.
func checkedMul(a, b uintptr) (uintptr, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	return p, p/a != b
}
