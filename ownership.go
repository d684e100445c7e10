package arena

import "unsafe"

// OwnsPtr is a convenience wrapper around Owns that eliminates the need for
// an explicit unsafe.Pointer cast when checking a typed pointer.
func OwnsPtr[T any](a *Arena, ptr *T) bool {
	return a.Owns(unsafe.Pointer(ptr))
}

// OwnsSlice reports whether slice's backing array belongs to a. Returns
// false for a nil or empty slice.
func OwnsSlice[T any](a *Arena, slice []T) bool {
	if len(slice) == 0 {
		return false
	}
	return a.Owns(unsafe.Pointer(unsafe.SliceData(slice)))
}

// OwnsString reports whether s's backing bytes belong to a. Returns false
// for an empty string.
func OwnsString(a *Arena, s string) bool {
	if len(s) == 0 {
		return false
	}
	return a.Owns(unsafe.Pointer(unsafe.StringData(s)))
}
