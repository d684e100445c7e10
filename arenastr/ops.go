// Zero-copy string inspection helpers, adapted from the teacher's
// str.go/strings.go (merged here since both files offered the same
// operations — one as free functions, one as a *Str receiver). They are
// kept as free functions only, since arenastr's receiver type, Builder,
// is reserved for the builder-specific API.
package arenastr

import (
	"bytes"
	"unsafe"
)

// ToBytes views s as a []byte without copying. The result must not be
// mutated: it aliases s's backing storage.
func ToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ToString views b as a string without copying. The result is only valid
// as long as b's backing array is not mutated or collected.
func ToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// TrimSpace trims leading and trailing whitespace from s without copying.
func TrimSpace(s string) string { return ToString(bytes.TrimSpace(ToBytes(s))) }

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool { return len(bytes.TrimSpace(ToBytes(s))) == 0 }

// Contains reports whether substr is within s, without copying.
func Contains(s, substr string) bool { return bytes.Contains(ToBytes(s), ToBytes(substr)) }

// HasPrefix reports whether s starts with prefix, without copying.
func HasPrefix(s, prefix string) bool { return bytes.HasPrefix(ToBytes(s), ToBytes(prefix)) }

// HasSuffix reports whether s ends with suffix, without copying.
func HasSuffix(s, suffix string) bool { return bytes.HasSuffix(ToBytes(s), ToBytes(suffix)) }

// Index returns the index of the first occurrence of substr in s, or -1.
func Index(s, substr string) int { return bytes.Index(ToBytes(s), ToBytes(substr)) }

// LastIndex returns the index of the last occurrence of substr in s, or -1.
func LastIndex(s, substr string) int { return bytes.LastIndex(ToBytes(s), ToBytes(substr)) }

// Trim removes leading and trailing characters in cutset from s, without
// copying.
func Trim(s, cutset string) string { return ToString(bytes.Trim(ToBytes(s), cutset)) }
