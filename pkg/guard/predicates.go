package guard

import "iter"

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return s == ""
}

// IsNotEmpty is the exact negation of IsEmpty for every input.
func IsNotEmpty(s string) bool {
	return s != ""
}

// IsEmptySlice reports whether items is nil or has no elements.
func IsEmptySlice[E any](items []E) bool {
	return len(items) == 0
}

// IsNotEmptySlice is the exact negation of IsEmptySlice.
func IsNotEmptySlice[E any](items []E) bool {
	return len(items) > 0
}

// IsEmptyMap reports whether m is nil or has no entries.
func IsEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IsNotEmptyMap is the exact negation of IsEmptyMap.
func IsNotEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// IsEmptySeq reports whether seq yields no elements. A nil sequence is empty.
// Deciding requires pulling the first element, so the answer is not safely
// repeatable on single-use iterators.
func IsEmptySeq[E any](seq iter.Seq[E]) bool {
	if seq == nil {
		return true
	}
	for range seq {
		return false
	}
	return true
}

// IsNotEmptySeq is the exact negation of IsEmptySeq, with the same single-use
// iterator caveat.
func IsNotEmptySeq[E any](seq iter.Seq[E]) bool {
	return !IsEmptySeq(seq)
}
