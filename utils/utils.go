// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) = 0.
func GCD[T constraints.Integer](a, b T) T {
	a, b = AbsInt(a), AbsInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AbsInt returns |x|. For unsigned types it returns x.
func AbsInt[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}

// IsInSlice checks if x is in slice.
func IsInSlice[V comparable](x V, slice []V) (v bool) {
	for i := range slice {
		v = v || (slice[i] == x)
	}
	return
}

// CountOccurrences returns the number of elements of s equal to x.
func CountOccurrences[V comparable](s []V, x V) (cnt int) {
	for i := range s {
		if s[i] == x {
			cnt++
		}
	}
	return
}
