package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// EqualSlice checks the equality between two slices of comparables.
func EqualSlice[V comparable](a, b []V) (v bool) {
	if len(a) != len(b) {
		return false
	}
	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// CopySlice returns a copy of s, or nil if s is nil.
func CopySlice[V any](s []V) (c []V) {
	if s == nil {
		return nil
	}
	c = make([]V, len(s))
	copy(c, s)
	return
}

// CopyMatrix returns a deep copy of m.
func CopyMatrix[V any](m [][]V) (c [][]V) {
	c = make([][]V, len(m))
	for i := range m {
		c[i] = CopySlice(m[i])
	}
	return
}
