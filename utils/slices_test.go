package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualSlice(t *testing.T) {
	require.True(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2, 3}))
	require.False(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2}))
	require.False(t, EqualSlice([]int{1, 2, 3}, []int{1, 2, 4}))
}

func TestSortSlice(t *testing.T) {
	s := []int{5, 1, 4, 2}
	SortSlice(s)
	require.Equal(t, []int{1, 2, 4, 5}, s)
}

func TestCopy(t *testing.T) {
	s := []uint64{1, 2, 3}
	c := CopySlice(s)
	c[0] = 9
	require.Equal(t, uint64(1), s[0])
	require.Nil(t, CopySlice[uint64](nil))

	m := [][]uint64{{1, 2}, {3}}
	cm := CopyMatrix(m)
	cm[1][0] = 7
	require.Equal(t, uint64(3), m[1][0])
}
