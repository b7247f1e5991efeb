package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllDistinct(t *testing.T) {
	require.True(t, AllDistinct([]uint64{}))
	require.True(t, AllDistinct([]uint64{1}))
	require.True(t, AllDistinct([]uint64{1, 2, 3}))
	require.False(t, AllDistinct([]uint64{1, 1}))
	require.False(t, AllDistinct([]int{1, 2, 3, 4, 5, 5}))
}

func TestGCD(t *testing.T) {
	require.Equal(t, 1, GCD(7, 41))
	require.Equal(t, 6, GCD(12, 18))
	require.Equal(t, 6, GCD(-12, 18))
	require.Equal(t, uint64(5), GCD(uint64(0), uint64(5)))
	require.Equal(t, int64(0), GCD(int64(0), int64(0)))
	require.Equal(t, 1, GCD(3, 313))
}

func TestAbsInt(t *testing.T) {
	require.Equal(t, 3, AbsInt(-3))
	require.Equal(t, int64(0), AbsInt(int64(0)))
	require.Equal(t, uint64(7), AbsInt(uint64(7)))
}

func TestCountOccurrences(t *testing.T) {
	s := []int64{1, 0, -1, 1, 1, 0, -1}
	require.Equal(t, 3, CountOccurrences(s, 1))
	require.Equal(t, 2, CountOccurrences(s, -1))
	require.Equal(t, 2, CountOccurrences(s, 0))
	require.True(t, IsInSlice(int64(-1), s))
	require.False(t, IsInSlice(int64(2), s))
}
