// Package sampling implements sampling of bytes and integers from a PRNG.
package sampling

import (
	"encoding/binary"
	"math/bits"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float in [0, 1) read from prng.
func RandFloat64(prng PRNG) float64 {
	// 53 bits of mantissa.
	return float64(RandUint64(prng)>>11) / (1 << 53)
}

// RandUint64n returns a uniformly random value in [0, n).
// Sampling is done by rejection on a bit mask, so the output is unbiased.
// Panics if n == 0.
func RandUint64n(prng PRNG, n uint64) uint64 {
	if n == 0 {
		panic("cannot RandUint64n: n == 0")
	}
	if n == 1 {
		return 0
	}
	// 1<<64 wraps to 0, so the mask is all ones for n-1 >= 2^63.
	mask := uint64(1)<<bits.Len64(n-1) - 1
	for {
		if x := RandUint64(prng) & mask; x < n {
			return x
		}
	}
}

// RandIntn returns a uniformly random int in [0, n). Panics if n <= 0.
func RandIntn(prng PRNG, n int) int {
	if n <= 0 {
		panic("cannot RandIntn: n <= 0")
	}
	return int(RandUint64n(prng, uint64(n)))
}

// RandSubset returns k distinct indices drawn uniformly without replacement from [0, n),
// in the order they were drawn. Panics if k > n or k < 0.
func RandSubset(prng PRNG, n, k int) (subset []int) {
	if k < 0 || k > n {
		panic("cannot RandSubset: k must be in [0, n]")
	}

	// Partial Fisher-Yates over a lazily materialised permutation.
	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	subset = make([]int, k)
	for i := 0; i < k; i++ {
		j := i + RandIntn(prng, n-i)
		vi, vj := at(i), at(j)
		swapped[j] = vi
		swapped[i] = vj
		subset[i] = vj
	}

	return
}
