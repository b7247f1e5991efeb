package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a0ngo/PQCS/utils"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("KeyedPRNG", func(t *testing.T) {

		Ha, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		require.Equal(t, key, Ha.Key())

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("MathPRNG", func(t *testing.T) {
		a, b := NewMathPRNG(42), NewMathPRNG(42)
		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		a.Read(sum0)
		b.Read(sum1)
		require.Equal(t, sum0, sum1)
	})

	t.Run("DeriveKey", func(t *testing.T) {
		k0 := DeriveKey("ntru", []byte("seed"))
		k1 := DeriveKey("ntru", []byte("seed"))
		k2 := DeriveKey("lwe", []byte("seed"))
		require.Len(t, k0, 32)
		require.Equal(t, k0, k1)
		require.NotEqual(t, k0, k2)
	})
}

func TestRandUint64n(t *testing.T) {
	prng, err := NewKeyedPRNG([]byte("RandUint64n"))
	require.NoError(t, err)

	for _, n := range []uint64{1, 2, 3, 7, 127, 1 << 40} {
		for i := 0; i < 256; i++ {
			require.Less(t, RandUint64n(prng, n), n)
		}
	}

	seen := make(map[int]bool)
	for i := 0; i < 1024; i++ {
		seen[RandIntn(prng, 5)] = true
	}
	require.Len(t, seen, 5)

	for i := 0; i < 1024; i++ {
		f := RandFloat64(prng)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestRandSubset(t *testing.T) {
	prng, err := NewKeyedPRNG([]byte("RandSubset"))
	require.NoError(t, err)

	for _, tc := range []struct{ n, k int }{{1, 1}, {10, 0}, {10, 3}, {54, 54}, {100, 37}} {
		subset := RandSubset(prng, tc.n, tc.k)
		require.Len(t, subset, tc.k)
		require.True(t, utils.AllDistinct(subset))
		for _, i := range subset {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, tc.n)
		}
	}

	require.Panics(t, func() { RandSubset(prng, 3, 4) })
}
