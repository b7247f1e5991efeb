package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc1("Log127", 127, math.Log, Log, 1e-14, t)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func TestCeil(t *testing.T) {
	for _, tc := range []struct {
		x    string
		want int64
	}{
		{"53.29", 54},
		{"53", 53},
		{"0.1", 1},
		{"-0.5", 0},
		{"-1.5", -1},
		{"-2", -2},
	} {
		require.Equal(t, tc.want, Ceil(NewFloat(tc.x, 128)).Int64(), tc.x)
	}
}

func TestRound(t *testing.T) {
	require.Equal(t, "32", Round(NewFloat(31.75, 64)).Text('f', 0))
	require.Equal(t, "-2", Round(NewFloat(-1.5, 64)).Text('f', 0))
	require.Equal(t, "31", Round(NewFloat(31.25, 64)).Text('f', 0))
}

func TestNewFloat(t *testing.T) {
	require.Equal(t, 0, NewFloat(int64(7), 64).Cmp(NewFloat(uint(7), 64)))
	require.Equal(t, 0, NewFloat(big.NewInt(7), 64).Cmp(NewFloat("7", 64)))
	require.Panics(t, func() { NewFloat("x", 64) })
	require.Panics(t, func() { NewFloat(int8(1), 64) })
}
