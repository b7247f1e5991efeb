package ring

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a0ngo/PQCS/utils/sampling"
)

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/q=%d", opname, r.N(), r.Modulus())
}

type testParams struct {
	ringQ          *Ring
	prng           sampling.PRNG
	uniformSampler *UniformSampler
}

var testParameters = []struct {
	N int
	q uint64
}{
	{7, 3},
	{7, 41},
	{11, 3},
	{23, 313},
	{31, 257},
	{64, 0x1fffffffffffffff}, // 2^61 - 1
}

func genTestParams(N int, q uint64) (tc *testParams, err error) {

	tc = new(testParams)

	if tc.ringQ, err = NewRing(N, q); err != nil {
		return nil, err
	}
	if tc.prng, err = sampling.NewKeyedPRNG([]byte(fmt.Sprintf("ring-test-%d-%d", N, q))); err != nil {
		return nil, err
	}
	tc.uniformSampler = NewUniformSampler(tc.prng, q)
	return
}

func TestRing(t *testing.T) {

	testNewRing(t)
	testMulCoeffsKnownAnswer(t)
	testInverseKnownAnswer(t)

	for _, p := range testParameters {

		tc, err := genTestParams(p.N, p.q)
		require.NoError(t, err)

		testAddSubNeg(tc, t)
		testMulScalar(tc, t)
		testMulCoeffs(tc, t)
		testReduce(tc, t)
		testDivMod(tc, t)
		testInverse(tc, t)
		testNotInvertible(tc, t)
		testCheck(tc, t)
	}
}

func testNewRing(t *testing.T) {
	t.Run("NewRing", func(t *testing.T) {
		r, err := NewRing(0, 41)
		require.Nil(t, r)
		require.Error(t, err)

		r, err = NewRing(7, 42)
		require.Nil(t, r)
		require.True(t, errors.Is(err, ErrModulusNotPrime))

		r, err = NewRing(7, 1)
		require.Nil(t, r)
		require.True(t, errors.Is(err, ErrModulusNotPrime))

		r, err = NewRing(7, 0xffffffff00000001)
		require.Nil(t, r)
		require.Error(t, err)

		r, err = NewRing(7, 41)
		require.NoError(t, err)
		require.Equal(t, 7, r.N())
		require.Equal(t, uint64(41), r.Modulus())
		require.Equal(t, []uint64{40, 0, 0, 0, 0, 0, 0, 1}, r.BasePoly())
		require.Equal(t, "Z_41[X]/(X^7-1)", r.String())

		other, err := NewRing(7, 41)
		require.NoError(t, err)
		require.True(t, r.Equal(other))
	})
}

func testMulCoeffsKnownAnswer(t *testing.T) {
	t.Run("MulCoeffs/KnownAnswer", func(t *testing.T) {
		r, err := NewRing(3, 7)
		require.NoError(t, err)

		// (1 + X) * X^2 = X^2 + X^3 = 1 + X^2 mod X^3 - 1
		a, err := r.NewPolyFromInts([]int64{1, 1})
		require.NoError(t, err)
		b, err := r.NewPolyFromInts([]int64{0, 0, 1})
		require.NoError(t, err)
		require.Equal(t, []uint64{1, 0, 1}, r.MulCoeffsNew(a, b).Coeffs)

		// (-1 + 2X) * (3 - X^2) = -3 + 6X + X^2 - 2X^3 = -5 + 6X + X^2
		a, err = r.NewPolyFromInts([]int64{-1, 2})
		require.NoError(t, err)
		b, err = r.NewPolyFromInts([]int64{3, 0, -1})
		require.NoError(t, err)
		require.Equal(t, []uint64{2, 6, 1}, r.MulCoeffsNew(a, b).Coeffs)
	})
}

func testInverseKnownAnswer(t *testing.T) {
	t.Run("Inverse/KnownAnswer", func(t *testing.T) {
		f := []int64{-1, 0, 1, 1, -1, 0, 1}

		for _, q := range []uint64{3, 41} {
			r, err := NewRing(7, q)
			require.NoError(t, err)

			fPoly, err := r.NewPolyFromInts(f)
			require.NoError(t, err)
			require.True(t, r.IsInvertible(fPoly))

			fInv, err := r.Inverse(fPoly)
			require.NoError(t, err)

			one := r.NewPoly()
			one.Coeffs[0] = 1
			require.True(t, r.MulCoeffsNew(fPoly, fInv).Equal(one), testString("Inverse", r))
		}
	})
}

func testAddSubNeg(tc *testParams, t *testing.T) {
	t.Run(testString("Add/Sub/Neg", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		p1 := tc.uniformSampler.ReadPoly(r)
		p2 := tc.uniformSampler.ReadPoly(r)

		sum := r.AddNew(p1, p2)
		require.True(t, sum.IsCanonical())

		diff := r.NewPoly()
		r.Sub(sum, p2, diff)
		require.True(t, diff.Equal(p1))

		neg := r.NewPoly()
		r.Neg(p1, neg)
		require.True(t, neg.IsCanonical())
		r.Add(neg, p1, neg)
		require.Equal(t, -1, neg.Degree())
	})
}

func testMulScalar(tc *testParams, t *testing.T) {
	t.Run(testString("MulScalar", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		p1 := tc.uniformSampler.ReadPoly(r)

		// p1 * 3 == p1 + p1 + p1
		want := r.AddNew(r.AddNew(p1, p1), p1)
		require.True(t, r.MulScalarNew(p1, 3).Equal(want))

		// p1 * (q + 1) == p1
		require.True(t, r.MulScalarNew(p1, r.Modulus()+1).Equal(p1))
	})
}

func testMulCoeffs(tc *testParams, t *testing.T) {
	t.Run(testString("MulCoeffs", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		a := tc.uniformSampler.ReadPoly(r)
		b := tc.uniformSampler.ReadPoly(r)
		c := tc.uniformSampler.ReadPoly(r)

		// commutativity
		require.True(t, r.MulCoeffsNew(a, b).Equal(r.MulCoeffsNew(b, a)))

		// distributivity
		lhs := r.MulCoeffsNew(a, r.AddNew(b, c))
		rhs := r.AddNew(r.MulCoeffsNew(a, b), r.MulCoeffsNew(a, c))
		require.True(t, lhs.Equal(rhs))

		// multiplication by X rotates the coefficients
		X := r.NewPoly()
		X.Coeffs[1%r.N()] = 1
		rot := r.MulCoeffsNew(a, X)
		for i := 0; i < r.N(); i++ {
			require.Equal(t, a.Coeffs[i], rot.Coeffs[(i+1)%r.N()])
		}

		// in-place
		want := r.MulCoeffsNew(a, b)
		r.MulCoeffs(a, b, a)
		require.True(t, a.Equal(want))
	})
}

func testReduce(tc *testParams, t *testing.T) {
	t.Run(testString("Reduce", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ
		N := r.N()

		// X^N = 1 and X^(N+1) = X
		coeffs := make([]uint64, 2*N)
		coeffs[N] = 1
		coeffs[N+1] = 2
		coeffs[0] = 3

		out := r.NewPoly()
		r.Reduce(coeffs, out)

		want := r.NewPoly()
		want.Coeffs[0] = 4 % r.Modulus()
		want.Coeffs[1%N] = (want.Coeffs[1%N] + 2) % r.Modulus()
		require.True(t, out.Equal(want))
	})
}

func testDivMod(tc *testParams, t *testing.T) {
	t.Run(testString("DivMod", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		a := tc.uniformSampler.ReadNew(2 * r.N())
		b := tc.uniformSampler.ReadNew(r.N())
		b[len(b)-1] = 1

		quo, rem, err := r.DivMod(a, b)
		require.NoError(t, err)
		require.Less(t, Degree(rem), Degree(b))

		// a == quo*b + rem
		back := r.mulRaw(quo, b)
		back = r.subRaw(back, r.subRaw([]uint64{}, rem))
		require.Equal(t, trim(a), back)

		_, _, err = r.DivMod(a, []uint64{0, 0})
		require.Error(t, err)
	})
}

func testInverse(tc *testParams, t *testing.T) {
	t.Run(testString("Inverse", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		one := r.NewPoly()
		one.Coeffs[0] = 1

		var found int
		for i := 0; i < 16; i++ {
			a := tc.uniformSampler.ReadPoly(r)

			aInv, err := r.Inverse(a)
			if err != nil {
				require.True(t, errors.Is(err, ErrNotInvertible))
				require.False(t, r.IsInvertible(a))
				continue
			}

			found++
			require.True(t, r.IsInvertible(a))
			require.True(t, aInv.IsCanonical())
			require.True(t, r.MulCoeffsNew(a, aInv).Equal(one))
			require.True(t, r.MulCoeffsNew(aInv, a).Equal(one))
		}
		require.NotZero(t, found)

		// constants are units
		c := r.NewPoly()
		c.Coeffs[0] = 2 % r.Modulus()
		if c.Coeffs[0] != 0 {
			cInv, err := r.Inverse(c)
			require.NoError(t, err)
			require.True(t, r.MulCoeffsNew(c, cInv).Equal(one))
		}
	})
}

func testNotInvertible(tc *testParams, t *testing.T) {
	t.Run(testString("NotInvertible", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		_, err := r.Inverse(r.NewPoly())
		require.True(t, errors.Is(err, ErrNotInvertible))

		if r.N() < 2 {
			return
		}

		// 1 - X vanishes at X = 1, a root of X^N - 1
		a, err := r.NewPolyFromInts([]int64{1, -1})
		require.NoError(t, err)

		_, err = r.Inverse(a)
		require.True(t, errors.Is(err, ErrNotInvertible))
		require.False(t, r.IsInvertible(a))

		g, err := r.GCD(a)
		require.NoError(t, err)
		require.Equal(t, []uint64{r.Modulus() - 1, 1}, g)
	})
}

func testCheck(tc *testParams, t *testing.T) {
	t.Run(testString("Check", tc.ringQ), func(t *testing.T) {
		r := tc.ringQ

		require.NoError(t, r.Check(r.NewPoly()))

		require.True(t, errors.Is(r.Check(NewPoly(r.N(), 5)), ErrRingMismatch))
		require.True(t, errors.Is(r.Check(NewPoly(r.N()+1, r.Modulus())), ErrRingMismatch))

		p := r.NewPoly()
		p.Coeffs[0] = r.Modulus()
		require.True(t, errors.Is(r.Check(p), ErrRingMismatch))

		_, err := r.Inverse(p)
		require.True(t, errors.Is(err, ErrRingMismatch))

		_, err = r.NewPolyFromInts(make([]int64, r.N()+1))
		require.Error(t, err)

		pol, err := r.NewPolyFromUints([]uint64{r.Modulus() + 2})
		require.NoError(t, err)
		require.Equal(t, uint64(2)%r.Modulus(), pol.Coeffs[0])
	})
}

func TestPoly(t *testing.T) {
	p := Poly{Coeffs: []uint64{3, 0, 1, 0, 0, 0, 40}, Modulus: 41}
	require.Equal(t, 6, p.Degree())
	require.Equal(t, "3 + 1*X^2 + 40*X^6 (mod 41)", p.String())
	require.Equal(t, "0 (mod 41)", NewPoly(3, 41).String())

	c := p.CopyNew()
	require.True(t, c.Equal(p))
	c.Coeffs[0] = 4
	require.False(t, c.Equal(p))

	c.Copy(p)
	require.True(t, c.Equal(p))

	c.Zero()
	require.Equal(t, -1, c.Degree())

	require.False(t, p.Equal(Poly{Coeffs: p.Coeffs, Modulus: 43}))
}

func TestModularReduction(t *testing.T) {
	for _, q := range []uint64{3, 41, 313, 0x1fffffffffffffff} {
		brc := GenBRedConstant(q)
		for _, x := range []uint64{0, 1, q - 1, q, q + 1, 2*q - 1, 0xffffffffffffffff} {
			require.Equal(t, x%q, BRedAdd(x, q, brc), "x=%d q=%d", x, q)
		}
		for _, xy := range [][2]uint64{{0, 0}, {1, q - 1}, {q - 1, q - 1}, {q / 2, q / 3}} {
			require.Equal(t, mulMod(xy[0], xy[1], q), BRed(xy[0], xy[1], q, brc))
		}

		for _, x := range []uint64{1, 2, q - 1} {
			inv, ok := ModInverse(x, q)
			require.True(t, ok)
			require.Equal(t, uint64(1), mulMod(x, inv, q))
		}
		_, ok := ModInverse(q, q)
		require.False(t, ok)

		require.Equal(t, q-1, ReduceInt(-1, q))
		require.Equal(t, uint64(0), ReduceInt(-int64(q%(1<<62)), q))
		require.Equal(t, uint64(5)%q, ReduceInt(5, q))
	}

	require.Equal(t, uint64(1), ModExp(3, 40, 41))
	require.Equal(t, uint64(1), CRed(42, 41))
	require.Equal(t, uint64(40), CRed(40, 41))
}
