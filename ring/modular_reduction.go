package ring

import (
	"math/big"
	"math/bits"
)

//===========================
//===== BARRETT REDUCTION ===
//===========================

// GenBRedConstant computes the constant for the BRed algorithm.
// Returns ((2^128)/q)/(2^64) and (2^128)/q mod 2^64.
func GenBRedConstant(q uint64) (constant [2]uint64) {
	bigR := new(big.Int).Lsh(big.NewInt(1), 128)
	bigR.Quo(bigR, new(big.Int).SetUint64(q))

	mhi := new(big.Int).Rsh(bigR, 64).Uint64()
	mlo := bigR.Uint64()

	return [2]uint64{mhi, mlo}
}

// BRedAdd computes a mod q.
func BRedAdd(a, q uint64, u [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, u[0])
	r = a - mhi*q
	for r >= q {
		r -= q
	}
	return
}

// BRed computes x*y mod q.
// Assumes that x and y are in [0, q-1] and that q < 2^62.
func BRed(x, y, q uint64, u [2]uint64) (r uint64) {

	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	// (alo*ulo)>>64

	lhi, _ = bits.Mul64(alo, u[1])

	// ((ahi*ulo + alo*uhi) + (alo*ulo))>>64

	mhi, mlo = bits.Mul64(alo, u[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, u[1])

	_, carry = bits.Add64(mlo, s0, 0)

	lhi = mhi + carry

	// (ahi*uhi) + (((ahi*ulo + alo*uhi) + (alo*ulo))>>64)

	s0 = ahi*u[0] + s1 + lhi

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}

//===============================
//==== CONDITIONAL REDUCTION ====
//===============================

// CRed reduce returns a mod q, where
// a is required to be in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// ModExp performs the modular exponentiation x^e mod q.
// q must be smaller than 2^62.
func ModExp(x, e, q uint64) (result uint64) {
	brc := GenBRedConstant(q)
	x = BRedAdd(x, q, brc)
	result = BRedAdd(1, q, brc)
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = BRed(result, x, q, brc)
		}
		x = BRed(x, x, q, brc)
	}
	return result
}

// ModInverse returns x^-1 mod q for a prime q, and false if x = 0 mod q.
func ModInverse(x, q uint64) (uint64, bool) {
	if x%q == 0 {
		return 0, false
	}
	return ModExp(x, q-2, q), true
}

// ReduceInt returns x mod q in [0, q).
func ReduceInt(x int64, q uint64) uint64 {
	if x >= 0 {
		return uint64(x) % q
	}
	r := uint64(-(x + 1)) % q // avoids overflow on math.MinInt64
	return q - 1 - r
}
