package ring

import (
	"math/bits"

	"github.com/a0ngo/PQCS/utils/sampling"
)

// DefaultPrimalityRounds is the number of Miller-Rabin witnesses used by IsPrime.
const DefaultPrimalityRounds = 10

// IsPrime applies DefaultPrimalityRounds rounds of the Miller-Rabin test with
// witnesses drawn from crypto/rand.
// A composite is reported as prime with probability at most 4^-10.
func IsPrime(p uint64) bool {
	prng, _ := sampling.NewPRNG()
	return MillerRabin(p, DefaultPrimalityRounds, prng)
}

// MillerRabin applies the Miller-Rabin probabilistic primality test to p
// using rounds random witnesses in [2, p-2] read from prng.
// The result is exact for p <= 3. For larger p, false is a proof of
// compositeness and true means prime with probability at least 1 - 4^-rounds.
// A value of rounds smaller than 1 is treated as 1.
func MillerRabin(p uint64, rounds int, prng sampling.PRNG) bool {

	if p == 1 || (p%2 == 0 && p != 2) {
		return false
	}

	if p == 2 || p == 3 {
		return true
	}

	// p - 1 = 2^s * d with d odd
	s := bits.TrailingZeros64(p - 1)
	d := (p - 1) >> s

	if rounds < 1 {
		rounds = 1
	}

	for i := 0; i < rounds; i++ {
		a := 2 + sampling.RandUint64n(prng, p-3)
		if isWitness(a, d, p, s) {
			return false
		}
	}

	return true
}

// isWitness returns true if a proves that p is composite.
func isWitness(a, d, p uint64, s int) bool {

	x := powMod(a, d, p)

	if x == 1 || x == p-1 {
		return false
	}

	for j := 1; j < s; j++ {
		y := mulMod(x, x, p)

		// x != +-1 and x^2 = 1: non-trivial square root of unity
		if y == 1 {
			return true
		}

		if x = y; x == p-1 {
			return false
		}
	}

	return true
}

// mulMod returns x*y mod p for any 64-bit p.
func mulMod(x, y, p uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, p)
}

// powMod returns x^e mod p for any 64-bit p.
func powMod(x, e, p uint64) (r uint64) {
	r = 1 % p
	x %= p
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulMod(r, x, p)
		}
		x = mulMod(x, x, p)
	}
	return
}
