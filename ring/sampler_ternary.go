package ring

import (
	"fmt"

	"github.com/a0ngo/PQCS/utils/sampling"
)

// TernarySampler samples polynomials of N coefficients in {-1, 0, 1} with a
// fixed number of 1 and -1 coefficients.
//
// Positions are drawn uniformly at random and kept only if still free, first
// for the 1s and then for the -1s. Unless the sampler is exact, each count is
// placed one extra time: a sampler built for (ones, minusOnes) = (d1, d2)
// returns d1+1 coefficients equal to 1 and d2+1 equal to -1.
type TernarySampler struct {
	baseSampler
	n         int
	ones      int
	minusOnes int
}

// NewTernarySampler creates a new TernarySampler for polynomials of N coefficients.
// If exact is false, the sampler places ones+1 coefficients equal to 1 and minusOnes+1 equal to -1.
func NewTernarySampler(prng sampling.PRNG, N, ones, minusOnes int, exact bool) (ts *TernarySampler, err error) {

	if ones < 0 || minusOnes < 0 {
		return nil, fmt.Errorf("invalid ternary weights: (%d, %d) must be non-negative", ones, minusOnes)
	}

	if !exact {
		ones++
		minusOnes++
	}

	if ones+minusOnes > N {
		return nil, fmt.Errorf("invalid ternary weights: %d non-zero coefficients do not fit in N=%d", ones+minusOnes, N)
	}

	return &TernarySampler{
		baseSampler: baseSampler{prng: prng},
		n:           N,
		ones:        ones,
		minusOnes:   minusOnes,
	}, nil
}

// Weights returns the number of coefficients equal to 1 and to -1 in each sample.
func (ts *TernarySampler) Weights() (ones, minusOnes int) {
	return ts.ones, ts.minusOnes
}

// N returns the number of coefficients of the samples.
func (ts *TernarySampler) N() int {
	return ts.n
}

// Read samples a new ternary polynomial, as signed coefficients in ascending order of degree.
func (ts *TernarySampler) Read() (coeffs []int64) {
	coeffs = make([]int64, ts.n)
	taken := make([]bool, ts.n)
	ts.place(coeffs, taken, 1, ts.ones)
	ts.place(coeffs, taken, -1, ts.minusOnes)
	return
}

func (ts *TernarySampler) place(coeffs []int64, taken []bool, value int64, count int) {
	for placed := 0; placed < count; {
		pos := sampling.RandIntn(ts.prng, ts.n)
		if !taken[pos] {
			taken[pos] = true
			coeffs[pos] = value
			placed++
		}
	}
}

// ReadUntil samples ternary polynomials until accept returns true, and returns the
// accepted sample with the number of attempts it took.
// After maxRetries rejected samples it returns an error wrapping ErrSamplingExhausted.
// A maxRetries smaller than 1 allows a single attempt.
func (ts *TernarySampler) ReadUntil(accept func(coeffs []int64) bool, maxRetries int) (coeffs []int64, attempts int, err error) {

	maxRetries = max(maxRetries, 1)

	for attempts = 1; attempts <= maxRetries; attempts++ {
		if coeffs = ts.Read(); accept(coeffs) {
			return coeffs, attempts, nil
		}
	}

	return nil, maxRetries, fmt.Errorf("%w: no acceptable ternary polynomial after %d attempts", ErrSamplingExhausted, maxRetries)
}
