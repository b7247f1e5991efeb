package ring

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/a0ngo/PQCS/utils/sampling"
)

// GaussianTable is a zero-mean normal distribution of standard deviation Sigma
// discretized over the integers of [Lower, Upper].
//
// The probability of an integer x is the mass of the continuous distribution
// over the unit bin [x - 1/2, x + 1/2], normalized by the total mass of all bins.
// A GaussianTable is immutable and can be shared between goroutines.
type GaussianTable struct {
	sigma        float64
	lower, upper int64
	pmf          []float64
	cdf          []float64
}

// NewGaussianTable builds the discretized Gaussian of standard deviation sigma over [lower, upper].
func NewGaussianTable(sigma float64, lower, upper int64) (*GaussianTable, error) {

	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("invalid standard deviation: sigma=%v must be positive and finite", sigma)
	}

	if lower > upper {
		return nil, fmt.Errorf("invalid support: lower=%d > upper=%d", lower, upper)
	}

	norm := distuv.Normal{Mu: 0, Sigma: sigma}

	size := int(upper-lower) + 1

	pmf := make([]float64, size)

	var total float64
	prev := norm.CDF(float64(lower) - 0.5)
	for i := 0; i < size; i++ {
		next := norm.CDF(float64(lower+int64(i)) + 0.5)
		pmf[i] = next - prev
		total += pmf[i]
		prev = next
	}

	if !(total > 0) {
		return nil, fmt.Errorf("invalid support: [%d, %d] carries no probability mass for sigma=%v", lower, upper, sigma)
	}

	cdf := make([]float64, size)
	var acc float64
	for i := range pmf {
		pmf[i] /= total
		acc += pmf[i]
		cdf[i] = acc
	}
	cdf[size-1] = 1

	return &GaussianTable{
		sigma: sigma,
		lower: lower,
		upper: upper,
		pmf:   pmf,
		cdf:   cdf,
	}, nil
}

// Sigma returns the standard deviation of the underlying continuous distribution.
func (g *GaussianTable) Sigma() float64 {
	return g.sigma
}

// Support returns the bounds (inclusive) of the distribution.
func (g *GaussianTable) Support() (lower, upper int64) {
	return g.lower, g.upper
}

// Probability returns the probability of x, which is 0 outside of the support.
func (g *GaussianTable) Probability(x int64) float64 {
	if x < g.lower || x > g.upper {
		return 0
	}
	return g.pmf[x-g.lower]
}

// Moments returns the mean and variance of the discrete distribution.
func (g *GaussianTable) Moments() (mean, variance float64) {
	for i, p := range g.pmf {
		mean += float64(g.lower+int64(i)) * p
	}
	for i, p := range g.pmf {
		d := float64(g.lower+int64(i)) - mean
		variance += d * d * p
	}
	return
}

// sample maps u in [0, 1) to the integer whose cumulative bin contains u.
func (g *GaussianTable) sample(u float64) int64 {
	i := sort.Search(len(g.cdf), func(i int) bool { return g.cdf[i] > u })
	if i == len(g.cdf) {
		i--
	}
	// Skip zero-mass bins that share the cumulative value of their predecessor.
	for g.pmf[i] == 0 && i > 0 {
		i--
	}
	return g.lower + int64(i)
}

// GaussianSampler samples integers from a GaussianTable.
type GaussianSampler struct {
	baseSampler
	table *GaussianTable
}

// NewGaussianSampler creates a new GaussianSampler reading its randomness from prng.
func NewGaussianSampler(prng sampling.PRNG, table *GaussianTable) *GaussianSampler {
	return &GaussianSampler{baseSampler: baseSampler{prng: prng}, table: table}
}

// Table returns the distribution of the sampler.
func (gs *GaussianSampler) Table() *GaussianTable {
	return gs.table
}

// ReadInt samples one integer.
func (gs *GaussianSampler) ReadInt() int64 {
	return gs.table.sample(sampling.RandFloat64(gs.prng))
}

// Read fills out with independent samples.
func (gs *GaussianSampler) Read(out []int64) {
	for i := range out {
		out[i] = gs.ReadInt()
	}
}
