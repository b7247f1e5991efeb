package ring

import (
	"github.com/a0ngo/PQCS/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and samples integers uniformly in [0, q).
type UniformSampler struct {
	baseSampler
	modulus uint64
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and a modulus q > 0.
func NewUniformSampler(prng sampling.PRNG, modulus uint64) (u *UniformSampler) {
	if modulus == 0 {
		panic("cannot NewUniformSampler: modulus is zero")
	}
	return &UniformSampler{baseSampler: baseSampler{prng: prng}, modulus: modulus}
}

// Modulus returns the upper bound (exclusive) of the sampled values.
func (u *UniformSampler) Modulus() uint64 {
	return u.modulus
}

// ReadUint64 samples an integer uniformly in [0, q).
func (u *UniformSampler) ReadUint64() uint64 {
	return sampling.RandUint64n(u.prng, u.modulus)
}

// Read fills coeffs with integers sampled uniformly in [0, q).
func (u *UniformSampler) Read(coeffs []uint64) {
	for i := range coeffs {
		coeffs[i] = sampling.RandUint64n(u.prng, u.modulus)
	}
}

// ReadNew samples a new vector of n integers uniformly in [0, q).
func (u *UniformSampler) ReadNew(n int) (coeffs []uint64) {
	coeffs = make([]uint64, n)
	u.Read(coeffs)
	return
}

// ReadPoly samples a uniform polynomial of the ring r.
// The sampler modulus must be the modulus of r.
func (u *UniformSampler) ReadPoly(r *Ring) (pol Poly) {
	if r.Modulus() != u.modulus {
		panic("cannot ReadPoly: sampler and ring moduli differ")
	}
	pol = r.NewPoly()
	u.Read(pol.Coeffs)
	return
}
