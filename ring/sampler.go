package ring

import (
	"github.com/a0ngo/PQCS/utils/sampling"
)

// baseSampler holds the random source shared by the samplers.
// Samplers are not thread safe unless their PRNG is.
type baseSampler struct {
	prng sampling.PRNG
}

// PRNG returns the random source of the sampler.
func (b baseSampler) PRNG() sampling.PRNG {
	return b.prng
}
