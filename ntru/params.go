package ntru

import (
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"

	"github.com/a0ngo/PQCS/ring"
	"github.com/a0ngo/PQCS/utils"
)

// DefaultMaxSamplingRetries is the default bound on the number of candidates
// drawn when sampling an invertible private key.
const DefaultMaxSamplingRetries = 1024

// ParametersLiteral is a literal representation of NTRU parameters. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The NewParametersFromLiteral function is used to generate the actual checked parameters
// from the literal representation.
//
// The ternary polynomials have d+1 (f) or d (g, r) coefficients equal to 1 and d
// coefficients equal to -1, each count increased by one unless ExactTernaryWeights is set.
// A zero MaxSamplingRetries selects DefaultMaxSamplingRetries.
type ParametersLiteral struct {
	N                   int
	P                   uint64
	Q                   uint64
	D                   int
	MaxSamplingRetries  int  `json:",omitempty"`
	ExactTernaryWeights bool `json:",omitempty"`
}

// Parameters represents a parameter set for the NTRU scheme. Its fields are private and
// immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	n          int
	p, q       uint64
	d          int
	maxRetries int
	exact      bool
	ringP      *ring.Ring
	ringQ      *ring.Ring
}

// NewParametersFromLiteral instantiates a set of NTRU parameters from a ParametersLiteral specification.
// It returns an error wrapping ErrInvalidParameters, and the sentinel of the first violated
// constraint, if the parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.N <= 0 || pl.P == 0 || pl.Q == 0 || pl.D <= 0 || pl.MaxSamplingRetries < 0 {
		return Parameters{}, fmt.Errorf("%w: n=%d, p=%d, q=%d, d=%d, retries=%d", ErrNonPositiveParameter, pl.N, pl.P, pl.Q, pl.D, pl.MaxSamplingRetries)
	}

	if bits.Len64(pl.P) > ring.MaxModulusBits || bits.Len64(pl.Q) > ring.MaxModulusBits {
		return Parameters{}, fmt.Errorf("%w: p=%d, q=%d", ErrModulusTooLarge, pl.P, pl.Q)
	}

	if g := utils.GCD(uint64(pl.N), pl.Q); g != 1 {
		return Parameters{}, fmt.Errorf("%w: gcd(%d, %d)=%d", ErrGCDNQ, pl.N, pl.Q, g)
	}

	if g := utils.GCD(pl.P, pl.Q); g != 1 {
		return Parameters{}, fmt.Errorf("%w: gcd(%d, %d)=%d", ErrGCDPQ, pl.P, pl.Q, g)
	}

	params = Parameters{
		n:          pl.N,
		p:          pl.P,
		q:          pl.Q,
		d:          pl.D,
		maxRetries: pl.MaxSamplingRetries,
		exact:      pl.ExactTernaryWeights,
	}

	if params.maxRetries == 0 {
		params.maxRetries = DefaultMaxSamplingRetries
	}

	if ones, minusOnes := params.KeyWeights(); ones+minusOnes > pl.N {
		return Parameters{}, fmt.Errorf("%w: %d non-zero coefficients, n=%d", ErrWeightTooLarge, ones+minusOnes, pl.N)
	}

	// d < n/2, so 6d+1 does not overflow.
	if hi, lo := bits.Mul64(uint64(6*pl.D+1), pl.P); hi == 0 && pl.Q <= lo {
		return Parameters{}, fmt.Errorf("%w: q=%d, (6d+1)p=%d", ErrModulusTooSmall, pl.Q, lo)
	}

	if !ring.IsPrime(pl.P) {
		return Parameters{}, fmt.Errorf("%w: p=%d", ErrModulusNotPrime, pl.P)
	}

	if !ring.IsPrime(pl.Q) {
		return Parameters{}, fmt.Errorf("%w: q=%d", ErrLargeModulusNotPrime, pl.Q)
	}

	if params.ringP, err = ring.NewRing(pl.N, pl.P); err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	if params.ringQ, err = ring.NewRing(pl.N, pl.Q); err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	return
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:                   p.n,
		P:                   p.p,
		Q:                   p.q,
		D:                   p.d,
		MaxSamplingRetries:  p.maxRetries,
		ExactTernaryWeights: p.exact,
	}
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// P returns the small modulus.
func (p Parameters) P() uint64 {
	return p.p
}

// Q returns the large modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// D returns the weight parameter of the ternary polynomials.
func (p Parameters) D() int {
	return p.d
}

// MaxSamplingRetries returns the bound on the number of private key candidates.
func (p Parameters) MaxSamplingRetries() int {
	return p.maxRetries
}

// ExactTernaryWeights returns true if the ternary polynomials have their nominal weights.
func (p Parameters) ExactTernaryWeights() bool {
	return p.exact
}

// KeyWeights returns the number of coefficients equal to 1 and to -1 of a sampled f.
func (p Parameters) KeyWeights() (ones, minusOnes int) {
	return p.weights(p.d+1, p.d)
}

// EphemeralWeights returns the number of coefficients equal to 1 and to -1 of a sampled g or r.
func (p Parameters) EphemeralWeights() (ones, minusOnes int) {
	return p.weights(p.d, p.d)
}

func (p Parameters) weights(ones, minusOnes int) (int, int) {
	if p.exact {
		return ones, minusOnes
	}
	return ones + 1, minusOnes + 1
}

// RingP returns the ring Z_p[X]/(X^n - 1) of the plaintexts.
func (p Parameters) RingP() *ring.Ring {
	return p.ringP
}

// RingQ returns the ring Z_q[X]/(X^n - 1) of the ciphertexts.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// Equal returns true if the receiver and other hold the same parameters.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// String returns a short description of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("NTRU/n=%d/p=%d/q=%d/d=%d", p.n, p.p, p.q, p.d)
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
