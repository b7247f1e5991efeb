package lwe

import (
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"

	"github.com/a0ngo/PQCS/ring"
	"github.com/a0ngo/PQCS/utils/bignum"
)

// SampleFactor is the factor c of the number of public samples m = ceil(c * n * ln(p)).
const SampleFactor = "1.1"

// precision of the computation of m.
const precision = 128

// ParametersLiteral is a literal representation of LWE parameters. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The NewParametersFromLiteral function is used to generate the actual checked parameters
// from the literal representation.
type ParametersLiteral struct {
	N int
	P uint64
}

// Parameters represents a parameter set for the LWE bit encryption scheme. Its fields are private and
// immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	n int
	p uint64
	m int
}

// NewParametersFromLiteral instantiates a set of LWE parameters from a ParametersLiteral specification.
// It returns an error wrapping ErrInvalidParameters if the parameters are invalid:
// n must be positive, p must be prime and satisfy n^2 < p < 2n^2.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.N <= 0 {
		return Parameters{}, fmt.Errorf("%w: n=%d", ErrNonPositiveDimension, pl.N)
	}

	// 2n^2 must not overflow and p must fit a ring modulus.
	if bits.Len64(uint64(pl.N)) > (ring.MaxModulusBits-1)/2 || bits.Len64(pl.P) > ring.MaxModulusBits {
		return Parameters{}, fmt.Errorf("%w: n=%d, p=%d exceed %d bits", ErrModulusOutOfRange, pl.N, pl.P, ring.MaxModulusBits)
	}

	n2 := uint64(pl.N) * uint64(pl.N)
	if pl.P <= n2 || pl.P >= 2*n2 {
		return Parameters{}, fmt.Errorf("%w: n=%d, p=%d is not in (%d, %d)", ErrModulusOutOfRange, pl.N, pl.P, n2, 2*n2)
	}

	if !ring.IsPrime(pl.P) {
		return Parameters{}, fmt.Errorf("%w: p=%d", ErrModulusNotPrime, pl.P)
	}

	return Parameters{
		n: pl.N,
		p: pl.P,
		m: sampleCount(pl.N, pl.P),
	}, nil
}

// sampleCount returns ceil(1.1 * n * ln(p)).
func sampleCount(n int, p uint64) int {
	m := bignum.NewFloat(SampleFactor, precision)
	m.Mul(m, bignum.NewFloat(n, precision))
	m.Mul(m, bignum.Log(bignum.NewFloat(p, precision)))
	return int(bignum.Ceil(m).Int64())
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N: p.n,
		P: p.p,
	}
}

// N returns the dimension of the secret.
func (p Parameters) N() int {
	return p.n
}

// P returns the prime modulus.
func (p Parameters) P() uint64 {
	return p.p
}

// M returns the number of public samples.
func (p Parameters) M() int {
	return p.m
}

// Sigma returns the standard deviation p/(2n^2) of the noise distribution.
func (p Parameters) Sigma() float64 {
	return float64(p.p) / float64(2*p.n*p.n)
}

// NoiseSupport returns the inclusive bounds [-ceil(p/2), floor(p/2)] of the noise distribution.
func (p Parameters) NoiseSupport() (lower, upper int64) {
	return -int64((p.p + 1) / 2), int64(p.p / 2)
}

// Offset returns floor(p/2), the value added to encrypt the bit 1.
func (p Parameters) Offset() uint64 {
	return p.p / 2
}

// Threshold returns round(p/4): a decrypted value at distance at least
// Threshold from zero decodes to 1.
func (p Parameters) Threshold() uint64 {
	// p is an odd prime, so p/4 is never halfway between two integers.
	return (p.p + 2) / 4
}

// Equal returns true if the receiver and other hold the same parameters.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// String returns a short description of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("LWE/n=%d/p=%d/m=%d", p.n, p.p, p.m)
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
