// Package ring implements modular arithmetic over prime fields and polynomial
// arithmetic in the quotient ring Z_q[X]/(X^N - 1), together with the samplers
// (uniform, discretized Gaussian and fixed-weight ternary) used by the lattice schemes.
package ring

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxModulusBits is the maximum bit-size of a Ring modulus.
const MaxModulusBits = 61

var (
	// ErrModulusNotPrime is returned when the modulus of a ring is not prime.
	ErrModulusNotPrime = errors.New("ring: modulus is not prime")
	// ErrRingMismatch is returned when a polynomial does not belong to the ring it is used with.
	ErrRingMismatch = errors.New("ring: polynomial does not belong to the ring")
	// ErrNotInvertible is returned when a polynomial has no inverse modulo (X^N - 1, q).
	ErrNotInvertible = errors.New("ring: polynomial is not invertible")
	// ErrSamplingExhausted is returned when rejection sampling exceeds its retry bound.
	ErrSamplingExhausted = errors.New("ring: rejection sampling exhausted")
)

// Ring is a structure that keeps the variables required to operate on
// polynomials of Z_q[X]/(X^N - 1) for a prime q.
// A Ring is immutable and can be shared between goroutines.
type Ring struct {
	n       int
	modulus uint64
	brc     [2]uint64
}

// NewRing creates a new Ring of degree N and prime modulus q.
// It returns an error if N <= 0, if q is not prime or if q does not fit on MaxModulusBits bits.
func NewRing(N int, q uint64) (r *Ring, err error) {

	if N <= 0 {
		return nil, fmt.Errorf("invalid ring degree: N=%d must be positive", N)
	}

	if bits.Len64(q) > MaxModulusBits {
		return nil, fmt.Errorf("invalid modulus: q=%d exceeds %d bits", q, MaxModulusBits)
	}

	if !IsPrime(q) {
		return nil, fmt.Errorf("%w: q=%d", ErrModulusNotPrime, q)
	}

	return &Ring{
		n:       N,
		modulus: q,
		brc:     GenBRedConstant(q),
	}, nil
}

// N returns the number of coefficients of the polynomials of the ring.
func (r *Ring) N() int {
	return r.n
}

// Modulus returns the coefficient modulus q.
func (r *Ring) Modulus() uint64 {
	return r.modulus
}

// BRedConstant returns the Barrett reduction constant of the modulus.
func (r *Ring) BRedConstant() [2]uint64 {
	return r.brc
}

// Equal returns true if both rings have the same degree and modulus.
func (r *Ring) Equal(other *Ring) bool {
	return r.n == other.n && r.modulus == other.modulus
}

// String returns a short description of the ring.
func (r *Ring) String() string {
	return fmt.Sprintf("Z_%d[X]/(X^%d-1)", r.modulus, r.n)
}

// BasePoly returns the coefficients of the base polynomial X^N - 1 modulo q,
// in ascending order of degree (N+1 coefficients).
func (r *Ring) BasePoly() (coeffs []uint64) {
	coeffs = make([]uint64, r.n+1)
	coeffs[0] = r.modulus - 1
	coeffs[r.n] = 1
	return
}

// NewPoly creates a new zero polynomial of the ring.
func (r *Ring) NewPoly() Poly {
	return NewPoly(r.n, r.modulus)
}

// NewPolyFromInts creates a polynomial of the ring from signed coefficients
// given in ascending order of degree. Each coefficient is reduced into [0, q).
// Missing high-order coefficients are zero.
func (r *Ring) NewPolyFromInts(coeffs []int64) (pol Poly, err error) {

	if len(coeffs) > r.n {
		return Poly{}, fmt.Errorf("cannot NewPolyFromInts: %d coefficients exceed ring degree %d", len(coeffs), r.n)
	}

	pol = r.NewPoly()
	for i, c := range coeffs {
		pol.Coeffs[i] = ReduceInt(c, r.modulus)
	}

	return
}

// NewPolyFromUints creates a polynomial of the ring from unsigned coefficients
// given in ascending order of degree. Each coefficient is reduced into [0, q).
func (r *Ring) NewPolyFromUints(coeffs []uint64) (pol Poly, err error) {

	if len(coeffs) > r.n {
		return Poly{}, fmt.Errorf("cannot NewPolyFromUints: %d coefficients exceed ring degree %d", len(coeffs), r.n)
	}

	pol = r.NewPoly()
	for i, c := range coeffs {
		pol.Coeffs[i] = BRedAdd(c, r.modulus, r.brc)
	}

	return
}

// Check returns an error wrapping ErrRingMismatch if pol is not a canonical polynomial of the ring:
// its modulus must be q, it must have N coefficients, all in [0, q).
func (r *Ring) Check(pol Poly) error {
	if pol.Modulus != r.modulus {
		return fmt.Errorf("%w: polynomial modulus %d, ring modulus %d", ErrRingMismatch, pol.Modulus, r.modulus)
	}
	if pol.N() != r.n {
		return fmt.Errorf("%w: polynomial has %d coefficients, ring degree is %d", ErrRingMismatch, pol.N(), r.n)
	}
	if !pol.IsCanonical() {
		return fmt.Errorf("%w: coefficients are not reduced modulo %d", ErrRingMismatch, r.modulus)
	}
	return nil
}
