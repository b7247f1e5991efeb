package ring

import (
	"fmt"
)

// Add adds p1 to p2 coefficient wise and applies a modular reduction, returning the result on p3.
func (r *Ring) Add(p1, p2, p3 Poly) {
	q := r.modulus
	for i := 0; i < r.n; i++ {
		p3.Coeffs[i] = CRed(p1.Coeffs[i]+p2.Coeffs[i], q)
	}
}

// AddNew adds p1 to p2 coefficient wise and returns the result on a new polynomial.
func (r *Ring) AddNew(p1, p2 Poly) (p3 Poly) {
	p3 = r.NewPoly()
	r.Add(p1, p2, p3)
	return
}

// Sub subtracts p2 to p1 coefficient wise and applies a modular reduction, returning the result on p3.
func (r *Ring) Sub(p1, p2, p3 Poly) {
	q := r.modulus
	for i := 0; i < r.n; i++ {
		p3.Coeffs[i] = CRed(p1.Coeffs[i]+q-p2.Coeffs[i], q)
	}
}

// Neg sets all coefficients of p1 to their additive inverse, returning the result on p2.
func (r *Ring) Neg(p1, p2 Poly) {
	q := r.modulus
	for i := 0; i < r.n; i++ {
		p2.Coeffs[i] = CRed(q-p1.Coeffs[i], q)
	}
}

// MulScalar multiplies each coefficient of p1 by a scalar and applies a modular reduction, returning the result on p2.
func (r *Ring) MulScalar(p1 Poly, scalar uint64, p2 Poly) {
	q, brc := r.modulus, r.brc
	s := BRedAdd(scalar, q, brc)
	for i := 0; i < r.n; i++ {
		p2.Coeffs[i] = BRed(p1.Coeffs[i], s, q, brc)
	}
}

// MulScalarNew multiplies each coefficient of p1 by a scalar and returns the result on a new polynomial.
func (r *Ring) MulScalarNew(p1 Poly, scalar uint64) (p2 Poly) {
	p2 = r.NewPoly()
	r.MulScalar(p1, scalar, p2)
	return
}

// MulCoeffs multiplies p1 by p2 modulo (X^N - 1, q) and writes the result on p3.
// The product is a cyclic convolution: the coefficient of X^(i+j) is added to
// index (i+j) mod N. p3 may alias p1 or p2.
func (r *Ring) MulCoeffs(p1, p2, p3 Poly) {

	q, brc, N := r.modulus, r.brc, r.n

	acc := make([]uint64, N)

	for i, a := range p1.Coeffs[:N] {

		if a == 0 {
			continue
		}

		for j, b := range p2.Coeffs[:N] {

			if b == 0 {
				continue
			}

			k := i + j
			if k >= N {
				k -= N
			}

			acc[k] = CRed(acc[k]+BRed(a, b, q, brc), q)
		}
	}

	copy(p3.Coeffs, acc)
}

// MulCoeffsNew multiplies p1 by p2 modulo (X^N - 1, q) and returns the result on a new polynomial.
func (r *Ring) MulCoeffsNew(p1, p2 Poly) (p3 Poly) {
	p3 = r.NewPoly()
	r.MulCoeffs(p1, p2, p3)
	return
}

// Reduce folds a coefficient slice of arbitrary length modulo (X^N - 1, q)
// and writes the result on pOut: the coefficient of X^i is added to index i mod N.
func (r *Ring) Reduce(coeffs []uint64, pOut Poly) {

	q, brc, N := r.modulus, r.brc, r.n

	acc := make([]uint64, N)
	for i, c := range coeffs {
		k := i % N
		acc[k] = CRed(acc[k]+BRedAdd(c, q, brc), q)
	}

	copy(pOut.Coeffs, acc)
}

// Switch center-lifts the coefficients of pol with lift and reinterprets the
// signed values in r. It is not a modular reduction from the modulus of pol:
// each signed coefficient is carried over unchanged and only then reduced modulo q.
func (r *Ring) Switch(pol Poly, lift *CenterLiftTable) (pOut Poly, err error) {

	if pol.N() != r.n {
		return Poly{}, fmt.Errorf("%w: polynomial has %d coefficients, ring degree is %d", ErrRingMismatch, pol.N(), r.n)
	}

	var coeffs []int64
	if coeffs, err = lift.LiftPoly(pol); err != nil {
		return Poly{}, err
	}

	return r.NewPolyFromInts(coeffs)
}
