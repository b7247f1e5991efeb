package ring

import (
	"fmt"
)

// DivMod computes the Euclidean division of a by b over Z_q, where a and b are
// coefficient slices in ascending order of degree (not reduced modulo X^N - 1).
// It returns quo and rem such that a = quo*b + rem with deg(rem) < deg(b).
// The returned slices have no zero high-order coefficients.
func (r *Ring) DivMod(a, b []uint64) (quo, rem []uint64, err error) {

	q, brc := r.modulus, r.brc

	db := Degree(b)
	if db < 0 {
		return nil, nil, fmt.Errorf("cannot DivMod: division by the zero polynomial")
	}

	lcInv, ok := ModInverse(b[db], q)
	if !ok {
		return nil, nil, fmt.Errorf("cannot DivMod: leading coefficient %d is not invertible mod %d", b[db], q)
	}

	rem = make([]uint64, len(a))
	for i := range a {
		rem[i] = BRedAdd(a[i], q, brc)
	}

	da := Degree(rem)
	if da < db {
		return []uint64{}, trim(rem), nil
	}

	quo = make([]uint64, da-db+1)

	for da >= db {

		coef := BRed(rem[da], lcInv, q, brc)
		shift := da - db
		quo[shift] = coef

		for i := 0; i <= db; i++ {
			rem[i+shift] = CRed(rem[i+shift]+q-BRed(coef, b[i], q, brc), q)
		}

		da = Degree(rem[:da])
	}

	return trim(quo), trim(rem), nil
}

// mulRaw returns the full (unreduced) product of a and b over Z_q.
func (r *Ring) mulRaw(a, b []uint64) []uint64 {

	if len(a) == 0 || len(b) == 0 {
		return []uint64{}
	}

	q, brc := r.modulus, r.brc

	out := make([]uint64, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			out[i+j] = CRed(out[i+j]+BRed(ai, bj, q, brc), q)
		}
	}

	return trim(out)
}

// subRaw returns a - b over Z_q.
func (r *Ring) subRaw(a, b []uint64) []uint64 {
	q := r.modulus
	n := max(len(a), len(b))
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = CRed(ai+q-bi, q)
	}
	return trim(out)
}

// extendedGCD runs the extended Euclidean algorithm on (X^N - 1, pol).
// It returns g = gcd(X^N - 1, pol), not normalized, and t such that t*pol = g mod (X^N - 1, q).
func (r *Ring) extendedGCD(pol Poly) (g, t []uint64, err error) {

	r0, r1 := trim(r.BasePoly()), trim(append([]uint64{}, pol.Coeffs...))
	t0, t1 := []uint64{}, []uint64{1}

	for len(r1) > 0 {

		var quo, rem []uint64
		if quo, rem, err = r.DivMod(r0, r1); err != nil {
			return nil, nil, err
		}

		r0, r1 = r1, rem
		t0, t1 = t1, r.subRaw(t0, r.mulRaw(quo, t1))
	}

	return r0, t0, nil
}

// GCD returns the monic greatest common divisor of pol and X^N - 1 over Z_q,
// as a coefficient slice in ascending order of degree.
func (r *Ring) GCD(pol Poly) (g []uint64, err error) {

	if err = r.Check(pol); err != nil {
		return nil, err
	}

	if g, _, err = r.extendedGCD(pol); err != nil {
		return nil, err
	}

	lcInv, _ := ModInverse(g[len(g)-1], r.modulus)
	for i := range g {
		g[i] = BRed(g[i], lcInv, r.modulus, r.brc)
	}

	return
}

// Inverse returns the inverse of pol in Z_q[X]/(X^N - 1), computed with the
// extended Euclidean algorithm. It returns an error wrapping ErrNotInvertible
// if gcd(pol, X^N - 1) != 1.
func (r *Ring) Inverse(pol Poly) (inv Poly, err error) {

	if err = r.Check(pol); err != nil {
		return Poly{}, err
	}

	if pol.Degree() < 0 {
		return Poly{}, fmt.Errorf("%w: zero polynomial", ErrNotInvertible)
	}

	g, t, err := r.extendedGCD(pol)
	if err != nil {
		return Poly{}, err
	}

	if len(g) != 1 {
		return Poly{}, fmt.Errorf("%w: gcd with X^%d-1 has degree %d in %s", ErrNotInvertible, r.n, len(g)-1, r)
	}

	// t*pol = g[0] with g[0] a non-zero constant.
	gInv, _ := ModInverse(g[0], r.modulus)

	inv = r.NewPoly()
	r.Reduce(t, inv)
	r.MulScalar(inv, gInv, inv)

	return
}

// IsInvertible returns true if pol has an inverse in Z_q[X]/(X^N - 1).
func (r *Ring) IsInvertible(pol Poly) bool {
	g, err := r.GCD(pol)
	return err == nil && len(g) == 1
}
