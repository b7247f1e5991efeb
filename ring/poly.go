package ring

import (
	"fmt"
	"strings"
)

// Poly is the structure that contains the coefficients of a polynomial of
// Z_q[X]/(X^N - 1). Coeffs[i] is the coefficient of X^i.
// The modulus is carried with the coefficients so that a polynomial used
// with the wrong ring can be detected.
type Poly struct {
	Coeffs  []uint64
	Modulus uint64
}

// NewPoly creates a new polynomial with N coefficients set to zero.
func NewPoly(N int, modulus uint64) Poly {
	return Poly{Coeffs: make([]uint64, N), Modulus: modulus}
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs)
}

// Degree returns the degree of the polynomial, or -1 for the zero polynomial.
func (pol Poly) Degree() int {
	return Degree(pol.Coeffs)
}

// Zero sets all coefficients of the target polynomial to 0.
func (pol Poly) Zero() {
	for i := range pol.Coeffs {
		pol.Coeffs[i] = 0
	}
}

// IsCanonical returns true if all coefficients are in [0, Modulus).
func (pol Poly) IsCanonical() bool {
	for _, c := range pol.Coeffs {
		if c >= pol.Modulus {
			return false
		}
	}
	return true
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() Poly {
	c := Poly{Coeffs: make([]uint64, len(pol.Coeffs)), Modulus: pol.Modulus}
	copy(c.Coeffs, pol.Coeffs)
	return c
}

// Copy copies the coefficients and modulus of p1 on the target polynomial.
// Expects the degree of both polynomials to be identical.
func (pol *Poly) Copy(p1 Poly) {
	copy(pol.Coeffs, p1.Coeffs)
	pol.Modulus = p1.Modulus
}

// Equal returns true if the receiver Poly is equal to the provided other Poly.
// This function checks for strict equality between the moduli and the coefficients.
func (pol Poly) Equal(other Poly) bool {
	if pol.Modulus != other.Modulus || len(pol.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range pol.Coeffs {
		if pol.Coeffs[i] != other.Coeffs[i] {
			return false
		}
	}
	return true
}

// String returns the polynomial in the form "3 + 1*X^2 + 40*X^6 (mod 41)".
func (pol Poly) String() string {
	var sb strings.Builder
	for i, c := range pol.Coeffs {
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		if i == 0 {
			fmt.Fprintf(&sb, "%d", c)
		} else {
			fmt.Fprintf(&sb, "%d*X^%d", c, i)
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	fmt.Fprintf(&sb, " (mod %d)", pol.Modulus)
	return sb.String()
}

// Degree returns the index of the highest non-zero coefficient, or -1 if all are zero.
func Degree(coeffs []uint64) int {
	for i := len(coeffs) - 1; i >= 0; i-- {
		if coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// trim returns coeffs without its zero high-order coefficients.
func trim(coeffs []uint64) []uint64 {
	return coeffs[:Degree(coeffs)+1]
}
