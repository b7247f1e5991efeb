package ring

import (
	"fmt"
)

// MaxCenterLiftTableSize is the largest modulus for which NewCenterLiftTable
// precomputes a lookup table. Larger moduli are lifted arithmetically, with
// identical results.
const MaxCenterLiftTableSize = 1 << 16

// CenterLiftTable maps a residue in [0, m) to its signed representative in (-m/2, m/2].
type CenterLiftTable struct {
	modulus uint64
	half    uint64
	table   []int64
}

// NewCenterLiftTable creates the center lift mapping for the given modulus.
func NewCenterLiftTable(modulus uint64) (c *CenterLiftTable) {

	if modulus == 0 {
		panic("cannot NewCenterLiftTable: modulus is zero")
	}

	c = &CenterLiftTable{
		modulus: modulus,
		half:    modulus >> 1,
	}

	if modulus <= MaxCenterLiftTableSize {
		c.table = make([]int64, modulus)
		for x := uint64(0); x < modulus; x++ {
			c.table[x] = c.lift(x)
		}
	}

	return
}

// Modulus returns the modulus of the mapping.
func (c *CenterLiftTable) Modulus() uint64 {
	return c.modulus
}

func (c *CenterLiftTable) lift(x uint64) int64 {
	if x > c.half {
		return -int64(c.modulus - x)
	}
	return int64(x)
}

// Lift returns the signed representative of x in (-m/2, m/2].
// x must be in [0, m).
func (c *CenterLiftTable) Lift(x uint64) int64 {
	if c.table != nil {
		return c.table[x]
	}
	return c.lift(x)
}

// Reduce maps a signed value back to [0, m).
func (c *CenterLiftTable) Reduce(x int64) uint64 {
	return ReduceInt(x, c.modulus)
}

// LiftPoly returns the signed representatives of the coefficients of pol.
// It returns an error wrapping ErrRingMismatch if pol is not a canonical polynomial modulo m.
func (c *CenterLiftTable) LiftPoly(pol Poly) (coeffs []int64, err error) {

	if pol.Modulus != c.modulus {
		return nil, fmt.Errorf("%w: cannot center lift a polynomial modulo %d with a table modulo %d", ErrRingMismatch, pol.Modulus, c.modulus)
	}

	coeffs = make([]int64, len(pol.Coeffs))
	for i, x := range pol.Coeffs {
		if x >= c.modulus {
			return nil, fmt.Errorf("%w: coefficient %d=%d is not in [0, %d)", ErrRingMismatch, i, x, c.modulus)
		}
		coeffs[i] = c.Lift(x)
	}

	return
}
