package ntru

import (
	"github.com/zeebo/blake3"

	"github.com/a0ngo/PQCS/ring"
	"github.com/a0ngo/PQCS/utils"
)

// PrivateKey is the secret pair (f, g) of ternary polynomials with the
// inverses of f modulo p and q.
type PrivateKey struct {
	f, g  []int64
	fQ    ring.Poly
	fPInv ring.Poly
	fQInv ring.Poly
}

// F returns a copy of the signed coefficients of f.
func (sk *PrivateKey) F() []int64 {
	return utils.CopySlice(sk.f)
}

// G returns a copy of the signed coefficients of g.
func (sk *PrivateKey) G() []int64 {
	return utils.CopySlice(sk.g)
}

// PublicKey is the polynomial h = f^-1 * g of Z_q[X]/(X^n - 1).
type PublicKey struct {
	params Parameters
	h      ring.Poly
}

// Parameters returns the parameters of the key.
func (pk *PublicKey) Parameters() Parameters {
	return pk.params
}

// H returns a copy of the public polynomial.
func (pk *PublicKey) H() ring.Poly {
	return pk.h.CopyNew()
}

// Equal returns true if both keys hold the same parameters and polynomial.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.params.Equal(other.params) && pk.h.Equal(other.h)
}

// Fingerprint returns the blake3 hash of the parameters and of h.
func (pk *PublicKey) Fingerprint() [32]byte {
	h := blake3.New()
	writeUint64s(h, []uint64{uint64(pk.params.n), pk.params.p, pk.params.q, uint64(pk.params.d)})
	writeUint64s(h, pk.h.Coeffs)
	var d [32]byte
	h.Sum(d[:0])
	return d
}

// isTernary returns true if all coefficients are in {-1, 0, 1}.
func isTernary(coeffs []int64) bool {
	for _, c := range coeffs {
		if utils.AbsInt(c) > 1 {
			return false
		}
	}
	return true
}
