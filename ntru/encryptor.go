package ntru

import (
	"fmt"

	"github.com/a0ngo/PQCS/ring"
	"github.com/a0ngo/PQCS/utils/sampling"
)

// Encryptor encrypts plaintexts of Z_p[X]/(X^n - 1) with a public key.
// It is safe for concurrent use if its PRNG is.
type Encryptor struct {
	params  Parameters
	pk      *PublicKey
	liftP   *ring.CenterLiftTable
	sampler *ring.TernarySampler
}

// NewEncryptor creates a new Encryptor from a public key.
// The PRNG of the options is the source of the ephemeral polynomials.
func NewEncryptor(pk *PublicKey, opts Options) (enc *Encryptor, err error) {

	prng := opts.PRNG
	if prng == nil {
		if prng, err = sampling.NewPRNG(); err != nil {
			return nil, fmt.Errorf("cannot NewEncryptor: %w", err)
		}
	}

	params := pk.params

	ones, minusOnes := params.EphemeralWeights()
	sampler, err := ring.NewTernarySampler(prng, params.n, ones, minusOnes, true)
	if err != nil {
		return nil, fmt.Errorf("cannot NewEncryptor: %w", err)
	}

	return &Encryptor{
		params:  params,
		pk:      pk,
		liftP:   ring.NewCenterLiftTable(params.p),
		sampler: sampler,
	}, nil
}

// PublicKey returns the public key of the encryptor.
func (enc *Encryptor) PublicKey() *PublicKey {
	return enc.pk
}

// Encrypt encrypts pt into a polynomial of Z_q[X]/(X^n - 1).
// It returns an error wrapping ErrFieldMismatch if pt is not modulo p, or
// ErrInvalidPolynomial if pt does not have n canonical coefficients.
func (enc *Encryptor) Encrypt(pt ring.Poly) (ct ring.Poly, err error) {
	ct, _, err = enc.EncryptWithTrace(pt)
	return
}

// EncryptWithTrace encrypts pt and returns the ciphertext with the trace of the encryption.
func (enc *Encryptor) EncryptWithTrace(pt ring.Poly) (ct ring.Poly, trace EncryptionTrace, err error) {

	if err = checkPoly(enc.params.ringP, pt); err != nil {
		return ring.Poly{}, EncryptionTrace{}, fmt.Errorf("cannot Encrypt: %w", err)
	}

	return enc.encryptWith(pt, enc.sampler.Read())
}

// encryptWith returns p * r * h + lift(pt) in Z_q[X]/(X^n - 1).
func (enc *Encryptor) encryptWith(pt ring.Poly, r []int64) (ct ring.Poly, trace EncryptionTrace, err error) {

	ringQ := enc.params.ringQ

	lifted, err := ringQ.Switch(pt, enc.liftP)
	if err != nil {
		return ring.Poly{}, EncryptionTrace{}, fmt.Errorf("cannot Encrypt: %w", err)
	}

	rQ, err := ringQ.NewPolyFromInts(r)
	if err != nil {
		return ring.Poly{}, EncryptionTrace{}, fmt.Errorf("cannot Encrypt: %w", err)
	}

	ct = ringQ.MulCoeffsNew(rQ, enc.pk.h)
	ringQ.MulScalar(ct, enc.params.p, ct)
	ringQ.Add(ct, lifted, ct)

	// LiftPoly cannot fail on a polynomial that passed Switch.
	signed, _ := enc.liftP.LiftPoly(pt)

	trace = EncryptionTrace{
		R:      r,
		Lifted: signed,
		Digest: Digest(ct),
	}

	return
}

// checkPoly returns an error wrapping ErrFieldMismatch or ErrInvalidPolynomial if
// pol is not a canonical polynomial of r.
func checkPoly(r *ring.Ring, pol ring.Poly) error {
	if pol.Modulus != r.Modulus() {
		return fmt.Errorf("%w: polynomial modulo %d, expected modulo %d", ErrFieldMismatch, pol.Modulus, r.Modulus())
	}
	if err := r.Check(pol); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPolynomial, err)
	}
	return nil
}
