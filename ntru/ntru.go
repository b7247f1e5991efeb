// Package ntru implements the NTRU public-key encryption scheme over the ring
// Z[X]/(X^n - 1) with a small modulus p and a large modulus q.
//
// The private key is a pair (f, g) of ternary polynomials, f being invertible
// modulo p and modulo q. The public key is h = f^-1 * g mod q. A plaintext m of
// Z_p[X]/(X^n - 1) is encrypted as e = p * r * h + lift(m) mod q for a fresh
// ternary r, and decrypted as f_p^-1 * (lift(f * e mod q) mod p).
package ntru

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/a0ngo/PQCS/ring"
	"github.com/a0ngo/PQCS/utils/log"
	"github.com/a0ngo/PQCS/utils/sampling"
)

// Options are the optional capabilities of a Scheme.
type Options struct {
	// PRNG is the source of randomness of the key generation and of the encryption.
	// If nil, a cryptographically secure source is used.
	PRNG sampling.PRNG
	// Logger receives the records of the key generation.
	// If nil, the "ntru" module of the default logger is used.
	Logger *log.Logger
}

// Scheme is an instance of the NTRU scheme holding a key pair.
// A Scheme is immutable after creation: Encrypt and Decrypt can be called
// concurrently if the PRNG is safe for concurrent use.
type Scheme struct {
	params Parameters

	sk  *PrivateKey
	pk  *PublicKey
	enc *Encryptor

	liftQ *ring.CenterLiftTable
}

// NewScheme generates a new key pair for the given parameters.
// The polynomial f is drawn until it is invertible modulo p and q, at most
// params.MaxSamplingRetries times, after which an error wrapping
// ErrSamplingExhausted is returned.
func NewScheme(params Parameters, opts Options) (sch *Scheme, err error) {

	if params.ringQ == nil {
		return nil, fmt.Errorf("cannot NewScheme: %w: uninitialized parameters", ErrInvalidParameters)
	}

	if opts.PRNG == nil {
		if opts.PRNG, err = sampling.NewPRNG(); err != nil {
			return nil, fmt.Errorf("cannot NewScheme: %w", err)
		}
	}

	logger := moduleLogger(opts)

	ringP, ringQ := params.ringP, params.ringQ

	ones, minusOnes := params.KeyWeights()
	fSampler, err := ring.NewTernarySampler(opts.PRNG, params.n, ones, minusOnes, true)
	if err != nil {
		return nil, fmt.Errorf("cannot NewScheme: %w", err)
	}

	invertible := func(coeffs []int64) bool {
		fP, _ := ringP.NewPolyFromInts(coeffs)
		fQ, _ := ringQ.NewPolyFromInts(coeffs)
		return ringP.IsInvertible(fP) && ringQ.IsInvertible(fQ)
	}

	f, attempts, err := fSampler.ReadUntil(invertible, params.maxRetries)
	if err != nil {
		logger.Warn("private key sampling exhausted", "params", params.String(), "retries", params.maxRetries)
		return nil, fmt.Errorf("cannot NewScheme: %w", err)
	}

	ones, minusOnes = params.EphemeralWeights()
	gSampler, err := ring.NewTernarySampler(opts.PRNG, params.n, ones, minusOnes, true)
	if err != nil {
		return nil, fmt.Errorf("cannot NewScheme: %w", err)
	}

	if sch, err = newScheme(params, f, gSampler.Read(), opts); err != nil {
		return nil, fmt.Errorf("cannot NewScheme: %w", err)
	}

	if logger.Enabled(slog.LevelDebug) {
		fp := sch.pk.Fingerprint()
		logger.Debug("generated key pair",
			"params", params.String(),
			"attempts", attempts,
			"fingerprint", hex.EncodeToString(fp[:]))
	}

	return
}

// NewSchemeFromPrivateKey creates a Scheme from known private key polynomials,
// given as signed coefficients in ascending order of degree. Missing high-order
// coefficients are zero. It returns an error wrapping ErrInvalidKey if f or g
// has more than n coefficients or a coefficient outside {-1, 0, 1}, or if f is
// not invertible modulo p and q. The weights of f and g are not checked.
func NewSchemeFromPrivateKey(params Parameters, f, g []int64, opts Options) (sch *Scheme, err error) {

	if params.ringQ == nil {
		return nil, fmt.Errorf("cannot NewSchemeFromPrivateKey: %w: uninitialized parameters", ErrInvalidParameters)
	}

	if len(f) > params.n || len(g) > params.n {
		return nil, fmt.Errorf("cannot NewSchemeFromPrivateKey: %w: more than n=%d coefficients", ErrInvalidKey, params.n)
	}

	if !isTernary(f) || !isTernary(g) {
		return nil, fmt.Errorf("cannot NewSchemeFromPrivateKey: %w: coefficients must be in {-1, 0, 1}", ErrInvalidKey)
	}

	if opts.PRNG == nil {
		if opts.PRNG, err = sampling.NewPRNG(); err != nil {
			return nil, fmt.Errorf("cannot NewSchemeFromPrivateKey: %w", err)
		}
	}

	fPad := make([]int64, params.n)
	copy(fPad, f)
	gPad := make([]int64, params.n)
	copy(gPad, g)

	if sch, err = newScheme(params, fPad, gPad, opts); err != nil {
		if errors.Is(err, ring.ErrNotInvertible) {
			err = fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		return nil, fmt.Errorf("cannot NewSchemeFromPrivateKey: %w", err)
	}

	return
}

// newScheme derives the inverses of f and the public key from (f, g).
func newScheme(params Parameters, f, g []int64, opts Options) (sch *Scheme, err error) {

	ringP, ringQ := params.ringP, params.ringQ

	sk := &PrivateKey{f: f, g: g}

	fP, err := ringP.NewPolyFromInts(f)
	if err != nil {
		return nil, err
	}

	if sk.fQ, err = ringQ.NewPolyFromInts(f); err != nil {
		return nil, err
	}

	gQ, err := ringQ.NewPolyFromInts(g)
	if err != nil {
		return nil, err
	}

	if sk.fPInv, err = ringP.Inverse(fP); err != nil {
		return nil, fmt.Errorf("f modulo p: %w", err)
	}

	if sk.fQInv, err = ringQ.Inverse(sk.fQ); err != nil {
		return nil, fmt.Errorf("f modulo q: %w", err)
	}

	pk := &PublicKey{
		params: params,
		h:      ringQ.MulCoeffsNew(sk.fQInv, gQ),
	}

	enc, err := NewEncryptor(pk, opts)
	if err != nil {
		return nil, err
	}

	return &Scheme{
		params: params,
		sk:     sk,
		pk:     pk,
		enc:    enc,
		liftQ:  ring.NewCenterLiftTable(params.q),
	}, nil
}

func moduleLogger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return log.Default().Module("ntru")
}

// Parameters returns the parameters of the instance.
func (sch *Scheme) Parameters() Parameters {
	return sch.params
}

// RingP returns the ring of the plaintexts.
func (sch *Scheme) RingP() *ring.Ring {
	return sch.params.ringP
}

// RingQ returns the ring of the ciphertexts.
func (sch *Scheme) RingQ() *ring.Ring {
	return sch.params.ringQ
}

// PublicKey returns the public key of the instance.
func (sch *Scheme) PublicKey() *PublicKey {
	return sch.pk
}

// PrivateKey returns the private key of the instance.
func (sch *Scheme) PrivateKey() *PrivateKey {
	return sch.sk
}

// NewPlaintext creates a plaintext from signed coefficients given in ascending
// order of degree, each reduced modulo p.
// It returns an error wrapping ErrInvalidPolynomial if there are more than n coefficients.
func (sch *Scheme) NewPlaintext(coeffs []int64) (pt ring.Poly, err error) {
	if pt, err = sch.params.ringP.NewPolyFromInts(coeffs); err != nil {
		return ring.Poly{}, fmt.Errorf("%w: %w", ErrInvalidPolynomial, err)
	}
	return
}

// Encrypt encrypts pt into a polynomial of Z_q[X]/(X^n - 1).
// It returns an error wrapping ErrFieldMismatch if pt is not modulo p, or
// ErrInvalidPolynomial if pt does not have n canonical coefficients.
func (sch *Scheme) Encrypt(pt ring.Poly) (ct ring.Poly, err error) {
	return sch.enc.Encrypt(pt)
}

// EncryptWithTrace encrypts pt and returns the ciphertext with the trace of the encryption.
func (sch *Scheme) EncryptWithTrace(pt ring.Poly) (ct ring.Poly, trace EncryptionTrace, err error) {
	return sch.enc.EncryptWithTrace(pt)
}

// Decrypt decrypts ct into a polynomial of Z_p[X]/(X^n - 1).
// It returns an error wrapping ErrFieldMismatch if ct is not modulo q, or
// ErrInvalidPolynomial if ct does not have n canonical coefficients.
func (sch *Scheme) Decrypt(ct ring.Poly) (pt ring.Poly, err error) {

	ringP, ringQ := sch.params.ringP, sch.params.ringQ

	if err = checkPoly(ringQ, ct); err != nil {
		return ring.Poly{}, fmt.Errorf("cannot Decrypt: %w", err)
	}

	a := ringQ.MulCoeffsNew(sch.sk.fQ, ct)

	signed, err := sch.liftQ.LiftPoly(a)
	if err != nil {
		return ring.Poly{}, fmt.Errorf("cannot Decrypt: %w", err)
	}

	aP, err := ringP.NewPolyFromInts(signed)
	if err != nil {
		return ring.Poly{}, fmt.Errorf("cannot Decrypt: %w", err)
	}

	return ringP.MulCoeffsNew(sch.sk.fPInv, aP), nil
}
