// Package lwe implements a bit-at-a-time public-key encryption scheme based on
// the Learning With Errors problem.
//
// The key pair is generated when the Scheme is created: a uniform secret s in Z_p^n,
// m uniform public vectors A[i] in Z_p^n, and b[i] = <A[i], s> + e[i] mod p where
// the noise e[i] follows a discretized Gaussian of standard deviation p/(2n^2).
// A bit is encrypted by summing a random subset of the public samples and adding
// floor(p/2) to the result for the bit 1.
package lwe

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/zeebo/blake3"

	"github.com/a0ngo/PQCS/ring"
	"github.com/a0ngo/PQCS/utils"
	"github.com/a0ngo/PQCS/utils/log"
	"github.com/a0ngo/PQCS/utils/sampling"
)

// Options are the optional capabilities of a Scheme.
type Options struct {
	// PRNG is the source of randomness of the key generation and of the encryption.
	// If nil, a cryptographically secure source is used.
	PRNG sampling.PRNG
	// Logger receives the debug records of the key generation.
	// If nil, the "lwe" module of the default logger is used.
	Logger *log.Logger
}

// Ciphertext is the encryption of a bit: a vector of Z_p^n and a value of Z_p.
type Ciphertext struct {
	Vector []uint64
	Value  uint64
}

// Digest returns the blake3 hash of the ciphertext.
func (ct Ciphertext) Digest() [32]byte {
	h := blake3.New()
	writeUint64s(h, ct.Vector)
	writeUint64s(h, []uint64{ct.Value})
	var d [32]byte
	h.Sum(d[:0])
	return d
}

// Scheme is an instance of the LWE scheme holding a key pair.
// A Scheme is immutable after creation: Encrypt and Decrypt can be called
// concurrently if the PRNG is safe for concurrent use.
type Scheme struct {
	params Parameters
	prng   sampling.PRNG
	logger *log.Logger

	brc [2]uint64

	s []uint64
	a [][]uint64
	e []int64
	b []uint64
}

// NewScheme generates a new key pair for the given parameters.
func NewScheme(params Parameters, opts Options) (sch *Scheme, err error) {

	if params.n == 0 {
		return nil, fmt.Errorf("cannot NewScheme: %w: uninitialized parameters", ErrInvalidParameters)
	}

	sch = &Scheme{
		params: params,
		prng:   opts.PRNG,
		logger: opts.Logger,
		brc:    ring.GenBRedConstant(params.p),
	}

	if sch.prng == nil {
		if sch.prng, err = sampling.NewPRNG(); err != nil {
			return nil, fmt.Errorf("cannot NewScheme: %w", err)
		}
	}

	if sch.logger == nil {
		sch.logger = log.Default().Module("lwe")
	}

	lower, upper := params.NoiseSupport()
	table, err := ring.NewGaussianTable(params.Sigma(), lower, upper)
	if err != nil {
		return nil, fmt.Errorf("cannot NewScheme: %w", err)
	}

	n, m, p := params.n, params.m, params.p

	uniform := ring.NewUniformSampler(sch.prng, p)
	gaussian := ring.NewGaussianSampler(sch.prng, table)

	sch.s = uniform.ReadNew(n)

	sch.a = make([][]uint64, m)
	for i := range sch.a {
		sch.a[i] = uniform.ReadNew(n)
	}

	sch.e = make([]int64, m)
	gaussian.Read(sch.e)

	sch.b = make([]uint64, m)
	for i := range sch.b {
		sch.b[i] = ring.CRed(sch.dot(sch.a[i], sch.s)+ring.ReduceInt(sch.e[i], p), p)
	}

	if sch.logger.Enabled(slog.LevelDebug) {
		fp := sch.Fingerprint()
		sch.logger.Debug("generated key pair",
			"params", params.String(),
			"sigma", params.Sigma(),
			"fingerprint", hex.EncodeToString(fp[:]))
	}

	return
}

// Parameters returns the parameters of the instance.
func (sch *Scheme) Parameters() Parameters {
	return sch.params
}

// PublicSamples returns a copy of the public samples (A, b).
func (sch *Scheme) PublicSamples() (a [][]uint64, b []uint64) {
	return utils.CopyMatrix(sch.a), utils.CopySlice(sch.b)
}

// Fingerprint returns the blake3 hash of the parameters and of the public samples.
func (sch *Scheme) Fingerprint() [32]byte {
	h := blake3.New()
	writeUint64s(h, []uint64{uint64(sch.params.n), sch.params.p, uint64(sch.params.m)})
	for i := range sch.a {
		writeUint64s(h, sch.a[i])
	}
	writeUint64s(h, sch.b)
	var d [32]byte
	h.Sum(d[:0])
	return d
}

// Encrypt encrypts a bit. It returns an error wrapping ErrInvalidBit if bit is not 0 or 1.
func (sch *Scheme) Encrypt(bit uint64) (ct Ciphertext, err error) {
	ct, _, err = sch.EncryptWithTrace(bit)
	return
}

// EncryptWithTrace encrypts a bit and returns the ciphertext with the trace of the encryption.
func (sch *Scheme) EncryptWithTrace(bit uint64) (ct Ciphertext, trace EncryptionTrace, err error) {

	if bit > 1 {
		return Ciphertext{}, EncryptionTrace{}, fmt.Errorf("cannot Encrypt: %w: got %d", ErrInvalidBit, bit)
	}

	n, m, p := sch.params.n, sch.params.m, sch.params.p

	k := 1 + sampling.RandIntn(sch.prng, m)
	subset := sampling.RandSubset(sch.prng, m, k)
	utils.SortSlice(subset)

	offset := bit * sch.params.Offset()

	ct.Vector = make([]uint64, n)
	ct.Value = offset
	for _, i := range subset {
		for j := 0; j < n; j++ {
			ct.Vector[j] = ring.CRed(ct.Vector[j]+sch.a[i][j], p)
		}
		ct.Value = ring.CRed(ct.Value+sch.b[i], p)
	}

	trace = EncryptionTrace{
		Bit:    bit,
		Offset: offset,
		Subset: subset,
		Digest: ct.Digest(),
	}

	return
}

// Decrypt decrypts a ciphertext into a bit.
// It returns an error wrapping ErrInvalidCiphertext if the vector does not have n
// coefficients or if a coefficient is not reduced modulo p.
func (sch *Scheme) Decrypt(ct Ciphertext) (bit uint64, err error) {

	p := sch.params.p

	if len(ct.Vector) != sch.params.n {
		return 0, fmt.Errorf("cannot Decrypt: %w: vector has %d coefficients, expected %d", ErrInvalidCiphertext, len(ct.Vector), sch.params.n)
	}

	if ct.Value >= p {
		return 0, fmt.Errorf("cannot Decrypt: %w: value %d is not reduced modulo %d", ErrInvalidCiphertext, ct.Value, p)
	}

	for i, c := range ct.Vector {
		if c >= p {
			return 0, fmt.Errorf("cannot Decrypt: %w: coefficient %d=%d is not reduced modulo %d", ErrInvalidCiphertext, i, c, p)
		}
	}

	noisy := ring.CRed(ct.Value+p-sch.dot(ct.Vector, sch.s), p)

	dist := noisy
	if noisy > sch.params.Offset() {
		dist = p - noisy
	}

	if dist >= sch.params.Threshold() {
		return 1, nil
	}

	return 0, nil
}

// dot returns <a, b> mod p.
func (sch *Scheme) dot(a, b []uint64) (res uint64) {
	p, brc := sch.params.p, sch.brc
	for i := range a {
		res = ring.CRed(res+ring.BRed(a[i], b[i], p, brc), p)
	}
	return
}
