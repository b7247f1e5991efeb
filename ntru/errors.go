package ntru

import (
	"errors"
	"fmt"

	"github.com/a0ngo/PQCS/ring"
)

var (
	// ErrInvalidParameters is the kind of every parameter validation error.
	ErrInvalidParameters = errors.New("ntru: invalid parameters")
	// ErrNonPositiveParameter is returned when n, p, q or d is not positive.
	ErrNonPositiveParameter = fmt.Errorf("%w: n, p, q and d must be positive", ErrInvalidParameters)
	// ErrModulusTooLarge is returned when p or q does not fit on ring.MaxModulusBits bits.
	ErrModulusTooLarge = fmt.Errorf("%w: moduli must fit on %d bits", ErrInvalidParameters, ring.MaxModulusBits)
	// ErrGCDNQ is returned when gcd(n, q) != 1.
	ErrGCDNQ = fmt.Errorf("%w: gcd(n, q) must be 1", ErrInvalidParameters)
	// ErrGCDPQ is returned when gcd(p, q) != 1.
	ErrGCDPQ = fmt.Errorf("%w: gcd(p, q) must be 1", ErrInvalidParameters)
	// ErrWeightTooLarge is returned when the ternary polynomials cannot hold their non-zero coefficients.
	ErrWeightTooLarge = fmt.Errorf("%w: ternary weights exceed n", ErrInvalidParameters)
	// ErrModulusTooSmall is returned when q <= (6d+1)p.
	ErrModulusTooSmall = fmt.Errorf("%w: q must be greater than (6d+1)p", ErrInvalidParameters)
	// ErrModulusNotPrime is returned when p is not prime.
	ErrModulusNotPrime = fmt.Errorf("%w: p must be prime", ErrInvalidParameters)
	// ErrLargeModulusNotPrime is returned when q is not prime.
	ErrLargeModulusNotPrime = fmt.Errorf("%w: q must be prime", ErrInvalidParameters)

	// ErrFieldMismatch is returned when a polynomial does not belong to the expected ring.
	ErrFieldMismatch = errors.New("ntru: polynomial is in the wrong ring")
	// ErrInvalidPolynomial is returned when a polynomial has the wrong degree or unreduced coefficients.
	ErrInvalidPolynomial = errors.New("ntru: invalid polynomial")
	// ErrInvalidKey is returned when imported key material is not ternary or not invertible.
	ErrInvalidKey = errors.New("ntru: invalid key")
	// ErrSamplingExhausted is returned when no invertible private key was found within the retry bound.
	ErrSamplingExhausted = ring.ErrSamplingExhausted
)
