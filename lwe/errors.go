package lwe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is the kind of every parameter validation error.
	ErrInvalidParameters = errors.New("lwe: invalid parameters")
	// ErrNonPositiveDimension is returned when n <= 0.
	ErrNonPositiveDimension = fmt.Errorf("%w: dimension n must be positive", ErrInvalidParameters)
	// ErrModulusNotPrime is returned when p is not prime.
	ErrModulusNotPrime = fmt.Errorf("%w: modulus p must be prime", ErrInvalidParameters)
	// ErrModulusOutOfRange is returned when p does not satisfy n^2 < p < 2n^2.
	ErrModulusOutOfRange = fmt.Errorf("%w: modulus p must satisfy n^2 < p < 2n^2", ErrInvalidParameters)

	// ErrInvalidBit is returned when encrypting a value other than 0 or 1.
	ErrInvalidBit = errors.New("lwe: plaintext must be a bit")
	// ErrInvalidCiphertext is returned when a ciphertext does not belong to the instance parameters.
	ErrInvalidCiphertext = errors.New("lwe: invalid ciphertext")
)
