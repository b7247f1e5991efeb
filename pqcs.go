/*
Package pqcs provides reference implementations of two lattice-based public-key encryption schemes.

The lwe package implements bit encryption from the Learning With Errors problem and the ntru package implements
the NTRU cryptosystem over Z[X]/(X^n - 1). Both are built on the ring package, which provides prime field
arithmetic, polynomial arithmetic modulo X^n - 1 with inversion by the extended Euclidean algorithm, Miller-Rabin
primality testing and the samplers of the schemes.

The implementations favour correctness and readability: they are not constant time and must not be used to
protect real data.
*/
package pqcs
