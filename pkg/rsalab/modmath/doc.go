// Package modmath implements the two modular-arithmetic primitives the RSA
// lab is built on: binary modular exponentiation and the extended Euclidean
// algorithm.
//
// Both routines are written from scratch on big.Int rather than delegating to
// (*big.Int).Exp or (*big.Int).ModInverse; implementing them is the point of
// the exercise. They are pure functions: inputs are never mutated and every
// call returns a freshly allocated result.
//
// # Exp
//
// Exp computes base^exponent mod modulus by left-to-right square-and-multiply,
// one modular squaring per exponent bit. The textbook definition is recursive,
// halving the exponent at each level; that form nests roughly as deep as the
// exponent has bits (about 1024 frames for the lab's key sizes), so Exp runs
// the same reduction as a loop instead.
//
// # ExtendedGCD
//
// ExtendedGCD returns Bezout coefficients (x, y) with a*x + b*y = gcd(a, b).
// The coefficients match the classic recursive definition
//
//	egcd(0, b) = (0, 1)
//	egcd(a, b) = (y' - (b/a)*x', x')  where (x', y') = egcd(b mod a, a)
//
// including their signs. Callers depend on the sign: key generation retries
// with a new public exponent whenever the coefficient for e comes back
// negative, rather than normalizing it into [0, b).
package modmath
