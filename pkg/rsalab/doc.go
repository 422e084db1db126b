// Package rsalab implements textbook RSA for coursework: probable-prime
// generation, key derivation via the extended Euclidean algorithm, and
// modular-exponentiation encode/decode of single numeric blocks. The
// arithmetic is deliberately built from first principles on math/big
// primitives; there is no padding and no side-channel hardening, so the
// package must never guard real data.
//
// The number theory lives in the subpackages: modmath holds modular
// exponentiation and the extended Euclidean algorithm, prime holds the
// primality tester and the masked candidate search, bitstring holds the
// bit-string display conversions. This package ties them together into
// key pairs and a block cipher.
package rsalab
