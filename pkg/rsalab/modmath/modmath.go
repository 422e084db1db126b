package modmath

import "math/big"

// Exp returns base^exponent mod modulus.
//
// The exponent is treated as non-negative and the modulus must be greater
// than 1; neither is validated. Exp(b, 0, m) is 1 for every base. The
// arguments are not mutated.
func Exp(base, exponent, modulus *big.Int) *big.Int {
	result := big.NewInt(1)
	if exponent.Sign() == 0 {
		return result
	}

	tmp := new(big.Int)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result.Mod(tmp.Mul(result, result), modulus)
		if exponent.Bit(i) == 1 {
			result.Mod(tmp.Mul(result, base), modulus)
		}
	}
	return result
}

// ExtendedGCD returns Bezout coefficients (x, y) satisfying
// a*x + b*y = gcd(a, b) for non-negative a and b.
//
// The returned coefficients are the ones produced by the recursive
// definition described in the package comment, signs included. x is the
// coefficient of a; when gcd(a, b) = 1 and x is non-negative, x is the
// modular inverse of a modulo b.
func ExtendedGCD(a, b *big.Int) (x, y *big.Int) {
	if a.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}

	// The recursion steps from (a, b) to (b mod a, a), so the underlying
	// remainder chain divides b by a first. Seeding the loop with b ahead of
	// a reproduces that chain, and with it the exact coefficients.
	r0 := new(big.Int).Set(b)
	r1 := new(big.Int).Set(a)
	x0, x1 := big.NewInt(0), big.NewInt(1)
	y0, y1 := big.NewInt(1), big.NewInt(0)

	for {
		q, r := new(big.Int).QuoRem(r0, r1, new(big.Int))
		if r.Sign() == 0 {
			return x1, y1
		}
		x0, x1 = x1, new(big.Int).Sub(x0, new(big.Int).Mul(q, x1))
		y0, y1 = y1, new(big.Int).Sub(y0, new(big.Int).Mul(q, y1))
		r0, r1 = r1, r
	}
}
