package prime

import (
	"math/big"

	"github.com/primefield/rsalab/pkg/rsalab/modmath"
)

// trialPrimes is the fixed trial-division set applied before any witness
// check. Divisibility by a member always rejects, so the members themselves
// are classified composite; the generator never produces candidates that
// small.
var trialPrimes = []*big.Int{
	big.NewInt(3), big.NewInt(5), big.NewInt(7), big.NewInt(11),
	big.NewInt(13), big.NewInt(17), big.NewInt(19), big.NewInt(23),
	big.NewInt(29), big.NewInt(31),
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Tester decides whether a candidate is a probable prime. It combines
// trial division against a small fixed prime set with a Miller-Rabin check
// over a configurable list of witness bases.
//
// A Tester is immutable after construction and safe for concurrent use.
type Tester struct {
	witnesses []*big.Int
}

// NewTester returns a Tester using the given witness bases in order. Called
// with no arguments it uses the single fixed base 2, the lab's historical
// configuration; see the package comment for what that single witness does
// and does not guarantee.
func NewTester(witnesses ...int64) *Tester {
	if len(witnesses) == 0 {
		witnesses = []int64{2}
	}
	bases := make([]*big.Int, len(witnesses))
	for i, w := range witnesses {
		bases[i] = big.NewInt(w)
	}
	return &Tester{witnesses: bases}
}

// IsPrime reports whether v is a probable prime.
//
// Values below 2 and even values are rejected outright, then any value with
// a factor in the trial-division set, all before the first modular
// exponentiation. Surviving candidates must pass the Miller-Rabin check for
// every configured witness.
func (t *Tester) IsPrime(v *big.Int) bool {
	if v.Cmp(two) < 0 {
		return false
	}
	if v.Bit(0) == 0 {
		return false
	}

	residue := new(big.Int)
	for _, p := range trialPrimes {
		if residue.Mod(v, p).Sign() == 0 {
			return false
		}
	}

	// v-1 = 2^power * q with q odd.
	m := new(big.Int).Sub(v, one)
	power := 0
	for m.Bit(power) == 0 {
		power++
	}
	q := new(big.Int).Rsh(m, uint(power))

	for _, w := range t.witnesses {
		if !millerRabinWitness(v, m, q, power, w) {
			return false
		}
	}
	return true
}

// millerRabinWitness runs one witness round: surplus = w^q mod v, accepted
// immediately at 1 or v-1, otherwise squared up to power-1 times looking
// for v-1. m is v-1, precomputed by the caller.
func millerRabinWitness(v, m, q *big.Int, power int, w *big.Int) bool {
	surplus := modmath.Exp(w, q, v)
	if surplus.Cmp(one) == 0 || surplus.Cmp(m) == 0 {
		return true
	}

	tmp := new(big.Int)
	for i := 1; i < power; i++ {
		surplus.Mod(tmp.Mul(surplus, surplus), v)
		if surplus.Cmp(m) == 0 {
			return true
		}
	}
	return false
}
