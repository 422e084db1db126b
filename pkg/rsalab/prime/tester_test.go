package prime_test

import (
	"math/big"
	"testing"

	"github.com/primefield/rsalab/pkg/rsalab/prime"
)

func TestIsPrimeRejectsBelowTwo(t *testing.T) {
	tester := prime.NewTester()
	for _, v := range []int64{-5, -1, 0, 1} {
		if tester.IsPrime(big.NewInt(v)) {
			t.Fatalf("IsPrime(%d) = true, want false", v)
		}
	}
}

func TestIsPrimeRejectsEvens(t *testing.T) {
	tester := prime.NewTester()

	evens := []*big.Int{
		big.NewInt(2),
		big.NewInt(4),
		big.NewInt(100),
		new(big.Int).Lsh(big.NewInt(1), 100),
	}
	for _, v := range evens {
		if tester.IsPrime(v) {
			t.Fatalf("IsPrime(%s) = true, want false for even input", v)
		}
	}
}

// TestIsPrimeTrialDivisionFirst pins the trial-division pre-filter: members
// of the set divide themselves, so they are rejected even though the witness
// check alone would accept them. That asymmetry is only possible if trial
// division runs first and unconditionally.
func TestIsPrimeTrialDivisionFirst(t *testing.T) {
	tester := prime.NewTester()
	for _, p := range []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31} {
		if tester.IsPrime(big.NewInt(p)) {
			t.Fatalf("IsPrime(%d) = true, want rejection by trial division", p)
		}
	}
}

func TestIsPrimeRejectsTrialMultiples(t *testing.T) {
	tester := prime.NewTester()

	// Large odd multiples of each trial prime.
	for _, p := range []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31} {
		v := new(big.Int).Mul(big.NewInt(p), big.NewInt(1000003))
		if tester.IsPrime(v) {
			t.Fatalf("IsPrime(%d*1000003) = true, want false", p)
		}
	}
}

func TestIsPrimeAcceptsKnownPrimes(t *testing.T) {
	tester := prime.NewTester()

	primes := []*big.Int{
		big.NewInt(37),
		big.NewInt(41),
		big.NewInt(53),
		big.NewInt(61),
		big.NewInt(65537),
		big.NewInt(104729),
		big.NewInt(2305843009213693951), // 2^61-1
	}
	mersenne127, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	primes = append(primes, mersenne127)

	for _, v := range primes {
		if !tester.IsPrime(v) {
			t.Fatalf("IsPrime(%s) = false, want true", v)
		}
	}
}

func TestIsPrimeRejectsCompositesWithoutSmallFactors(t *testing.T) {
	tester := prime.NewTester()

	composites := []*big.Int{
		big.NewInt(37 * 41),   // 1517
		big.NewInt(97 * 97),   // 9409
		big.NewInt(101 * 103), // 10403
	}
	for _, v := range composites {
		if tester.IsPrime(v) {
			t.Fatalf("IsPrime(%s) = true, want false", v)
		}
	}
}

// TestSingleWitnessFalsePositive documents the deliberate weakness of the
// default configuration: 4033 = 37*109 is a strong pseudoprime to base 2,
// survives trial division, and fools the single-witness test. Adding a
// second witness catches it.
func TestSingleWitnessFalsePositive(t *testing.T) {
	pseudoprime := big.NewInt(4033)

	if !prime.NewTester().IsPrime(pseudoprime) {
		t.Fatalf("IsPrime(4033) = false under the single fixed witness, want the documented false positive")
	}
	if prime.NewTester(2, 3).IsPrime(pseudoprime) {
		t.Fatalf("IsPrime(4033) = true with witnesses {2, 3}, want rejection")
	}
}

func TestMultiWitnessStillAcceptsPrimes(t *testing.T) {
	tester := prime.NewTester(2, 3, 5)
	for _, v := range []int64{37, 61, 65537, 104729} {
		if !tester.IsPrime(big.NewInt(v)) {
			t.Fatalf("IsPrime(%d) = false with witnesses {2, 3, 5}, want true", v)
		}
	}
}
