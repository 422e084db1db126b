package rsalab_test

import (
	"math/big"
	"testing"

	"github.com/primefield/rsalab/pkg/rsalab"
)

func TestNewKeyPairSharesModulus(t *testing.T) {
	n := big.NewInt(3233)
	pair := rsalab.NewKeyPair(big.NewInt(17), big.NewInt(2753), n)

	if pair.Public.Modulus != n || pair.Private.Modulus != n {
		t.Fatal("both halves must point at the same modulus")
	}
	if pair.Public.Exponent.Cmp(big.NewInt(17)) != 0 {
		t.Fatalf("public exponent = %s, want 17", pair.Public.Exponent)
	}
	if pair.Private.Exponent.Cmp(big.NewInt(2753)) != 0 {
		t.Fatalf("private exponent = %s, want 2753", pair.Private.Exponent)
	}
}

func TestZeroize(t *testing.T) {
	pair := rsalab.NewKeyPair(big.NewInt(17), big.NewInt(2753), big.NewInt(3233))
	pair.Zeroize()

	if pair.Private.Exponent.Sign() != 0 {
		t.Fatalf("private exponent survived zeroization: %s", pair.Private.Exponent)
	}
	if pair.Public.Exponent.Cmp(big.NewInt(17)) != 0 {
		t.Fatal("public exponent must not be touched")
	}
	if pair.Public.Modulus.Cmp(big.NewInt(3233)) != 0 {
		t.Fatal("shared modulus must not be touched")
	}
}

func TestZeroizeNilExponent(t *testing.T) {
	var pair rsalab.KeyPair
	pair.Zeroize()
}
