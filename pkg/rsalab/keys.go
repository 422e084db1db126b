package rsalab

import (
	"math/big"
	"runtime"
)

// KeyHalf is one half of a key pair: an exponent together with the modulus
// shared by both halves.
type KeyHalf struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// KeyPair bundles the public and private halves produced by one generation
// run.
type KeyPair struct {
	Public  KeyHalf
	Private KeyHalf
}

// NewKeyPair assembles a KeyPair from the public exponent e, the private
// exponent d, and their shared modulus n.
func NewKeyPair(e, d, n *big.Int) KeyPair {
	return KeyPair{
		Public:  KeyHalf{Exponent: e, Modulus: n},
		Private: KeyHalf{Exponent: d, Modulus: n},
	}
}

// Zeroize overwrites the private exponent's backing words with zeros and
// resets the value. The modulus is shared with the public half and stays.
//
// This cannot guarantee complete sanitization: the arithmetic may have
// copied the magnitude and the garbage collector moves memory freely. It
// follows the pattern discussed in golang/go#33325 as far as big.Int
// allows.
func (k KeyPair) Zeroize() {
	d := k.Private.Exponent
	if d == nil {
		return
	}
	words := d.Bits()
	for i := range words {
		words[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(words)
	d.SetInt64(0)
}
