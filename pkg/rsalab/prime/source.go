package prime

import (
	cryptorand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// Source produces random candidate values for the prime search, one fair
// coin per bit position. It is the injectable randomness seam: production
// code seeds a fresh generator from system entropy per search, while tests
// inject a deterministic generator through NewSourceFrom.
//
// A Source is not safe for concurrent use; the search loop that owns it is
// strictly sequential.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by a ChaCha8 generator freshly seeded
// from the operating system's entropy source.
func NewSource() *Source {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic("prime: reading entropy seed: " + err.Error())
	}
	return NewSourceFrom(rand.New(rand.NewChaCha8(seed)))
}

// NewSourceFrom returns a Source drawing from the provided generator.
func NewSourceFrom(rng *rand.Rand) *Source {
	return &Source{rng: rng}
}

// Bits returns a value of at most bitCount bits, choosing each bit position
// independently with probability one half. The result is uniform over
// [0, 2^bitCount); the caller masks it into the exact shape the search
// needs. bitCount values below 1 yield zero.
func (s *Source) Bits(bitCount int) *big.Int {
	value := new(big.Int)
	for i := 0; i < bitCount; i++ {
		if s.rng.IntN(2) == 1 {
			value.SetBit(value, i, 1)
		}
	}
	return value
}
