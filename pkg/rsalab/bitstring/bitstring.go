// Package bitstring converts between ASCII bit strings and integers for
// display purposes. The conversions are forgiving the way the lab sheets
// expect: length mismatches are advisory and over-wide values truncate.
package bitstring

import (
	"errors"
	"math/big"
	"strings"
)

// ErrLengthMismatch reports that the input length differs from the declared
// bit count. It is advisory: FromBits still returns the parsed value.
var ErrLengthMismatch = errors.New("bitstring: declared bit count does not match input length")

// FromBits parses an ASCII bit string, last character least significant.
// Any character other than '0' counts as a set bit. At most bitCount
// characters are consumed, from the right. When the string length differs
// from bitCount the parsed value is returned together with
// ErrLengthMismatch; callers are expected to log it and continue.
func FromBits(bits string, bitCount int) (*big.Int, error) {
	value := new(big.Int)
	for i, j := 0, len(bits)-1; j >= 0 && i < bitCount; i, j = i+1, j-1 {
		if bits[j] != '0' {
			value.SetBit(value, i, 1)
		}
	}
	if len(bits) != bitCount {
		return value, ErrLengthMismatch
	}
	return value, nil
}

// ToBits renders exactly bitCount characters, most significant first. Bits
// above bitCount are dropped silently, mirroring FromBits' consumption
// limit.
func ToBits(value *big.Int, bitCount int) string {
	var b strings.Builder
	b.Grow(bitCount)
	for i := bitCount - 1; i >= 0; i-- {
		if value.Bit(i) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
