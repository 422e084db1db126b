package prime

import "errors"

var (
	// ErrBitCount indicates a requested candidate width below 2 bits; the
	// search mask forces the two most significant bits, so narrower widths
	// cannot be expressed.
	ErrBitCount = errors.New("prime: bit count must be at least 2")

	// ErrTooManyAttempts indicates the candidate search exhausted the
	// configured attempt cap without finding a probable prime.
	ErrTooManyAttempts = errors.New("prime: too many candidate attempts")
)
