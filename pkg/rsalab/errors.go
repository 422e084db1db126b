package rsalab

import "github.com/primefield/rsalab/pkg/rsalab/prime"

// Sentinels from the prime subpackage, re-exported so key-generation
// callers can match them without importing it.
var (
	// ErrTooManyAttempts reports an exhausted Config.MaxAttempts cap.
	ErrTooManyAttempts = prime.ErrTooManyAttempts

	// ErrBitCount reports a requested prime width below two bits.
	ErrBitCount = prime.ErrBitCount
)
