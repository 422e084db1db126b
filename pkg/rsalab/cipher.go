package rsalab

import (
	"context"
	"math/big"

	"github.com/primefield/rsalab/pkg/rsalab/logging"
	"github.com/primefield/rsalab/pkg/rsalab/modmath"
)

// Cipher encodes and decodes single numeric blocks under key halves. Both
// directions are the same modular exponentiation; only the exponent
// differs.
type Cipher struct {
	logger logging.Logger
}

// NewCipher returns a Cipher reporting diagnostics through logger. Nil
// binds to slog.Default.
func NewCipher(logger logging.Logger) *Cipher {
	if logger == nil {
		logger = logging.New(nil)
	}
	return &Cipher{logger: logger}
}

// Encode raises value to the key's exponent modulo the key's modulus. A
// value at or above the modulus is reduced by the arithmetic and cannot
// round-trip; that condition is reported as a warning and the computation
// proceeds with the reduced block.
func (c *Cipher) Encode(ctx context.Context, value *big.Int, key KeyHalf) *big.Int {
	if value.Cmp(key.Modulus) >= 0 {
		c.logger.Warn(ctx, "block is too large",
			"block_bits", value.BitLen(), "modulus_bits", key.Modulus.BitLen())
	}
	return modmath.Exp(value, key.Exponent, key.Modulus)
}

// Decode raises value to the key's exponent modulo the key's modulus.
// Ciphertexts are already reduced, so no size check applies.
func (c *Cipher) Decode(ctx context.Context, value *big.Int, key KeyHalf) *big.Int {
	return modmath.Exp(value, key.Exponent, key.Modulus)
}
