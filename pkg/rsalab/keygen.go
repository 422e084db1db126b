package rsalab

import (
	"context"
	"math/big"

	"github.com/primefield/rsalab/pkg/rsalab/logging"
	"github.com/primefield/rsalab/pkg/rsalab/modmath"
	"github.com/primefield/rsalab/pkg/rsalab/prime"
)

// DefaultBits is the prime factor width used when Config.Bits is zero.
const DefaultBits = 1024

// publicExponentBits caps the public-exponent search width. Factors wider
// than this still get a 32-bit exponent; narrower factors shrink the search
// with them.
const publicExponentBits = 32

var one = big.NewInt(1)

// Config carries the knobs for a KeyGenerator. The zero value reproduces
// the lab's historical behavior at the default factor width.
type Config struct {
	// Bits is the width of each prime factor. It also bounds the
	// public-exponent search at min(Bits, 32) bits. Zero means
	// DefaultBits.
	Bits int

	// Witnesses overrides the primality witnesses used for the
	// public-exponent search. Nil keeps the single fixed witness 2.
	Witnesses []int64

	// MaxAttempts bounds each prime search. Zero keeps the search
	// unbounded.
	MaxAttempts int

	// Source supplies candidate bits. Nil draws a fresh entropy-seeded
	// source per search.
	Source *prime.Source

	// Logger receives diagnostics. Nil binds to slog.Default.
	Logger logging.Logger
}

// KeyGenerator derives exponent pairs from prime factors.
type KeyGenerator struct {
	bits   int
	gen    *prime.Generator
	logger logging.Logger
}

// NewKeyGenerator returns a KeyGenerator for the given configuration.
func NewKeyGenerator(cfg Config) *KeyGenerator {
	if cfg.Bits <= 0 {
		cfg.Bits = DefaultBits
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New(nil)
	}
	return &KeyGenerator{
		bits: cfg.Bits,
		gen: prime.NewGenerator(prime.Config{
			Tester:      prime.NewTester(cfg.Witnesses...),
			Source:      cfg.Source,
			MaxAttempts: cfg.MaxAttempts,
			Logger:      logger,
		}),
		logger: logger,
	}
}

// Generate derives a key pair from the prime factors p and q.
//
// It computes n = p*q and phi = (p-1)*(q-1), then draws public-exponent
// candidates from the prime generator until the first Bezout coefficient of
// ExtendedGCD(e, phi) comes out non-negative; that coefficient is the
// private exponent. The accepted pair is checked against e*d mod phi == 1;
// a mismatch is reported as a warning and the pair is returned anyway.
//
// The factors are taken on trust. Feeding non-primes does not fail here; it
// surfaces later as the exponent-pair warning or a broken round trip.
func (g *KeyGenerator) Generate(ctx context.Context, p, q *big.Int) (KeyPair, error) {
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	var e, d *big.Int
	for d == nil {
		candidate, err := g.gen.Prime(ctx, min(g.bits, publicExponentBits))
		if err != nil {
			return KeyPair{}, err
		}
		if x, _ := modmath.ExtendedGCD(candidate, phi); x.Sign() >= 0 {
			e, d = candidate, x
		}
	}

	check := new(big.Int).Mul(e, d)
	if check.Mod(check, phi).Cmp(one) != 0 {
		g.logger.Warn(ctx, "incorrect exponent pair",
			"public_exponent", e.String(), logging.Redacted("private_exponent"))
	}

	return NewKeyPair(e, d, n), nil
}
