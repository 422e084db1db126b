package prime

import (
	"context"
	"math/big"
	"time"

	"github.com/primefield/rsalab/pkg/rsalab/logging"
)

// fermatF4 is 2^16+1 = 65537, the conventional RSA public exponent.
// Candidates congruent to 1 modulo it are rejected so a later key derivation
// against that exponent cannot degenerate.
var fermatF4 = big.NewInt(1<<16 + 1)

// Config carries the knobs for a Generator. The zero value reproduces the
// lab's historical behavior: single-witness testing, a fresh entropy-seeded
// source per search, and an unbounded candidate loop.
type Config struct {
	// Tester decides candidate primality. Nil means NewTester(), the
	// single fixed witness 2.
	Tester *Tester

	// Source supplies candidate bits. Nil means a fresh entropy-seeded
	// Source is created for each search. Tests inject a deterministic
	// one here.
	Source *Source

	// MaxAttempts bounds the candidate loop. Zero keeps the loop
	// unbounded; a positive value makes the search fail with
	// ErrTooManyAttempts once exceeded.
	MaxAttempts int

	// Logger receives search diagnostics at debug level. Nil binds to
	// slog.Default via logging.New.
	Logger logging.Logger
}

// Generator searches for probable primes of a requested bit width.
type Generator struct {
	tester      *Tester
	source      *Source
	maxAttempts int
	logger      logging.Logger
}

// NewGenerator returns a Generator for the given configuration.
func NewGenerator(cfg Config) *Generator {
	if cfg.Tester == nil {
		cfg.Tester = NewTester()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New(nil)
	}
	return &Generator{
		tester:      cfg.Tester,
		source:      cfg.Source,
		maxAttempts: cfg.MaxAttempts,
		logger:      cfg.Logger,
	}
}

// SearchResult reports a completed prime search: the accepted value plus
// how many candidates were drawn and how long the search ran.
type SearchResult struct {
	Value    *big.Int
	Attempts int
	Elapsed  time.Duration
}

// Prime returns a probable prime of exactly bitCount bits. It is Search
// with the statistics dropped.
func (g *Generator) Prime(ctx context.Context, bitCount int) (*big.Int, error) {
	res, err := g.Search(ctx, bitCount)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Search draws masked candidates until the tester accepts one and reports
// the accepted value together with search statistics.
//
// Every candidate is ORed with a mask forcing the two most significant bits
// and the least significant bit, so accepted values are odd, have exactly
// bitCount significant bits, and exceed half the range. Candidates congruent
// to 1 modulo 65537 are rejected before testing. The loop runs until a hit
// unless Config.MaxAttempts bounds it or ctx is cancelled.
func (g *Generator) Search(ctx context.Context, bitCount int) (SearchResult, error) {
	if bitCount < 2 {
		return SearchResult{}, ErrBitCount
	}

	source := g.source
	if source == nil {
		source = NewSource()
	}

	// mask = (3 << (bitCount-2)) | 1
	mask := new(big.Int).Lsh(big.NewInt(3), uint(bitCount-2))
	mask.SetBit(mask, 0, 1)

	start := time.Now()
	residue := new(big.Int)
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return SearchResult{}, err
		}
		if g.maxAttempts > 0 && attempts >= g.maxAttempts {
			return SearchResult{}, ErrTooManyAttempts
		}
		attempts++

		candidate := source.Bits(bitCount)
		candidate.Or(candidate, mask)

		if residue.Mod(candidate, fermatF4).Cmp(one) == 0 {
			continue
		}
		if !g.tester.IsPrime(candidate) {
			continue
		}

		res := SearchResult{Value: candidate, Attempts: attempts, Elapsed: time.Since(start)}
		g.logger.Debug(ctx, "prime search finished",
			"bits", bitCount, "attempts", res.Attempts, "elapsed", res.Elapsed)
		return res, nil
	}
}
