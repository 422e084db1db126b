// Package demo drives the lab's end-to-end flow: generate two prime
// factors, derive a key pair, print both halves, then encode and decode one
// numeric block. The output layout is fixed; graders diff it.
package demo

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/primefield/rsalab/pkg/rsalab"
	"github.com/primefield/rsalab/pkg/rsalab/logging"
	"github.com/primefield/rsalab/pkg/rsalab/prime"
)

// DefaultMessage is the numeric block encoded when none is configured.
const DefaultMessage = "1230948092384098"

// Config carries the demo parameters. The zero value reproduces the
// historical run: 1024-bit factors, the default message, stdout.
type Config struct {
	// Bits is the width of each prime factor. Zero means
	// rsalab.DefaultBits.
	Bits int

	// Message is the decimal block to encode. Empty means
	// DefaultMessage.
	Message string

	// Witnesses overrides the primality witnesses. Nil keeps the single
	// fixed witness 2.
	Witnesses []int64

	// MaxAttempts bounds each prime search. Zero keeps the searches
	// unbounded.
	MaxAttempts int

	// Source supplies candidate bits. Nil draws fresh entropy-seeded
	// sources.
	Source *prime.Source

	// Out receives the report. Nil means os.Stdout.
	Out io.Writer

	// Logger receives diagnostics. Nil binds to slog.Default.
	Logger logging.Logger
}

// Run executes the full flow and writes the report to cfg.Out.
//
// Expected irregularities (an exponent pair failing verification, a block
// exceeding the modulus) are logged and do not fail the run. Errors are
// returned only for a non-decimal message, an exhausted attempt cap, or a
// cancelled context.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Bits <= 0 {
		cfg.Bits = rsalab.DefaultBits
	}
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New(nil)
	}

	message, ok := new(big.Int).SetString(cfg.Message, 10)
	if !ok {
		return fmt.Errorf("demo: message %q is not a decimal integer", cfg.Message)
	}

	primes := prime.NewGenerator(prime.Config{
		Tester:      prime.NewTester(cfg.Witnesses...),
		Source:      cfg.Source,
		MaxAttempts: cfg.MaxAttempts,
		Logger:      logger,
	})

	p, err := primes.Prime(ctx, cfg.Bits)
	if err != nil {
		return fmt.Errorf("demo: first factor: %w", err)
	}
	q, err := primes.Prime(ctx, cfg.Bits)
	if err != nil {
		return fmt.Errorf("demo: second factor: %w", err)
	}

	keys := rsalab.NewKeyGenerator(rsalab.Config{
		Bits:        cfg.Bits,
		Witnesses:   cfg.Witnesses,
		MaxAttempts: cfg.MaxAttempts,
		Source:      cfg.Source,
		Logger:      logger,
	})
	pair, err := keys.Generate(ctx, p, q)
	if err != nil {
		return fmt.Errorf("demo: key pair: %w", err)
	}
	defer pair.Zeroize()

	cipher := rsalab.NewCipher(logger)
	encrypted := cipher.Encode(ctx, message, pair.Public)
	decrypted := cipher.Decode(ctx, encrypted, pair.Private)

	fmt.Fprintf(cfg.Out, "Public key:\n%s\n%s\n", pair.Public.Exponent, pair.Public.Modulus)
	fmt.Fprintf(cfg.Out, "Private key:\n%s\n%s\n", pair.Private.Exponent, pair.Private.Modulus)
	fmt.Fprintf(cfg.Out, "\nMessage: %s\n", message)
	fmt.Fprintf(cfg.Out, "Encrypted: %s\n", encrypted)
	fmt.Fprintf(cfg.Out, "Decrypted: %s\n", decrypted)

	return nil
}
