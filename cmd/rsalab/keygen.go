package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/pkg/rsalab"
	"github.com/primefield/rsalab/pkg/rsalab/logging"
	"github.com/primefield/rsalab/pkg/rsalab/prime"
)

func newKeygenCmd(opts *options) *cobra.Command {
	var witnesses []int64

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print both halves",
		Long: `Search for two prime factors of the configured width, derive the
exponent pair, and print both key halves as decimal. Search progress and
statistics go to stderr; stdout carries only the keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.New(nil)

			gen := prime.NewGenerator(prime.Config{
				Tester:      prime.NewTester(witnesses...),
				MaxAttempts: opts.MaxAttempts,
				Logger:      logger,
			})

			p, err := searchPrime(ctx, gen, opts.Bits, "p")
			if err != nil {
				return err
			}
			q, err := searchPrime(ctx, gen, opts.Bits, "q")
			if err != nil {
				return err
			}

			keys := rsalab.NewKeyGenerator(rsalab.Config{
				Bits:        opts.Bits,
				Witnesses:   witnesses,
				MaxAttempts: opts.MaxAttempts,
				Logger:      logger,
			})
			pair, err := keys.Generate(ctx, p, q)
			if err != nil {
				return err
			}
			defer pair.Zeroize()

			header := color.New(color.FgCyan, color.Bold)
			header.Println("Public key:")
			fmt.Printf("%s\n%s\n", pair.Public.Exponent, pair.Public.Modulus)
			header.Println("Private key:")
			fmt.Printf("%s\n%s\n", pair.Private.Exponent, pair.Private.Modulus)

			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&witnesses, "witness", nil, "primality witness base (repeatable; default 2)")

	return cmd
}

// searchPrime runs one prime search with a progress spinner and reports the
// search statistics to stderr.
func searchPrime(ctx context.Context, gen *prime.Generator, bits int, name string) (*big.Int, error) {
	s := spinner.New(spinner.CharSets[38], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Prefix = fmt.Sprintf("searching %s (%d bits) ", name, bits)
	s.Start()
	res, err := gen.Search(ctx, bits)
	s.Stop()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "%s: accepted after %s candidates in %s\n",
		name, humanize.Comma(int64(res.Attempts)), res.Elapsed.Round(time.Millisecond))
	return res.Value, nil
}
