package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v8"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/primefield/rsalab/internal/demo"
	"github.com/primefield/rsalab/pkg/rsalab"
)

// options are the settings shared across the command tree. Environment
// variables fill them first, flags override.
type options struct {
	Bits        int    `env:"BITS"`
	Message     string `env:"MESSAGE"`
	MaxAttempts int    `env:"MAX_ATTEMPTS"`
	LogLevel    string `env:"LOG_LEVEL"`
	Color       bool   `env:"COLOR"`
}

func envOptions() (*options, error) {
	opts := &options{
		Bits:     rsalab.DefaultBits,
		Message:  demo.DefaultMessage,
		LogLevel: "info",
	}
	if err := env.ParseWithOptions(opts, env.Options{Prefix: "RSALAB_"}); err != nil {
		return nil, fmt.Errorf("parsing RSALAB_ environment: %w", err)
	}
	return opts, nil
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsalab",
		Short: "Textbook RSA laboratory",
		Long: `rsalab is a teaching implementation of textbook RSA: probable-prime
generation, key derivation via the extended Euclidean algorithm, and
modular-exponentiation encode/decode of single numeric blocks.

Nothing here is safe for real data. The key sizes are breakable, there is
no padding, and the arithmetic leaks timing everywhere.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.LogLevel)
			color.NoColor = !opts.Color
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Run(cmd.Context(), demo.Config{
				Bits:        opts.Bits,
				Message:     opts.Message,
				MaxAttempts: opts.MaxAttempts,
			})
		},
	}

	cmd.PersistentFlags().IntVar(&opts.Bits, "bits", opts.Bits, "prime factor width in bits")
	cmd.PersistentFlags().StringVar(&opts.Message, "message", opts.Message, "decimal block for the demo round trip")
	cmd.PersistentFlags().IntVar(&opts.MaxAttempts, "max-attempts", opts.MaxAttempts, "cap per prime search (0 = unbounded)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&opts.Color, "color", opts.Color, "colorize output")

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newKeygenCmd(opts))
	cmd.AddCommand(newEncryptCmd())
	cmd.AddCommand(newDecryptCmd())
	cmd.AddCommand(newBitsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging installs a text handler on stderr as the process default.
// Library diagnostics reach it through the logging facade.
func setupLogging(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
