// Command rsalab is the lab's command line surface. Run with no arguments
// it reproduces the classic demo: two 1024-bit primes, a key pair, and one
// encode/decode round trip. Subcommands expose the pieces separately.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env may seed RSALAB_* variables; existing ones win.
	_ = godotenv.Load()

	opts, err := envOptions()
	if err != nil {
		slog.Error("invalid environment", "error", err)
		os.Exit(1)
	}

	// The prime searches are unbounded by default; Ctrl-C lands as
	// context cancellation inside them.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(opts).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
