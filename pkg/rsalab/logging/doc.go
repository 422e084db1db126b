// Package logging provides a minimal logging facade for the lab packages.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing, redaction,
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/primefield/rsalab/pkg/rsalab/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Redaction Support
//
// The package provides utilities for redacting sensitive information:
//
//	// Mark an attribute as redacted
//	logger.Info(ctx, "key pair derived", logging.Redacted("private_exponent"))
//	// Logs: private_exponent="[redacted]"
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Usage in Lab Code
//
// Loggers can be passed to the prime search and key derivation code for
// debugging and observability:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "starting prime search", "bits", 512)
//
//	// Log with redaction for sensitive data
//	logger.Debug(ctx, "factor accepted",
//	    logging.Redacted("value"),
//	    "attempts", 38,
//	)
//
// # Security Considerations
//
// The lab deliberately works with breakable key sizes, but the logging habits
// still mirror real deployments:
//
//   - Never log private exponents, prime factors, or the totient
//   - Use logging.Redacted() to mark sensitive attributes
//   - Attempt counts and durations are safe to log; raw candidates are not
//   - Ensure log storage is secure and access-controlled
package logging
