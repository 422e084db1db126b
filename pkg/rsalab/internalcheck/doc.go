// Package internalcheck provides internal validation and testing utilities.
//
// This package contains source-level policy tests for the lab library. The
// checks load the library packages through golang.org/x/tools/go/packages
// and walk their syntax trees, enforcing two rules: the number theory must
// be implemented from scratch rather than delegated to the ready-made
// math/big and crypto helpers, and library packages must report through
// the logging facade instead of printing to the process streams.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the lab library. Use the public API
// provided by pkg/rsalab and its subpackages instead.
package internalcheck
