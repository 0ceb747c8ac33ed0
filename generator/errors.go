// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site (method name + arguments).
//   • Generators never panic at runtime; option constructors may.

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates rows or cols is not positive.
// Usage: if errors.Is(err, ErrInvalidDimension) { /* reject request */ }.
var ErrInvalidDimension = errors.New("generator: rows and cols must be positive")

// ErrUnknownGenerator indicates a registry lookup for a name nothing was
// registered under.
var ErrUnknownGenerator = errors.New("generator: unknown generator")

// validateSize returns ErrInvalidDimension wrapped with the method context
// when rows or cols is below minDimension.
// Complexity: O(1).
func validateSize(method string, rows, cols int) error {
	if rows < minDimension || cols < minDimension {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, minDimension, ErrInvalidDimension)
	}

	return nil
}
