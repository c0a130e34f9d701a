// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Generators MUST NOT panic at runtime.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that a numeric parameter is outside its
// allowed domain (n < 1, k < 1, h < 1, m < 2), that the number of arguments
// does not match the topology, or that the topology kind is unknown.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* report invalid size */ }.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrTypeMismatch indicates that a dynamically supplied argument is not an
// integer (e.g. a string, a bool, or a float decoded from a manifest).
// Typical origins: Generate, and every manifest or CLI path built on it.
// Usage: if errors.Is(err, ErrTypeMismatch) { /* fix argument type */ }.
var ErrTypeMismatch = errors.New("builder: argument is not an integer")

// builderErrorf returns an error of the form "<method>: <message>: <sentinel>"
// that matches sentinel under errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return builderErrorf(MethodRing, ErrInvalidArgument, "n=%d < min=%d", n, minRingNodes)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix "RingTopology: n=0 < min=1".
//
// 2) Priority when several checks fail:
//    • ErrInvalidArgument for unknown kind / arity first.
//    • ErrTypeMismatch for each argument, left to right.
//    • ErrInvalidArgument for domain checks last.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
