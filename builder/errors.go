// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).
package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that rows or cols is below MinGridDim, or that the
// canvas is too small for the requested constructor.
var ErrTooSmall = errors.New("builder: dimensions too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction step that cannot proceed,
// e.g. a nil constructor passed to BuildGrid.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes a sentinel with the method name and a formatted reason.
// It returns "<Method>: <reason>: <sentinel>" and keeps errors.Is working.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
