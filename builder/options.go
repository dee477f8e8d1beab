// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import (
	"math/rand"
)

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before the canvas is built.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMarkersPreserved controls whether Scatter, Maze and Border leave
// existing Start/End cells alone (default true). With false they overwrite
// markers like any other cell.
func WithMarkersPreserved(keep bool) BuilderOption {
	return func(c *builderConfig) {
		c.keepMarkers = keep
	}
}
