// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil   (stochastic constructors fail with ErrNeedRandSource)
//   • keepMarkers = true
package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Leave Start/End cells untouched in wall-painting constructors.
	keepMarkers bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		keepMarkers: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// paintable reports whether a wall-painting constructor may overwrite s.
func (c builderConfig) paintable(s gridgraph.CellState) bool {
	if !c.keepMarkers {
		return true
	}

	return s != gridgraph.Start && s != gridgraph.End
}
