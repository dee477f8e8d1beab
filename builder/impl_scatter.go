// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// impl_scatter.go — random wall scatter.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability); cfg.rng required (else ErrNeedRandSource).
//   • Visits cells in row-major order and draws exactly one Float64 per
//     paintable cell, so the same seed gives the same walls.
//   • Cells already Wall stay Wall; Start/End stay unless WithMarkersPreserved(false).
//
// Complexity: O(rows·cols) time, O(1) extra space.
package builder

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Scatter returns a Constructor that turns cells into walls with probability p.
func Scatter(p float64) Constructor {
	return func(cells [][]gridgraph.CellState, cfg builderConfig) error {
		if err := validateProbability(MethodScatter, p); err != nil {
			return err
		}
		if err := validateRNG(MethodScatter, cfg); err != nil {
			return err
		}

		for r := range cells {
			for c, s := range cells[r] {
				if !cfg.paintable(s) {
					continue
				}
				if cfg.rng.Float64() < p {
					cells[r][c] = gridgraph.Wall
				}
			}
		}

		return nil
	}
}
