// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// impl_border.go — outer wall ring.
//
// Contract:
//   • Paints every cell in row 0, the last row, column 0 and the last column.
//   • Start/End stay unless WithMarkersPreserved(false).
//   • Deterministic; needs no RNG.
//
// Complexity: O(rows+cols) time, O(1) extra space.
package builder

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Border returns a Constructor that walls off the outermost ring.
func Border() Constructor {
	return func(cells [][]gridgraph.CellState, cfg builderConfig) error {
		rows, cols := len(cells), len(cells[0])
		paint := func(r, c int) {
			if cfg.paintable(cells[r][c]) {
				cells[r][c] = gridgraph.Wall
			}
		}

		for c := 0; c < cols; c++ {
			paint(0, c)
			paint(rows-1, c)
		}
		for r := 1; r < rows-1; r++ {
			paint(r, 0)
			paint(r, cols-1)
		}

		return nil
	}
}
