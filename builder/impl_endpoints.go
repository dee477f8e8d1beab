// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// impl_endpoints.go — place Start and End markers.
//
// Contract:
//   • start and end must lie on the canvas and differ (else gridgraph.ErrOutOfBounds).
//   • Any earlier Start/End cell becomes Empty, so the canvas ends with
//     exactly one of each.
//   • The target cells are overwritten, walls included.
//
// Complexity: O(rows·cols) time for the marker sweep, O(1) extra space.
package builder

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Endpoints returns a Constructor that paints start and end markers.
func Endpoints(start, end gridgraph.Position) Constructor {
	return func(cells [][]gridgraph.CellState, cfg builderConfig) error {
		rows, cols := len(cells), len(cells[0])
		inside := func(p gridgraph.Position) bool {
			return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
		}
		if !inside(start) || !inside(end) {
			return wrapf(MethodEndpoints, gridgraph.ErrOutOfBounds, "start=%v end=%v in %dx%d canvas", start, end, rows, cols)
		}
		if start == end {
			return wrapf(MethodEndpoints, gridgraph.ErrOutOfBounds, "start and end coincide at %v", start)
		}

		for r := range cells {
			for c, s := range cells[r] {
				if s == gridgraph.Start || s == gridgraph.End {
					cells[r][c] = gridgraph.Empty
				}
			}
		}
		cells[start.Row][start.Col] = gridgraph.Start
		cells[end.Row][end.Col] = gridgraph.End

		return nil
	}
}
