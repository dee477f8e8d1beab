// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// api.go - public entry-point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGrid(rows, cols, bopts, cons...). Allocates an
//     empty canvas, resolves cfg, runs cons in order, snapshots a Grid.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same dimensions, options, seed and constructor order ⇒
//     identical grids.
//   - Constructors return sentinel errors; they never panic.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Constructor applies a deterministic mutation to a rows×cols canvas using
// the resolved builderConfig. Constructors MUST validate their parameters
// early and return sentinel errors, and MUST NOT resize the canvas.
type Constructor func(cells [][]gridgraph.CellState, cfg builderConfig) error

// BuildGrid allocates a rows×cols canvas of Empty cells, resolves the builder
// configuration from bopts and applies all constructors in order. Any
// constructor error is wrapped with "BuildGrid: %w" and returned immediately.
//
// Complexity: O(len(bopts)) to resolve options, O(rows·cols) to allocate and
// snapshot, plus the cost of each constructor.
//
// Errors: ErrTooSmall for rows or cols below MinGridDim, ErrConstructFailed
// for a nil constructor, and whatever sentinel a constructor returns.
func BuildGrid(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Grid, error) {
	if err := validateDims(MethodBuildGrid, rows, cols); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)

	cells := make([][]gridgraph.CellState, rows)
	for r := range cells {
		cells[r] = make([]gridgraph.CellState, cols)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGrid, i, ErrConstructFailed)
		}
		if err := fn(cells, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGrid, err)
		}
	}

	return gridgraph.NewGrid(cells)
}

// BuildBoard is BuildGrid followed by gridgraph.BoardFromGrid. The
// constructors must leave exactly one Start and one End on the canvas,
// usually by ending with Endpoints.
func BuildBoard(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Board, error) {
	g, err := BuildGrid(rows, cols, bopts, cons...)
	if err != nil {
		return nil, err
	}
	b, err := gridgraph.BoardFromGrid(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildBoard, err)
	}

	return b, nil
}

// =============================================================================
// Constructors (declarations) - implemented in impl_*.go
// =============================================================================
//
// Scatter turns each Empty cell into a Wall with probability p.
// Requires cfg.rng and 0 ≤ p ≤ 1. Complexity: O(rows·cols).
//func Scatter(p float64) Constructor
//
// Maze carves a perfect maze with randomized Kruskal over even-coordinate
// rooms. Requires cfg.rng. Complexity: O(rows·cols·α(rows·cols)).
//func Maze() Constructor
//
// Border walls off the outermost ring. Complexity: O(rows+cols).
//func Border() Constructor
//
// Endpoints paints Start and End, clearing whatever was underneath and
// removing any earlier markers. Complexity: O(rows·cols).
//func Endpoints(start, end gridgraph.Position) Constructor
