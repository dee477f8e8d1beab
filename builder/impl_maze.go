// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// impl_maze.go — randomized Kruskal maze.
//
// Canonical model:
//   • Rooms are the cells whose row and column are both even. Every other
//     cell starts as Wall.
//   • A wall cell between two horizontally or vertically adjacent rooms is a
//     candidate edge. Edges are shuffled with cfg.rng and carved in that
//     order whenever their rooms belong to different disjoint sets.
//   • The result is a perfect maze: every room reachable from every other
//     by exactly one route.
//
// Contract:
//   • rows ≥ MinMazeDim or cols ≥ MinMazeDim, so at least two rooms exist
//     (else ErrTooSmall); cfg.rng required (else ErrNeedRandSource).
//   • Start/End stay unless WithMarkersPreserved(false). Place markers with
//     Endpoints afterwards to guarantee both ends are open.
//
// Complexity:
//   • Time: O(R·C·α(R·C)) for the union-find plus O(R·C) for the shuffle.
//   • Space: O(R·C) for the disjoint sets and edge list.
package builder

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Maze returns a Constructor that carves a perfect maze.
func Maze() Constructor {
	return func(cells [][]gridgraph.CellState, cfg builderConfig) error {
		rows, cols := len(cells), len(cells[0])
		if rows < MinMazeDim && cols < MinMazeDim {
			return wrapf(MethodMaze, ErrTooSmall, "rows=%d, cols=%d (one side must be ≥ %d)", rows, cols, MinMazeDim)
		}
		if err := validateRNG(MethodMaze, cfg); err != nil {
			return err
		}

		paint := func(r, c int, s gridgraph.CellState) {
			if cfg.paintable(cells[r][c]) {
				cells[r][c] = s
			}
		}

		// rooms open, everything else walled
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r%2 == 0 && c%2 == 0 {
					paint(r, c, gridgraph.Empty)
				} else {
					paint(r, c, gridgraph.Wall)
				}
			}
		}

		roomRows, roomCols := (rows+1)/2, (cols+1)/2
		sets := make([]*disjointSet, roomRows*roomCols)
		for i := range sets {
			sets[i] = newDisjointSet()
		}

		// candidate edges in row-major order: right then down
		edges := make([]mazeEdge, 0, 2*len(sets))
		for rr := 0; rr < roomRows; rr++ {
			for rc := 0; rc < roomCols; rc++ {
				a := rr*roomCols + rc
				if rc+1 < roomCols {
					edges = append(edges, mazeEdge{a: a, b: a + 1, row: 2 * rr, col: 2*rc + 1})
				}
				if rr+1 < roomRows {
					edges = append(edges, mazeEdge{a: a, b: a + roomCols, row: 2*rr + 1, col: 2 * rc})
				}
			}
		}
		cfg.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

		for _, e := range edges {
			if sets[e.a].findSet() == sets[e.b].findSet() {
				continue
			}
			paint(e.row, e.col, gridgraph.Empty)
			sets[e.a].union(sets[e.b])
		}

		return nil
	}
}

// mazeEdge is the wall cell (row, col) separating rooms a and b.
type mazeEdge struct {
	a, b     int
	row, col int
}

// disjointSet is a union-find node with union by rank and path compression.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// newDisjointSet returns a singleton set.
func newDisjointSet() *disjointSet {
	s := &disjointSet{}
	s.parent = s

	return s
}

// findSet returns the root of s, compressing the path on the way.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}

	return s.parent
}

// union merges the sets containing s and other.
func (s *disjointSet) union(other *disjointSet) {
	x, y := s.findSet(), other.findSet()
	if x == y {
		return
	}
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}
