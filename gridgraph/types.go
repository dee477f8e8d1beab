// Package gridgraph defines the cell states, positions, sentinel errors and
// the immutable Grid shared by every search engine in pathgrid.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrNoPath indicates no path exists between two positions.
	ErrNoPath = errors.New("gridgraph: no path between positions")
	// ErrBadCell indicates an unknown rune in a text map.
	ErrBadCell = errors.New("gridgraph: unknown cell symbol")
	// ErrMissingEndpoint indicates a text map without a start or end cell.
	ErrMissingEndpoint = errors.New("gridgraph: map must contain one start and one end")
	// ErrDuplicateEndpoint indicates a text map with more than one start or end cell.
	ErrDuplicateEndpoint = errors.New("gridgraph: map contains more than one start or end")
)

// CellState is the painted state of a single grid cell.
// Only Wall affects traversal; Start and End are markers for the caller.
type CellState uint8

const (
	// Empty is an open, traversable cell.
	Empty CellState = iota
	// Wall blocks movement.
	Wall
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
)

// String returns the lower-case name used by the original board ("empty", "wall", ...).
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Position is a 0-indexed (row, col) pair.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular, immutable matrix of cell states.
// Cells are stored row-major in a flat slice; Index and Coordinate convert
// between positions and flat indices.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// offsets lists orthogonal moves in expansion order: up, down, left, right.
// The order is part of the contract; it fixes tie-breaking in every engine.
var offsets = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
