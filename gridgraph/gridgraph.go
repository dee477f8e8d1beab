// Package gridgraph treats a rectangular matrix of cell states as an
// implicit graph with unit-cost orthogonal edges. It supports:
//
//   - Validated, deep-copied construction (NewGrid)
//   - Orthogonal neighbor expansion that skips walls (Neighbors)
//   - Reachability and open-cell components
//   - Minimum wall breaching between two cells (Breach)
//
// Cells with state Wall are impassable; every other state is open.
package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]CellState, 0, rows*cols)
	for _, row := range cells {
		flat = append(flat, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: flat}, nil
}

// NewEmpty returns a rows×cols grid of Empty cells.
// Returns ErrEmptyGrid if either dimension is below 1.
func NewEmpty(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, cells: make([]CellState, rows*cols)}, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// Size returns R×C, the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the state of cell p. p must be in bounds.
func (g *Grid) At(p Position) CellState {
	return g.cells[g.Index(p)]
}

// IsWall reports whether p is a wall. p must be in bounds.
func (g *Grid) IsWall(p Position) bool {
	return g.cells[g.Index(p)] == Wall
}

// Index maps p to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Cells returns a deep copy of the grid as a 2D slice.
func (g *Grid) Cells() [][]CellState {
	out := make([][]CellState, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]CellState, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// Walls returns the number of wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, c := range g.cells {
		if c == Wall {
			n++
		}
	}

	return n
}
