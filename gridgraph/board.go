package gridgraph

// Board is the mutable editing surface behind an interactive session: walls
// are painted and start/end are dragged here, and Grid takes an immutable
// snapshot for the engines. A Board is not safe for concurrent use.
type Board struct {
	rows, cols int
	cells      []CellState
	start, end Position
}

// NewBoard returns an empty rows×cols board with start and end painted.
// Returns ErrEmptyGrid for non-positive sizes and ErrOutOfBounds if start or
// end lie outside the board or coincide.
func NewBoard(rows, cols int, start, end Position) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	b := &Board{rows: rows, cols: cols, cells: make([]CellState, rows*cols)}
	if !b.InBounds(start) || !b.InBounds(end) || start == end {
		return nil, ErrOutOfBounds
	}
	b.start, b.end = start, end
	b.cells[b.index(start)] = Start
	b.cells[b.index(end)] = End

	return b, nil
}

// BoardFromGrid copies g into a new Board. g must contain exactly one start
// and one end (see Endpoints).
func BoardFromGrid(g *Grid) (*Board, error) {
	start, end, err := g.Endpoints()
	if err != nil {
		return nil, err
	}
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Board{rows: g.rows, cols: g.cols, cells: cells, start: start, end: end}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Start returns the current start position.
func (b *Board) Start() Position { return b.start }

// End returns the current end position.
func (b *Board) End() Position { return b.end }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// At returns the state of p. p must be in bounds.
func (b *Board) At(p Position) CellState {
	return b.cells[b.index(p)]
}

// ToggleWall flips p between Empty and Wall. Start and end cells are left
// untouched. Reports whether the cell changed.
func (b *Board) ToggleWall(p Position) bool {
	if !b.InBounds(p) {
		return false
	}
	i := b.index(p)
	switch b.cells[i] {
	case Empty:
		b.cells[i] = Wall
	case Wall:
		b.cells[i] = Empty
	default:
		return false
	}

	return true
}

// MoveStart moves the start marker to p; the old cell becomes Empty and any
// wall under p is replaced. Moving onto the end cell is refused.
func (b *Board) MoveStart(p Position) bool {
	if !b.InBounds(p) || p == b.end {
		return false
	}
	b.cells[b.index(b.start)] = Empty
	b.cells[b.index(p)] = Start
	b.start = p

	return true
}

// MoveEnd moves the end marker to p, with the same rules as MoveStart.
func (b *Board) MoveEnd(p Position) bool {
	if !b.InBounds(p) || p == b.start {
		return false
	}
	b.cells[b.index(b.end)] = Empty
	b.cells[b.index(p)] = End
	b.end = p

	return true
}

// ClearWalls turns every wall back into an empty cell.
func (b *Board) ClearWalls() {
	for i, c := range b.cells {
		if c == Wall {
			b.cells[i] = Empty
		}
	}
}

// Reset clears the whole board, keeping only start and end.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.cells[b.index(b.start)] = Start
	b.cells[b.index(b.end)] = End
}

// Grid returns an immutable snapshot of the board.
func (b *Board) Grid() *Grid {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)

	return &Grid{rows: b.rows, cols: b.cols, cells: cells}
}

func (b *Board) index(p Position) int {
	return p.Row*b.cols + p.Col
}
