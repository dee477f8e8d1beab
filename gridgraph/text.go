package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text map symbols.
const (
	SymbolEmpty = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
	// commentPrefix starts an ignored line.
	commentPrefix = ";"
)

// ParseRows builds a Grid from text rows, one rune per cell.
// Start and end markers are optional here; see Endpoints.
// Returns ErrBadCell (wrapped with the offending position) for unknown runes,
// ErrEmptyGrid or ErrNonRectangular for malformed shapes.
func ParseRows(lines []string) (*Grid, error) {
	cells := make([][]CellState, 0, len(lines))
	for r, line := range lines {
		row := make([]CellState, 0, len(line))
		for c, ch := range []rune(line) {
			var s CellState
			switch ch {
			case SymbolEmpty:
				s = Empty
			case SymbolWall:
				s = Wall
			case SymbolStart:
				s = Start
			case SymbolEnd:
				s = End
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, Pos(r, c))
			}
			row = append(row, s)
		}
		cells = append(cells, row)
	}

	return NewGrid(cells)
}

// Decode reads a text map from r. Blank lines and lines starting with ';'
// are skipped; surrounding whitespace is trimmed. The map must contain
// exactly one start and one end cell.
func Decode(r io.Reader) (g *Grid, start, end Position, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	if err = sc.Err(); err != nil {
		return nil, start, end, fmt.Errorf("gridgraph: read map: %w", err)
	}
	if g, err = ParseRows(lines); err != nil {
		return nil, start, end, err
	}
	if start, end, err = g.Endpoints(); err != nil {
		return nil, start, end, err
	}

	return g, start, end, nil
}

// Endpoints locates the single Start and End cells.
// Returns ErrMissingEndpoint or ErrDuplicateEndpoint otherwise.
func (g *Grid) Endpoints() (start, end Position, err error) {
	var ns, ne int
	for i, c := range g.cells {
		switch c {
		case Start:
			start = g.Coordinate(i)
			ns++
		case End:
			end = g.Coordinate(i)
			ne++
		}
	}
	switch {
	case ns > 1 || ne > 1:
		return start, end, ErrDuplicateEndpoint
	case ns == 0 || ne == 0:
		return start, end, ErrMissingEndpoint
	}

	return start, end, nil
}

// TextRows returns the grid as text rows using the map symbols.
func (g *Grid) TextRows() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.Reset()
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			b.WriteRune(Symbol(c))
		}
		out[r] = b.String()
	}

	return out
}

// Encode writes the grid to w in the text map format.
func (g *Grid) Encode(w io.Writer) error {
	for _, line := range g.TextRows() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("gridgraph: write map: %w", err)
		}
	}

	return nil
}

// String renders the grid as newline-separated text rows.
func (g *Grid) String() string {
	return strings.Join(g.TextRows(), "\n")
}

// Symbol returns the text map rune for s.
func Symbol(s CellState) rune {
	switch s {
	case Wall:
		return SymbolWall
	case Start:
		return SymbolStart
	case End:
		return SymbolEnd
	default:
		return SymbolEmpty
	}
}
