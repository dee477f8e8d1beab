package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ErrEmptyFrame is returned when a frame has no cells or ragged rows.
var ErrEmptyFrame = errors.New("render: empty or ragged frame")

// Mark is the display state of one cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkWall
	MarkStart
	MarkEnd
	MarkVisited
	MarkPath
)

func (m Mark) String() string {
	switch m {
	case MarkEmpty:
		return "empty"
	case MarkWall:
		return "wall"
	case MarkStart:
		return "start"
	case MarkEnd:
		return "end"
	case MarkVisited:
		return "visited"
	case MarkPath:
		return "path"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// markOf maps a cell state to its base mark.
func markOf(s gridgraph.CellState) Mark {
	switch s {
	case gridgraph.Wall:
		return MarkWall
	case gridgraph.Start:
		return MarkStart
	case gridgraph.End:
		return MarkEnd
	default:
		return MarkEmpty
	}
}

// Base returns the frame of g with no search overlay.
func Base(g *gridgraph.Grid) [][]Mark {
	frame := make([][]Mark, g.Rows())
	for r := range frame {
		frame[r] = make([]Mark, g.Cols())
		for c := range frame[r] {
			frame[r][c] = markOf(g.At(gridgraph.Pos(r, c)))
		}
	}

	return frame
}

// Overlay returns the final frame of res over g: every visited cell, then
// every path cell, with start and end kept as they are. start and end are
// the positions the search ran between; they are marked even if g has no
// Start/End cells.
func Overlay(g *gridgraph.Grid, res gridgraph.Result, start, end gridgraph.Position) [][]Mark {
	p := NewPlayback(g, res, start, end)
	for p.Step() {
	}

	return p.Frame()
}

// copyFrame deep-copies a frame.
func copyFrame(frame [][]Mark) [][]Mark {
	out := make([][]Mark, len(frame))
	for r := range frame {
		out[r] = append([]Mark(nil), frame[r]...)
	}

	return out
}

// checkFrame validates that frame is non-empty and rectangular.
func checkFrame(frame [][]Mark) (rows, cols int, err error) {
	if len(frame) == 0 || len(frame[0]) == 0 {
		return 0, 0, ErrEmptyFrame
	}
	cols = len(frame[0])
	for r, row := range frame {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrEmptyFrame, r, len(row), cols)
		}
	}

	return len(frame), cols, nil
}
