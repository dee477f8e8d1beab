package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

const (
	E = gridgraph.Empty
	W = gridgraph.Wall
	S = gridgraph.Start
	T = gridgraph.End
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]gridgraph.CellState
		err  error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]gridgraph.CellState{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.CellState{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.CellState{{E, E}, {E}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]gridgraph.CellState{{E, E}, {E, E}}
	g, err := gridgraph.NewGrid(in)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	in[0][0] = W
	if g.At(gridgraph.Pos(0, 0)) != E {
		t.Errorf("grid changed after input mutation")
	}

	out := g.Cells()
	out[1][1] = W
	if g.IsWall(gridgraph.Pos(1, 1)) {
		t.Errorf("grid changed after Cells() mutation")
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewEmpty(2, 3)
	if err != nil {
		t.Fatalf("NewEmpty error: %v", err)
	}

	valid := []gridgraph.Position{{0, 0}, {1, 2}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []gridgraph.Position{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestIndexCoordinate round-trips every cell of a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, _ := gridgraph.NewEmpty(3, 4)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			p := gridgraph.Pos(r, c)
			i := g.Index(p)
			if i != r*4+c {
				t.Errorf("Index(%v) = %d; want %d", p, i, r*4+c)
			}
			if got := g.Coordinate(i); got != p {
				t.Errorf("Coordinate(%d) = %v; want %v", i, got, p)
			}
		}
	}
	if g.Size() != 12 {
		t.Errorf("Size = %d; want 12", g.Size())
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the up, down, left, right order on an open interior cell.
func TestNeighbors_Order(t *testing.T) {
	g, _ := gridgraph.NewEmpty(3, 3)
	got := g.Neighbors(gridgraph.Pos(1, 1))
	want := []gridgraph.Position{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_BoundsAndWalls verifies corners drop out-of-range cells and walls are skipped.
//
// Grid:
//
//	. # .
//	. . .
//	# . .
func TestNeighbors_BoundsAndWalls(t *testing.T) {
	g, err := gridgraph.NewGrid([][]gridgraph.CellState{
		{E, W, E},
		{E, E, E},
		{W, E, E},
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	cases := []struct {
		at   gridgraph.Position
		want []gridgraph.Position
	}{
		{gridgraph.Pos(0, 0), []gridgraph.Position{{1, 0}}},
		{gridgraph.Pos(1, 1), []gridgraph.Position{{2, 1}, {1, 0}, {1, 2}}},
		{gridgraph.Pos(2, 2), []gridgraph.Position{{1, 2}, {2, 1}}},
		{gridgraph.Pos(1, 0), []gridgraph.Position{{0, 0}, {1, 1}}},
	}
	for _, tc := range cases {
		got := g.Neighbors(tc.at)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Neighbors(%v) = %v; want %v", tc.at, got, tc.want)
		}
	}
}

// TestNeighbors_IgnoresMarkers ensures start and end cells are traversable.
func TestNeighbors_IgnoresMarkers(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]gridgraph.CellState{{S, E, T}})
	got := g.Neighbors(gridgraph.Pos(0, 1))
	want := []gridgraph.Position{{0, 0}, {0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors = %v; want %v", got, want)
	}
}

// TestManhattan checks the heuristic on a few pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b gridgraph.Position
		want int
	}{
		{gridgraph.Pos(0, 0), gridgraph.Pos(4, 4), 8},
		{gridgraph.Pos(3, 1), gridgraph.Pos(1, 3), 4},
		{gridgraph.Pos(2, 2), gridgraph.Pos(2, 2), 0},
	}
	for _, tc := range cases {
		if got := gridgraph.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
	if !gridgraph.Adjacent(gridgraph.Pos(0, 0), gridgraph.Pos(0, 1)) {
		t.Errorf("Adjacent((0,0),(0,1)) = false; want true")
	}
	if gridgraph.Adjacent(gridgraph.Pos(0, 0), gridgraph.Pos(1, 1)) {
		t.Errorf("Adjacent((0,0),(1,1)) = true; want false")
	}
}

//----------------------------------------------------------------------------//
// Backtrack Tests
//----------------------------------------------------------------------------//

// TestBacktrack rebuilds a three-cell path and the single-cell start==end case.
func TestBacktrack(t *testing.T) {
	g, _ := gridgraph.NewEmpty(1, 3)
	prev := g.NewPredecessors()
	prev[1] = 0
	prev[2] = 1

	got := g.Backtrack(prev, 2)
	want := []gridgraph.Position{{0, 0}, {0, 1}, {0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Backtrack = %v; want %v", got, want)
	}

	single := g.Backtrack(g.NewPredecessors(), 1)
	if !reflect.DeepEqual(single, []gridgraph.Position{{0, 1}}) {
		t.Errorf("Backtrack single = %v; want [(0,1)]", single)
	}
}

// TestResult_FoundCost checks the helpers on found and empty results.
func TestResult_FoundCost(t *testing.T) {
	r := gridgraph.Result{Path: []gridgraph.Position{{0, 0}, {0, 1}}}
	if !r.Found() || r.Cost() != 1 {
		t.Errorf("Found=%v Cost=%d; want true 1", r.Found(), r.Cost())
	}
	empty := gridgraph.Result{}
	if empty.Found() || empty.Cost() != -1 {
		t.Errorf("Found=%v Cost=%d; want false -1", empty.Found(), empty.Cost())
	}
}
