// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func mustRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	return g
}

// TestConnectedComponents_Simple tests ConnectedComponents on a 3×4 grid
// split by walls.
//
// Grid:
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 open regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	g := mustRows(t,
		"#..#",
		"..##",
		"##..",
	)

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals ensures corner-touching cells stay separate.
//
// Grid:
//
//	. #
//	# .
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g := mustRows(t, ".#", "#.")
	if comps := g.ConnectedComponents(); len(comps) != 2 {
		t.Errorf("got %d components; want 2", len(comps))
	}
}

// TestConnectedComponents_AllWallAndSingle tests edge cases:
//   - completely walled grid → zero components
//   - single open cell → one component of size 1
func TestConnectedComponents_AllWallAndSingle(t *testing.T) {
	if comps := mustRows(t, "##", "##").ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-wall: got %d components; want 0", len(comps))
	}

	comps := mustRows(t, "#.").ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Fatalf("single open: got %v; want one component of size 1", comps)
	}
	if comps[0][0] != Pos(0, 1) {
		t.Errorf("single open: got %v; want (0,1)", comps[0][0])
	}
}

// TestReachable checks the row-major reachable set behind a wall column.
func TestReachable(t *testing.T) {
	g := mustRows(t,
		"S#.",
		".#E",
		".#.",
	)
	got := g.Reachable(Pos(0, 0))
	want := []Position{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable = %v; want %v", got, want)
	}
}
