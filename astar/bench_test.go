package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// BenchmarkSearch_Open measures corner-to-corner A* on an open 1000×1000 grid.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 1000
	g, err := gridgraph.NewEmpty(n, n)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = astar.Search(g, gridgraph.Pos(0, 0), gridgraph.Pos(n-1, n-1))
	}
}

// BenchmarkSearch_Random measures A* on a 1000×1000 grid with ~20% walls.
func BenchmarkSearch_Random(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(3))
	cells := make([][]gridgraph.CellState, n)
	for y := range cells {
		cells[y] = make([]gridgraph.CellState, n)
		for x := range cells[y] {
			if r.Intn(5) == 0 {
				cells[y][x] = gridgraph.Wall
			}
		}
	}
	cells[0][0], cells[n-1][n-1] = gridgraph.Empty, gridgraph.Empty
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = astar.Search(g, gridgraph.Pos(0, 0), gridgraph.Pos(n-1, n-1))
	}
}
