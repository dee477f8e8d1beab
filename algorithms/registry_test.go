package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

func TestNames_DisplayOrder(t *testing.T) {
	assert.Equal(t,
		[]algorithms.Name{algorithms.Dijkstra, algorithms.AStar, algorithms.BFS},
		algorithms.Names())
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want algorithms.Name
	}{
		{"dijkstra", algorithms.Dijkstra},
		{"  Dijkstra ", algorithms.Dijkstra},
		{"ASTAR", algorithms.AStar},
		{"a*", algorithms.AStar},
		{"A-Star", algorithms.AStar},
		{"bfs", algorithms.BFS},
		{"Breadth-First", algorithms.BFS},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := algorithms.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := algorithms.Parse("dfs")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	_, err = algorithms.Lookup("")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Dijkstra's Algorithm", algorithms.Title(algorithms.Dijkstra))
	assert.Equal(t, "A* Search", algorithms.Title(algorithms.AStar))
	assert.Equal(t, "Breadth First Search", algorithms.Title(algorithms.BFS))
	assert.Equal(t, "greedy", algorithms.Title("greedy"))
}

func TestRun_Validation(t *testing.T) {
	g, err := gridgraph.NewEmpty(3, 3)
	require.NoError(t, err)

	_, err = algorithms.Run("bfs", g, gridgraph.Pos(-1, 0), gridgraph.Pos(2, 2))
	assert.ErrorIs(t, err, algorithms.ErrOutOfBounds)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = algorithms.Run("astar", g, gridgraph.Pos(0, 0), gridgraph.Pos(3, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = algorithms.Run("nope", g, gridgraph.Pos(0, 0), gridgraph.Pos(1, 1))
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)

	res, err := algorithms.Run("dijkstra", g, gridgraph.Pos(0, 0), gridgraph.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost())
}
