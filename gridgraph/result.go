package gridgraph

// Result is the outcome shared by every search engine.
//
//   - Visited: positions in the order the engine finalized them.
//     The animation layer replays this order.
//   - Path: positions from start to end inclusive along an optimal route,
//     empty when the end is unreachable. When start equals end, Path is [start].
//
// Both slices belong to the caller; engines keep no reference after returning.
type Result struct {
	Visited []Position `json:"visitedNodes"`
	Path    []Position `json:"path"`
}

// Found reports whether a path was reconstructed.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Cost returns the number of moves along Path (len(Path)-1), or -1 if no path.
func (r Result) Cost() int {
	if len(r.Path) == 0 {
		return -1
	}

	return len(r.Path) - 1
}

// Backtrack rebuilds the path ending at index end by walking prev, a
// predecessor table indexed by row-major cell index (-1 = no predecessor).
// The walk stops at the first cell without predecessor, which is the start.
// Complexity: O(len(path)).
func (g *Grid) Backtrack(prev []int, end int) []Position {
	path := []Position{}
	for at := end; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// NewPredecessors returns a predecessor table of size g.Size() filled with -1.
func (g *Grid) NewPredecessors() []int {
	prev := make([]int, len(g.cells))
	for i := range prev {
		prev[i] = -1
	}

	return prev
}
