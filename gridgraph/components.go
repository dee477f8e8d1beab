package gridgraph

// ConnectedComponents finds all contiguous regions of open cells (any state
// other than Wall) under orthogonal connectivity.
// Returns a slice of components; each component lists its positions in BFS
// discovery order from the component's first row-major cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	buf := make([]Position, 0, len(offsets))

	for i0, c := range g.cells {
		if c == Wall || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			buf = g.AppendNeighbors(buf[:0], u)
			for _, v := range buf {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Reachable returns every cell reachable from p (p included) in row-major
// order. p itself is included even if it is a wall, matching how the search
// engines seed their frontier. p must be in bounds.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Reachable(p Position) []Position {
	seen := make([]bool, len(g.cells))
	start := g.Index(p)
	seen[start] = true
	queue := []int{start}
	buf := make([]Position, 0, len(offsets))

	for qi := 0; qi < len(queue); qi++ {
		buf = g.AppendNeighbors(buf[:0], g.Coordinate(queue[qi]))
		for _, v := range buf {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	out := make([]Position, 0, len(queue))
	for i, ok := range seen {
		if ok {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}
