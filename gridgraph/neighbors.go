package gridgraph

// Neighbors returns the orthogonal neighbors of p that lie within bounds and
// are not walls, in the fixed order up, down, left, right.
// p itself is not validated; passing an out-of-range p is a caller error.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	return g.AppendNeighbors(make([]Position, 0, len(offsets)), p)
}

// AppendNeighbors appends the neighbors of p to dst and returns the extended
// slice. Engines pass dst[:0] to reuse one buffer across expansions.
func (g *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	for _, d := range offsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if !g.InBounds(n) || g.cells[g.Index(n)] == Wall {
			continue
		}
		dst = append(dst, n)
	}

	return dst
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact distance on an
// empty grid with orthogonal unit moves.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Position) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
