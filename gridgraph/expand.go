package gridgraph

import (
	"container/list"
)

// Breach finds a route from start to end that crosses the fewest walls.
// Each wall cell on the route costs 1; open cells cost 0. Returns the cell
// sequence (start and end included) and the number of walls to remove.
// A cost of 0 means an ordinary path already exists.
//
// Behavior:
//  1. Validate start and end.
//  2. 0–1 BFS from start:
//     • Moving into an open cell → cost 0 (pushed to the front)
//     • Moving into a wall       → cost 1 (pushed to the back)
//  3. Stop when end is popped.
//  4. Reconstruct path via predecessors.
//
// Returns ErrOutOfBounds for invalid positions and ErrNoPath if end cannot be
// popped, which only happens on a malformed grid.
//
// Complexity: O(R·C) time and memory.
func (g *Grid) Breach(start, end Position) (path []Position, cost int, err error) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, 0, ErrOutOfBounds
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	done := make([]bool, n)
	prev := g.NewPredecessors()
	for i := range dist {
		dist[i] = inf
	}

	src, dst := g.Index(start), g.Index(end)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			target = u
			break
		}
		up := g.Coordinate(u)
		for _, d := range offsets {
			vp := Position{Row: up.Row + d.Row, Col: up.Col + d.Col}
			if !g.InBounds(vp) {
				continue
			}
			v := g.Index(vp)
			step := 0
			if g.cells[v] == Wall {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}

	return g.Backtrack(prev, target), dist[target], nil
}
