package bfs

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	grid       *gridgraph.Grid
	end        int
	queue      []int
	discovered []bool
	visited    []bool
	prev       []int
	buf        []gridgraph.Position
	res        gridgraph.Result
}

// Search runs breadth-first search on g from start to end.
//
// The returned Result lists cells in dequeue order (Visited) and, if end was
// reached, the start→end path (Path) with both endpoints included. When end
// is unreachable, Visited holds every cell reachable from start and Path is
// empty. When start == end, both are [start].
//
// Preconditions: start and end lie within g. They are not validated; see
// algorithms.Run for a validating entry point.
//
// Search never mutates g and keeps no state between calls.
// Time: O(R·C). Memory: O(R·C).
func Search(g *gridgraph.Grid, start, end gridgraph.Position) gridgraph.Result {
	n := g.Size()
	w := &walker{
		grid:       g,
		end:        g.Index(end),
		queue:      make([]int, 0, n),
		discovered: make([]bool, n),
		visited:    make([]bool, n),
		prev:       g.NewPredecessors(),
		buf:        make([]gridgraph.Position, 0, 4),
		res: gridgraph.Result{
			Visited: []gridgraph.Position{},
			Path:    []gridgraph.Position{},
		},
	}

	// Seed queue with start (no predecessor)
	w.enqueue(g.Index(start), -1)

	return w.loop()
}

// enqueue marks idx discovered, records its predecessor and appends it to the queue.
func (w *walker) enqueue(idx, parent int) {
	w.discovered[idx] = true
	w.prev[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until the end cell is dequeued or the queue empties.
func (w *walker) loop() gridgraph.Result {
	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]

		// a cell is only enqueued once, but stay safe against re-entry
		if w.visited[idx] {
			continue
		}
		w.visited[idx] = true
		w.res.Visited = append(w.res.Visited, w.grid.Coordinate(idx))

		if idx == w.end {
			w.res.Path = w.grid.Backtrack(w.prev, idx)
			return w.res
		}
		w.enqueueNeighbors(idx)
	}

	return w.res
}

// enqueueNeighbors enqueues every open, undiscovered neighbor of idx.
func (w *walker) enqueueNeighbors(idx int) {
	w.buf = w.grid.AppendNeighbors(w.buf[:0], w.grid.Coordinate(idx))
	for _, nbr := range w.buf {
		ni := w.grid.Index(nbr)
		if !w.discovered[ni] {
			w.enqueue(ni, idx)
		}
	}
}
