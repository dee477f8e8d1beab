package astar

import (
	"container/heap"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Search runs A* on g from start to end using the Manhattan distance as
// heuristic and unit move cost.
//
// Visited lists cells in the order they were moved to the closed set,
// ending with end when it is reached. Path is the start→end route, empty
// when end is unreachable, [start] when start == end.
//
// Preconditions: start and end lie within g (see algorithms.Run).
// Search never mutates g.
func Search(g *gridgraph.Grid, start, end gridgraph.Position) gridgraph.Result {
	n := g.Size()
	s := &searcher{
		grid:   g,
		target: end,
		end:    g.Index(end),
		open:   make([]*openItem, n),
		closed: make([]bool, n),
		prev:   g.NewPredecessors(),
		buf:    make([]gridgraph.Position, 0, 4),
		res: gridgraph.Result{
			Visited: []gridgraph.Position{},
			Path:    []gridgraph.Position{},
		},
	}
	s.push(g.Index(start), 0)
	s.run()

	return s.res
}

// searcher holds the mutable state for a single A* execution.
type searcher struct {
	grid   *gridgraph.Grid
	target gridgraph.Position
	end    int
	open   []*openItem // open-set membership per cell index, nil = not open
	closed []bool
	prev   []int
	pq     openPQ
	seq    int
	buf    []gridgraph.Position
	res    gridgraph.Result
}

// h is the admissible Manhattan heuristic toward the end cell.
func (s *searcher) h(idx int) int {
	return gridgraph.Manhattan(s.grid.Coordinate(idx), s.target)
}

// push inserts idx into the open set with cost g.
func (s *searcher) push(idx, g int) {
	item := &openItem{idx: idx, g: g, f: g + s.h(idx), seq: s.seq}
	s.seq++
	s.open[idx] = item
	heap.Push(&s.pq, item)
}

// run expands the cheapest open cell until end is closed or the open set empties.
func (s *searcher) run() {
	for s.pq.Len() > 0 {
		cur := heap.Pop(&s.pq).(*openItem)
		s.open[cur.idx] = nil
		s.closed[cur.idx] = true
		s.res.Visited = append(s.res.Visited, s.grid.Coordinate(cur.idx))

		if cur.idx == s.end {
			s.res.Path = s.grid.Backtrack(s.prev, cur.idx)
			return
		}
		s.expand(cur)
	}
}

// expand relaxes every open, non-closed neighbor of cur.
func (s *searcher) expand(cur *openItem) {
	tentative := cur.g + 1
	s.buf = s.grid.AppendNeighbors(s.buf[:0], s.grid.Coordinate(cur.idx))
	for _, nbr := range s.buf {
		v := s.grid.Index(nbr)
		if s.closed[v] {
			continue
		}

		// a cell outside the open set has g = +∞, so any route improves it
		item := s.open[v]
		if item == nil {
			s.prev[v] = cur.idx
			s.push(v, tentative)
			continue
		}
		if tentative < item.g {
			s.prev[v] = cur.idx
			item.g = tentative
			item.f = tentative + s.h(v)
			heap.Fix(&s.pq, item.index)
		}
	}
}
