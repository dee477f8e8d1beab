package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// unreached marks a cell whose distance is still +∞.
const unreached = math.MaxInt

// Search runs Dijkstra's algorithm on g from start to end with unit move cost.
//
// Visited lists cells in the order their distance was finalized; among cells
// at equal distance the lowest row-major index wins. Cells never reached
// (distance +∞) are not listed. Path is the start→end route, empty when end
// is unreachable, [start] when start == end.
//
// Preconditions: start and end lie within g (see algorithms.Run).
// Search never mutates g.
func Search(g *gridgraph.Grid, start, end gridgraph.Position) gridgraph.Result {
	n := g.Size()
	r := &runner{
		grid:    g,
		end:     g.Index(end),
		dist:    make([]int, n),
		prev:    g.NewPredecessors(),
		visited: make([]bool, n),
		buf:     make([]gridgraph.Position, 0, 4),
		res: gridgraph.Result{
			Visited: []gridgraph.Position{},
			Path:    []gridgraph.Position{},
		},
	}
	r.init(g.Index(start))
	r.process()

	return r.res
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	grid    *gridgraph.Grid
	end     int
	dist    []int  // best known distance per cell index
	prev    []int  // predecessor per cell index, -1 = none
	visited []bool // distance finalized
	pq      nodePQ
	buf     []gridgraph.Position
	res     gridgraph.Result
}

// init sets every distance to +∞ except the source and seeds the heap.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = unreached
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: source, dist: 0})
}

// process pops the closest unfinalized cell until the end cell is finalized
// or every reachable cell has been.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		// stale entry left behind by a later, shorter push
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.res.Visited = append(r.res.Visited, r.grid.Coordinate(u))

		if u == r.end {
			r.res.Path = r.grid.Backtrack(r.prev, u)
			return
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every open neighbor of u.
func (r *runner) relax(u int) {
	newDist := r.dist[u] + 1
	r.buf = r.grid.AppendNeighbors(r.buf[:0], r.grid.Coordinate(u))
	for _, nbr := range r.buf {
		v := r.grid.Index(nbr)
		if r.visited[v] || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a cell index and its distance at push time.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by (dist, idx).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by row-major index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
