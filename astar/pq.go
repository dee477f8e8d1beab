package astar

// openItem is a cell in the open set.
type openItem struct {
	idx   int // row-major cell index
	g     int // cost from start
	f     int // g + heuristic
	seq   int // first-insertion order, kept across updates
	index int // position in openPQ, maintained by Swap/Push/Pop
}

// openPQ is a min-heap of *openItem ordered by (f, seq). Entries are updated
// in place and re-sifted with heap.Fix, so each cell appears at most once.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

// Less prefers lower f; on equal f the earlier-inserted cell wins.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openPQ) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
