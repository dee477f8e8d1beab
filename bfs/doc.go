// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the order in which cells were expanded and an unweighted
// shortest path from start to end.
//
// What
//
//   - Explore cells in non-decreasing distance (move count) from start.
//   - Returns a gridgraph.Result containing:
//   - Visited: dequeue order, used by the animation layer
//   - Path: start→end inclusive, empty if end is unreachable
//   - Moves are orthogonal only; walls are skipped by gridgraph.Neighbors.
//
// Why
//
//   - All moves cost 1, so the first time end is dequeued it was reached by
//     a shortest route.
//   - Cheapest of the three engines: no priority queue, O(1) per cell.
//
// Determinism
//
//	Neighbors are expanded in the fixed order up, down, left, right, and each
//	cell is enqueued at most once, so Visited and Path are reproducible.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N)
//   - Memory: O(N)   (queue, discovered/visited flags, predecessor table)
//
// Usage
//
//	g, start, end, err := gridgraph.Decode(r)
//	if err != nil {
//		// handle map error
//	}
//	res := bfs.Search(g, start, end)
//	if !res.Found() {
//		// end is walled off; res.Visited lists what was explored
//	}
//
// Preconditions
//
//	start and end must lie inside the grid. Search does not validate them;
//	algorithms.Run does.
package bfs
