// Package dijkstra provides Dijkstra's shortest-path algorithm on a
// gridgraph.Grid where every orthogonal move costs 1.
//
// Overview:
//
//   - Search finalizes cells in non-decreasing distance from start and stops
//     as soon as the end cell is finalized.
//   - The visit order is deterministic: among cells at the same distance the
//     one with the lowest row-major index (row*cols+col) is finalized first.
//   - Cells that are never reached keep distance +∞ and are never listed in
//     Result.Visited.
//
// Performance and complexity (N = rows × cols):
//
//   - Time:  O(N log N)
//   - Each cell is finalized at most once.
//   - Each successful relaxation pushes one heap entry (at most 4N pushes).
//   - Space: O(N)
//   - distance, predecessor and visited tables sized N.
//   - lazy-decrease-key heap holds at most 4N entries.
//
// Heap entries that are superseded by a shorter distance are not removed;
// they are skipped when popped because the cell is already finalized. With
// the (dist, index) ordering this pops cells in exactly the order a linear
// scan for the minimum unvisited distance would.
//
// Example:
//
//	res := dijkstra.Search(g, gridgraph.Pos(0, 0), gridgraph.Pos(4, 4))
//	fmt.Println(res.Cost()) // 8 on an open 5×5 grid
//
// Preconditions: start and end lie inside g. Use algorithms.Run for a
// validating entry point.
package dijkstra
