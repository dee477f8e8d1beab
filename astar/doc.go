// Package astar provides A* search on a gridgraph.Grid with unit move cost
// and the Manhattan distance as heuristic.
//
// What
//
//   - Keeps an open set ordered by f = g + h, where g is the cost from start
//     and h the Manhattan distance to end.
//   - Pops the cheapest open cell, closes it, appends it to Result.Visited and
//     stops as soon as the end cell is closed.
//   - A neighbor outside the open set starts with g = +∞; it is updated only
//     when a strictly cheaper route is found.
//
// Why
//
//   - Manhattan distance never overestimates on a 4-connected unit grid, so
//     the first time end is closed its path is shortest.
//   - The heuristic steers expansion toward end; on open maps A* closes far
//     fewer cells than Dijkstra.
//
// Determinism
//
//	Ties on f are broken by the order in which cells first entered the open
//	set. An update to a cell already in the open set keeps its original
//	position in that order.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N log N)   (indexed heap; updates use heap.Fix)
//   - Memory: O(N)
//
// Preconditions
//
//	start and end must lie inside the grid; algorithms.Run validates them.
package astar
