// Package gridgraph treats a 2D grid of cell states as a graph, providing the
// shared data contract for the pathfinding engines.
//
// What:
//
//   - Grid wraps a rectangular matrix of CellState (Empty, Wall, Start, End).
//   - Neighbors expands a cell to its open orthogonal neighbors in the fixed
//     order up, down, left, right.
//   - Result is the {Visited, Path} shape returned by bfs, dijkstra and astar.
//   - Backtrack rebuilds a start→end path from a predecessor table.
//   - Reachable / ConnectedComponents describe open regions.
//   - Breach computes the fewest walls to remove to connect two cells (0-1 BFS).
//   - Board is the mutable editing surface; Grid() snapshots it.
//   - ParseRows / Decode / Encode read and write ASCII maps ('.', '#', 'S', 'E').
//
// Why:
//
//   - Engines index flat slices by row*cols+col instead of string keys.
//   - Immutability lets engines run concurrently on one Grid.
//
// Complexity:
//
//   - Neighbors:           O(1).
//   - Reachable:           O(R×C), Memory: O(R×C).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//   - Breach:              O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrNoPath: Breach could not reach the end.
//   - ErrBadCell, ErrMissingEndpoint, ErrDuplicateEndpoint: text map errors.
package gridgraph
