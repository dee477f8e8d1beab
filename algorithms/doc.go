// Package algorithms is the registry of grid search engines.
//
// It maps the selector names used by the CLI, the TUI and the HTTP API to
// the engine functions in packages bfs, dijkstra and astar:
//
//   - Shortest paths (unit cost)
//     – "dijkstra"  Dijkstra's Algorithm
//     – "astar"     A* Search (Manhattan heuristic)
//     – "bfs"       Breadth First Search
//
// Every engine shares the Func signature and returns a gridgraph.Result.
// The engines trust their inputs; Run is the validating entry point and
// rejects endpoints outside the grid with ErrOutOfBounds.
package algorithms
