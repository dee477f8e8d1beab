// Package pathgrid is a playground for shortest-path search on 2D grids:
// walls, a start, an end, and three engines that show how differently
// they explore before arriving at the same shortest route.
//
// 🚀 What is pathgrid?
//
//	A small, deterministic library plus a CLI and HTTP front end:
//		• Grid model: immutable snapshots, text maps, an editable Board
//		• Engines: Dijkstra, A* (Manhattan), breadth-first search
//		• Builders: random walls, Kruskal mazes, borders, endpoints
//		• Playback: frame-by-frame replay of visited cells and path
//		• Rendering: lipgloss terminal output and PNG images
//
// ✨ Why pathgrid?
//
//   - Reproducible – fixed neighbor order and tie-breaking, seeded builders
//   - Total engines – no errors, no panics for in-bounds input
//   - Concurrency-safe – engines keep no state between calls
//
// Layout:
//
//	gridgraph/  — Grid, Position, Result, neighbors, text maps, Board, Breach
//	bfs/        — breadth-first search
//	dijkstra/   — Dijkstra with a (distance, index) heap
//	astar/      — A* with an indexed (f, insertion) heap
//	algorithms/ — name registry and validating Run
//	builder/    — grid constructors (Scatter, Maze, Border, Endpoints)
//	render/     — Playback, terminal and PNG output
//	config/     — TOML settings
//	server/     — HTTP API
//	cmd/pathgrid — the CLI (solve, play, render, serve, algorithms)
//
// Quick map example:
//
//	S.#
//	..#
//	..E
//
//	every engine finds a 4-move route around the wall.
//
//	go install github.com/katalvlaran/pathgrid/cmd/pathgrid@latest
package pathgrid
