// Package builder provides functional-options building blocks for test and
// demo grids: random scatter, perfect mazes, border rings and endpoint
// placement, all composed through BuildGrid.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildGrid:  allocate an Empty canvas, apply constructors, snapshot a *gridgraph.Grid.
//     – BuildBoard: same, then wrap in an editable *gridgraph.Board.
//   - Constructors:
//     – Scatter(p):            random walls with probability p.
//     – Maze():                randomized Kruskal over even-coordinate rooms.
//     – Border():              wall ring around the canvas.
//     – Endpoints(start, end): place Start and End.
//   - Configuration primitives:
//     – BuilderOption:         WithSeed, WithRand, WithMarkersPreserved.
//     – builderConfig:         resolved, immutable knobs passed to constructors.
//
// Guarantees:
//
//   - Determinism: identical dimensions, options, seed and constructor order
//     produce identical grids.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors are sentinels (ErrTooSmall,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped
//     with the constructor name; branch with errors.Is.
//
// Example:
//
//	g, err := builder.BuildGrid(23, 51,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Maze(),
//		builder.Endpoints(gridgraph.Pos(10, 5), gridgraph.Pos(10, 35)),
//	)
package builder
