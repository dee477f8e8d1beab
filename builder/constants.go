// Package builder defines shared constants used by grid builders, ensuring
// consistent validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGrid is the canonical name for the BuildGrid orchestrator.
	MethodBuildGrid = "BuildGrid"
	// MethodBuildBoard is the canonical name for BuildBoard.
	MethodBuildBoard = "BuildBoard"
	// MethodScatter is the canonical name for the Scatter constructor.
	MethodScatter = "Scatter"
	// MethodMaze is the canonical name for the Maze constructor.
	MethodMaze = "Maze"
	// MethodBorder is the canonical name for the Border constructor.
	MethodBorder = "Border"
	// MethodEndpoints is the canonical name for the Endpoints constructor.
	MethodEndpoints = "Endpoints"
)

//-----------------------------------------------------------------------------
// Validation limits
//-----------------------------------------------------------------------------

const (
	// MinGridDim is the smallest allowed number of rows or columns.
	MinGridDim = 1
	// MinMazeDim is the smallest side for which Maze has two rooms to join.
	MinMazeDim = 3
	// MinProbability is the inclusive lower bound for Scatter.
	MinProbability = 0.0
	// MaxProbability is the inclusive upper bound for Scatter.
	MaxProbability = 1.0
)
