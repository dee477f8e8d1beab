package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ErrUnknownAlgorithm is returned when a name matches no registered engine.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// ErrOutOfBounds is returned by Run when start or end lies outside the grid.
// It wraps gridgraph.ErrOutOfBounds, so either sentinel matches with errors.Is.
var ErrOutOfBounds = fmt.Errorf("algorithms: %w", gridgraph.ErrOutOfBounds)

// Name identifies a search engine.
type Name string

// Registered engine names.
const (
	Dijkstra Name = "dijkstra"
	AStar    Name = "astar"
	BFS      Name = "bfs"
)

// Func is the signature shared by every engine.
type Func func(g *gridgraph.Grid, start, end gridgraph.Position) gridgraph.Result

type entry struct {
	name  Name
	title string
	fn    Func
}

// registry holds engines in display order.
var registry = []entry{
	{Dijkstra, "Dijkstra's Algorithm", dijkstra.Search},
	{AStar, "A* Search", astar.Search},
	{BFS, "Breadth First Search", bfs.Search},
}

var aliases = map[string]Name{
	"a*":            AStar,
	"a-star":        AStar,
	"breadth-first": BFS,
}

// Names returns all registered names in display order.
func Names() []Name {
	out := make([]Name, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}

	return out
}

// Parse normalizes s (case-insensitive, aliases allowed) to a registered Name.
func Parse(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if n, ok := aliases[key]; ok {
		return n, nil
	}
	for _, e := range registry {
		if string(e.name) == key {
			return e.name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Func, error) {
	n, err := Parse(name)
	if err != nil {
		return nil, err
	}

	return find(n).fn, nil
}

// Title returns the display label for name, or name itself if unknown.
func Title(name Name) string {
	if e := find(name); e != nil {
		return e.title
	}

	return string(name)
}

// Run looks up name and runs it on g after checking that both endpoints lie
// within the grid.
func Run(name string, g *gridgraph.Grid, start, end gridgraph.Position) (gridgraph.Result, error) {
	fn, err := Lookup(name)
	if err != nil {
		return gridgraph.Result{}, err
	}
	if !g.InBounds(start) {
		return gridgraph.Result{}, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(end) {
		return gridgraph.Result{}, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, g.Rows(), g.Cols())
	}

	return fn(g, start, end), nil
}

// String implements fmt.Stringer.
func (n Name) String() string { return string(n) }

func find(n Name) *entry {
	for i := range registry {
		if registry[i].name == n {
			return &registry[i]
		}
	}

	return nil
}
