package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// sourceOpts selects where a grid comes from: a text map, or a generated
// grid sized and seeded from config unless the flags override it.
type sourceOpts struct {
	mapPath string  // text map file, "-" for stdin
	density float64 // wall probability for --random
	seed    int64
	maze    bool
	rows    int
	cols    int
}

func addSourceFlags(cmd *cobra.Command, o *sourceOpts) {
	f := cmd.Flags()
	f.StringVarP(&o.mapPath, "map", "m", "", "read a text map (. # S E), - for stdin")
	f.Float64Var(&o.density, "random", 0, "scatter walls with this probability")
	f.Int64Var(&o.seed, "seed", 0, "random seed (default from config)")
	f.BoolVar(&o.maze, "maze", false, "carve a random maze")
	f.IntVar(&o.rows, "rows", 0, "grid rows (default from config)")
	f.IntVar(&o.cols, "cols", 0, "grid columns (default from config)")
	cmd.MarkFlagsMutuallyExclusive("map", "random")
	cmd.MarkFlagsMutuallyExclusive("map", "maze")
}

// loadGrid returns the grid and endpoints selected by o.
func (c *CLI) loadGrid(cmd *cobra.Command, o sourceOpts) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	if o.mapPath != "" {
		return readMap(cmd.InOrStdin(), o.mapPath)
	}

	b, err := c.buildBoard(cmd, o)
	if err != nil {
		return nil, gridgraph.Position{}, gridgraph.Position{}, err
	}

	return b.Grid(), b.Start(), b.End(), nil
}

// buildBoard generates an editable board from config and flags.
func (c *CLI) buildBoard(cmd *cobra.Command, o sourceOpts) (*gridgraph.Board, error) {
	flags := cmd.Flags()
	rows, cols, seed := c.Cfg.Grid.Rows, c.Cfg.Grid.Cols, c.Cfg.Seed
	if flags.Changed("rows") {
		rows = o.rows
	}
	if flags.Changed("cols") {
		cols = o.cols
	}
	if flags.Changed("seed") {
		seed = o.seed
	}

	var cons []builder.Constructor
	if o.maze {
		cons = append(cons, builder.Maze())
	}
	if flags.Changed("random") {
		cons = append(cons, builder.Scatter(o.density))
	}
	cons = append(cons, builder.Endpoints(c.Cfg.Grid.Start.Position(), c.Cfg.Grid.End.Position()))

	loggerFromContext(cmd.Context()).Debug("building grid", "rows", rows, "cols", cols, "seed", seed,
		"maze", o.maze, "density", o.density)

	return builder.BuildBoard(rows, cols, []builder.BuilderOption{builder.WithSeed(seed)}, cons...)
}

func readMap(stdin io.Reader, path string) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, gridgraph.Position{}, gridgraph.Position{}, err
		}
		defer f.Close()
		r = f
	}

	g, start, end, err := gridgraph.Decode(r)
	if err != nil {
		return nil, start, end, fmt.Errorf("read map %s: %w", path, err)
	}

	return g, start, end, nil
}
