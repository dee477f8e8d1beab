package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/render"
)

// solution is one engine run with the inputs that produced it.
type solution struct {
	name       algorithms.Name
	grid       *gridgraph.Grid
	start, end gridgraph.Position
	res        gridgraph.Result
}

func (s solution) frame() [][]render.Mark {
	return render.Overlay(s.grid, s.res, s.start, s.end)
}

func (c *CLI) solveCommand() *cobra.Command {
	var (
		src   sourceOpts
		algo  string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search a grid and print the explored cells and path",
		Example: `  pathgrid solve --map maze.txt --algo astar
  pathgrid solve --random 0.3 --seed 7 --plain
  cat maze.txt | pathgrid solve --map -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := c.solve(cmd, src, algo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprintln(out, render.Plain(sol.frame()))
			} else {
				fmt.Fprintln(out, render.Terminal(sol.frame()))
				fmt.Fprintln(out, render.Legend())
			}
			fmt.Fprintln(out)
			printSolution(out, sol)

			return nil
		},
	}

	addSourceFlags(cmd, &src)
	addAlgoFlag(cmd, &algo)
	cmd.Flags().BoolVar(&plain, "plain", false, "print ASCII symbols instead of colored glyphs")

	return cmd
}

// solve loads the grid and runs the selected engine on it.
func (c *CLI) solve(cmd *cobra.Command, src sourceOpts, algo string) (solution, error) {
	name, err := c.algorithm(algo)
	if err != nil {
		return solution{}, err
	}
	g, start, end, err := c.loadGrid(cmd, src)
	if err != nil {
		return solution{}, err
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	res, err := algorithms.Run(string(name), g, start, end)
	if err != nil {
		return solution{}, err
	}
	prog.done(fmt.Sprintf("Searched %dx%d grid with %s", g.Rows(), g.Cols(), name))

	return solution{name: name, grid: g, start: start, end: end, res: res}, nil
}

// printSolution prints run statistics and, when end is walled off, how many
// walls stand in the way.
func printSolution(w io.Writer, sol solution) {
	printKeyValue(w, "algorithm", algorithms.Title(sol.name))
	printKeyValue(w, "grid", fmt.Sprintf("%dx%d, %d walls", sol.grid.Rows(), sol.grid.Cols(), sol.grid.Walls()))
	printKeyValue(w, "visited", strconv.Itoa(len(sol.res.Visited)))

	if sol.res.Found() {
		printKeyValue(w, "path", fmt.Sprintf("%d moves", sol.res.Cost()))
		printSuccess(w, "path found from %v to %v", sol.start, sol.end)
		return
	}

	printKeyValue(w, "path", "none")
	printError(w, "no path from %v to %v", sol.start, sol.end)
	route, walls, err := sol.grid.Breach(sol.start, sol.end)
	if err != nil {
		return
	}
	var blocked []gridgraph.Position
	for _, p := range route {
		if sol.grid.IsWall(p) {
			blocked = append(blocked, p)
		}
	}
	printWarning(w, "removing %d wall(s) would open a route", walls)
	printDetail(w, "walls: %v", blocked)
}
