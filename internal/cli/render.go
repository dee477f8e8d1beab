package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		src    sourceOpts
		algo   string
		output string
		cell   int
		margin int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Search a grid and write the final frame as a PNG",
		Example: `  pathgrid render --maze --algo bfs -o maze.png
  pathgrid render --map level.txt --cell 8 --margin 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cell < 1 {
				return errors.New("--cell must be at least 1")
			}
			if margin < 0 {
				return errors.New("--margin must not be negative")
			}
			sol, err := c.solve(cmd, src, algo)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := render.PNG(f, sol.frame(), render.WithCellSize(cell), render.WithMargin(margin)); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}

			out := cmd.OutOrStdout()
			printSolution(out, sol)
			printFile(out, output)

			return nil
		},
	}

	addSourceFlags(cmd, &src)
	addAlgoFlag(cmd, &algo)
	cmd.Flags().StringVarP(&output, "output", "o", appName+".png", "PNG file to write")
	cmd.Flags().IntVar(&cell, "cell", render.DefaultCellSize, "cell size in pixels")
	cmd.Flags().IntVar(&margin, "margin", 0, "border around the grid in pixels")

	return cmd
}
