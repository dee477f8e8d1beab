package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/algorithms"
)

func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, _ := algorithms.Parse(c.Cfg.Algorithm)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render("Algorithms"))
			for _, n := range algorithms.Names() {
				marker := " "
				if n == def {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s %s\n", marker, StyleNumber.Render(fmt.Sprintf("%-10s", n)), algorithms.Title(n))
			}

			return nil
		},
	}
}
