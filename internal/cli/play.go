package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

func (c *CLI) playCommand() *cobra.Command {
	var (
		src   sourceOpts
		algo  string
		speed string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate the search engines on an editable grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := c.algorithm(algo)
			if err != nil {
				return err
			}
			cfg := c.Cfg
			cfg.Algorithm = string(name)
			if speed != "" {
				cfg.Speed = config.Speed(speed)
				if _, err := cfg.Delay(cfg.Speed); err != nil {
					return err
				}
			}

			b, err := c.playBoard(cmd, src)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPlayerModel(b, cfg),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				if cerr := cmd.Context().Err(); cerr != nil && errors.Is(err, tea.ErrProgramKilled) {
					return cerr
				}
				return err
			}

			if fm, ok := final.(PlayerModel); ok {
				printInfo(cmd.OutOrStdout(), "%s", fm.status)
			}

			return nil
		},
	}

	addSourceFlags(cmd, &src)
	addAlgoFlag(cmd, &algo)
	cmd.Flags().StringVar(&speed, "speed", "", "fast, normal or slow (default from config)")

	return cmd
}

// playBoard builds the editable board, from a map file when one is given.
func (c *CLI) playBoard(cmd *cobra.Command, src sourceOpts) (*gridgraph.Board, error) {
	if src.mapPath == "" {
		return c.buildBoard(cmd, src)
	}

	g, _, _, err := c.loadGrid(cmd, src)
	if err != nil {
		return nil, err
	}
	b, err := gridgraph.BoardFromGrid(g)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", src.mapPath, err)
	}

	return b, nil
}
