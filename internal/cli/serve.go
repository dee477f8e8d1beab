package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search engines over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Cfg.Server.Addr
			}
			srv := server.New(loggerFromContext(cmd.Context()), server.WithMaxCells(c.Cfg.Server.MaxCells))

			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
