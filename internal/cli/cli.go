package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/config"
)

const appName = "pathgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"  // semantic version
	commit  = "none" // git commit SHA
	date    = ""     // build timestamp
)

// SetVersion sets the values shown by --version. main calls it with values
// injected through ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds state shared by all commands. Cfg is loaded from --config
// before any subcommand runs.
type CLI struct {
	Logger *log.Logger
	Cfg    config.Config

	cfgPath string
	verbose bool
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pathgrid runs and visualizes grid pathfinding algorithms",
		Long:         `Pathgrid runs Dijkstra, A* and breadth-first search on 2D grids with walls and shows how each one explores the grid before it finds the shortest path.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.cfgPath)
			if err != nil {
				return err
			}
			c.Cfg = cfg
			if c.cfgPath != "" {
				c.Logger.Debug("loaded config", "path", c.cfgPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "TOML settings file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.algorithmsCommand())

	return root
}

// algorithm resolves the --algo flag, falling back to the configured engine.
func (c *CLI) algorithm(flag string) (algorithms.Name, error) {
	if flag == "" {
		flag = c.Cfg.Algorithm
	}

	return algorithms.Parse(flag)
}

func addAlgoFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "algo", "a", "", "engine: dijkstra, astar or bfs (default from config)")
}
