// Package config loads application settings from TOML.
//
// Defaults mirror the interactive visualizer: a 23×51 board with start at
// (10,5) and end at (10,35), Dijkstra selected, fast playback. A file only
// needs the keys it changes:
//
//	algorithm = "astar"
//	speed     = "normal"
//
//	[grid]
//	rows  = 31
//	cols  = 61
//	start = { row = 1, col = 1 }
//	end   = { row = 29, col = 59 }
//
//	[speeds]          # milliseconds per frame
//	fast   = 10
//	normal = 25
//	slow   = 50
//
//	[server]
//	addr      = ":8080"
//	max_cells = 160000
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ErrInvalidConfig is returned for unreadable files, unknown keys and
// out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Speed names a playback rate.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedNormal Speed = "normal"
	SpeedSlow   Speed = "slow"
)

// Speeds lists the playback rates in cycling order.
var Speeds = []Speed{SpeedFast, SpeedNormal, SpeedSlow}

// Next returns the speed after s, wrapping around.
func (s Speed) Next() Speed {
	for i, v := range Speeds {
		if v == s {
			return Speeds[(i+1)%len(Speeds)]
		}
	}

	return SpeedFast
}

// Point is a grid coordinate in TOML form.
type Point struct {
	Row int `toml:"row"`
	Col int `toml:"col"`
}

// Position converts p to a gridgraph.Position.
func (p Point) Position() gridgraph.Position { return gridgraph.Pos(p.Row, p.Col) }

// Grid describes the default board.
type Grid struct {
	Rows  int   `toml:"rows"`
	Cols  int   `toml:"cols"`
	Start Point `toml:"start"`
	End   Point `toml:"end"`
}

// Delays holds milliseconds per playback frame for each speed.
type Delays struct {
	Fast   int `toml:"fast"`
	Normal int `toml:"normal"`
	Slow   int `toml:"slow"`
}

// Server configures the HTTP API.
type Server struct {
	Addr     string `toml:"addr"`
	MaxCells int    `toml:"max_cells"`
}

// Config is the full application configuration.
type Config struct {
	Algorithm string `toml:"algorithm"`
	Speed     Speed  `toml:"speed"`
	Seed      int64  `toml:"seed"`
	Grid      Grid   `toml:"grid"`
	Speeds    Delays `toml:"speeds"`
	Server    Server `toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: string(algorithms.Dijkstra),
		Speed:     SpeedFast,
		Seed:      1,
		Grid: Grid{
			Rows:  23,
			Cols:  51,
			Start: Point{Row: 10, Col: 5},
			End:   Point{Row: 10, Col: 35},
		},
		Speeds: Delays{Fast: 10, Normal: 25, Slow: 50},
		Server: Server{Addr: ":8080", MaxCells: 400 * 400},
	}
}

// Load reads path and overlays it onto Default. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads TOML from r, overlays it onto Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if _, err := algorithms.Parse(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Delay(c.Speed); err != nil {
		return err
	}
	if c.Speeds.Fast < 1 || c.Speeds.Normal < 1 || c.Speeds.Slow < 1 {
		return fmt.Errorf("%w: speeds must be ≥ 1ms, got %+v", ErrInvalidConfig, c.Speeds)
	}
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.Rows*c.Grid.Cols < 2 {
		return fmt.Errorf("%w: grid %dx%d has no room for two endpoints", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	if !c.inGrid(c.Grid.Start) || !c.inGrid(c.Grid.End) {
		return fmt.Errorf("%w: start %v or end %v outside %dx%d grid",
			ErrInvalidConfig, c.Grid.Start.Position(), c.Grid.End.Position(), c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.Start == c.Grid.End {
		return fmt.Errorf("%w: start and end coincide at %v", ErrInvalidConfig, c.Grid.Start.Position())
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidConfig)
	}
	if c.Server.MaxCells < 1 {
		return fmt.Errorf("%w: server max_cells must be ≥ 1", ErrInvalidConfig)
	}

	return nil
}

// Delay returns the frame delay for s.
func (c Config) Delay(s Speed) (time.Duration, error) {
	var ms int
	switch s {
	case SpeedFast:
		ms = c.Speeds.Fast
	case SpeedNormal:
		ms = c.Speeds.Normal
	case SpeedSlow:
		ms = c.Speeds.Slow
	default:
		return 0, fmt.Errorf("%w: unknown speed %q", ErrInvalidConfig, s)
	}

	return time.Duration(ms) * time.Millisecond, nil
}

func (c Config) inGrid(p Point) bool {
	return p.Row >= 0 && p.Row < c.Grid.Rows && p.Col >= 0 && p.Col < c.Grid.Cols
}
