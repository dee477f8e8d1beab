package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/render"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

const cursorGlyph = "[]"

// tickMsg asks the player to paint one more cell. Ticks carry the run
// generation they were scheduled for; ticks from a stopped run are dropped.
type tickMsg struct{ gen int }

// =============================================================================
// PlayerModel - Interactive search animation
// =============================================================================

// PlayerModel is the bubbletea model behind `pathgrid play`. The board is
// editable while no animation is running.
type PlayerModel struct {
	Board  *gridgraph.Board
	Cursor gridgraph.Position
	Algo   int // index into algorithms.Names()
	Speed  config.Speed

	cfg      config.Config
	names    []algorithms.Name
	playback *render.Playback
	result   gridgraph.Result
	ran      algorithms.Name
	gen      int
	status   string
}

// NewPlayerModel creates a player over b using the algorithm, speed and
// frame delays from cfg.
func NewPlayerModel(b *gridgraph.Board, cfg config.Config) PlayerModel {
	m := PlayerModel{
		Board:  b,
		Cursor: b.Start(),
		Speed:  cfg.Speed,
		cfg:    cfg,
		names:  algorithms.Names(),
		status: "ready",
	}
	if n, err := algorithms.Parse(cfg.Algorithm); err == nil {
		for i, v := range m.names {
			if v == n {
				m.Algo = i
			}
		}
	}

	return m
}

// Running reports whether an animation is in progress.
func (m PlayerModel) Running() bool {
	return m.playback != nil && !m.playback.Done()
}

// Name is the selected algorithm.
func (m PlayerModel) Name() algorithms.Name { return m.names[m.Algo] }

func (m PlayerModel) Init() tea.Cmd {
	return nil
}

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.step(msg)
	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

func (m PlayerModel) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s":
		m.Speed = m.Speed.Next()
		return m, nil
	case "x":
		m.stop("stopped")
		return m, nil
	case "up", "k":
		m.moveCursor(-1, 0)
		return m, nil
	case "down", "j":
		m.moveCursor(1, 0)
		return m, nil
	case "left", "h":
		m.moveCursor(0, -1)
		return m, nil
	case "right", "l":
		m.moveCursor(0, 1)
		return m, nil
	}

	if m.Running() {
		return m, nil
	}

	switch msg.String() {
	case " ", "space", "enter":
		return m.start()
	case "tab":
		m.Algo = (m.Algo + 1) % len(m.names)
		m.status = "selected " + algorithms.Title(m.Name())
	case "w":
		if m.Board.ToggleWall(m.Cursor) {
			m.stop("edited")
		}
	case "1":
		if m.Board.MoveStart(m.Cursor) {
			m.stop("moved start")
		}
	case "2":
		if m.Board.MoveEnd(m.Cursor) {
			m.stop("moved end")
		}
	case "c":
		m.Board.ClearWalls()
		m.stop("cleared walls")
	case "r":
		m.Board.Reset()
		m.stop("reset")
	}

	return m, nil
}

// start runs the selected engine on a snapshot of the board and schedules
// the first frame.
func (m PlayerModel) start() (tea.Model, tea.Cmd) {
	g, start, end := m.Board.Grid(), m.Board.Start(), m.Board.End()
	res, err := algorithms.Run(string(m.Name()), g, start, end)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.gen++
	m.result = res
	m.ran = m.Name()
	m.playback = render.NewPlayback(g, res, start, end)
	m.status = "running " + algorithms.Title(m.ran)

	return m, m.tick()
}

func (m PlayerModel) step(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.playback == nil {
		return m, nil
	}
	if !m.playback.Step() || m.playback.Done() {
		m.status = m.summary()
		return m, nil
	}

	return m, m.tick()
}

func (m PlayerModel) tick() tea.Cmd {
	gen := m.gen
	d, err := m.cfg.Delay(m.Speed)
	if err != nil {
		d = 10 * time.Millisecond
	}

	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// stop discards the current animation and invalidates its pending ticks.
func (m *PlayerModel) stop(status string) {
	m.gen++
	m.playback = nil
	m.status = status
}

func (m *PlayerModel) moveCursor(dr, dc int) {
	p := gridgraph.Pos(m.Cursor.Row+dr, m.Cursor.Col+dc)
	if m.Board.InBounds(p) {
		m.Cursor = p
	}
}

func (m PlayerModel) summary() string {
	if !m.result.Found() {
		return fmt.Sprintf("%s: no path, %d cells visited", algorithms.Title(m.ran), len(m.result.Visited))
	}

	return fmt.Sprintf("%s: %d moves, %d cells visited", algorithms.Title(m.ran), m.result.Cost(), len(m.result.Visited))
}

func (m PlayerModel) frame() [][]render.Mark {
	if m.playback != nil {
		return m.playback.Frame()
	}

	return render.Base(m.Board.Grid())
}

func (m PlayerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(algorithms.Title(m.Name())))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  speed %s", m.Speed)))
	b.WriteString("\n\n")

	for r, row := range m.frame() {
		if r != m.Cursor.Row {
			b.WriteString(render.Terminal([][]render.Mark{row}))
		} else {
			c := m.Cursor.Col
			b.WriteString(render.Terminal([][]render.Mark{row[:c]}))
			b.WriteString(cursorStyle.Render(cursorGlyph))
			b.WriteString(render.Terminal([][]render.Mark{row[c+1:]}))
		}
		b.WriteString("\n")
	}

	b.WriteString(render.Legend())
	b.WriteString("\n")
	if m.playback != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%s %d/%d  ", m.playback.Phase(), m.playback.Pos(), m.playback.Len())))
	}
	b.WriteString(StyleValue.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space run  tab algorithm  s speed  arrows move  w wall  1 start  2 end  c clear  r reset  x stop  q quit"))
	b.WriteString("\n")

	return b.String()
}
