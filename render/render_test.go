package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/render"
)

func mustMap(t *testing.T, rows ...string) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position) {
	t.Helper()
	g, err := gridgraph.ParseRows(rows)
	require.NoError(t, err)
	start, end, err := g.Endpoints()
	require.NoError(t, err)

	return g, start, end
}

func TestPlayback_SkipsEndpoints(t *testing.T) {
	g, start, end := mustMap(t,
		"S.#",
		"..#",
		"..E",
	)
	res := bfs.Search(g, start, end)
	p := render.NewPlayback(g, res, start, end)

	// 7 visited minus start and end, 5 path cells minus start and end
	assert.Equal(t, 5+3, p.Len())
	assert.Equal(t, render.PhaseExploring, p.Phase())
	assert.Equal(t, "S.#\n..#\n..E", render.Plain(p.Frame()))

	for i := 0; i < 5; i++ {
		require.True(t, p.Step())
	}
	assert.Equal(t, render.PhaseTracing, p.Phase())
	assert.Equal(t, "So#\noo#\nooE", render.Plain(p.Frame()))

	for p.Step() {
	}
	assert.True(t, p.Done())
	assert.Equal(t, render.PhaseDone, p.Phase())
	assert.Equal(t, "So#\n*o#\n**E", render.Plain(p.Frame()))
	assert.False(t, p.Step())

	p.Reset()
	assert.Equal(t, 0, p.Pos())
	assert.Equal(t, "S.#\n..#\n..E", render.Plain(p.Frame()))
}

func TestPlayback_FrameIsCopy(t *testing.T) {
	g, start, end := mustMap(t, "S.E")
	p := render.NewPlayback(g, bfs.Search(g, start, end), start, end)
	f := p.Frame()
	f[0][1] = render.MarkWall
	assert.Equal(t, "S.E", render.Plain(p.Frame()))
}

func TestOverlay_NoPath(t *testing.T) {
	g, start, end := mustMap(t,
		"S.#.",
		"..#E",
	)
	frame := render.Overlay(g, bfs.Search(g, start, end), start, end)
	assert.Equal(t, "So#.\noo#E", render.Plain(frame))
}

func TestOverlay_EndpointsFromArguments(t *testing.T) {
	g, err := gridgraph.NewEmpty(1, 4)
	require.NoError(t, err)
	start, end := gridgraph.Pos(0, 0), gridgraph.Pos(0, 3)
	frame := render.Overlay(g, bfs.Search(g, start, end), start, end)
	assert.Equal(t, "S**E", render.Plain(frame))
}

func TestTerminal_Shape(t *testing.T) {
	g, start, end := mustMap(t,
		"S..#",
		"...E",
	)
	out := render.Terminal(render.Overlay(g, bfs.Search(g, start, end), start, end))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "S▶")
	assert.Contains(t, lines[0], "██")
	assert.Contains(t, lines[1], "◀E")
	assert.Contains(t, render.Legend(), "path")
}

func TestMarkString(t *testing.T) {
	assert.Equal(t, "visited", render.MarkVisited.String())
	assert.Equal(t, "Mark(42)", render.Mark(42).String())
}

func TestImage(t *testing.T) {
	g, start, end := mustMap(t,
		"S#",
		".E",
	)
	frame := render.Overlay(g, bfs.Search(g, start, end), start, end)

	img, err := render.Image(frame, render.WithCellSize(10), render.WithMargin(3))
	require.NoError(t, err)
	assert.Equal(t, 2*10+6, img.Bounds().Dx())
	assert.Equal(t, 2*10+6, img.Bounds().Dy())

	// margin pixel is background, cell centers carry their mark colors
	assertNear(t, [3]uint8{0x11, 0x18, 0x27}, img.RGBAAt(0, 0).R, img.RGBAAt(0, 0).G, img.RGBAAt(0, 0).B)
	c := img.RGBAAt(3+5, 3+5) // start
	assertNear(t, [3]uint8{0x22, 0xc5, 0x5e}, c.R, c.G, c.B)
	c = img.RGBAAt(3+15, 3+15) // end
	assertNear(t, [3]uint8{0xef, 0x44, 0x44}, c.R, c.G, c.B)
	c = img.RGBAAt(3+5, 3+15) // path cell (1,0)
	assertNear(t, [3]uint8{0xfa, 0xcc, 0x15}, c.R, c.G, c.B)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	frame := [][]render.Mark{{render.MarkStart, render.MarkPath, render.MarkEnd}}
	require.NoError(t, render.PNG(&buf, frame, render.WithCellSize(4)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())

	assert.ErrorIs(t, render.PNG(&buf, nil), render.ErrEmptyFrame)
	assert.ErrorIs(t, render.PNG(&buf, [][]render.Mark{{render.MarkEmpty}, {}}), render.ErrEmptyFrame)
}

func TestPNGOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { render.WithCellSize(0) })
	assert.Panics(t, func() { render.WithMargin(-1) })
}

// assertNear compares colors with a small tolerance for resampling.
func assertNear(t *testing.T, want [3]uint8, r, g, b uint8) {
	t.Helper()
	got := [3]uint8{r, g, b}
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < -8 || d > 8 {
			t.Errorf("color %v not near %v", got, want)
			return
		}
	}
}
