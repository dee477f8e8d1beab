package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"
)

// DefaultCellSize is the PNG side length of one cell in pixels.
const DefaultCellSize = 24

// pngColors follows the visualizer palette.
var pngColors = [...]color.RGBA{
	MarkEmpty:   {0x1f, 0x29, 0x37, 0xff}, // gray-800
	MarkWall:    {0x03, 0x07, 0x12, 0xff}, // gray-950
	MarkStart:   {0x22, 0xc5, 0x5e, 0xff}, // green-500
	MarkEnd:     {0xef, 0x44, 0x44, 0xff}, // red-500
	MarkVisited: {0x4a, 0x1f, 0x6b, 0xff}, // purple-900 at half opacity over gray-800
	MarkPath:    {0xfa, 0xcc, 0x15, 0xff}, // yellow-400
}

var pngBackground = color.RGBA{0x11, 0x18, 0x27, 0xff} // gray-900

type pngConfig struct {
	cellSize int
	margin   int
}

// PNGOption customizes PNG output.
type PNGOption func(*pngConfig)

// WithCellSize sets the side of one cell in pixels. Panics if px < 1.
func WithCellSize(px int) PNGOption {
	if px < 1 {
		panic("render: WithCellSize(px<1)")
	}
	return func(c *pngConfig) { c.cellSize = px }
}

// WithMargin surrounds the grid with a background border of px pixels.
// Panics if px < 0.
func WithMargin(px int) PNGOption {
	if px < 0 {
		panic("render: WithMargin(px<0)")
	}
	return func(c *pngConfig) { c.margin = px }
}

// Image rasterizes frame: one pixel per cell, scaled up to the cell size
// and placed on a background of the configured margin.
func Image(frame [][]Mark, opts ...PNGOption) (*image.RGBA, error) {
	rows, cols, err := checkFrame(frame)
	if err != nil {
		return nil, err
	}
	cfg := pngConfig{cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	cells := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r, row := range frame {
		for c, m := range row {
			cells.SetRGBA(c, r, colorOf(m))
		}
	}
	scaled := image_utils.ResizeImage(cells, cols*cfg.cellSize, rows*cfg.cellSize)

	w, h := cols*cfg.cellSize+2*cfg.margin, rows*cfg.cellSize+2*cfg.margin
	bg := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bg.SetRGBA(x, y, pngBackground)
		}
	}

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(bg, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: add background: %w", err)
	}
	if err := composite.AddImage(scaled, image.Pt(cfg.margin, cfg.margin)); err != nil {
		return nil, fmt.Errorf("render: add cells: %w", err)
	}

	return image_utils.ToRGBA(composite), nil
}

// PNG writes frame to w as a PNG image.
func PNG(w io.Writer, frame [][]Mark, opts ...PNGOption) error {
	img, err := Image(frame, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

func colorOf(m Mark) color.RGBA {
	if int(m) < len(pngColors) {
		return pngColors[m]
	}

	return pngBackground
}
