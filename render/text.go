package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette after the visualizer's cell colors.
var (
	colorEmpty   = lipgloss.Color("#1f2937") // gray-800
	colorWall    = lipgloss.Color("#9ca3af") // gray-400
	colorStart   = lipgloss.Color("#22c55e") // green-500
	colorEnd     = lipgloss.Color("#ef4444") // red-500
	colorVisited = lipgloss.Color("#7e22ce") // purple-700
	colorPath    = lipgloss.Color("#facc15") // yellow-400
)

var markStyles = [...]lipgloss.Style{
	MarkEmpty:   lipgloss.NewStyle().Foreground(colorEmpty),
	MarkWall:    lipgloss.NewStyle().Foreground(colorWall),
	MarkStart:   lipgloss.NewStyle().Foreground(colorStart).Bold(true),
	MarkEnd:     lipgloss.NewStyle().Foreground(colorEnd).Bold(true),
	MarkVisited: lipgloss.NewStyle().Foreground(colorVisited),
	MarkPath:    lipgloss.NewStyle().Foreground(colorPath),
}

// Terminal glyphs are two columns wide so cells look square.
var markGlyphs = [...]string{
	MarkEmpty:   "··",
	MarkWall:    "██",
	MarkStart:   "S▶",
	MarkEnd:     "◀E",
	MarkVisited: "░░",
	MarkPath:    "▓▓",
}

var plainSymbols = [...]byte{
	MarkEmpty:   '.',
	MarkWall:    '#',
	MarkStart:   'S',
	MarkEnd:     'E',
	MarkVisited: 'o',
	MarkPath:    '*',
}

// Terminal renders frame as lipgloss-styled rows joined by newlines.
// Consecutive cells with the same mark are styled as one run.
func Terminal(frame [][]Mark) string {
	var sb strings.Builder
	for r, row := range frame {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for start := 0; start < len(row); {
			m := row[start]
			end := start + 1
			for end < len(row) && row[end] == m {
				end++
			}
			sb.WriteString(styleOf(m).Render(strings.Repeat(glyphOf(m), end-start)))
			start = end
		}
	}

	return sb.String()
}

// Plain renders frame as ASCII rows joined by newlines.
func Plain(frame [][]Mark) string {
	var sb strings.Builder
	for r, row := range frame {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, m := range row {
			sb.WriteByte(symbolOf(m))
		}
	}

	return sb.String()
}

// Legend returns a one-line key for Terminal output.
func Legend() string {
	items := []Mark{MarkStart, MarkEnd, MarkWall, MarkVisited, MarkPath}
	parts := make([]string, len(items))
	for i, m := range items {
		parts[i] = styleOf(m).Render(glyphOf(m)) + " " + m.String()
	}

	return strings.Join(parts, "  ")
}

func styleOf(m Mark) lipgloss.Style {
	if int(m) < len(markStyles) {
		return markStyles[m]
	}

	return markStyles[MarkEmpty]
}

func glyphOf(m Mark) string {
	if int(m) < len(markGlyphs) {
		return markGlyphs[m]
	}

	return "??"
}

func symbolOf(m Mark) byte {
	if int(m) < len(plainSymbols) {
		return plainSymbols[m]
	}

	return '?'
}
