// Package render turns a grid and a search result into frames and draws
// them as styled terminal text, plain ASCII or PNG images.
//
// A frame is a [][]Mark overlay: the grid's walls and endpoints plus the
// cells an engine has visited and the path it found. Playback replays a
// gridgraph.Result one cell at a time, first through Visited and then
// through Path, never repainting the start or end cell.
//
// Output formats:
//
//   - Terminal: lipgloss-colored blocks, one run of styled glyphs per row.
//   - Plain:    ASCII symbols . # S E o *
//   - PNG:      one square per cell, scaled with image_utils.
package render
