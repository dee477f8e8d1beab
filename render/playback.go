package render

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Phase reports which part of a result a Playback is replaying.
type Phase uint8

const (
	PhaseExploring Phase = iota // painting Visited
	PhaseTracing                // painting Path
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseExploring:
		return "exploring"
	case PhaseTracing:
		return "tracing"
	default:
		return "done"
	}
}

type step struct {
	pos  gridgraph.Position
	mark Mark
}

// Playback replays a search result frame by frame. Each Step paints one
// visited or path cell; cells equal to the search's start or end are
// skipped so the markers stay visible.
//
// A Playback is not safe for concurrent use.
type Playback struct {
	base     [][]Mark
	frame    [][]Mark
	steps    []step
	explored int // number of steps that belong to Visited
	next     int
}

// NewPlayback prepares a replay of res over g between start and end.
func NewPlayback(g *gridgraph.Grid, res gridgraph.Result, start, end gridgraph.Position) *Playback {
	base := Base(g)
	if g.InBounds(start) {
		base[start.Row][start.Col] = MarkStart
	}
	if g.InBounds(end) {
		base[end.Row][end.Col] = MarkEnd
	}

	p := &Playback{base: base, steps: make([]step, 0, len(res.Visited)+len(res.Path))}
	skip := func(q gridgraph.Position) bool {
		return q == start || q == end || !g.InBounds(q)
	}
	for _, q := range res.Visited {
		if !skip(q) {
			p.steps = append(p.steps, step{q, MarkVisited})
		}
	}
	p.explored = len(p.steps)
	for _, q := range res.Path {
		if !skip(q) {
			p.steps = append(p.steps, step{q, MarkPath})
		}
	}
	p.Reset()

	return p
}

// Step paints the next cell. It returns false once nothing is left.
func (p *Playback) Step() bool {
	if p.next >= len(p.steps) {
		return false
	}
	s := p.steps[p.next]
	p.frame[s.pos.Row][s.pos.Col] = s.mark
	p.next++

	return true
}

// Done reports whether every step has been painted.
func (p *Playback) Done() bool { return p.next >= len(p.steps) }

// Reset rewinds to the bare grid.
func (p *Playback) Reset() {
	p.frame = copyFrame(p.base)
	p.next = 0
}

// Len is the total number of steps.
func (p *Playback) Len() int { return len(p.steps) }

// Pos is the number of steps painted so far.
func (p *Playback) Pos() int { return p.next }

// Phase reports whether the replay is painting visited cells, the path, or is finished.
func (p *Playback) Phase() Phase {
	switch {
	case p.next >= len(p.steps):
		return PhaseDone
	case p.next < p.explored:
		return PhaseExploring
	default:
		return PhaseTracing
	}
}

// Frame returns a copy of the current frame.
func (p *Playback) Frame() [][]Mark { return copyFrame(p.frame) }
