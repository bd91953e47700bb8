package fill

import (
	"github.com/katalvlaran/plotcore/geom"
	"github.com/katalvlaran/plotcore/graph"
	"github.com/katalvlaran/plotcore/internal/twoopt"
)

// componentBlock adapts one disconnector-delimited stretch of a Walk to
// the shared twoopt.Block contract, letting the walker reorder/reverse
// entire components to shrink total inter-component travel exactly the
// way the cut planner reorders subpaths.
type componentBlock struct {
	entries Walk
	start   geom.Point
	end     geom.Point
	ok      bool
}

func newComponentBlock(g *graph.Graph, run Walk) componentBlock {
	cb := componentBlock{entries: run}
	nodes := run.Nodes()
	if len(nodes) > 0 {
		cb.start = g.Nodes[nodes[0]].Point
		cb.end = g.Nodes[nodes[len(nodes)-1]].Point
		cb.ok = true
	}

	return cb
}

func (c componentBlock) Start() (geom.Point, bool) { return c.start, c.ok }
func (c componentBlock) End() (geom.Point, bool)   { return c.end, c.ok }

// Reversed physically reverses the entry order, committing a candidate
// flip by physically reversing the slice once it is accepted.
func (c componentBlock) Reversed() twoopt.Block {
	n := len(c.entries)
	rev := make(Walk, n)
	for i, e := range c.entries {
		rev[n-1-i] = e
	}

	return componentBlock{entries: rev, start: c.end, end: c.start, ok: c.ok}
}

// GetValue scores a walk by the negative sum of squared edge lengths:
// shorter total length scores higher.
func GetValue(g *graph.Graph, walk Walk) float64 {
	var v float64
	for _, e := range walk {
		if e.Kind != SegEntry {
			continue
		}
		s := g.Segments[e.Seg]
		d := g.Nodes[s.A].Point.Distance(g.Nodes[s.B].Point)
		v -= d * d
	}

	return v
}

// TwoOpt reorders and reverses whole connected components of walk to
// minimize total inter-component travel distance; a reversal only
// traverses a component's segments in the opposite order: edge lengths
// inside a completed Eulerian component never change, only which
// endpoint faces which neighbor does.
func TwoOpt(g *graph.Graph, walk Walk) Walk {
	runs := componentRuns(walk)
	if len(runs) < 2 {
		return walk
	}

	blocks := make([]twoopt.Block, len(runs))
	for i, run := range runs {
		blocks[i] = newComponentBlock(g, run)
	}
	blocks = twoopt.Run(blocks)

	out := make(Walk, 0, len(walk))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, Entry{Kind: Disconnector})
		}
		out = append(out, b.(componentBlock).entries...)
	}

	return out
}

// componentRuns splits walk into its disconnector-delimited sub-walks.
func componentRuns(walk Walk) []Walk {
	var runs []Walk
	for _, b := range componentBounds(walk) {
		runs = append(runs, walk[b[0]:b[1]])
	}

	return runs
}
