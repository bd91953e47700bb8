package fill

import (
	"sort"

	"github.com/katalvlaran/plotcore/geom"
	"github.com/katalvlaran/plotcore/graph"
	"github.com/katalvlaran/plotcore/monotone"
)

type outlineRef struct {
	g   *graph.Graph
	seg int
}

// MonotoneFill builds horizontal rung crossings for every outline in
// outlines into dest, at the given pitch, between low and high.
//
// Each outline's EDGE segments are swept by a shared monotonizer; every
// pitch-spaced scanline's active segments are paired left/right and
// joined by a new RUNG node pair in dest, and each outline segment
// accumulates the bisector nodes crossing it. After the sweep, each
// outline is re-threaded through its own bisectors in ring order, closing
// back to its first bisector, to give dest a continuous fill boundary.
func MonotoneFill(dest *graph.Graph, outlines []*graph.Graph, low, high, pitch float64) {
	m := monotone.New(low, high)

	var refs []outlineRef
	for _, og := range outlines {
		for _, segIdx := range og.Links() {
			s := og.Segments[segIdx]
			if s.Value != graph.EDGE {
				continue
			}
			p1 := og.Nodes[s.A].Point
			p2 := og.Nodes[s.B].Point
			ref := len(refs)
			refs = append(refs, outlineRef{g: og, seg: segIdx})
			m.AddCluster([]geom.Point{p1, p2}, ref)
		}
	}

	ordinal := 0
	for {
		y := m.NextIntercept(pitch)
		if y > high {
			break
		}
		ordinal++

		actives := m.Actives()
		for i := 0; i+1 < len(actives); i += 2 {
			a, b := actives[i], actives[i+1]
			left := m.Intercept(a, y)
			right := m.Intercept(b, y)

			n1 := dest.AddNode(geom.NewPoint(left, y))
			n2 := dest.AddNode(geom.NewPoint(right, y))
			_, _ = dest.Link(n1, n2, graph.RUNG, ordinal, true)

			refA, refB := refs[m.Segment(a).Ref], refs[m.Segment(b).Ref]
			refA.g.Segments[refA.seg].Bisectors = append(refA.g.Segments[refA.seg].Bisectors, n1)
			refB.g.Segments[refB.seg].Bisectors = append(refB.g.Segments[refB.seg].Bisectors, n2)
		}
	}

	for _, og := range outlines {
		threadOutline(dest, og)
	}
}

// threadOutline walks og's EDGE segments in original ring order, sorting
// each one's accumulated bisectors by distance from its `a` endpoint, and
// links consecutive bisectors (across the whole outline, not just within
// one source segment) with EDGE segments in dest. The ring closes by
// joining the last bisector back to the first.
func threadOutline(dest *graph.Graph, og *graph.Graph) {
	segs := make([]int, 0, len(og.Links()))
	for _, segIdx := range og.Links() {
		if og.Segments[segIdx].Value == graph.EDGE {
			segs = append(segs, segIdx)
		}
	}
	sort.SliceStable(segs, func(i, j int) bool { return og.Segments[segs[i]].Index < og.Segments[segs[j]].Index })

	itr := 0
	ringStart, prev := -1, -1
	for _, segIdx := range segs {
		s := &og.Segments[segIdx]
		if len(s.Bisectors) == 0 {
			continue
		}
		aPt := og.Nodes[s.A].Point
		sort.SliceStable(s.Bisectors, func(i, j int) bool {
			return aPt.Distance(dest.Nodes[s.Bisectors[i]].Point) < aPt.Distance(dest.Nodes[s.Bisectors[j]].Point)
		})

		for _, b := range s.Bisectors {
			if ringStart == -1 {
				ringStart = b
			}
			if prev != -1 {
				_, _ = dest.Link(prev, b, graph.EDGE, itr, true)
				itr++
			}
			prev = b
		}
	}
	if ringStart != -1 && prev != -1 && prev != ringStart {
		_, _ = dest.Link(prev, ringStart, graph.EDGE, itr, true)
	}
}
