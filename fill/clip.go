package fill

import "github.com/katalvlaran/plotcore/graph"

// componentBounds returns [start, end) index ranges of walk, one per
// connected component (i.e. the slices between Disconnector entries).
func componentBounds(walk Walk) [][2]int {
	var bounds [][2]int
	start := 0
	for i, e := range walk {
		if e.Kind == Disconnector {
			bounds = append(bounds, [2]int{start, i})
			start = i + 1
		}
	}
	bounds = append(bounds, [2]int{start, len(walk)})

	return bounds
}

// ClipScaffoldEnds trims, within each component, a leading/trailing run of
// entries whose segment is pure SCAFFOLD (not SCAFFOLD_RUNG, not RUNG),
// stopping as soon as a non-SCAFFOLD segment is reached from the outside
// (pure scaffold trimming, leaving real EDGE/RUNG content untouched).
func ClipScaffoldEnds(g *graph.Graph, walk Walk) Walk {
	var out Walk
	for _, b := range componentBounds(walk) {
		lo, hi := b[0], b[1]
		for hi-lo >= 3 && g.Segments[walk[lo+1].Seg].Value == graph.SCAFFOLD {
			lo += 2
		}
		for hi-lo >= 3 && g.Segments[walk[hi-2].Seg].Value == graph.SCAFFOLD {
			hi -= 2
		}
		if len(out) > 0 {
			out = append(out, Entry{Kind: Disconnector})
		}
		out = append(out, walk[lo:hi]...)
	}

	return out
}

// removeBiggestLoopInRange scans walk[lo:hi] (a node-delimited range, lo
// and hi both referring to even/node positions) from both ends inward
// once, recording each node's first-seen walk position; the first
// repeated node identifies the outermost scaffold loop, and the interior
// between its two occurrences is deleted. Returns the possibly-shortened
// walk unchanged if no loop is found.
func removeBiggestLoopInRange(walk Walk, lo, hi int) Walk {
	seen := make(map[int]int, (hi-lo)/2+1)
	foundLo, foundHi := -1, -1

	l, h := lo, hi
	for l <= h {
		nid := walk[l].Node
		if pos, ok := seen[nid]; ok {
			foundLo, foundHi = pos, l

			break
		}
		seen[nid] = l

		if l != h {
			nid2 := walk[h].Node
			if pos, ok := seen[nid2]; ok {
				foundLo, foundHi = pos, h

				break
			}
			seen[nid2] = h
		}
		l += 2
		h -= 2
	}

	if foundLo == -1 {
		return walk
	}

	shrunk := make(Walk, 0, len(walk)-(foundHi-foundLo))
	shrunk = append(shrunk, walk[:foundLo+1]...)
	shrunk = append(shrunk, walk[foundHi+1:]...)

	return shrunk
}

// ClipScaffoldLoops splits each component into maximal sub-ranges
// delimited by RUNG segments (or component boundaries) and collapses any
// scaffold loop found within each range.
// Ranges are processed back-to-front within a component so that index
// shifts from an earlier collapse never invalidate a later range's
// bounds.
func ClipScaffoldLoops(g *graph.Graph, walk Walk) Walk {
	for _, b := range componentBounds(walk) {
		lo, hi := b[0], b[1]

		var delimiters []int // node-position indices: lo-1 style boundaries
		delimiters = append(delimiters, lo)
		for i := lo + 1; i < hi; i += 2 {
			if g.Segments[walk[i].Seg].Value == graph.RUNG {
				delimiters = append(delimiters, i-1, i+1)
			}
		}
		delimiters = append(delimiters, hi-1) // hi is exclusive; hi-1 is the component's last node

		for i := len(delimiters) - 2; i >= 0; i -= 2 {
			rLo, rHi := delimiters[i], delimiters[i+1]
			if rHi <= rLo {
				continue
			}
			walk = removeBiggestLoopInRange(walk, rLo, rHi)
		}
	}

	return walk
}

// BuildWalk runs MakeWalk, ClipScaffoldEnds, and ClipScaffoldLoops in
// sequence and appends the result to points — the full walk-construction
// pipeline.
func BuildWalk(g *graph.Graph, points []Entry) []Entry {
	w := MakeWalk(g)
	w = ClipScaffoldEnds(g, w)
	w = ClipScaffoldLoops(g, w)

	return append(points, w...)
}
