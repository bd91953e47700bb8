package cutplan

import (
	"github.com/katalvlaran/plotcore/geom"
	"github.com/katalvlaran/plotcore/internal/twoopt"
)

// BoundingBox unions the bounding boxes of path's subpaths; ok is false
// iff no subpath yielded a box.
func BoundingBox(path geom.Path) (geom.Box, bool) {
	return geom.BoundingBox(path.AsSubpaths())
}

// OptimizeCutInside reorders path's subpaths so containers tend to follow
// their contents: for every pair (j < k) with subpaths[k] inside
// subpaths[j], the two are swapped.
//
// This is a single O(n²) pass, not a transitive sort — it may leave a
// triple-nested family only partially ordered, and that is intentional,
// preserved here rather than fixed.
func OptimizeCutInside(path geom.Path) geom.Path {
	subs := append([]geom.Subpath(nil), path.AsSubpaths()...)
	c := NewContainment()

	for j := 0; j < len(subs); j++ {
		for k := j + 1; k < len(subs); k++ {
			if c.IsInside(subs[k], subs[j]) {
				subs[j], subs[k] = subs[k], subs[j]
			}
		}
	}

	return geom.Path{Subpaths: subs}
}

// subpathBlock adapts a geom.Subpath to the shared twoopt.Block contract.
type subpathBlock struct {
	sub geom.Subpath
}

func (b subpathBlock) Start() (geom.Point, bool) { return b.sub.Start() }
func (b subpathBlock) End() (geom.Point, bool)   { return b.sub.End() }

// Reversed un-implicit-closes the subpath before flipping its direction:
// direct_close() must run before reversing, or the closing segment would
// reverse in the wrong place.
func (b subpathBlock) Reversed() twoopt.Block {
	return subpathBlock{sub: b.sub.DirectClose().Reverse()}
}

// OptimizeTravel reorders and reverses path's subpaths by first-improvement
// 2-opt to reduce the total jump distance between consecutive subpath
// endpoints, reusing the engine shared with the graph walker's component
// reordering.
func OptimizeTravel(path geom.Path) geom.Path {
	subs := path.AsSubpaths()
	blocks := make([]twoopt.Block, len(subs))
	for i, s := range subs {
		blocks[i] = subpathBlock{sub: s}
	}
	blocks = twoopt.Run(blocks)

	out := make([]geom.Subpath, len(blocks))
	for i, b := range blocks {
		out[i] = b.(subpathBlock).sub
	}

	return geom.Path{Subpaths: out}
}

// constraint records that subpath inner was found inside subpath outer,
// identified by subpath ID.
type constraint struct {
	inner, outer int
}

// OptimizeGeneral combines containment ordering with constrained travel
// optimization: it first records every containment relation as an ordered
// (inner, outer) constraint, performs one inside-reorder pass, then runs
// 2-opt that refuses to reverse any range holding a constraint's inner
// before its outer, since the reversal would put the outer first.
func OptimizeGeneral(path geom.Path) geom.Path {
	subs := append([]geom.Subpath(nil), path.AsSubpaths()...)
	c := NewContainment()

	var constraints []constraint
	for j := range subs {
		for k := range subs {
			if j == k {
				continue
			}
			if c.IsInside(subs[j], subs[k]) {
				constraints = append(constraints, constraint{inner: subs[j].ID, outer: subs[k].ID})
			}
		}
	}

	for j := 0; j < len(subs); j++ {
		for k := j + 1; k < len(subs); k++ {
			if c.IsInside(subs[k], subs[j]) {
				subs[j], subs[k] = subs[k], subs[j]
			}
		}
	}

	runConstrainedTwoOpt(subs, constraints)

	return geom.Path{Subpaths: subs}
}

func runConstrainedTwoOpt(subs []geom.Subpath, constraints []constraint) {
	n := len(subs)
	if n < 2 {
		return
	}

	improved := true
	for improved {
		improved = false
		for j := 0; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if isOrderConstrained(subs, j, k, constraints) {
					continue
				}
				if subpathDelta(subs, j, k) < 0 {
					crossSubpaths(subs, j, k)
					improved = true
				}
			}
		}
	}
}

// isOrderConstrained reports whether subs[j:k+1] contains, in forward
// order, both ends of any recorded constraint — reversing that range would
// invert it.
func isOrderConstrained(subs []geom.Subpath, j, k int, constraints []constraint) bool {
	pos := make(map[int]int, k-j+1)
	for i := j; i <= k; i++ {
		pos[subs[i].ID] = i
	}
	for _, c := range constraints {
		innerPos, ok1 := pos[c.inner]
		outerPos, ok2 := pos[c.outer]
		if ok1 && ok2 && innerPos < outerPos {
			return true
		}
	}

	return false
}

func subpathDelta(subs []geom.Subpath, j, k int) float64 {
	n := len(subs)

	var oldEntry, oldExit, newEntry, newExit float64
	if j > 0 {
		prevEnd, ok1 := subs[j-1].End()
		jStart, ok2 := subs[j].Start()
		if ok1 && ok2 {
			oldEntry = prevEnd.Distance(jStart)
		}
		kEnd, ok3 := subs[k].End()
		if ok1 && ok3 {
			newEntry = prevEnd.Distance(kEnd)
		}
	}
	if k < n-1 {
		kEnd, ok1 := subs[k].End()
		nextStart, ok2 := subs[k+1].Start()
		if ok1 && ok2 {
			oldExit = kEnd.Distance(nextStart)
		}
		jStart, ok3 := subs[j].Start()
		if ok3 && ok2 {
			newExit = jStart.Distance(nextStart)
		}
	}

	return (newEntry + newExit) - (oldEntry + oldExit)
}

// crossSubpaths reverses both the order and, via DirectClose+Reverse, the
// direction of each subpath in subs[j:k+1].
func crossSubpaths(subs []geom.Subpath, j, k int) {
	sub := subs[j : k+1]
	for i, l := 0, len(sub)-1; i < l; i, l = i+1, l-1 {
		sub[i], sub[l] = sub[l], sub[i]
	}
	for i := range sub {
		sub[i] = sub[i].DirectClose().Reverse()
	}
}
