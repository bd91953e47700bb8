package cutplan

import (
	"github.com/katalvlaran/plotcore/geom"
	"github.com/katalvlaran/plotcore/monotone"
)

// containmentSamples is the parametric sample count used for both the
// outer polygon approximation and the inner point probes.
const containmentSamples = 101

// Containment caches one monotonizer per outer subpath across repeated
// IsInside calls within a single planning run, keyed by subpath identity
// in a side table rather than stamped onto the path object itself, so a
// subpath's cached monotonizer never leaks into an unrelated copy of it.
type Containment struct {
	cache map[int]*monotone.Monotonizer
}

// NewContainment returns an empty containment cache. A Containment should
// not outlive the set of subpath IDs it was built against, since entries
// are never invalidated.
func NewContainment() *Containment {
	return &Containment{cache: make(map[int]*monotone.Monotonizer)}
}

// IsInside reports whether inner is wholly contained in outer: bbox
// domination first rejects most pairs cheaply, then same-object
// self-exclusion, then a 101-point polygonal containment test against a
// monotonizer built once per outer subpath.
//
// Non-symmetric: IsInside(A, B) does not imply ¬IsInside(B, A) is checked
// here, only that both cannot simultaneously hold for distinct,
// non-degenerate boxes.
func (c *Containment) IsInside(inner, outer geom.Subpath) bool {
	innerBox, ok := inner.BBox()
	if !ok {
		return false
	}
	outerBox, ok := outer.BBox()
	if !ok {
		return false
	}
	if !innerBox.Dominates(outerBox) {
		return false
	}
	if inner.ID == outer.ID && innerBox.Equal(outerBox) {
		return false // an object is not inside itself
	}

	m := c.monotonizerFor(outer, outerBox)
	for _, p := range inner.SamplePolygon(containmentSamples) {
		if !m.IsPointInside(p.X, p.Y) {
			return false
		}
	}

	return true
}

func (c *Containment) monotonizerFor(outer geom.Subpath, box geom.Box) *monotone.Monotonizer {
	if m, ok := c.cache[outer.ID]; ok {
		return m
	}

	m := monotone.New(box.MinY, box.MaxY)
	m.AddClosedCluster(outer.SamplePolygon(containmentSamples), 0)
	c.cache[outer.ID] = m

	return m
}
