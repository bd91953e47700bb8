package monotone

import (
	"sort"

	"github.com/katalvlaran/plotcore/geom"
)

// Segment is a non-owning sweep-line entry: the monotonizer only needs a
// segment's two endpoints (ordered low/high by Y) plus an opaque Ref the
// caller can use to correlate back to its own outline-edge representation.
// Monotonizer holds non-owning references to outline segments.
type Segment struct {
	Low, High geom.Point
	Ref       int
}

type clusterEntry struct {
	y   float64
	seg int
}

// Monotonizer is the sweep-line structure: it tracks which
// segments are "active" (crossing) at a moving scan coordinate `current`
// and answers point-in-polygon queries against that active set.
type Monotonizer struct {
	segments []Segment
	clusters []clusterEntry

	actives []int // segment indices currently crossing `current`

	current  float64
	validLow float64
	validHi  float64

	// idx is the count of clusters already folded into `actives`; the
	// bracket [clusterLow, clusterHigh] it implies is recomputed lazily.
	idx int

	dirtyClusterSort bool
	dirtyActiveSort  bool
}

// New returns a Monotonizer whose valid scan range is [low, high] and whose
// starting scan coordinate is low, matching the monotone-fill builder's
// construction contract.
func New(low, high float64) *Monotonizer {
	return &Monotonizer{
		current:  low,
		validLow: low,
		validHi:  high,
	}
}

// AddCluster registers every consecutive edge of path (NOT auto-closed —
// pass a closed point list including the wraparound edge if the source
// outline is closed) as a sweep segment. Edges wholly outside the valid
// range are skipped entirely. A low end emits a cluster entry only when it
// lies above the valid lower bound, and a high end only when it lies below
// the valid upper bound, so a segment reaching a bound is never toggled at
// that end and stays active there.
func (m *Monotonizer) AddCluster(path []geom.Point, ref int) {
	for i := 1; i < len(path); i++ {
		m.addEdge(path[i-1], path[i], ref)
	}
}

// AddClosedCluster is AddCluster plus the implicit closing edge from the
// last point back to the first.
func (m *Monotonizer) AddClosedCluster(path []geom.Point, ref int) {
	m.AddCluster(path, ref)
	if len(path) > 1 {
		m.addEdge(path[len(path)-1], path[0], ref)
	}
}

func (m *Monotonizer) addEdge(p1, p2 geom.Point, ref int) {
	lo, hi := p1, p2
	if lo.Y > hi.Y {
		lo, hi = hi, lo
	}
	if lo.Y == hi.Y {
		return // horizontal edges never cross a scanline; Intercept's slope is undefined for them
	}
	if hi.Y < m.validLow || lo.Y > m.validHi {
		return // wholly outside the valid range
	}

	segIdx := len(m.segments)
	m.segments = append(m.segments, Segment{Low: lo, High: hi, Ref: ref})

	if lo.Y > m.validLow {
		m.clusters = append(m.clusters, clusterEntry{y: lo.Y, seg: segIdx})
	}
	if hi.Y < m.validHi {
		m.clusters = append(m.clusters, clusterEntry{y: hi.Y, seg: segIdx})
	}
	m.dirtyClusterSort = true

	if lo.Y <= m.current && m.current <= hi.Y {
		m.actives = append(m.actives, segIdx)
		m.dirtyActiveSort = true
	}
}

// sortClusters guarantees `clusters` is ascending by y and repositions
// `idx`/`actives` to stay consistent with `current`.
func (m *Monotonizer) sortClusters() {
	if !m.dirtyClusterSort {
		return
	}
	sort.SliceStable(m.clusters, func(i, j int) bool { return m.clusters[i].y < m.clusters[j].y })

	// Recompute idx and actives from scratch: a resort can interleave
	// newly appended events anywhere in the timeline, so incremental
	// toggling from the old idx would be unsound. A full rebuild by
	// straddle test keeps the active-set invariant exact.
	m.idx = 0
	for m.idx < len(m.clusters) && m.clusters[m.idx].y <= m.current {
		m.idx++
	}
	m.actives = m.actives[:0]
	for i, s := range m.segments {
		if s.Low.Y <= m.current && m.current <= s.High.Y {
			m.actives = append(m.actives, i)
		}
	}
	m.dirtyClusterSort = false
	m.dirtyActiveSort = true
}

// toggle flips segment idx's membership in `actives`.
func (m *Monotonizer) toggle(seg int) {
	for i, a := range m.actives {
		if a == seg {
			m.actives = append(m.actives[:i], m.actives[i+1:]...)
			m.dirtyActiveSort = true

			return
		}
	}
	m.actives = append(m.actives, seg)
	m.dirtyActiveSort = true
}

// Scanline advances the scan coordinate to y, toggling every segment whose
// cluster entry is crossed along the way. A segment enters `actives` once y
// reaches its low end and leaves once y reaches its high end, so at a
// vertex shared by two segments only the one above it is active. A low end
// on the valid lower bound and a high end on the valid upper bound have no
// cluster entry and are never toggled.
func (m *Monotonizer) Scanline(y float64) {
	m.sortClusters()

	for m.idx < len(m.clusters) && m.clusters[m.idx].y <= y {
		m.toggle(m.clusters[m.idx].seg)
		m.idx++
	}
	for m.idx > 0 && m.clusters[m.idx-1].y > y {
		m.idx--
		m.toggle(m.clusters[m.idx].seg)
	}
	m.current = y
}

// NextIntercept advances the scan coordinate by distance and returns the
// new coordinate, matching the monotone fill loop's `current += distance`
// step.
func (m *Monotonizer) NextIntercept(distance float64) float64 {
	m.Scanline(m.current + distance)

	return m.current
}

// Current returns the current scan coordinate.
func (m *Monotonizer) Current() float64 { return m.current }

// sortActives orders `actives` by x-intercept at `current`.
func (m *Monotonizer) sortActives() {
	if !m.dirtyActiveSort {
		return
	}
	sort.SliceStable(m.actives, func(i, j int) bool {
		return m.Intercept(m.actives[i], m.current) < m.Intercept(m.actives[j], m.current)
	})
	m.dirtyActiveSort = false
}

// Actives returns the segment indices currently crossing `current`,
// ordered by ascending x-intercept.
func (m *Monotonizer) Actives() []int {
	m.sortActives()

	return m.actives
}

// Segment returns the sweep segment at index idx.
func (m *Monotonizer) Segment(idx int) Segment { return m.segments[idx] }

// Intercept returns the x coordinate at which segment seg crosses y:
// x = (y - b) / m where m is the segment's slope and b its y-intercept;
// a vertical segment (infinite slope) returns its
// constant x.
func (m *Monotonizer) Intercept(seg int, y float64) float64 {
	s := m.segments[seg]
	if s.High.X == s.Low.X {
		return s.Low.X
	}
	slope := (s.High.Y - s.Low.Y) / (s.High.X - s.Low.X)
	b := s.Low.Y - slope*s.Low.X

	return (y - b) / slope
}

// IsPointInside advances the scanline to y, sorts the active set, and
// tests whether x falls within any (actives[2i], actives[2i+1]) pair's
// x-intercept interval at y.
func (m *Monotonizer) IsPointInside(x, y float64) bool {
	if y < m.validLow || y > m.validHi {
		return false
	}
	m.Scanline(y)
	actives := m.Actives()

	for i := 0; i+1 < len(actives); i += 2 {
		left := m.Intercept(actives[i], y)
		right := m.Intercept(actives[i+1], y)
		if left > right {
			left, right = right, left
		}
		if x >= left && x <= right {
			return true
		}
	}

	return false
}

// ValidRange returns the monotonizer's configured [low, high] scan bounds.
func (m *Monotonizer) ValidRange() (float64, float64) { return m.validLow, m.validHi }
