package geom

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// ErrEmptySubpath indicates an operation required at least one primitive.
var ErrEmptySubpath = errors.New("geom: subpath has no primitives")

// Point is a value type wrapping orb.Point so callers never import orb
// directly; Euclidean distance is the only operation the planning core
// needs from a point.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point from raw coordinates.
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// FromOrb adapts an orb.Point into a Point.
func FromOrb(p orb.Point) Point { return Point{X: p[0], Y: p[1]} }

// Orb converts back to the orb representation, for callers that need to
// hand a value back to the geometry library.
func (p Point) Orb() orb.Point { return orb.Point{p.X, p.Y} }

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Box is an axis-aligned bounding box, (xmin, ymin, xmax, ymax).
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// FromOrbBound adapts an orb.Bound.
func FromOrbBound(b orb.Bound) Box {
	return Box{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
}

// Orb converts back to the orb representation, for callers (logging,
// serialization) that need to hand a bounding box back to the geometry
// library.
func (a Box) Orb() orb.Bound {
	return orb.Bound{Min: orb.Point{a.MinX, a.MinY}, Max: orb.Point{a.MaxX, a.MaxY}}
}

// Union returns the smallest Box containing both a and b.
func (a Box) Union(b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// Dominates reports whether b fully contains a on all four sides
// (a.MinX >= b.MinX, a.MinY >= b.MinY, a.MaxX <= b.MaxX, a.MaxY <= b.MaxY).
func (a Box) Dominates(b Box) bool {
	return b.MinX <= a.MinX && b.MinY <= a.MinY && b.MaxX >= a.MaxX && b.MaxY >= a.MaxY
}

// Equal reports exact equality of all four bounds.
func (a Box) Equal(b Box) bool {
	return a.MinX == b.MinX && a.MinY == b.MinY && a.MaxX == b.MaxX && a.MaxY == b.MaxY
}

// PrimitiveKind distinguishes a travelling Move from a cutting Line.
type PrimitiveKind int

const (
	// Line is a cutting motion between Start and End.
	Line PrimitiveKind = iota
	// Move is a non-contributing travel ("jump") between Start and End.
	Move
)

// Primitive is one line-like element of a Subpath.
type Primitive struct {
	Kind  PrimitiveKind
	Start Point
	End   Point
}

// Subpath is an ordered, independently addressable sequence of primitives —
// the unit the cut planner reorders and reverses.
//
// ID gives subpaths an identity distinct from their value (two subpaths can
// be geometrically identical but must still be distinguishable for the
// "not inside itself" rule of the cut planner's containment test).
type Subpath struct {
	ID         int
	Primitives []Primitive
}

// NewSubpath builds a closed or open Subpath from an ordered point list.
// When closed is true, an implicit closing Line from the last point back
// to the first is appended, matching the convention used for shape
// construction and reused by the cut planner's polygon sampling.
func NewSubpath(id int, pts []Point, closed bool) Subpath {
	if len(pts) == 0 {
		return Subpath{ID: id}
	}
	prims := make([]Primitive, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		prims = append(prims, Primitive{Kind: Line, Start: pts[i-1], End: pts[i]})
	}
	if closed && len(pts) > 1 {
		prims = append(prims, Primitive{Kind: Line, Start: pts[len(pts)-1], End: pts[0]})
	}

	return Subpath{ID: id, Primitives: prims}
}

// NewSubpathFromOrb builds a Subpath from an orb.LineString, the shape an
// outside caller (an SVG/DXF importer, say) actually hands across the
// package boundary.
func NewSubpathFromOrb(id int, ls orb.LineString, closed bool) Subpath {
	pts := make([]Point, len(ls))
	for i, p := range ls {
		pts[i] = FromOrb(p)
	}

	return NewSubpath(id, pts, closed)
}

// LineString converts the subpath's vertices back to an orb.LineString,
// for callers that hand geometry back out to orb-based tooling.
func (s Subpath) LineString() orb.LineString {
	if len(s.Primitives) == 0 {
		return nil
	}
	ls := make(orb.LineString, 0, len(s.Primitives)+1)
	ls = append(ls, s.Primitives[0].Start.Orb())
	for _, p := range s.Primitives {
		ls = append(ls, p.End.Orb())
	}

	return ls
}

// Start returns the first point of the subpath.
func (s Subpath) Start() (Point, bool) {
	if len(s.Primitives) == 0 {
		return Point{}, false
	}

	return s.Primitives[0].Start, true
}

// End returns the last point of the subpath.
func (s Subpath) End() (Point, bool) {
	if len(s.Primitives) == 0 {
		return Point{}, false
	}

	return s.Primitives[len(s.Primitives)-1].End, true
}

// Closable reports whether the subpath's first start equals its last end.
func (s Subpath) Closable() bool {
	start, ok := s.Start()
	if !ok {
		return false
	}
	end, _ := s.End()

	return start == end
}

// DirectClose un-implicit-closes the subpath: if the last primitive's End
// duplicates the first primitive's Start exactly, that closing primitive is
// dropped. This mirrors the geometry library's direct_close() contract
// and is invoked before reversal so the reversed subpath does not carry a
// phantom closing edge.
func (s Subpath) DirectClose() Subpath {
	if len(s.Primitives) < 2 {
		return s
	}
	start, _ := s.Start()
	last := s.Primitives[len(s.Primitives)-1]
	if last.End != start {
		return s
	}

	out := make([]Primitive, len(s.Primitives)-1)
	copy(out, s.Primitives[:len(s.Primitives)-1])

	return Subpath{ID: s.ID, Primitives: out}
}

// Reverse returns a new Subpath traversing the same geometry in the
// opposite direction: primitive order and each primitive's Start/End are
// both flipped.
func (s Subpath) Reverse() Subpath {
	n := len(s.Primitives)
	out := make([]Primitive, n)
	for i, p := range s.Primitives {
		out[n-1-i] = Primitive{Kind: p.Kind, Start: p.End, End: p.Start}
	}

	return Subpath{ID: s.ID, Primitives: out}
}

// Point samples the subpath parametrically at t ∈ [0,1], walking the
// primitive list by cumulative arc length — the adapter's stand-in for the
// geometry library's point(t) contract.
func (s Subpath) Point(t float64) (Point, error) {
	if len(s.Primitives) == 0 {
		return Point{}, ErrEmptySubpath
	}
	if t <= 0 {
		return s.Primitives[0].Start, nil
	}
	if t >= 1 {
		return s.Primitives[len(s.Primitives)-1].End, nil
	}

	lengths := make([]float64, len(s.Primitives))
	var total float64
	for i, p := range s.Primitives {
		lengths[i] = p.Start.Distance(p.End)
		total += lengths[i]
	}
	if total == 0 {
		return s.Primitives[0].Start, nil
	}

	target := t * total
	var acc float64
	for i, p := range s.Primitives {
		if acc+lengths[i] >= target || i == len(s.Primitives)-1 {
			local := 0.0
			if lengths[i] > 0 {
				local = (target - acc) / lengths[i]
			}

			return Point{
				X: p.Start.X + (p.End.X-p.Start.X)*local,
				Y: p.Start.Y + (p.End.Y-p.Start.Y)*local,
			}, nil
		}
		acc += lengths[i]
	}

	return s.Primitives[len(s.Primitives)-1].End, nil
}

// BBox returns the axis-aligned bounding box of the subpath, or ok=false
// if it has no primitives.
func (s Subpath) BBox() (Box, bool) {
	if len(s.Primitives) == 0 {
		return Box{}, false
	}
	first := s.Primitives[0].Start
	box := Box{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, p := range s.Primitives {
		for _, pt := range [2]Point{p.Start, p.End} {
			box.MinX = math.Min(box.MinX, pt.X)
			box.MinY = math.Min(box.MinY, pt.Y)
			box.MaxX = math.Max(box.MaxX, pt.X)
			box.MaxY = math.Max(box.MaxY, pt.Y)
		}
	}

	return box, true
}

// SamplePolygon samples n equally spaced parametric points, forming a
// closed polygonal approximation used by containment tests.
func (s Subpath) SamplePolygon(n int) []Point {
	if n <= 0 || len(s.Primitives) == 0 {
		return nil
	}
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		if n == 1 {
			t = 0
		}
		p, err := s.Point(t)
		if err != nil {
			continue
		}
		pts = append(pts, p)
	}

	return pts
}

// Path is an ordered sequence of Subpaths — what the cut planner explodes
// and re-concatenates.
type Path struct {
	Subpaths []Subpath
}

// AsSubpaths returns the path's subpaths in order; adapter equivalent of
// the geometry library's as_subpaths().
func (p Path) AsSubpaths() []Subpath { return p.Subpaths }

// BoundingBox unions the bounding boxes of every subpath; returns ok=false
// iff no subpath yields a box.
func BoundingBox(subpaths []Subpath) (Box, bool) {
	var box Box
	found := false
	for _, s := range subpaths {
		b, ok := s.BBox()
		if !ok {
			continue
		}
		if !found {
			box = b
			found = true

			continue
		}
		box = box.Union(b)
	}

	return box, found
}
