package geom_test

import (
	"testing"

	"github.com/katalvlaran/plotcore/geom"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(id int, closed bool) geom.Subpath {
	return geom.NewSubpath(id, []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	}, closed)
}

func TestSubpath_ClosableAndDirectClose(t *testing.T) {
	closed := square(1, true)
	assert.True(t, closed.Closable())

	opened := closed.DirectClose()
	assert.Len(t, opened.Primitives, len(closed.Primitives)-1)
	assert.False(t, opened.Closable())
}

func TestSubpath_Reverse(t *testing.T) {
	s := square(1, false)
	r := s.Reverse()

	start, _ := s.Start()
	end, _ := s.End()
	rStart, _ := r.Start()
	rEnd, _ := r.End()

	assert.Equal(t, end, rStart)
	assert.Equal(t, start, rEnd)
	assert.Len(t, r.Primitives, len(s.Primitives))
}

func TestSubpath_PointParametric(t *testing.T) {
	s := square(1, false)

	start, err := s.Point(0)
	require.NoError(t, err)
	assert.Equal(t, geom.NewPoint(0, 0), start)

	end, err := s.Point(1)
	require.NoError(t, err)
	assert.Equal(t, geom.NewPoint(0, 10), end)

	mid, err := s.Point(0.5)
	require.NoError(t, err)
	assert.Equal(t, geom.NewPoint(10, 5), mid)
}

func TestSubpath_SamplePolygonCount(t *testing.T) {
	s := square(1, true)
	pts := s.SamplePolygon(101)
	assert.Len(t, pts, 101)
}

func TestBoundingBox_UnionAndEmpty(t *testing.T) {
	box, ok := geom.BoundingBox(nil)
	assert.False(t, ok)
	assert.Zero(t, box)

	a := square(1, true)
	b := geom.NewSubpath(2, []geom.Point{geom.NewPoint(20, 20), geom.NewPoint(30, 30)}, false)
	box, ok = geom.BoundingBox([]geom.Subpath{a, b})
	require.True(t, ok)
	assert.Equal(t, geom.Box{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30}, box)
}

func TestSubpath_OrbRoundTrip(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	s := geom.NewSubpathFromOrb(1, ls, true)
	assert.Len(t, s.Primitives, len(ls))

	start, ok := s.Start()
	require.True(t, ok)
	assert.Equal(t, geom.NewPoint(0, 0), start)

	back := s.DirectClose().LineString()
	assert.Equal(t, ls, back)
}

func TestBox_OrbRoundTrip(t *testing.T) {
	b := geom.Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	orbBound := b.Orb()
	assert.Equal(t, geom.FromOrbBound(orbBound), b)
}

func TestBox_Dominates(t *testing.T) {
	outer := geom.Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	inner := geom.Box{MinX: 25, MinY: 25, MaxX: 75, MaxY: 75}

	assert.True(t, inner.Dominates(outer))
	assert.False(t, outer.Dominates(inner))
}
