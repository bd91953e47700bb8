package monotone_test

import (
	"testing"

	"github.com/katalvlaran/plotcore/geom"
	"github.com/katalvlaran/plotcore/monotone"
	"github.com/stretchr/testify/assert"
)

func unitSquare() []geom.Point {
	return []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(0, 1),
	}
}

// TestIsPointInside_UnitSquare checks containment against a unit square.
func TestIsPointInside_UnitSquare(t *testing.T) {
	m := monotone.New(0, 1)
	m.AddClosedCluster(unitSquare(), 0)

	assert.True(t, m.IsPointInside(0.5, 0.5))
	assert.False(t, m.IsPointInside(1.5, 0.5))
	assert.False(t, m.IsPointInside(0.5, 2.0))
}

func TestScanline_ActivesContainOnlyStraddlingSegments(t *testing.T) {
	m := monotone.New(0, 10)
	m.AddClosedCluster([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	}, 0)

	m.Scanline(5)
	for _, segIdx := range m.Actives() {
		s := m.Segment(segIdx)
		assert.LessOrEqual(t, s.Low.Y, 5.0)
		assert.GreaterOrEqual(t, s.High.Y, 5.0)
	}
	// the two vertical edges straddle y=5; the two horizontal edges do not.
	assert.Len(t, m.Actives(), 2)
}

func TestScanline_MonotoneSweepUpward(t *testing.T) {
	m := monotone.New(0, 10)
	m.AddClosedCluster([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	}, 0)

	for y := 0.0; y <= 10; y += 2 {
		m.Scanline(y)
		if y == 0 || y == 10 {
			continue // exactly at a horizontal boundary, degenerate case
		}
		assert.Len(t, m.Actives(), 2)
	}
}

func TestIntercept_VerticalSegmentReturnsConstantX(t *testing.T) {
	m := monotone.New(0, 10)
	m.AddCluster([]geom.Point{geom.NewPoint(3, 0), geom.NewPoint(3, 10)}, 0)

	assert.Equal(t, 3.0, m.Intercept(0, 5))
}
