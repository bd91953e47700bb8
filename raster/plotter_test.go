package raster_test

import (
	"testing"

	"github.com/katalvlaran/plotcore/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type grid struct {
	w, h int
	data []int
}

func newGrid(w, h int, fill int) *grid {
	data := make([]int, w*h)
	for i := range data {
		data[i] = fill
	}

	return &grid{w: w, h: h, data: data}
}

func (g *grid) set(x, y, v int) { g.data[y*g.w+x] = v }

func (g *grid) At(x, y int) int {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0
	}

	return g.data[y*g.w+x]
}

// TestPlot_CenterPixelSkip covers a 3x3 image with only
// the center pixel set. First non-zero emission is (1,1,1); total
// emissions stay at or below 9.
func TestPlot_CenterPixelSkip(t *testing.T) {
	g := newGrid(3, 3, 0)
	g.set(1, 1, 1)

	p := raster.NewPlotter(raster.Config{
		Data: g, Width: 3, Height: 3,
		SkipPixel: 0,
		Step:      1,
	})
	motions := p.All()
	require.LessOrEqual(t, len(motions), 9)

	var firstNonZero *raster.Motion
	for i := range motions {
		if motions[i].Emit != 0 {
			firstNonZero = &motions[i]

			break
		}
	}
	require.NotNil(t, firstNonZero)
	assert.Equal(t, 1.0, firstNonZero.SceneX)
	assert.Equal(t, 1.0, firstNonZero.SceneY)
	assert.Equal(t, 1, firstNonZero.Emit)
}

// TestPlot_OverscanWidensLine covers a 4x1 all-ones
// image with overscan 2 yields x spanning at least [-2, 5].
func TestPlot_OverscanWidensLine(t *testing.T) {
	g := newGrid(4, 1, 1)

	p := raster.NewPlotter(raster.Config{
		Data: g, Width: 4, Height: 1,
		SkipPixel: 0,
		Step:      1,
		Overscan:  raster.FixedOverscan(2),
	})
	motions := p.All()
	require.NotEmpty(t, motions)

	minX, maxX := motions[0].SceneX, motions[0].SceneX
	for _, m := range motions {
		if m.SceneX < minX {
			minX = m.SceneX
		}
		if m.SceneX > maxX {
			maxX = m.SceneX
		}
	}
	assert.LessOrEqual(t, minX, -2.0)
	assert.GreaterOrEqual(t, maxX, 5.0)
}

func TestPlot_BlankImageYieldsOnlyMoves(t *testing.T) {
	g := newGrid(2, 2, 0)

	p := raster.NewPlotter(raster.Config{
		Data: g, Width: 2, Height: 2,
		SkipPixel: 0,
		Step:      1,
	})
	for _, m := range p.All() {
		assert.Equal(t, 0, m.Emit)
	}
}

func TestPlot_EveryNonSkipPixelEmittedAtLeastOnce(t *testing.T) {
	g := newGrid(5, 4, 0)
	g.set(2, 1, 7)
	g.set(4, 3, 9)

	p := raster.NewPlotter(raster.Config{
		Data: g, Width: 5, Height: 4,
		SkipPixel: 0,
		Step:      1,
	})

	seen := map[[2]int]bool{}
	for _, m := range p.All() {
		if m.Emit != 0 {
			seen[[2]int{int(m.SceneX), int(m.SceneY)}] = true
		}
	}
	assert.True(t, seen[[2]int{2, 1}])
	assert.True(t, seen[[2]int{4, 3}])
}

func TestPlot_UnidirectionalReturnSweepDefaultsToNoEmission(t *testing.T) {
	g := newGrid(3, 1, 5)

	p := raster.NewPlotter(raster.Config{
		Data: g, Width: 3, Height: 1,
		SkipPixel: 0,
		Step:      1,
		Traversal: raster.Unidirectional,
	})
	motions := p.All()

	nonZero := 0
	for _, m := range motions {
		if m.Emit != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 3, nonZero, "forward sweep emits every pixel once; return sweep emits nothing by default")
}
