package raster

import "math"

// PixelAccessor is indexable by integer (x, y); out-of-bounds access is
// caught by the plotter itself and treated as a skip, so implementations
// need not guard their own bounds.
type PixelAccessor interface {
	At(x, y int) int
}

// Filter is a pure function from a raw pixel value to the value the
// plotter emits.
type Filter func(pixel int) int

// Flag is the traversal flag word. Its bit layout must be preserved for
// compatibility with external callers:
//
//	bit 0 (value 1): axis (0 = X, 1 = Y)
//	bit 1 (value 2): vertical edge (0 = top, 1 = bottom)
//	bit 2 (value 4): horizontal edge (0 = left, 1 = right)
//	bit 3 (value 8): direction mode (0 = bidirectional, 1 = unidirectional)
type Flag int

const (
	// YAxis sweeps along the Y axis instead of the default X axis.
	YAxis Flag = 1 << 0
	// Bottom starts from the bottom edge instead of the default top.
	Bottom Flag = 1 << 1
	// Right starts from the right edge instead of the default left.
	Right Flag = 1 << 2
	// Unidirectional restarts every line from the same side instead of the
	// default bidirectional back-and-forth sweep.
	Unidirectional Flag = 1 << 3
)

// Overscan converts a sweep-axis dimension (in pixels) to a padding amount
// in pixels, added to each outer side of a scanline: either overscan/step
// rounded to the nearest integer pixel count, or a percentage of the
// dimension along the sweep axis.
type Overscan interface {
	Pixels(sweepDimension int, step float64) int
}

// FixedOverscan is an overscan expressed directly in physical units, to be
// divided by step to get a pixel count.
type FixedOverscan float64

// Pixels implements Overscan.
func (f FixedOverscan) Pixels(_ int, step float64) int {
	if step == 0 {
		return 0
	}

	return int(math.Round(float64(f) / step))
}

// PercentOverscan is an overscan expressed as a fraction of the sweep-axis
// dimension (e.g. 0.1 for 10%).
type PercentOverscan float64

// Pixels implements Overscan.
func (p PercentOverscan) Pixels(sweepDimension int, _ float64) int {
	return int(math.Round(float64(p) * float64(sweepDimension)))
}

// Config is the immutable configuration of a Plotter.
type Config struct {
	Data   PixelAccessor
	Width  int
	Height int

	Traversal Flag
	SkipPixel int
	Overscan  Overscan

	OffsetX, OffsetY float64
	Step             float64

	ForwardFilter Filter
	AltFilter     Filter
}

func (c Config) filter(pixel int) int {
	f := c.ForwardFilter
	if f == nil {
		f = func(p int) int { return p }
	}

	return f(pixel)
}

// altFilter is applied on a unidirectional return sweep; with no AltFilter
// configured it never emits, so the return sweep produces no output by
// default.
func (c Config) altFilter(pixel int) int {
	if c.AltFilter == nil {
		return 0
	}

	return c.AltFilter(pixel)
}

// at returns the pixel value at (x, y), treating out-of-range coordinates
// as SkipPixel.
func (c Config) at(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return c.SkipPixel
	}

	return c.Data.At(x, y)
}

// Motion is one yielded plot event: SceneX = OffsetX + x*Step,
// SceneY = OffsetY + y*Step.
type Motion struct {
	SceneX, SceneY float64
	Emit           int
}
