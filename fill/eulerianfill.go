package fill

import (
	"math"

	"github.com/katalvlaran/plotcore/geom"
	"github.com/katalvlaran/plotcore/graph"
)

// Config controls the Eulerian fill pipeline.
type Config struct {
	Pitch float64
}

// Option configures a fill Config via the functional-option idiom.
type Option func(*Config)

// WithPitch sets the horizontal scan-line spacing.
func WithPitch(pitch float64) Option {
	return func(c *Config) { c.Pitch = pitch }
}

func defaultConfig() Config {
	return Config{Pitch: 1}
}

// GetFill runs the full fill pipeline: build an outline graph from
// points, build an empty destination graph, run the monotone fill between
// the outline's min/max y, double odd-indexed edges so the combined graph
// is Eulerian, and walk it. The returned Walk is ready for emission.
func GetFill(points []geom.Point, opts ...Option) Walk {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	outline := graph.NewGraph()
	_, _ = outline.AddShape(points, true)

	low, high := yRange(points)

	dest := graph.NewGraph()
	MonotoneFill(dest, []*graph.Graph{outline}, low, high, cfg.Pitch)
	dest.DoubleOddEdge()

	return BuildWalk(dest, nil)
}

func yRange(points []geom.Point) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	low, high := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		low = math.Min(low, p.Y)
		high = math.Max(high, p.Y)
	}

	return low, high
}
