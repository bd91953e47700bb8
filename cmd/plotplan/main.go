// Command plotplan drives the planning core end to end: it reads a closed
// polygon from the command line, runs the Eulerian fill pipeline over it,
// and logs a structured summary of the resulting walk.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/plotcore/fill"
	"github.com/katalvlaran/plotcore/geom"
	"go.uber.org/zap"
)

func main() {
	pitch := flag.Float64("pitch", 1.0, "fill scan-line pitch")
	points := flag.String("points", "", "comma-separated x,y pairs describing a closed polygon, e.g. \"0,0 10,0 10,10 0,10\"")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "plotplan: logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	pts, err := parsePoints(*points)
	if err != nil {
		logger.Error("invalid points", zap.Error(err))
		os.Exit(1)
	}
	if len(pts) < 3 {
		logger.Error("need at least 3 points to form a closed polygon", zap.Int("count", len(pts)))
		os.Exit(1)
	}

	if bbox, ok := geom.NewSubpath(0, pts, true).BBox(); ok {
		bound := bbox.Orb()
		logger.Info("input bounds",
			zap.Float64("min_x", bound.Min[0]), zap.Float64("min_y", bound.Min[1]),
			zap.Float64("max_x", bound.Max[0]), zap.Float64("max_y", bound.Max[1]),
		)
	}

	walk := fill.GetFill(pts, fill.WithPitch(*pitch))

	logger.Info("fill complete",
		zap.Int("input_points", len(pts)),
		zap.Float64("pitch", *pitch),
		zap.Int("walk_nodes", len(walk.Nodes())),
		zap.Int("walk_segments", len(walk.Segments())),
	)
}

// parsePoints splits "x,y x,y ..." into geom.Points.
func parsePoints(s string) ([]geom.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Fields(s)
	pts := make([]geom.Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.SplitN(f, ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("plotplan: malformed point %q", f)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("plotplan: malformed x in %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("plotplan: malformed y in %q: %w", f, err)
		}
		pts = append(pts, geom.NewPoint(x, y))
	}

	return pts, nil
}
