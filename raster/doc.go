// Package raster implements the raster plotter: a lazy, restartable
// motion generator that scans a pixel grid in a bidirectional or
// unidirectional pattern along either axis from any of four starting
// corners, skipping blank runs and widening each scanline by an overscan
// pad.
//
// The scan engine is a reusable, single-consumer, non-concurrency-safe
// walk over a bounding region row by row, emitting only the non-blank
// portion of each row — a pull-based pixel generator driven by an
// external PixelAccessor rather than an edge list.
package raster
