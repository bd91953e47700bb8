// Package geom is the thin contract between plotcore's planning algorithms
// and the outside world's 2D geometry representation.
//
// plotcore never implements curve math, transforms, or SVG parsing itself —
// those live in the host application and in github.com/paulmach/orb, which
// supplies Point, LineString, and Bound. This package adapts that surface
// into the small, stable shapes the planning core actually needs: a value
// Point, a Subpath with parametric sampling and a bounding box, and a Path
// as an ordered list of Subpaths.
//
// Nothing here does curve-to-curve intersection or exact geometry; all
// containment and crossing tests performed by sibling packages operate on
// polygonal approximations sampled from a Subpath.
package geom
