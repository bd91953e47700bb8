// Package graph implements the planar graph structure shared by the
// Eulerian area-fill builder and the graph walker.
//
// A Graph owns every Node and Segment in index-stable arenas rather than
// through pointer cycles: Segment.A/B and Node's connection list are all
// indices into the Graph's own slices. This breaks the Node<->Segment
// cyclic reference: Detach tombstones a segment rather than swap-removing
// it, so every other segment's index stays stable, and drops it from both
// endpoints' connection lists.
//
// Nothing here is concurrency-safe: a Graph is built and walked by a single
// planning run on a single goroutine.
package graph
