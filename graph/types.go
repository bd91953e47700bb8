package graph

import (
	"errors"

	"github.com/katalvlaran/plotcore/geom"
)

// ErrNodeNotFound indicates a segment or query referenced an out-of-range
// node index.
var ErrNodeNotFound = errors.New("graph: node index out of range")

// ErrSegmentNotFound indicates a detach/lookup referenced an out-of-range
// or already-removed segment index.
var ErrSegmentNotFound = errors.New("graph: segment index out of range")

// Value tags a Segment's provenance: an outline edge, a fill rung, or a
// parity-fixing duplicate of either, modeled as a Go tagged enum.
type Value int

const (
	// EDGE is a segment copied from an input outline.
	EDGE Value = iota
	// RUNG is a horizontal scan-line crossing added during fill.
	RUNG
	// SCAFFOLD is a duplicate EDGE added to fix node parity.
	SCAFFOLD
	// SCAFFOLDRUNG is a duplicate RUNG added to fix node parity.
	SCAFFOLDRUNG
)

// String renders the Value for diagnostics.
func (v Value) String() string {
	switch v {
	case EDGE:
		return "EDGE"
	case RUNG:
		return "RUNG"
	case SCAFFOLD:
		return "SCAFFOLD"
	case SCAFFOLDRUNG:
		return "SCAFFOLD_RUNG"
	default:
		return "UNKNOWN"
	}
}

// IsScaffold reports whether v is either scaffold variant.
func (v Value) IsScaffold() bool { return v == SCAFFOLD || v == SCAFFOLDRUNG }

// IsRungLike reports whether v is a RUNG or its scaffold duplicate.
func (v Value) IsRungLike() bool { return v == RUNG || v == SCAFFOLDRUNG }

// Node is a point in the graph plus the indices of segments incident to it.
//
// Visited is scratch state used by the walker (MakeWalk); it is not
// meaningful outside an in-progress walk.
type Node struct {
	Point       geom.Point
	Connections []int // segment indices incident to this node
	Visited     int
}

// Segment is a graph edge: an ordered endpoint pair plus its bookkeeping
// fields (original Index, Value tag, and fill-time scratch state).
type Segment struct {
	A, B      int // node indices
	Index     int // original ordering within its source sequence; meaningful only when HasIndex
	HasIndex  bool
	Value     Value
	Visited   int
	Active    bool
	Bisectors []int // node indices collected during monotone fill, in insertion order

	removed bool
}

// Graph owns nodes and segments in index-stable arenas. Segment indices
// remain stable across detach() (tombstoned, not swap-removed) so that
// Node.Connections entries never need renumbering.
type Graph struct {
	Nodes    []Node
	Segments []Segment
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a new Node at p and returns its index.
func (g *Graph) AddNode(p geom.Point) int {
	g.Nodes = append(g.Nodes, Node{Point: p})

	return len(g.Nodes) - 1
}

// Link creates a new Segment between node indices a and b with the given
// value and index, wiring both endpoints' Connections so the two-sided
// invariant holds. It returns the new segment's index.
func (g *Graph) Link(a, b int, value Value, index int, hasIndex bool) (int, error) {
	if a < 0 || a >= len(g.Nodes) || b < 0 || b >= len(g.Nodes) {
		return -1, ErrNodeNotFound
	}
	seg := Segment{A: a, B: b, Value: value, Index: index, HasIndex: hasIndex}
	g.Segments = append(g.Segments, seg)
	segIdx := len(g.Segments) - 1

	g.Nodes[a].Connections = append(g.Nodes[a].Connections, segIdx)
	g.Nodes[b].Connections = append(g.Nodes[b].Connections, segIdx)

	return segIdx, nil
}

// Detach removes segment seg from the graph: it is tombstoned (so other
// segment indices remain stable) and dropped from both endpoints'
// Connections lists, preserving the two-sided invariant in the other
// direction.
func (g *Graph) Detach(seg int) error {
	if seg < 0 || seg >= len(g.Segments) || g.Segments[seg].removed {
		return ErrSegmentNotFound
	}
	s := g.Segments[seg]
	g.Segments[seg].removed = true

	g.Nodes[s.A].Connections = removeValue(g.Nodes[s.A].Connections, seg)
	g.Nodes[s.B].Connections = removeValue(g.Nodes[s.B].Connections, seg)

	return nil
}

func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// Removed reports whether segment seg has been detached.
func (g *Graph) Removed(seg int) bool {
	if seg < 0 || seg >= len(g.Segments) {
		return true
	}

	return g.Segments[seg].removed
}

// Links returns the indices of all live (non-detached) segments, in arena
// order.
func (g *Graph) Links() []int {
	out := make([]int, 0, len(g.Segments))
	for i, s := range g.Segments {
		if !s.removed {
			out = append(out, i)
		}
	}

	return out
}

// Other returns the endpoint of segment seg that is not node.
func (g *Graph) Other(seg, node int) int {
	s := g.Segments[seg]
	if s.A == node {
		return s.B
	}

	return s.A
}

// Degree returns the number of live incident segments at node idx, with
// a self-loop (A==B) counting twice toward degree parity.
func (g *Graph) Degree(idx int) int {
	deg := 0
	for _, segIdx := range g.Nodes[idx].Connections {
		if g.Segments[segIdx].removed {
			continue
		}
		deg++ // a self-loop is listed twice in Connections
	}

	return deg
}

// IsEulerian reports whether the graph admits an Eulerian walk: at most
// two nodes of odd degree.
func (g *Graph) IsEulerian() bool {
	return g.countOddDegree() <= 2
}

// IsEuloopian reports whether the graph admits an Eulerian *circuit*
// (closed loop): every node has even degree.
func (g *Graph) IsEuloopian() bool {
	return g.countOddDegree() == 0
}

func (g *Graph) countOddDegree() int {
	odd := 0
	for i := range g.Nodes {
		if g.Degree(i)%2 == 1 {
			odd++
		}
	}

	return odd
}

// AddShape links a closed or open ring of nodes created from pts, each
// segment tagged EDGE with Index equal to its sequential position. A
// closed shape with n points produces exactly n edges; an open shape
// produces n-1.
func (g *Graph) AddShape(pts []geom.Point, close bool) ([]int, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	nodeIdx := make([]int, len(pts))
	for i, p := range pts {
		nodeIdx[i] = g.AddNode(p)
	}

	segs := make([]int, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		s, err := g.Link(nodeIdx[i-1], nodeIdx[i], EDGE, i-1, true)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	if close && len(pts) > 1 {
		s, err := g.Link(nodeIdx[len(pts)-1], nodeIdx[0], EDGE, len(pts)-1, true)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}

	return segs, nil
}

// Double duplicates every live segment once. RUNG duplicates become
// SCAFFOLD_RUNG; every other value becomes SCAFFOLD. After Double, every
// node has even degree.
func (g *Graph) Double() {
	for _, segIdx := range g.Links() {
		s := g.Segments[segIdx]
		val := SCAFFOLD
		if s.Value.IsRungLike() {
			val = SCAFFOLDRUNG
		}
		_, _ = g.Link(s.A, s.B, val, s.Index, s.HasIndex)
	}
}

// DoubleOddEdge duplicates only EDGE segments whose original Index is odd,
// as SCAFFOLD. Combined with rungs already in the graph, this converts an
// n-edge outline into an Eulerian multigraph.
func (g *Graph) DoubleOddEdge() {
	for _, segIdx := range g.Links() {
		s := g.Segments[segIdx]
		if s.Value != EDGE || !s.HasIndex || s.Index%2 == 0 {
			continue
		}
		_, _ = g.Link(s.A, s.B, SCAFFOLD, s.Index, s.HasIndex)
	}
}
