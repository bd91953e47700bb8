// Package cutplan implements the cut planner: bounding-box containment
// testing, and the three path-level reorderings built on top of it —
// cut-inside ordering, travel optimization, and general (constrained)
// optimization.
//
// Containment and ordering here play the role a Hamiltonian-tour 2-opt
// search plays over a fixed distance matrix, generalized to geometric
// subpaths whose own bounding boxes gate whether a reorder candidate is
// legal at all.
package cutplan
