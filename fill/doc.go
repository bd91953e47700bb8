// Package fill implements the Eulerian area-fill pipeline: the monotone
// scan-line rung builder and the Hierholzer-style graph walker with
// scaffold pruning and 2-opt reordering.
//
// A Walk is the flattened output of a completed Eulerian traversal:
// alternating node and segment entries, with an explicit disconnector
// entry at the boundary between two unconnected components (a
// "[node, segment, node, segment, ..., node]" structure).
package fill
