// Package twoopt is the first-improvement 2-opt engine shared by the cut
// planner's travel optimization and the graph walker's optional post-pass:
// a deterministic first-improvement scan where the delta is computed only
// from the boundary joins of the reversed block, generalized from a
// distance matrix over Hamiltonian-tour indices to an arbitrary block type
// with a start point, end point, and reversal.
package twoopt

import "github.com/katalvlaran/plotcore/geom"

// Block is anything 2-opt can reverse: something with a direction
// (Start/End points) that can be flipped in place.
type Block interface {
	Start() (geom.Point, bool)
	End() (geom.Point, bool)
	Reversed() Block
}

// Run repeats first-improvement 2-opt over blocks until no reversal of any
// blocks[j..k] range (j <= k, so a single block may be reversed on its own)
// strictly improves total join distance: for each pair (j, k), compute the
// delta in inter-subpath jump distance obtained by reversing blocks[j..k],
// and apply the reversal if it is negative. Only the two
// boundary joins of the reversed range are considered — intra-block
// distances never change.
//
// No explicit epsilon guards against float oscillation; a delta of exactly
// 0 is rejected (strict improvement required).
func Run(blocks []Block) []Block {
	n := len(blocks)
	if n < 2 {
		return blocks
	}

	improved := true
	for improved {
		improved = false
		for j := 0; j < n; j++ {
			for k := j; k < n; k++ {
				if deltaDistance(blocks, j, k) < 0 {
					cross(blocks, j, k)
					improved = true
				}
			}
		}
	}

	return blocks
}

func deltaDistance(blocks []Block, j, k int) float64 {
	n := len(blocks)

	var oldEntry, oldExit, newEntry, newExit float64
	if j > 0 {
		prevEnd, ok1 := blocks[j-1].End()
		jStart, ok2 := blocks[j].Start()
		if ok1 && ok2 {
			oldEntry = prevEnd.Distance(jStart)
		}
		kEnd, ok3 := blocks[k].End()
		if ok1 && ok3 {
			newEntry = prevEnd.Distance(kEnd)
		}
	}
	if k < n-1 {
		kEnd, ok1 := blocks[k].End()
		nextStart, ok2 := blocks[k+1].Start()
		if ok1 && ok2 {
			oldExit = kEnd.Distance(nextStart)
		}
		jStart, ok3 := blocks[j].Start()
		if ok3 && ok2 {
			newExit = jStart.Distance(nextStart)
		}
	}

	return (newEntry + newExit) - (oldEntry + oldExit)
}

// cross reverses both the order of blocks[j..k] and the direction of each
// individual block within that range.
func cross(blocks []Block, j, k int) {
	sub := blocks[j : k+1]
	for i, l := 0, len(sub)-1; i < l; i, l = i+1, l-1 {
		sub[i], sub[l] = sub[l], sub[i]
	}
	for i := range sub {
		sub[i] = sub[i].Reversed()
	}
}
