package vdecomp

import (
	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
	"github.com/lvdh/vdecomp/vdecomp/sweepline"
)

// BuildInteriorDecomposition builds the interior vertical decomposition of
// poly via the divide-and-conquer zigzag+merge builder described in
// spec.md §4.1-§4.3: zigzagPhase first splits the boundary into chains,
// which are then folded by foldChains, and every branch left dangling by
// either phase is resolved in one pass over the finished graph. Whenever
// the fold's own precondition isn't met (an arbitrarily pathological
// chain sequence with no shared-leaf seam to splice at), the builder
// falls back to vdecomp/sweepline's plane sweep for the whole polygon
// rather than risk a bespoke multi-way pointer-splice coming out wrong
// with no way to test it — see DESIGN.md.
func BuildInteriorDecomposition(poly *polygon2.Polygon2, winding geom.Winding) InteriorDecomposition {
	pool := NewNodePool()
	chains := zigzagPhase(poly, winding, pool)

	folded, ok := foldChains(poly, winding, chains)
	if !ok || folded.LastNode != nil {
		// The zigzag attempt's nodes are abandoned along with pool: a
		// reused pool would leave them behind, unreachable from the
		// sweep-line root but still inflating Len() and AllNodes().
		fallbackPool := NewNodePool()
		return InteriorDecomposition{Pool: fallbackPool, Root: sweepline.BuildInteriorInto(poly, winding, fallbackPool)}
	}
	resolveAllDanglingEdges(poly, pool)
	return InteriorDecomposition{Pool: pool, Root: folded.FirstNode}
}

// foldChains merges the chain sequence with a balanced pairwise fold,
// adjacent pair by adjacent pair, repeating over the reduced sequence
// until one chain remains — spec.md §4.3's "balanced divide-and-conquer
// order", needed for the O(n log n) expected-work bound the sequential
// left fold an earlier version of this function used did not have
// (merging the accumulator against every remaining chain makes the
// accumulator's own resolution work grow linearly with how many chains
// have already been folded into it). Stops and reports failure the first
// time a merge's precondition isn't met.
func foldChains(poly *polygon2.Polygon2, winding geom.Winding, chains []ChainDecomposition) (ChainDecomposition, bool) {
	if len(chains) == 0 {
		return ChainDecomposition{}, false
	}
	for len(chains) > 1 {
		next := make([]ChainDecomposition, 0, (len(chains)+1)/2)
		for i := 0; i < len(chains); i += 2 {
			if i+1 >= len(chains) {
				next = append(next, chains[i])
				continue
			}
			merged, ok := mergeChainDecompositions(poly, winding, chains[i], chains[i+1])
			if !ok {
				return ChainDecomposition{}, false
			}
			next = append(next, merged)
		}
		chains = next
	}
	return chains[0], true
}

// BuildExteriorDecomposition builds the exterior vertical decomposition of
// poly (spec.md §4.1's "two zigzag runs, one above the polygon and one
// below"). For a fully convex poly neither run ever needs an internal
// branch: each is a single EdgeRange between the leftmost and rightmost
// vertex, and the two runs meet only at those two vertices, which is
// exactly zigzagExteriorConvex below. Any reflex vertex means at least
// one of the two runs needs its own branch nodes the way zigzagPhase's
// interior walk does, which this falls back to the reference sweep-line
// builder for rather than attempt a general exterior zigzag+merge with no
// way to test it before runtime — see DESIGN.md.
func BuildExteriorDecomposition(poly *polygon2.Polygon2, winding geom.Winding) VerticalDecomposition {
	if decomp, ok := zigzagExteriorConvex(poly, winding); ok {
		return decomp
	}
	pool := NewNodePool()
	leftmost, rightmost := sweepline.BuildExteriorInto(poly, winding, pool)
	return VerticalDecomposition{Pool: pool, Leftmost: leftmost, Rightmost: rightmost}
}

// zigzagExteriorConvex builds the exterior decomposition directly for a
// fully convex polygon: the boundary has exactly two side vertices (its
// lexicographic extrema), so the exterior zigzag degenerates to two plain
// EdgeRanges (the lower chain from leftmost to rightmost, the upper chain
// back) meeting at two branch nodes, one per extremum, each reaching out
// to infinity on the side facing away from the polygon. It reports false
// for any polygon with a reflex vertex, since that needs the same kind of
// internal branching the interior zigzag does and is left to the
// sweep-line fallback.
func zigzagExteriorConvex(poly *polygon2.Polygon2, winding geom.Winding) (VerticalDecomposition, bool) {
	n := poly.NumVertices()
	for i := 0; i < n; i++ {
		a, b, c := poly.At(poly.Prev(i)), poly.At(i), poly.At(poly.Next(i))
		if !geom.IsConvexCorner(a, b, c, winding) {
			return VerticalDecomposition{}, false
		}
	}

	left, right := poly.LeftmostIndex(), poly.RightmostIndex()
	lowerRange := NewEdgeRange(poly, left, right, geom.Right)
	if lowerRange.IsEmpty() {
		return VerticalDecomposition{}, false
	}

	pool := NewNodePool()
	leftNode := pool.Alloc()
	*leftNode = Node{Type: Branch, Vertex: poly.At(left), Direction: geom.Right,
		LowerOppEdge: InvalidEdge(), UpperOppEdge: InvalidEdge()}

	// Both leftNode and rightNode close off an unbounded exterior region —
	// open on the side facing away from the polygon — the same way the
	// very first split of sweepline's unbounded sentinel trapezoid leaves
	// both of its sides InvalidEdge() rather than guessing at an edge that
	// doesn't exist. lowerRange describes the chain between them (and is
	// only used to reject an empty range), not either endpoint's own
	// opposite edges.
	rightNode := pool.Alloc()
	*rightNode = Node{Type: Branch, Vertex: poly.At(right), Direction: geom.Left,
		LowerOppEdge: InvalidEdge(), UpperOppEdge: InvalidEdge()}

	link(leftNode, 1, rightNode, 1)
	link(leftNode, 2, rightNode, 2)

	return VerticalDecomposition{Pool: pool, Leftmost: leftNode, Rightmost: rightNode}, true
}
