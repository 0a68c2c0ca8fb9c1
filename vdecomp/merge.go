package vdecomp

import (
	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

// mergeChainDecompositions splices two chain decompositions that share a
// single vertex (a.LastNode and b.FirstNode are the same *Node, emitted by
// zigzagPhase at a convex closing vertex) into one. Because zigzag only
// ever closes a chain at a convex leaf and opens the next one at that
// same leaf, this precondition holds for every adjacent pair foldChains
// passes in; the merge itself is nothing more than confirming that and
// handing back the combined endpoints. Any branch left with a dangling
// opposite edge by zigzagPhase is resolved later, once the whole fold is
// complete, by resolveAllDanglingEdges — not here.
//
// An earlier version of this function resolved each chain's dangling
// edges immediately, against whatever was visible from its own two
// chains. That is wrong whenever the edge a branch's invalid side should
// resolve to belongs to some OTHER chain not yet folded in at this point
// in the fold — spec.md §4.2's own worked example and this package's
// arrow-polygon regression test both exercise exactly that case. See
// DESIGN.md.
func mergeChainDecompositions(poly *polygon2.Polygon2, winding geom.Winding, a, b ChainDecomposition) (ChainDecomposition, bool) {
	if a.LastNode == nil || b.FirstNode == nil || a.LastNode != b.FirstNode {
		return ChainDecomposition{}, false
	}
	if a.LastNode.Type != Leaf {
		return ChainDecomposition{}, false
	}
	return ChainDecomposition{FirstNode: a.FirstNode, LastNode: b.LastNode}, true
}

// resolveAllDanglingEdges runs once, after a divide-and-conquer fold has
// closed the boundary into a single decomposition spanning every chain: it
// walks the full node pool and sets every branch's two opposite edges to
// the result of a direct ray cast against poly's boundary (rayCastVertical)
// — the edge a vertical ray from the branch's vertex actually hits on each
// side.
//
// This overwrites BOTH sides of every branch, not only whichever side
// zigzagPhase left at InvalidEdge(). An earlier version of zigzagPhase
// resolved its "closing" side eagerly, during construction, by
// binary-searching the chain arc that ends at the branch's own vertex —
// but the edge at the far end of that search is always the branch's own
// incident edge (the arc's last edge necessarily touches the branch
// vertex), never the edge actually bounding the region beyond it. For the
// CCW arrow [(0,0),(4,0),(2,1),(4,4),(0,4)], that eager resolution set the
// branch at (2,1)'s lower side to edge(v1,v2) — the edge arriving at
// (2,1) itself — when the true lower bound of the trapezoid on that side
// is edge(v0,v1) at y=0; a vertical ray from (2,1) going down never
// crosses its own incident edge, it crosses the floor of the shape. A
// branch's opposite edges describe the trapezoid that existed immediately
// before that vertex was reached, never one of the two edges meeting at
// the vertex itself, so zigzagPhase now leaves both sides at
// InvalidEdge() and lets this function fill in both, once, by ray-casting
// against the finished polygon. That costs an O(n) scan per branch in
// place of spec's O(log n) binary search over a single known-monotone
// range. See DESIGN.md.
func resolveAllDanglingEdges(poly *polygon2.Polygon2, pool *NodePool) {
	for _, n := range pool.AllNodes() {
		if n.Type != Branch && n.Type != OuterBranch {
			continue
		}
		if e, ok := rayCastVertical(poly, n.Vertex, false); ok {
			n.LowerOppEdge = e
		} else {
			n.LowerOppEdge = InvalidEdge()
		}
		if e, ok := rayCastVertical(poly, n.Vertex, true); ok {
			n.UpperOppEdge = e
		} else {
			n.UpperOppEdge = InvalidEdge()
		}
	}
}
