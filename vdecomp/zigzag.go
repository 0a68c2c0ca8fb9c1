package vdecomp

import (
	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

// side names which of a chain's two running boundaries (the one whose
// vertical extent still needs its far opposite edge resolved, which
// resolveAllDanglingEdges does once the fold completes) a zigzag node
// currently continues on.
type side int8

const (
	lowerSide side = iota
	upperSide
)

func (s side) opposite() side {
	if s == lowerSide {
		return upperSide
	}
	return lowerSide
}

// zigzagState carries the bookkeeping described in spec.md §4.1: the
// current traversal direction, which of the chain's two sides is being
// advanced, the most recent node (prev), and the vertex index of the
// latest side vertex (chainStart). chainStart is recorded but not read:
// branch opposite edges are not searched for here, they are left invalid
// for resolveAllDanglingEdges.
type zigzagState struct {
	poly    *polygon2.Polygon2
	pool    *NodePool
	winding geom.Winding

	dir        geom.HorizontalDirection
	curSide    side
	chainStart int
	prev       *Node
}

// zigzagPhase walks the boundary of poly once, starting from its leftmost
// vertex (always convex, so always a valid chain root), and returns the
// chain decompositions whose concatenation covers the boundary, per
// spec.md §4.1.
func zigzagPhase(poly *polygon2.Polygon2, winding geom.Winding, pool *NodePool) []ChainDecomposition {
	n := poly.NumVertices()
	start := poly.LeftmostIndex()

	firstLeaf := newLeafNode(pool, poly, start, geom.Right)
	st := &zigzagState{
		poly:       poly,
		pool:       pool,
		winding:    winding,
		dir:        geom.Right,
		curSide:    lowerSide,
		chainStart: start,
		prev:       firstLeaf,
	}
	chainFirstNode := firstLeaf

	var chains []ChainDecomposition
	i := poly.Next(start)
	for step := 0; step < n+1; step++ {
		v := poly.At(i)
		prevV := poly.At(poly.Prev(i))
		nextV := poly.At(poly.Next(i))

		isSideVertex := edgeDir(prevV, v) != edgeDir(v, nextV)
		if i == start {
			// Boundary closed: finish the current chain at the root leaf.
			link(st.prev, outgoingSlot(st.curSide), firstLeaf, 0)
			chains = append(chains, ChainDecomposition{FirstNode: chainFirstNode, LastNode: nil})
			break
		}
		if !isSideVertex {
			i = poly.Next(i)
			continue
		}

		convex := geom.IsConvexCorner(prevV, v, nextV, winding)
		if convex {
			leaf := newLeafNode(pool, poly, i, st.dir.Opposite())
			link(st.prev, outgoingSlot(st.curSide), leaf, 0)
			chains = append(chains, ChainDecomposition{FirstNode: chainFirstNode, LastNode: leaf})

			chainFirstNode = leaf
			st.chainStart = i
			st.prev = leaf
			st.dir = st.dir.Opposite()
			st.curSide = lowerSide
		} else {
			// Both opposite edges are left InvalidEdge() here: whichever
			// side "closes" at this vertex would only resolve, at this
			// point in the walk, to the edge immediately incident to v
			// (the arc walked so far always ends at v itself), which is
			// never the edge actually bounding the region beyond it.
			// resolveAllDanglingEdges fixes both sides, for every branch,
			// by ray-casting against the finished polygon once the whole
			// fold completes. See merge.go.
			branch := pool.Alloc()
			*branch = Node{Type: Branch, Vertex: v, Direction: st.dir.Opposite(),
				LowerOppEdge: InvalidEdge(), UpperOppEdge: InvalidEdge()}

			link(st.prev, outgoingSlot(st.curSide), branch, 0)
			st.prev = branch
			st.chainStart = i
			st.dir = st.dir.Opposite()
			st.curSide = st.curSide.opposite()
		}
		i = poly.Next(i)
	}
	return chains
}

// outgoingSlot returns the Neighbors index a chain continuation on s should
// occupy: 1 for the lower side, 2 for the upper side (spec.md §3).
func outgoingSlot(s side) int {
	if s == lowerSide {
		return 1
	}
	return 2
}

// newLeafNode builds a Leaf at vertex index i, with opposite edges set per
// invariant I2: (lower,upper) = (incoming,outgoing) if dir==right, else the
// swap, where dir is the leaf's outgoing direction.
func newLeafNode(pool *NodePool, poly *polygon2.Polygon2, i int, dir geom.HorizontalDirection) *Node {
	incoming := NewEdge(poly, poly.Prev(i))
	outgoing := NewEdge(poly, i)
	n := pool.Alloc()
	*n = Node{Type: Leaf, Vertex: poly.At(i), Direction: dir}
	if dir == geom.Right {
		n.LowerOppEdge, n.UpperOppEdge = incoming, outgoing
	} else {
		n.LowerOppEdge, n.UpperOppEdge = outgoing, incoming
	}
	return n
}

// edgeDir returns the horizontal direction an edge from a to b travels in,
// using the same lexicographic (x, then y) order as LeftmostIndex and
// LexCompare rather than raw x alone, so a vertical edge (equal x) is
// classified by its y movement instead of spuriously looking like a
// direction reversal at one of its endpoints.
func edgeDir(a, b geom.Point2) geom.HorizontalDirection {
	if a.CompareTo(b) < 0 {
		return geom.Right
	}
	return geom.Left
}
