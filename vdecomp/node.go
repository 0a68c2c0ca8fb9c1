package vdecomp

import "github.com/lvdh/vdecomp/geom"

// NodeType distinguishes the three kinds of decomposition node (spec.md
// §3). Modeled as a small closed set per dida's design notes §9.
type NodeType int8

const (
	// Leaf marks a convex side vertex; it has exactly one neighbor.
	Leaf NodeType = iota
	// Branch marks a concave side vertex (interior decomposition) or any
	// side vertex that splits the exterior.
	Branch
	// OuterBranch marks a node whose two opposite edges belong to
	// different chain-decomposition islands, an artifact of the
	// zigzag/merge phases resolved as merging proceeds.
	OuterBranch
)

func (t NodeType) String() string {
	switch t {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	case OuterBranch:
		return "outer_branch"
	default:
		return "unknown"
	}
}

// Node is one vertex of the decomposition graph: either a side vertex
// (Leaf) or the end of a vertical extension (Branch/OuterBranch). See
// spec.md §3 for the full field-by-field contract and invariants I1-I5.
type Node struct {
	Direction geom.HorizontalDirection
	Type      NodeType
	Vertex    geom.Point2

	LowerOppEdge Edge
	UpperOppEdge Edge

	// Neighbors[0] is the incoming neighbor, on the side opposite to the
	// branching. Neighbors[1] is the lower outgoing neighbor, Neighbors[2]
	// the upper outgoing neighbor. A Leaf uses only Neighbors[0].
	Neighbors [3]*Node
}

// HasLowerBoundary reports whether the region below this node's vertical
// extension is bounded by a finite edge rather than running to -infinity.
func (n *Node) HasLowerBoundary() bool { return n.LowerOppEdge.IsValid() }

// HasUpperBoundary is the symmetric query for the upper side.
func (n *Node) HasUpperBoundary() bool { return n.UpperOppEdge.IsValid() }

// link connects a and b symmetrically: a.Neighbors[ai] = b and
// b.Neighbors[bi] = a. Both slots must currently be nil; this is the one
// place neighbor pointers are ever written; an invariant assertion (I5)
// in the debug validator relies on links only ever being made here.
func link(a *Node, ai int, b *Node, bi int) {
	a.Neighbors[ai] = b
	b.Neighbors[bi] = a
}

// Link is link's exported form, for the sweepline sub-package's builder,
// which constructs decompositions directly rather than through zigzag/merge.
func Link(a *Node, ai int, b *Node, bi int) { link(a, ai, b, bi) }

// Region identifies one cell of a decomposition by its two bounding nodes
// and the branch index on each side the region emerges from. Equality
// compares all four fields, per spec.md §3.
type Region struct {
	A, B   *Node
	AIndex int
	BIndex int
}

// Equals reports whether r and other identify the same region.
func (r Region) Equals(other Region) bool {
	return r.A == other.A && r.B == other.B && r.AIndex == other.AIndex && r.BIndex == other.BIndex
}
