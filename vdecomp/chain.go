package vdecomp

// ChainDecomposition is a partial vertical decomposition of a contiguous
// arc of the boundary: the pair (FirstNode, LastNode) from which every
// internal node is reached by transitive neighbor traversal. For the fully
// closed polygon (the result of folding every chain together) LastNode is
// nil.
type ChainDecomposition struct {
	FirstNode *Node
	LastNode  *Node
}

// VerticalDecomposition is a completed decomposition: the full node pool
// together with the leftmost and rightmost nodes, which for an exterior
// decomposition are the two points where a branch reaches out to infinity.
type VerticalDecomposition struct {
	Pool      *NodePool
	Leftmost  *Node
	Rightmost *Node
}

// InteriorDecomposition is the result of building an interior
// decomposition: the full node pool plus the root leaf that triangulate
// and the validator start traversal from.
type InteriorDecomposition struct {
	Pool *NodePool
	Root *Node
}
