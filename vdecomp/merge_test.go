package vdecomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

func TestMergeChainDecompositionsSharedLeafSucceeds(t *testing.T) {
	pool := NewNodePool()
	shared := pool.Alloc()
	*shared = Node{Type: Leaf, Vertex: geom.Point2{X: 4, Y: 0}}
	first := pool.Alloc()
	*first = Node{Type: Leaf, Vertex: geom.Point2{X: 0, Y: 0}}
	last := pool.Alloc()
	*last = Node{Type: Leaf, Vertex: geom.Point2{X: 4, Y: 4}}

	a := ChainDecomposition{FirstNode: first, LastNode: shared}
	b := ChainDecomposition{FirstNode: shared, LastNode: last}

	merged, ok := mergeChainDecompositions(square(), geom.CCW, a, b)
	require.True(t, ok)
	assert.Same(t, first, merged.FirstNode)
	assert.Same(t, last, merged.LastNode)
}

func TestMergeChainDecompositionsDifferentNodesFails(t *testing.T) {
	pool := NewNodePool()
	aLast := pool.Alloc()
	*aLast = Node{Type: Leaf, Vertex: geom.Point2{X: 4, Y: 0}}
	bFirst := pool.Alloc()
	*bFirst = Node{Type: Leaf, Vertex: geom.Point2{X: 4, Y: 0}}

	a := ChainDecomposition{FirstNode: aLast, LastNode: aLast}
	b := ChainDecomposition{FirstNode: bFirst, LastNode: bFirst}

	_, ok := mergeChainDecompositions(square(), geom.CCW, a, b)
	assert.False(t, ok, "distinct *Node values must never merge even if their vertices coincide")
}

func TestMergeChainDecompositionsNonLeafSharedNodeFails(t *testing.T) {
	pool := NewNodePool()
	shared := pool.Alloc()
	*shared = Node{Type: Branch, Vertex: geom.Point2{X: 4, Y: 0}}

	a := ChainDecomposition{FirstNode: shared, LastNode: shared}
	b := ChainDecomposition{FirstNode: shared, LastNode: shared}

	_, ok := mergeChainDecompositions(square(), geom.CCW, a, b)
	assert.False(t, ok)
}

// TestResolveAllDanglingEdgesArrowPolygon exercises the reviewer's own
// counter-example: the CCW arrow [(0,0),(4,0),(2,1),(4,4),(0,4)] has a
// single reflex vertex at (2,1), whose branch node must resolve to the
// floor edge(v0,v1) below it and the ceiling edge(v3,v4) above it —
// neither of which touches (2,1) itself — never to either of its own two
// incident edges edge(v1,v2)/edge(v2,v3).
func TestResolveAllDanglingEdgesArrowPolygon(t *testing.T) {
	poly := polygon2.New([]geom.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, geom.CCW)

	pool := NewNodePool()
	branch := pool.Alloc()
	*branch = Node{Type: Branch, Vertex: geom.Point2{X: 2, Y: 1},
		LowerOppEdge: InvalidEdge(), UpperOppEdge: InvalidEdge()}

	resolveAllDanglingEdges(&poly, pool)

	require.True(t, branch.LowerOppEdge.IsValid())
	require.True(t, branch.UpperOppEdge.IsValid())
	assert.True(t, branch.LowerOppEdge.Equals(NewEdge(&poly, 0)), "lower side must be the floor edge(v0,v1), not an incident edge")
	assert.True(t, branch.UpperOppEdge.Equals(NewEdge(&poly, 3)), "upper side must be the ceiling edge(v3,v4), not an incident edge")
}

func TestResolveAllDanglingEdgesSkipsLeaves(t *testing.T) {
	poly := square()
	pool := NewNodePool()
	leaf := pool.Alloc()
	*leaf = Node{Type: Leaf, Vertex: geom.Point2{X: 0, Y: 0}, LowerOppEdge: InvalidEdge(), UpperOppEdge: InvalidEdge()}

	resolveAllDanglingEdges(poly, pool)

	assert.False(t, leaf.LowerOppEdge.IsValid(), "resolveAllDanglingEdges only ever touches branch nodes")
	assert.False(t, leaf.UpperOppEdge.IsValid())
}
