package vdecomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodePoolAllocStability(t *testing.T) {
	pool := NewNodePool()
	first := pool.Alloc()
	first.Type = Leaf

	// Allocate enough nodes to force a new block and confirm the first
	// pointer handed out is still valid and unmoved.
	for i := 0; i < nodeBlockSize*3; i++ {
		pool.Alloc()
	}
	assert.Equal(t, Leaf, first.Type)
	assert.Equal(t, nodeBlockSize*3+1, pool.Len())
}

func TestNodePoolAllNodesOrder(t *testing.T) {
	pool := NewNodePool()
	a := pool.Alloc()
	a.Vertex.X = 1
	b := pool.Alloc()
	b.Vertex.X = 2

	all := pool.AllNodes()
	assert.Len(t, all, 2)
	assert.Equal(t, a, all[0])
	assert.Equal(t, b, all[1])
}

func TestLinkIsSymmetric(t *testing.T) {
	pool := NewNodePool()
	a := pool.Alloc()
	b := pool.Alloc()
	link(a, 1, b, 0)
	assert.Same(t, b, a.Neighbors[1])
	assert.Same(t, a, b.Neighbors[0])
}
