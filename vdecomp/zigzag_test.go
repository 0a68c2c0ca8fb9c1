package vdecomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

func TestZigzagPhaseConvexSquareIsAllLeaves(t *testing.T) {
	// A convex quadrilateral has exactly two lexicographic extrema (its
	// leftmost and rightmost vertices), so zigzag splits it into exactly
	// two chains meeting at those two points, all leaves.
	poly := square()
	pool := NewNodePool()
	chains := zigzagPhase(poly, geom.CCW, pool)

	require.Len(t, chains, 2)
	assert.Nil(t, chains[len(chains)-1].LastNode)
	for _, n := range pool.AllNodes() {
		assert.Equal(t, Leaf, n.Type)
	}
}

func TestZigzagPhaseConcaveArrowHasBranch(t *testing.T) {
	// A simple concave "arrow" quad: one reflex vertex.
	poly := polygon2.New([]geom.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, geom.CCW)
	pool := NewNodePool()
	chains := zigzagPhase(&poly, geom.CCW, pool)

	require.NotEmpty(t, chains)
	sawBranch := false
	for _, n := range pool.AllNodes() {
		if n.Type == Branch {
			sawBranch = true
		}
	}
	assert.True(t, sawBranch, "the reflex vertex should produce a branch node")
}
