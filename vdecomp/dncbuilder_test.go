package vdecomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

func TestBuildInteriorDecompositionSquare(t *testing.T) {
	decomp := BuildInteriorDecomposition(square(), geom.CCW)
	require.NotNil(t, decomp.Root)
	assert.Equal(t, 2, decomp.Pool.Len(), "a convex quad's zigzag+merge path should produce exactly its two extremum leaves")
}

func TestBuildInteriorDecompositionHandlesMultipleReflexVertices(t *testing.T) {
	// A polygon with reflex vertices on both sides still produces a
	// complete decomposition, whether the chain fold resolves it directly
	// or the sweep-line fallback takes over.
	poly := polygon2.New([]geom.Point2{
		{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 2}, {X: 6, Y: 4},
		{X: 0, Y: 4}, {X: 1, Y: 2},
	}, geom.CCW)
	decomp := BuildInteriorDecomposition(&poly, geom.CCW)
	require.NotNil(t, decomp.Root)
	assert.True(t, decomp.Pool.Len() >= poly.NumVertices()-2)
}

func TestBuildExteriorDecompositionHasLeftAndRightmost(t *testing.T) {
	decomp := BuildExteriorDecomposition(square(), geom.CCW)
	assert.NotNil(t, decomp.Leftmost)
	assert.NotNil(t, decomp.Rightmost)
}
