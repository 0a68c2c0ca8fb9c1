//go:build vdecompdebug

package vdecomp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
	"github.com/lvdh/vdecomp/vdecomp/sweepline"
)

func TestValidateInvariantsSquareFromDnCBuilder(t *testing.T) {
	poly := square()
	decomp := BuildInteriorDecomposition(poly, geom.CCW)
	assert.NoError(t, ValidateInvariants(poly, decomp.Pool))
}

func TestValidateInvariantsConcaveArrowFromDnCBuilder(t *testing.T) {
	poly := polygon2.New([]geom.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, geom.CCW)
	decomp := BuildInteriorDecomposition(&poly, geom.CCW)
	assert.NoError(t, ValidateInvariants(&poly, decomp.Pool))
}

func TestValidateInvariantsTriangleFromSweepline(t *testing.T) {
	poly := polygon2.New([]geom.Point2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}}, geom.CCW)
	decomp := sweepline.Build(&poly, geom.CCW)
	assert.NoError(t, ValidateInvariants(&poly, decomp.Pool))
}

func TestValidateInvariantsCatchesAsymmetricLink(t *testing.T) {
	pool := NewNodePool()
	a := pool.Alloc()
	*a = Node{Type: Branch, Vertex: geom.Point2{X: 0, Y: 0}, LowerOppEdge: InvalidEdge(), UpperOppEdge: InvalidEdge()}
	b := pool.Alloc()
	*b = Node{Type: Leaf, Vertex: geom.Point2{X: 1, Y: 1}}
	// Deliberately break symmetry: a points at b but b points at nothing.
	a.Neighbors[1] = b

	// Both of a's opposite edges are InvalidEdge(), so I1 never needs a
	// real polygon to ray-cast against; only I5's link symmetry check is
	// exercised here.
	assert.Error(t, ValidateInvariants(nil, pool))
}
