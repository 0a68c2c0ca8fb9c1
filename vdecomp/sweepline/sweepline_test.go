package sweepline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
	"github.com/lvdh/vdecomp/vdecomp"
)

func trianglePoly() *polygon2.Polygon2 {
	p := polygon2.New([]geom.Point2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}}, geom.CCW)
	return &p
}

func TestBuildTriangleHasTwoLeavesNoBranch(t *testing.T) {
	decomp := Build(trianglePoly(), geom.CCW)
	require.NotNil(t, decomp.Root)

	var leaves, branches int
	for _, n := range decomp.Pool.AllNodes() {
		switch n.Type.String() {
		case "leaf":
			leaves++
		case "branch":
			branches++
		}
	}
	// A generic triangle has exactly two local x-extrema (its leftmost and
	// rightmost vertices, both leaves); the third vertex sits strictly
	// between them in x and is a plain transition with no node at all.
	assert.Equal(t, 2, leaves)
	assert.Equal(t, 0, branches)
}

func TestBuildConcaveQuadHasABranch(t *testing.T) {
	poly := polygon2.New([]geom.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, geom.CCW)
	decomp := Build(&poly, geom.CCW)

	sawBranch := false
	for _, n := range decomp.Pool.AllNodes() {
		if n.Type.String() == "branch" {
			sawBranch = true
		}
	}
	assert.True(t, sawBranch)
}

func TestBuildExteriorIntoProducesLeftAndRightmost(t *testing.T) {
	pool := vdecomp.NewNodePool()
	left, right := BuildExteriorInto(trianglePoly(), geom.CCW, pool)
	assert.NotNil(t, left)
	assert.NotNil(t, right)
	assert.NotSame(t, left, right)
}
