package vdecomp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

func squareAt(x, y, side int64) *polygon2.Polygon2 {
	p := polygon2.New([]geom.Point2{
		{X: geom.Scalar1(x), Y: geom.Scalar1(y)},
		{X: geom.Scalar1(x + side), Y: geom.Scalar1(y)},
		{X: geom.Scalar1(x + side), Y: geom.Scalar1(y + side)},
		{X: geom.Scalar1(x), Y: geom.Scalar1(y + side)},
	}, geom.CCW)
	return &p
}

func TestIntersectDisjointSquaresIsFalse(t *testing.T) {
	a := squareAt(0, 0, 4)
	b := squareAt(10, 10, 4)
	assert.False(t, Intersect(a, VerticalDecomposition{}, b, VerticalDecomposition{}))
}

func TestIntersectOverlappingSquaresIsTrue(t *testing.T) {
	a := squareAt(0, 0, 4)
	b := squareAt(2, 2, 4)
	assert.True(t, Intersect(a, VerticalDecomposition{}, b, VerticalDecomposition{}))
}

func TestIntersectNestedSquaresIsTrue(t *testing.T) {
	outer := squareAt(0, 0, 10)
	inner := squareAt(2, 2, 2)
	assert.True(t, Intersect(outer, VerticalDecomposition{}, inner, VerticalDecomposition{}))
	assert.True(t, Intersect(inner, VerticalDecomposition{}, outer, VerticalDecomposition{}))
}

func TestIntersectEdgeTouchingSquaresIsTrue(t *testing.T) {
	a := squareAt(0, 0, 4)
	b := squareAt(4, 0, 4)
	assert.True(t, Intersect(a, VerticalDecomposition{}, b, VerticalDecomposition{}))
}

func TestIntersectSharedVertexIsTrue(t *testing.T) {
	a := squareAt(0, 0, 4)
	b := squareAt(4, 4, 4)
	assert.True(t, Intersect(a, VerticalDecomposition{}, b, VerticalDecomposition{}))
}

func TestIntersectIsSymmetric(t *testing.T) {
	a := squareAt(0, 0, 4)
	b := squareAt(10, 10, 4)
	assert.Equal(t, Intersect(a, VerticalDecomposition{}, b, VerticalDecomposition{}),
		Intersect(b, VerticalDecomposition{}, a, VerticalDecomposition{}))
}
