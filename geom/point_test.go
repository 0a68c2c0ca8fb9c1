package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2CompareTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2
		want int
	}{
		{"equal", Point2{1, 2}, Point2{1, 2}, 0},
		{"x less", Point2{1, 2}, Point2{2, 0}, -1},
		{"x greater", Point2{3, 0}, Point2{2, 100}, 1},
		{"x equal y less", Point2{1, 1}, Point2{1, 2}, -1},
		{"x equal y greater", Point2{1, 5}, Point2{1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.CompareTo(tt.b))
			assert.Equal(t, -tt.want, tt.b.CompareTo(tt.a))
		})
	}
}

func TestPoint2LexCompareDirection(t *testing.T) {
	a := Point2{0, 0}
	b := Point2{1, 0}
	assert.True(t, a.LexPrecedes(b, Right))
	assert.False(t, a.LexPrecedes(b, Left))
	assert.True(t, b.LexPrecedes(a, Left))
}

func TestCrossOrientation(t *testing.T) {
	a := Point2{0, 0}
	b := Point2{1, 0}
	c := Point2{1, 1}
	assert.True(t, Cross(a, b, c).Sign() > 0, "ccw turn should be positive")
	assert.True(t, Cross(a, c, b).Sign() < 0, "cw turn should be negative")

	d := Point2{2, 0}
	assert.True(t, Cross(a, b, d).IsZero(), "collinear points cross to zero")
}

func TestIsConvexCorner(t *testing.T) {
	a, b, c := Point2{0, 0}, Point2{1, 0}, Point2{1, 1}
	assert.True(t, IsConvexCorner(a, b, c, CCW))
	assert.False(t, IsConvexCorner(a, b, c, CW))
	assert.True(t, IsConvexCorner(a, c, b, CW))
}

func TestYOnEdgeForX(t *testing.T) {
	p0 := Point2{0, 0}
	p1 := Point2{10, 20}
	f := YOnEdgeForX(p0, p1, 5)
	g := NewFraction(NewScalar2FromInt64(10), 1)
	assert.Equal(t, 0, f.Cmp(g))

	f2 := YOnEdgeForX(p0, p1, 0)
	assert.Equal(t, 0, f2.Cmp(NewFraction(NewScalar2FromInt64(0), 1)))
}

func TestFractionInfinitySentinels(t *testing.T) {
	finite := NewFraction(NewScalar2FromInt64(5), 2)
	assert.True(t, finite.Cmp(PositiveInfinity()) < 0)
	assert.True(t, finite.Cmp(NegativeInfinity()) > 0)
	assert.Equal(t, 0, PositiveInfinity().Cmp(PositiveInfinity()))
	assert.True(t, NegativeInfinity().Cmp(PositiveInfinity()) < 0)
}
