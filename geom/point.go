package geom

// Point2 is a vertex of a polygon boundary: a pair of degree-1 fixed-point
// coordinates. The method set mirrors golang-geo's r2.Vector (Add/Sub/Cross/
// LessThan/CompareTo as value-receiver methods) generalized from float64 to
// exact scalars, since orientation tests over polygon vertices must never
// round.
type Point2 struct {
	X, Y Scalar1
}

// Sub returns the vector from b to a, i.e. a-b.
func (a Point2) Sub(b Point2) Vector2 {
	return Vector2{a.X.Sub(b.X), a.Y.Sub(b.Y)}
}

// Equals reports whether a and b have identical coordinates.
func (a Point2) Equals(b Point2) bool { return a.X == b.X && a.Y == b.Y }

// LexLess reports whether a lexicographically precedes b in (x, y) order.
func (a Point2) LexLess(b Point2) bool {
	return a.CompareTo(b) < 0
}

// CompareTo returns -1, 0, or 1 as a is lexicographically before, equal to,
// or after b, ordering first on X then on Y.
func (a Point2) CompareTo(b Point2) int {
	if c := a.X.Cmp(b.X); c != 0 {
		return c
	}
	return a.Y.Cmp(b.Y)
}

// LexCompare is CompareTo parameterized by a horizontal direction: with
// Right it is the plain lexicographic order; with Left it is the reverse.
// This is the "direction-aware" comparison used throughout the zigzag and
// merge phases instead of a compile-time direction generic (dida's design
// notes §9 call out this exact substitution for a target language without
// zero-cost direction generics).
func (a Point2) LexCompare(b Point2, dir HorizontalDirection) int {
	c := a.CompareTo(b)
	if dir == Left {
		return -c
	}
	return c
}

// LexPrecedes reports whether a strictly precedes b in the direction-aware
// lexicographic order for dir.
func (a Point2) LexPrecedes(b Point2, dir HorizontalDirection) bool {
	return a.LexCompare(b, dir) < 0
}

// Vector2 is the difference of two Point2 values: a degree-1 displacement.
type Vector2 struct {
	X, Y Scalar1
}

// Cross returns the exact z-component of the 3-D cross product of a and b,
// i.e. a.X*b.Y - a.Y*b.X, as a degree-2 scalar.
func (a Vector2) Cross(b Vector2) Scalar2 {
	return a.X.Mul(b.Y).Sub(a.Y.Mul(b.X))
}

// Dot returns the exact dot product of a and b as a degree-2 scalar.
func (a Vector2) Dot(b Vector2) Scalar2 {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y))
}

// Cross returns the signed area of the parallelogram spanned by (b-a) and
// (c-a); its sign is the orientation test used throughout vdecomp:
// positive when a, b, c turn counter-clockwise, negative when clockwise,
// zero when collinear.
func Cross(a, b, c Point2) Scalar2 {
	return b.Sub(a).Cross(c.Sub(a))
}

// IsConvexCorner reports whether the corner at b, walking a -> b -> c, is
// convex for the given winding: for CCW that's a strictly positive Cross,
// for CW a strictly negative one.
func IsConvexCorner(a, b, c Point2, w Winding) bool {
	s := Cross(a, b, c).Sign()
	if w == CCW {
		return s > 0
	}
	return s < 0
}

// YOnEdgeForX returns the y-coordinate, as an exact Fraction, at which the
// line through p0 and p1 crosses the vertical line x = x. p0.X must differ
// from p1.X.
func YOnEdgeForX(p0, p1 Point2, x Scalar1) Fraction {
	dx := p1.X.Sub(p0.X)
	dy := p1.Y.Sub(p0.Y)
	// y = p0.Y + dy*(x-p0.X)/dx
	num := p0.Y.Mul(dx).Add(dy.Mul(x.Sub(p0.X)))
	return NewFraction(num, dx)
}
