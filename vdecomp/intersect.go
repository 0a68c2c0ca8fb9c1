package vdecomp

import (
	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

// Intersect reports whether polygons a and b overlap: either one contains
// a vertex of the other, or two of their edges properly cross, per
// spec.md §4.6.
//
// spec.md's intended algorithm locates sample points in the other
// polygon's exterior decomposition via a single root-to-neighbor walk,
// using "found on the exterior" as a fast rejection before falling back
// to boundary-crossing checks. locateOutside below is exactly that walk:
// it descends aExt/bExt from Leftmost, at each branch comparing the query
// point's x against the branch's own vertex to choose which of the two
// remaining neighbors to continue into, stopping the moment a node's
// resolved opposite edges bracket the point's x — the same trapezoid
// test validate.go's I1 check (rayCastVertical) performs, just reached by
// following the graph instead of scanning every edge. pointContained
// trusts a conclusive walk outright; it only falls back to
// pointInOrOnPolygon, the direct O(n) ray cast, when the walk can't reach
// a conclusive node (p.X outside the decomposition's span, or a nil
// neighbor before either side brackets p.X — see locateOutside).
//
// A horizontally-disjoint bounding-range check runs first regardless: two
// polygons whose x-extents don't overlap at all can never intersect, and
// rejecting them there avoids the O(n*m) edge-pair scan entirely.
func Intersect(a *polygon2.Polygon2, aExt VerticalDecomposition, b *polygon2.Polygon2, bExt VerticalDecomposition) bool {
	aLeft, aRight := a.At(a.LeftmostIndex()).X, a.At(a.RightmostIndex()).X
	bLeft, bRight := b.At(b.LeftmostIndex()).X, b.At(b.RightmostIndex()).X
	if aRight.Cmp(bLeft) < 0 || bRight.Cmp(aLeft) < 0 {
		return false
	}

	for i := 0; i < a.NumVertices(); i++ {
		if pointContained(a.At(i), b, bExt) {
			return true
		}
	}
	for i := 0; i < b.NumVertices(); i++ {
		if pointContained(b.At(i), a, aExt) {
			return true
		}
	}
	for i := 0; i < a.NumVertices(); i++ {
		a0, a1 := a.At(i), a.At(a.Next(i))
		for j := 0; j < b.NumVertices(); j++ {
			b0, b1 := b.At(j), b.At(b.Next(j))
			if segmentsProperlyIntersect(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

// pointContained reports whether p lies on poly's boundary or strictly
// inside it, preferring ext's decomposition walk and falling back to a
// direct ray cast against poly whenever the walk is inconclusive.
func pointContained(p geom.Point2, poly *polygon2.Polygon2, ext VerticalDecomposition) bool {
	if outside, ok := locateOutside(ext, p); ok {
		return !outside
	}
	return pointInOrOnPolygon(p, poly)
}

// locateOutside walks ext from Leftmost, using each branch's own vertex x
// to choose a lower or upper neighbor to descend into, until it reaches a
// node whose opposite edges are both valid and both contain p.X — at which
// point p is outside the polygon iff its y falls strictly between those
// two edges' YAtX(p.X). A node with an unbounded (invalid) side is never
// conclusive. It reports ok=false wherever the walk can't reach a
// conclusive node: p.X outside
// [Leftmost.X, Rightmost.X], a nil neighbor before either edge brackets
// p.X, or more steps than the pool has nodes (a malformed graph should
// never hang the caller trying to use it).
func locateOutside(ext VerticalDecomposition, p geom.Point2) (outside bool, ok bool) {
	if ext.Leftmost == nil || ext.Rightmost == nil || ext.Pool == nil {
		return false, false
	}
	if p.X < ext.Leftmost.Vertex.X || p.X > ext.Rightmost.Vertex.X {
		return false, false
	}

	n := ext.Leftmost
	for steps := 0; steps <= ext.Pool.Len(); steps++ {
		if n == nil {
			return false, false
		}
		if n.LowerOppEdge.IsValid() && n.UpperOppEdge.IsValid() &&
			n.LowerOppEdge.ContainsX(p.X) && n.UpperOppEdge.ContainsX(p.X) {
			lowY := n.LowerOppEdge.YAtX(p.X)
			upY := n.UpperOppEdge.YAtX(p.X)
			pY := geom.NewFraction(geom.NewScalar2FromInt64(int64(p.Y)), 1)
			return pY.Cmp(lowY) > 0 && pY.Cmp(upY) < 0, true
		}
		if p.X.Cmp(n.Vertex.X) == 0 {
			return false, false
		}
		if p.X < n.Vertex.X {
			n = n.Neighbors[1]
		} else {
			n = n.Neighbors[2]
		}
	}
	return false, false
}

// pointInOrOnPolygon reports whether p lies on poly's boundary or strictly
// inside it, via a standard even-odd ray cast along increasing x at
// p's own y, using exact Fraction comparisons at each candidate crossing.
func pointInOrOnPolygon(p geom.Point2, poly *polygon2.Polygon2) bool {
	n := poly.NumVertices()
	crossings := 0
	for i := 0; i < n; i++ {
		a, b := poly.At(i), poly.At(poly.Next(i))
		if a.Equals(p) || b.Equals(p) {
			return true
		}
		if a.Y == b.Y {
			if p.Y == a.Y && NewEdge(poly, i).ContainsX(p.X) {
				return true
			}
			continue
		}
		below, above := a, b
		if below.Y > above.Y {
			below, above = above, below
		}
		if p.Y < below.Y || p.Y >= above.Y {
			continue
		}
		xAtY := xOnEdgeForY(a, b, p.Y)
		cmp := xAtY.Cmp(geom.NewFraction(geom.NewScalar2FromInt64(int64(p.X)), 1))
		if cmp == 0 {
			return true
		}
		if cmp > 0 {
			crossings++
		}
	}
	return crossings%2 == 1
}

// xOnEdgeForY is YOnEdgeForX's mirror, used by the intersection test's
// horizontal ray cast.
func xOnEdgeForY(p0, p1 geom.Point2, y geom.Scalar1) geom.Fraction {
	dx := p1.X.Sub(p0.X)
	dy := p1.Y.Sub(p0.Y)
	num := p0.X.Mul(dy).Add(dx.Mul(y.Sub(p0.Y)))
	return geom.NewFraction(num, dy)
}

func segmentsProperlyIntersect(a0, a1, b0, b1 geom.Point2) bool {
	d1 := geom.Cross(b0, b1, a0).Sign()
	d2 := geom.Cross(b0, b1, a1).Sign()
	d3 := geom.Cross(a0, a1, b0).Sign()
	d4 := geom.Cross(a0, a1, b1).Sign()
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
