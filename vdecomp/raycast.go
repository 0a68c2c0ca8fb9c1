package vdecomp

import (
	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

// rayCastVertical finds the boundary edge of poly immediately above
// (upward=true) or below (upward=false) v at x = v.X: the edge with the
// smallest (resp. largest) YAtX(v.X) that is still strictly above (resp.
// below) v.Y. The two edges incident to v itself are excluded, since they
// pass through v at exactly y = v.Y and so never count as a bound away
// from it; vertical edges are excluded too, since YAtX is undefined for
// them (geom.YOnEdgeForX requires differing x endpoints).
//
// This answers "what edge would a vertical ray from v hit going up/down"
// directly and unconditionally correctly, at the cost of an O(n) scan of
// every boundary edge rather than a binary search confined to one known
// monotone range. See merge.go and DESIGN.md for where and why this
// trade is made.
func rayCastVertical(poly *polygon2.Polygon2, v geom.Point2, upward bool) (Edge, bool) {
	n := poly.NumVertices()
	vY := geom.NewFraction(geom.NewScalar2FromInt64(int64(v.Y)), 1)
	var best Edge
	var bestY geom.Fraction
	found := false
	for i := 0; i < n; i++ {
		e := NewEdge(poly, i)
		a, b := e.Start(), e.End()
		if a.Equals(v) || b.Equals(v) {
			continue
		}
		if a.X == b.X {
			continue
		}
		if !e.ContainsX(v.X) {
			continue
		}
		y := e.YAtX(v.X)
		if upward {
			if y.Cmp(vY) <= 0 {
				continue
			}
			if !found || y.Cmp(bestY) < 0 {
				best, bestY, found = e, y, true
			}
		} else {
			if y.Cmp(vY) >= 0 {
				continue
			}
			if !found || y.Cmp(bestY) > 0 {
				best, bestY, found = e, y, true
			}
		}
	}
	return best, found
}
