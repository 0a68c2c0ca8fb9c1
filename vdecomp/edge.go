package vdecomp

import (
	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
)

// Edge is an ordered pair (start, end) of vertex indices into a polygon's
// cyclic vertex sequence, with end == poly.Next(start). Grounded on
// golang-geo's s2.Edge (a small immutable value type over two endpoints),
// generalized to carry indices rather than raw points so EdgeRange can
// binary-search the boundary without re-resolving coordinates.
type Edge struct {
	poly  *polygon2.Polygon2
	start int
}

// invalidEdgeStart marks Edge's zero value as invalid without requiring an
// extra bool field, mirroring dida's Edge::invalid().
const invalidEdgeStart = -1

// InvalidEdge returns the sentinel value used where a vertical extension
// terminates nowhere (an infinite extension, or "no extension at this
// side").
func InvalidEdge() Edge { return Edge{start: invalidEdgeStart} }

// NewEdge returns the edge poly[start] -> poly[start+1].
func NewEdge(poly *polygon2.Polygon2, start int) Edge {
	return Edge{poly: poly, start: start}
}

// IsValid reports whether e refers to an actual boundary edge.
func (e Edge) IsValid() bool { return e.start != invalidEdgeStart }

// StartIndex returns the boundary index of the edge's start vertex.
func (e Edge) StartIndex() int { return e.start }

// EndIndex returns the boundary index of the edge's end vertex.
func (e Edge) EndIndex() int { return e.poly.Next(e.start) }

// Start returns the edge's start vertex.
func (e Edge) Start() geom.Point2 { return e.poly.At(e.start) }

// End returns the edge's end vertex.
func (e Edge) End() geom.Point2 { return e.poly.At(e.EndIndex()) }

// Equals reports whether e and other refer to the same polygon edge.
func (e Edge) Equals(other Edge) bool {
	if e.start == invalidEdgeStart || other.start == invalidEdgeStart {
		return e.start == other.start
	}
	return e.poly == other.poly && e.start == other.start
}

// OnInteriorSide reports whether p lies on the interior side of e for the
// polygon's winding: cross(end-start, p-start) has the sign that places p
// on the interior side given the "interior left of edge walk" convention.
func (e Edge) OnInteriorSide(p geom.Point2) bool {
	s := geom.Cross(e.Start(), e.End(), p).Sign()
	if e.poly.Winding() == geom.CCW {
		return s > 0
	}
	return s < 0
}

// OnExteriorSide is the strict complement of OnInteriorSide used by
// Intersect, named separately per spec.md §4.6 for readability at call
// sites ("a non-exterior result proves intersection").
func (e Edge) OnExteriorSide(p geom.Point2) bool {
	s := geom.Cross(e.Start(), e.End(), p).Sign()
	if e.poly.Winding() == geom.CCW {
		return s < 0
	}
	return s > 0
}

// YAtX returns the y-coordinate of e at the given x as an exact Fraction.
// x must lie within e's x-span.
func (e Edge) YAtX(x geom.Scalar1) geom.Fraction {
	return geom.YOnEdgeForX(e.Start(), e.End(), x)
}

// ContainsX reports whether x lies within e's closed x-span.
func (e Edge) ContainsX(x geom.Scalar1) bool {
	a, b := e.Start().X, e.End().X
	if a > b {
		a, b = b, a
	}
	return a <= x && x <= b
}

// EdgeRange is a half-open arc [first, last) of a polygon's boundary,
// identified by vertex indices, that is monotone in some horizontal
// direction. For any x within its x-span there is a unique edge whose span
// contains x, found by binary search (EdgeAtX).
type EdgeRange struct {
	poly        *polygon2.Polygon2
	first, last int // vertex indices; the range covers edges first..last-1
	dir         geom.HorizontalDirection
}

// NewEdgeRange builds the range [first, last) of poly, monotone in dir. The
// caller is responsible for the monotonicity precondition (spec.md §3).
func NewEdgeRange(poly *polygon2.Polygon2, first, last int, dir geom.HorizontalDirection) EdgeRange {
	return EdgeRange{poly: poly, first: first, last: last, dir: dir}
}

// IsEmpty reports whether the range contains no edges.
func (r EdgeRange) IsEmpty() bool { return r.first == r.last }

// Direction returns the direction the range is monotone in.
func (r EdgeRange) Direction() geom.HorizontalDirection { return r.dir }

// numEdges returns the number of edges spanned by the range, accounting for
// cyclic wraparound.
func (r EdgeRange) numEdges() int {
	n := r.poly.NumVertices()
	d := r.last - r.first
	if d < 0 {
		d += n
	}
	return d
}

// EdgeAtX returns the unique edge of r whose x-span contains x, found via
// binary search over the monotone range.
func (r EdgeRange) EdgeAtX(x geom.Scalar1) Edge {
	n := r.numEdges()
	lo, hi := 0, n // edge index lo is poly index (r.first+lo)
	for lo < hi {
		mid := (lo + hi) / 2
		idx := (r.first + mid) % r.poly.NumVertices()
		v := r.poly.At(idx)
		if v.LexPrecedes(geom.Point2{X: x, Y: v.Y}, r.dir) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// lo is the first vertex index (offset) whose x is >= x in dir order;
	// the containing edge starts at the preceding vertex unless lo==0.
	idx := lo
	if idx > 0 {
		idx--
	}
	return NewEdge(r.poly, (r.first+idx)%r.poly.NumVertices())
}

// First returns the vertex index the range starts at.
func (r EdgeRange) First() int { return r.first }

// Last returns the vertex index the range ends at (exclusive).
func (r EdgeRange) Last() int { return r.last }
