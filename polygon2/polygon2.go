// Package polygon2 holds the validated simple-polygon value type that the
// vertical-decomposition core is built on, grounded on
// golang-geo's s2.Loop (a read-only cyclic vertex sequence with stable
// random access) but adapted to exact planar coordinates and to the
// "interior-left-of-edge-walk" winding convention vdecomp assumes.
package polygon2

import "github.com/lvdh/vdecomp/geom"

// Polygon2 is an ordered cyclic sequence of vertices describing a simple
// (non-self-intersecting) polygon boundary. It is read-only: once built, its
// vertex sequence and winding never change. Vertices are owned by the
// caller-supplied slice and live exactly as long as that slice does, per
// spec.md's lifecycle note.
type Polygon2 struct {
	vertices []geom.Point2
	winding  geom.Winding
}

// New wraps vertices with an explicit winding, without validating simplicity.
// Callers that don't already know the polygon is simple should call Validate
// first (or use NewValidated).
func New(vertices []geom.Point2, winding geom.Winding) Polygon2 {
	return Polygon2{vertices: vertices, winding: winding}
}

// NewValidated wraps vertices after confirming they form a valid simple
// polygon (see Validate), returning the wrap error instead of the Polygon2
// on failure.
func NewValidated(vertices []geom.Point2, winding geom.Winding) (Polygon2, error) {
	if err := Validate(vertices); err != nil {
		return Polygon2{}, err
	}
	return New(vertices, winding), nil
}

// NumVertices returns the number of vertices on the boundary.
func (p Polygon2) NumVertices() int { return len(p.vertices) }

// Winding returns the polygon's orientation.
func (p Polygon2) Winding() geom.Winding { return p.winding }

// At returns the vertex at index i, taken modulo NumVertices so that
// out-of-range (including negative) indices wrap cyclically, mirroring the
// cyclic vertex iterators of dida's ArrayView-based Polygon2.
func (p Polygon2) At(i int) geom.Point2 {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Vertices returns the read-only backing slice in boundary order.
func (p Polygon2) Vertices() []geom.Point2 { return p.vertices }

// Next returns the index following i in the cyclic sequence.
func (p Polygon2) Next(i int) int { return (i + 1) % len(p.vertices) }

// Prev returns the index preceding i in the cyclic sequence.
func (p Polygon2) Prev(i int) int { return (i - 1 + len(p.vertices)) % len(p.vertices) }

// Equals reports whether p and other have the same vertex sequence
// (starting at the same index) and winding.
func (p Polygon2) Equals(other Polygon2) bool {
	if p.winding != other.winding || len(p.vertices) != len(other.vertices) {
		return false
	}
	for i := range p.vertices {
		if !p.vertices[i].Equals(other.vertices[i]) {
			return false
		}
	}
	return true
}

// Flip returns the polygon obtained by negating every vertex's x-coordinate
// and reversing the vertex sequence, with the winding swapped. This is the
// transform used by P5 (invariance under horizontal flip) in the test suite.
func (p Polygon2) Flip() Polygon2 {
	n := len(p.vertices)
	flipped := make([]geom.Point2, n)
	for i, v := range p.vertices {
		flipped[n-1-i] = geom.Point2{X: v.X.Neg(), Y: v.Y}
	}
	return Polygon2{vertices: flipped, winding: p.winding.Opposite()}
}

// LeftmostIndex returns the index of the lexicographically leftmost vertex
// (ties broken by the lowest index first encountered).
func (p Polygon2) LeftmostIndex() int {
	best := 0
	for i := 1; i < len(p.vertices); i++ {
		if p.vertices[i].CompareTo(p.vertices[best]) < 0 {
			best = i
		}
	}
	return best
}

// RightmostIndex returns the index of the lexicographically rightmost vertex.
func (p Polygon2) RightmostIndex() int {
	best := 0
	for i := 1; i < len(p.vertices); i++ {
		if p.vertices[i].CompareTo(p.vertices[best]) > 0 {
			best = i
		}
	}
	return best
}
