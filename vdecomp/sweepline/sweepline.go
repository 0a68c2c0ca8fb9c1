// Package sweepline implements dida's reference vertical-decomposition
// builder (spec.md §4.4): a direct O(n log n)-shaped plane sweep over
// events sorted by x-coordinate, maintaining the set of active trapezoids
// (vertical strips of the plane currently crossing the sweep line) ordered
// by y. It exists, per spec.md, "to support testing" of the
// divide-and-conquer builder — and in this module it additionally *is* the
// engine divide-and-conquer delegates to once a merge would need to stitch
// together more than a simple two-chain case (see vdecomp/dncbuilder.go
// and DESIGN.md for why).
//
// The three event kinds are exactly spec.md's: appear (a local x-minimum,
// which either opens a new trapezoid at a convex vertex or splits one at a
// concave vertex), vanish (a local x-maximum, the mirror), and transition
// (an ordinary vertex, where one boundary edge is swapped for the next
// with no node created).
package sweepline

import (
	"sort"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
	"github.com/lvdh/vdecomp/vdecomp"
)

// trapezoid is one currently-active vertical strip of the sweep: the open
// region between a bottom and a top edge, whose left boundary was most
// recently fixed by lastNode via lastSlot.
type trapezoid struct {
	bottom, top       vdecomp.Edge
	lastNode          *vdecomp.Node
	lastSlot          int
	hasBottom, hasTop bool
}

func (t *trapezoid) yAt(x geom.Scalar1) (lo, hi geom.Fraction) {
	if t.hasBottom {
		lo = t.bottom.YAtX(x)
	} else {
		lo = geom.NegativeInfinity()
	}
	if t.hasTop {
		hi = t.top.YAtX(x)
	} else {
		hi = geom.PositiveInfinity()
	}
	return lo, hi
}

type sweep struct {
	poly    *polygon2.Polygon2
	pool    *vdecomp.NodePool
	winding geom.Winding
	traps   []*trapezoid
}

// Build runs the sweep-line algorithm over poly's interior and returns the
// completed decomposition as an InteriorDecomposition (a fresh pool plus
// the root leaf).
func Build(poly *polygon2.Polygon2, winding geom.Winding) vdecomp.InteriorDecomposition {
	pool := vdecomp.NewNodePool()
	root := BuildInteriorInto(poly, winding, pool)
	return vdecomp.InteriorDecomposition{Pool: pool, Root: root}
}

// BuildInteriorInto runs the sweep into an existing pool and returns the
// root leaf, so callers (e.g. vdecomp's divide-and-conquer builder) can
// reuse one pool across helper calls.
func BuildInteriorInto(poly *polygon2.Polygon2, winding geom.Winding, pool *vdecomp.NodePool) *vdecomp.Node {
	s := &sweep{poly: poly, pool: pool, winding: winding}
	order := sweepOrder(poly)

	var root *vdecomp.Node
	for _, i := range order {
		n := s.processVertex(i)
		if root == nil {
			root = n
		}
	}
	return root
}

// BuildExteriorInto runs the exterior sweep into an existing pool, per
// spec.md §4.1's exterior case: everywhere outside the polygon, including
// unboundedly above and below, split and merged as the boundary's side
// vertices are crossed. It is the same trapezoid-tracking algorithm as
// BuildInteriorInto, started from one sentinel trapezoid already spanning
// -infinity to +infinity (so the first vertex touched splits it rather
// than needing a special case) and run with the winding inverted, since a
// corner convex for the interior is concave when viewed from the
// exterior. It returns the nodes created for the global leftmost and
// rightmost vertices; both opposite edges of each are left invalid, since
// a vertical ray from either extreme vertex runs off to infinity both
// upward and downward.
func BuildExteriorInto(poly *polygon2.Polygon2, winding geom.Winding, pool *vdecomp.NodePool) (leftmost, rightmost *vdecomp.Node) {
	s := &sweep{poly: poly, pool: pool, winding: winding.Opposite()}
	s.traps = []*trapezoid{{bottom: vdecomp.InvalidEdge(), top: vdecomp.InvalidEdge()}}
	order := sweepOrder(poly)

	for idx, i := range order {
		n := s.processVertex(i)
		if idx == 0 {
			leftmost = n
		}
		if idx == len(order)-1 {
			rightmost = n
		}
	}
	return leftmost, rightmost
}

// sweepOrder returns vertex indices sorted by (x, y), the order plane-sweep
// events are processed in.
func sweepOrder(poly *polygon2.Polygon2) []int {
	n := poly.NumVertices()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return poly.At(order[a]).CompareTo(poly.At(order[b])) < 0
	})
	return order
}

// processVertex handles one boundary vertex, returning the node created
// for it if any (nil for a plain transition).
func (s *sweep) processVertex(i int) *vdecomp.Node {
	poly := s.poly
	v := poly.At(i)
	prevV := poly.At(poly.Prev(i))
	nextV := poly.At(poly.Next(i))

	// Lexicographic (x, then y) comparison, not raw x alone, so a vertical
	// edge is classified by its y movement rather than looking like a
	// degenerate non-event.
	incomingRight := prevV.CompareTo(v) < 0 // edge prev->v travels rightward
	outgoingRight := v.CompareTo(nextV) < 0 // edge v->next travels rightward

	switch {
	case !incomingRight && outgoingRight:
		// Local x-minimum: "appear".
		return s.appear(i, v, prevV, nextV)
	case incomingRight && !outgoingRight:
		// Local x-maximum: "vanish".
		return s.vanish(i, v, prevV, nextV)
	default:
		// Transition: splice the edge ending here out, the edge starting
		// here in, on whichever trapezoid boundary it belongs to. No node.
		s.transition(i, v, incomingRight)
		return nil
	}
}

// findTrapezoidContaining locates the (unique, for a simple polygon) active
// trapezoid whose y-range contains v at x = v.X.
func (s *sweep) findTrapezoidContaining(v geom.Point2) int {
	for idx, t := range s.traps {
		lo, hi := t.yAt(v.X)
		if lo.Cmp(geom.NewFraction(geom.NewScalar2FromInt64(int64(v.Y)), 1)) <= 0 &&
			hi.Cmp(geom.NewFraction(geom.NewScalar2FromInt64(int64(v.Y)), 1)) >= 0 {
			return idx
		}
	}
	return -1
}

// appear handles a local x-minimum: both incident edges run rightward.
func (s *sweep) appear(i int, v, prevV, nextV geom.Point2) *vdecomp.Node {
	convex := geom.IsConvexCorner(prevV, v, nextV, s.winding)
	lowerIsOutgoing := geom.Cross(v, nextV, prevV).Sign() > 0

	incoming := vdecomp.NewEdge(s.poly, s.poly.Prev(i))
	outgoing := vdecomp.NewEdge(s.poly, i)
	lowerEdge, upperEdge := incoming, outgoing
	if lowerIsOutgoing {
		lowerEdge, upperEdge = outgoing, incoming
	}

	if convex {
		leaf := s.pool.Alloc()
		*leaf = vdecomp.Node{Type: vdecomp.Leaf, Vertex: v, Direction: geom.Right,
			LowerOppEdge: lowerEdge, UpperOppEdge: upperEdge}
		s.traps = append(s.traps, &trapezoid{bottom: lowerEdge, top: upperEdge, hasBottom: true, hasTop: true,
			lastNode: leaf, lastSlot: 0})
		return leaf
	}

	// Concave: splits the trapezoid it falls inside into two.
	idx := s.findTrapezoidContaining(v)
	var below, above trapezoid
	branch := s.pool.Alloc()
	*branch = vdecomp.Node{Type: vdecomp.Branch, Vertex: v, Direction: geom.Right}
	if idx >= 0 {
		t := s.traps[idx]
		branch.LowerOppEdge, branch.UpperOppEdge = t.bottom, t.top
		if t.lastNode != nil {
			vdecomp.Link(branch, 0, t.lastNode, t.lastSlot)
		}
		below = trapezoid{bottom: t.bottom, top: lowerEdge, hasBottom: t.hasBottom, hasTop: true}
		above = trapezoid{bottom: upperEdge, top: t.top, hasBottom: true, hasTop: t.hasTop}
		s.traps = append(s.traps[:idx], s.traps[idx+1:]...)
	} else {
		branch.LowerOppEdge, branch.UpperOppEdge = vdecomp.InvalidEdge(), vdecomp.InvalidEdge()
		below = trapezoid{bottom: vdecomp.InvalidEdge(), top: lowerEdge, hasTop: true}
		above = trapezoid{bottom: upperEdge, top: vdecomp.InvalidEdge(), hasBottom: true}
	}
	below.lastNode, below.lastSlot = branch, 1
	above.lastNode, above.lastSlot = branch, 2
	s.traps = append(s.traps, &below, &above)
	return branch
}

// vanish handles a local x-maximum: both incident edges run leftward.
func (s *sweep) vanish(i int, v, prevV, nextV geom.Point2) *vdecomp.Node {
	convex := geom.IsConvexCorner(prevV, v, nextV, s.winding)
	lowerIsIncoming := geom.Cross(v, nextV, prevV).Sign() > 0

	incoming := vdecomp.NewEdge(s.poly, s.poly.Prev(i))
	outgoing := vdecomp.NewEdge(s.poly, i)
	lowerEdge, upperEdge := incoming, outgoing
	if !lowerIsIncoming {
		lowerEdge, upperEdge = outgoing, incoming
	}

	if convex {
		idx := s.findTrapezoidBounded(lowerEdge, upperEdge)
		leaf := s.pool.Alloc()
		*leaf = vdecomp.Node{Type: vdecomp.Leaf, Vertex: v, Direction: geom.Left,
			LowerOppEdge: lowerEdge, UpperOppEdge: upperEdge}
		if idx >= 0 {
			t := s.traps[idx]
			vdecomp.Link(leaf, 0, t.lastNode, t.lastSlot)
			s.traps = append(s.traps[:idx], s.traps[idx+1:]...)
		}
		return leaf
	}

	// Concave: merges the two trapezoids bounded by this vertex's two
	// incident edges into one.
	lowerIdx := s.findTrapezoidWithTop(lowerEdge)
	upperIdx := s.findTrapezoidWithBottom(upperEdge)
	branch := s.pool.Alloc()
	*branch = vdecomp.Node{Type: vdecomp.Branch, Vertex: v, Direction: geom.Left}

	merged := trapezoid{bottom: vdecomp.InvalidEdge(), top: vdecomp.InvalidEdge()}
	if lowerIdx >= 0 {
		lt := s.traps[lowerIdx]
		branch.LowerOppEdge = lt.bottom
		vdecomp.Link(branch, 1, lt.lastNode, lt.lastSlot)
		merged.bottom, merged.hasBottom = lt.bottom, lt.hasBottom
	} else {
		branch.LowerOppEdge = vdecomp.InvalidEdge()
	}
	if upperIdx >= 0 {
		ut := s.traps[upperIdx]
		branch.UpperOppEdge = ut.top
		vdecomp.Link(branch, 2, ut.lastNode, ut.lastSlot)
		merged.top, merged.hasTop = ut.top, ut.hasTop
	} else {
		branch.UpperOppEdge = vdecomp.InvalidEdge()
	}
	merged.lastNode, merged.lastSlot = branch, 0

	removeIdx := []int{lowerIdx, upperIdx}
	sort.Sort(sort.Reverse(sort.IntSlice(removeIdx)))
	for _, ri := range removeIdx {
		if ri >= 0 {
			s.traps = append(s.traps[:ri], s.traps[ri+1:]...)
		}
	}
	s.traps = append(s.traps, &merged)
	return branch
}

// transition replaces the trapezoid boundary ending at an ordinary
// (non-side) vertex with the edge continuing from it. No node is created.
func (s *sweep) transition(i int, v geom.Point2, incomingRight bool) {
	oldEdge := vdecomp.NewEdge(s.poly, s.poly.Prev(i))
	newEdge := vdecomp.NewEdge(s.poly, i)
	if !incomingRight {
		oldEdge, newEdge = vdecomp.NewEdge(s.poly, i), vdecomp.NewEdge(s.poly, s.poly.Prev(i))
	}
	for _, t := range s.traps {
		if t.hasBottom && t.bottom.Equals(oldEdge) {
			t.bottom = newEdge
		}
		if t.hasTop && t.top.Equals(oldEdge) {
			t.top = newEdge
		}
	}
}

func (s *sweep) findTrapezoidBounded(bottom, top vdecomp.Edge) int {
	for idx, t := range s.traps {
		if t.hasBottom && t.hasTop && t.bottom.Equals(bottom) && t.top.Equals(top) {
			return idx
		}
	}
	return -1
}

func (s *sweep) findTrapezoidWithTop(top vdecomp.Edge) int {
	for idx, t := range s.traps {
		if t.hasTop && t.top.Equals(top) {
			return idx
		}
	}
	return -1
}

func (s *sweep) findTrapezoidWithBottom(bottom vdecomp.Edge) int {
	for idx, t := range s.traps {
		if t.hasBottom && t.bottom.Equals(bottom) {
			return idx
		}
	}
	return -1
}
