//go:build vdecompdebug

package vdecomp

import (
	"fmt"

	"github.com/lvdh/vdecomp/polygon2"
)

// ValidateInvariants walks every node in pool and checks I1 (each valid
// opposite edge of a branch is the edge a vertical ray hits), that a leaf
// has no Neighbors[1]/[2], and that neighbor links are symmetric (the
// last two are parts of I5). It does not check I2 (a leaf's opposite
// edges), I3 (branch directions) or I4 (region boundaries and their
// monotonicity). It is compiled in only under the
// vdecompdebug build tag, mirroring dida's own debug-only assertion
// layer (design notes §9): a library, not a service, has no runtime flag
// to gate this behind, so a build tag is the idiomatic substitute.
//
// poly is the polygon the pool's nodes were built over; I1 casts an actual
// vertical ray against it rather than trust whatever edge a node happens
// to carry. poly may be nil when pool's nodes aren't tied to any real
// polygon (e.g. a hand-built pool in a unit test) — callers in that
// position must leave every opposite edge at InvalidEdge(), since I1 has
// no ray to cast against and cannot check a valid one.
func ValidateInvariants(poly *polygon2.Polygon2, pool *NodePool) error {
	for _, n := range pool.AllNodes() {
		if err := validateNode(poly, n); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(poly *polygon2.Polygon2, n *Node) error {
	switch n.Type {
	case Leaf:
		// I5: a leaf uses only Neighbors[0].
		if n.Neighbors[1] != nil || n.Neighbors[2] != nil {
			return fmt.Errorf("vdecomp: leaf at %v has a lower/upper neighbor set", n.Vertex)
		}
	case Branch, OuterBranch:
		// I1: an opposite edge, when valid, must be the edge a true
		// vertical ray from the node's vertex actually hits on that side
		// — not merely an edge that happens to span the vertex's x.
		// ContainsX alone is trivially satisfied by an edge incident to
		// the vertex itself (it always "spans" its own endpoint's x),
		// which is exactly the wrong answer a bad resolution can produce;
		// only a real ray cast catches that.
		if err := validateOppEdge(poly, n, n.LowerOppEdge, false, "lower"); err != nil {
			return err
		}
		if err := validateOppEdge(poly, n, n.UpperOppEdge, true, "upper"); err != nil {
			return err
		}
	}

	// I5: neighbor links are symmetric — the loop below runs for every
	// node type, so fall through from the switch above.
	return validateLinks(n)
}

// validateOppEdge checks I1 for a single side of a branch node: when the
// stored edge is valid, it must span the vertex's x (the cheap necessary
// condition) and it must be the edge rayCastVertical finds in that
// direction (the actual check). poly is required for the second check; a
// nil poly is only tolerated when edge itself is InvalidEdge(), since
// there is then nothing to verify a ray against.
func validateOppEdge(poly *polygon2.Polygon2, n *Node, edge Edge, upward bool, side string) error {
	if !edge.IsValid() {
		return nil
	}
	if !edge.ContainsX(n.Vertex.X) {
		return fmt.Errorf("vdecomp: branch at %v has %s opposite edge not spanning its x", n.Vertex, side)
	}
	if poly == nil {
		return fmt.Errorf("vdecomp: branch at %v has a valid %s opposite edge but no polygon to validate it against", n.Vertex, side)
	}
	want, ok := rayCastVertical(poly, n.Vertex, upward)
	if !ok || !want.Equals(edge) {
		return fmt.Errorf("vdecomp: branch at %v has %s opposite edge %v, but a vertical ray hits %v", n.Vertex, side, edge, want)
	}
	return nil
}

// validateLinks checks I5's link symmetry: neighbor links are symmetric — if
// A.Neighbors[i] == B then some slot of B points back to A.
func validateLinks(n *Node) error {
	for i, nb := range n.Neighbors {
		if nb == nil {
			continue
		}
		found := false
		for _, back := range nb.Neighbors {
			if back == n {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("vdecomp: asymmetric link from %v (slot %d) to %v", n.Vertex, i, nb.Vertex)
		}
	}
	return nil
}
