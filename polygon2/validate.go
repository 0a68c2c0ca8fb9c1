package polygon2

import (
	"fmt"

	"github.com/lvdh/vdecomp/geom"
)

// Validate checks the preconditions vdecomp's algorithms assume: at least 3
// vertices, no duplicate vertices, and no proper crossing between
// non-adjacent edges. A vertex touching a non-adjacent edge, or two
// collinear edges overlapping, is not detected. It does not check
// winding, since winding is a
// caller-supplied parameter rather than a property to infer here (see
// InferWinding for that).
//
// This is O(n^2) and is meant for validating user-supplied input once, not
// for use inside the hot algorithms, which assume it has already run.
func Validate(vertices []geom.Point2) error {
	n := len(vertices)
	if n < 3 {
		return fmt.Errorf("polygon2: need at least 3 vertices, got %d", n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if vertices[i].Equals(vertices[j]) {
				return fmt.Errorf("polygon2: duplicate vertex at indices %d and %d", i, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		a0, a1 := vertices[i], vertices[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i {
				continue
			}
			// Skip edges adjacent to edge i (share a vertex).
			if j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b0, b1 := vertices[j], vertices[(j+1)%n]
			if segmentsProperlyIntersect(a0, a1, b0, b1) {
				return fmt.Errorf("polygon2: edges %d and %d intersect", i, j)
			}
		}
	}
	return nil
}

func segmentsProperlyIntersect(a0, a1, b0, b1 geom.Point2) bool {
	d1 := geom.Cross(b0, b1, a0).Sign()
	d2 := geom.Cross(b0, b1, a1).Sign()
	d3 := geom.Cross(a0, a1, b0).Sign()
	d4 := geom.Cross(a0, a1, b1).Sign()
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// SignedArea returns twice the signed area enclosed by vertices, positive
// for a counter-clockwise boundary and negative for clockwise, following
// dida/polygon2_utils.cpp's signed_area.
func SignedArea(vertices []geom.Point2) geom.Scalar2 {
	n := len(vertices)
	sum := geom.NewScalar2FromInt64(0)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		sum = sum.Add(a.X.Mul(b.Y)).Sub(b.X.Mul(a.Y))
	}
	return sum
}

// InferWinding returns the winding implied by vertices' signed area. The
// vertices must not be degenerate (zero enclosed area).
func InferWinding(vertices []geom.Point2) geom.Winding {
	if SignedArea(vertices).Sign() >= 0 {
		return geom.CCW
	}
	return geom.CW
}
