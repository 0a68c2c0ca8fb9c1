// Package fuzzpoly generates random simple polygons for the property-based
// fuzz targets spec.md §9 calls for against the "Difficult" class of
// merge-phase inputs (deep zigzags, many side vertices per chain). Built
// on google/gofuzz, inherited from the teacher's go.mod, which none of
// the teacher's own copied code actually used — here it finally gets a
// real job: driving the random parameter choices (point count, radius
// jitter, arm count) behind each generator, so a fuzz run is reproducible
// from a single seed the way gofuzz.Fuzzer is designed for.
package fuzzpoly

import (
	"math"

	fuzz "github.com/google/gofuzz"

	"github.com/lvdh/vdecomp/geom"
)

// Star generates a star-shaped simple polygon with n points: 2n vertices at
// angles evenly spaced around the origin, alternating between an outer and
// inner radius,
// jittered by f so no two runs with the same seed but different calls
// produce the identical shape.
func Star(f *fuzz.Fuzzer, n int, outer, inner int64) []geom.Point2 {
	if n < 3 {
		n = 3
	}
	pts := make([]geom.Point2, 2*n)
	for i := 0; i < 2*n; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		var jitter int64
		f.Fuzz(&jitter)
		jitter = jitter%(radius/8+1) - radius/16
		angle := 2 * math.Pi * float64(i) / float64(2*n)
		x := int64(float64(radius+jitter) * math.Cos(angle))
		y := int64(float64(radius+jitter) * math.Sin(angle))
		pts[i] = geom.Point2{X: geom.Scalar1(x), Y: geom.Scalar1(y)}
	}
	return pts
}

// Spiral generates a simple polygon shaped like a tight outward spiral
// with turns arms, a deliberately "Difficult" shape per spec.md §9: each
// turn produces a side vertex on both the inner and outer edge of the
// spiral, so the zigzag phase sees many chains in quick succession.
func Spiral(turns int, armLength int64) []geom.Point2 {
	if turns < 2 {
		turns = 2
	}
	var outer, inner []geom.Point2
	for t := 0; t < turns; t++ {
		angle := float64(t) * math.Pi / 2
		r := armLength * int64(t+1)
		outer = append(outer, geom.Point2{
			X: geom.Scalar1(int64(float64(r) * math.Cos(angle))),
			Y: geom.Scalar1(int64(float64(r) * math.Sin(angle))),
		})
		innerR := r - armLength/2
		inner = append(inner, geom.Point2{
			X: geom.Scalar1(int64(float64(innerR) * math.Cos(angle+0.3))),
			Y: geom.Scalar1(int64(float64(innerR) * math.Sin(angle+0.3))),
		})
	}
	pts := make([]geom.Point2, 0, len(outer)+len(inner))
	pts = append(pts, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		pts = append(pts, inner[i])
	}
	return dedupeConsecutive(pts)
}

// Clam generates a shallow zigzag ("clam shell") boundary along the top
// of an otherwise simple convex base: exactly the shape spec.md §9 uses
// to illustrate a chain boundary with several convex/concave side
// vertices in a row within a single merge.
func Clam(f *fuzz.Fuzzer, teeth int, width, baseHeight, toothHeight int64) []geom.Point2 {
	if teeth < 1 {
		teeth = 1
	}
	step := width / int64(2*teeth)
	pts := []geom.Point2{{X: 0, Y: 0}}
	x := int64(0)
	up := true
	for i := 0; i < 2*teeth; i++ {
		x += step
		y := int64(0)
		if up {
			y = toothHeight
		}
		var jitter int64
		f.Fuzz(&jitter)
		y += jitter % (toothHeight/4 + 1)
		pts = append(pts, geom.Point2{X: geom.Scalar1(x), Y: geom.Scalar1(baseHeight + y)})
		up = !up
	}
	pts = append(pts, geom.Point2{X: geom.Scalar1(width), Y: 0})
	return dedupeConsecutive(pts)
}

func dedupeConsecutive(pts []geom.Point2) []geom.Point2 {
	out := pts[:0:0]
	for i, p := range pts {
		if i > 0 && p.Equals(pts[i-1]) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Equals(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
