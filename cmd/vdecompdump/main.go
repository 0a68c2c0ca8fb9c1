// Command vdecompdump builds the interior vertical decomposition of a
// small built-in sample polygon and writes its node pool as JSON to
// stdout, exercising vdecomp/dump end to end.
package main

import (
	"fmt"
	"os"

	"github.com/lvdh/vdecomp/geom"
	"github.com/lvdh/vdecomp/polygon2"
	"github.com/lvdh/vdecomp/vdecomp"
	"github.com/lvdh/vdecomp/vdecomp/dump"
)

func samplePolygon() *polygon2.Polygon2 {
	vertices := []geom.Point2{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 2, Y: 2},
		{X: 0, Y: 4},
	}
	poly := polygon2.New(vertices, geom.CCW)
	return &poly
}

func main() {
	poly := samplePolygon()
	decomp := vdecomp.BuildInteriorDecomposition(poly, poly.Winding())

	out, err := dump.Dump(decomp.Pool)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vdecompdump: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
