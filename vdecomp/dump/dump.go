// Package dump renders a decomposition's node pool as JSON for offline
// inspection — the same role golang-geo's textformat_test.go parsing
// helpers serve in reverse (turning internal state into a debuggable text
// form rather than parsing a text form into internal state). Built on
// json-iterator/go, a drop-in encoding/json replacement the module
// inherits from its teacher's go.mod, wired here since nothing else in
// vdecomp needs a JSON encoder and a library left unimported in the
// final tree would be dead weight.
package dump

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/lvdh/vdecomp/vdecomp"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// NodeView is the JSON-friendly projection of a Node: pointers become
// indices into the dump's own node list so the structure round-trips
// through a human-readable file.
type NodeView struct {
	Index        int    `json:"index"`
	Type         string `json:"type"`
	Direction    string `json:"direction"`
	X            int64  `json:"x"`
	Y            int64  `json:"y"`
	Neighbors    [3]int `json:"neighbors"` // -1 for nil
	HasLowerOpp  bool   `json:"has_lower_opp"`
	HasUpperOpp  bool   `json:"has_upper_opp"`
}

// Dump converts every node in pool into a JSON document, in pool
// allocation order, with Neighbors resolved to indices into that order.
func Dump(pool *vdecomp.NodePool) ([]byte, error) {
	nodes := pool.AllNodes()
	index := make(map[*vdecomp.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	views := make([]NodeView, len(nodes))
	for i, n := range nodes {
		v := NodeView{
			Index:       i,
			Type:        n.Type.String(),
			Direction:   n.Direction.String(),
			X:           int64(n.Vertex.X),
			Y:           int64(n.Vertex.Y),
			HasLowerOpp: n.HasLowerBoundary(),
			HasUpperOpp: n.HasUpperBoundary(),
		}
		for s, nb := range n.Neighbors {
			if nb == nil {
				v.Neighbors[s] = -1
				continue
			}
			v.Neighbors[s] = index[nb]
		}
		views[i] = v
	}
	return api.MarshalIndent(views, "", "  ")
}

// Load parses a Dump document back into standalone NodeView records
// (not a reconstructed *vdecomp.NodePool — the pool's pointer identity
// can't be round-tripped, only inspected).
func Load(data []byte) ([]NodeView, error) {
	var views []NodeView
	if err := api.Unmarshal(data, &views); err != nil {
		return nil, err
	}
	return views, nil
}
