// Package autowire implements the auto-wirer (component C): when a Ladder
// arrives with zero connections and at least one node, it synthesizes a wire
// between every ordered pair of nodes that sit on adjacent grid columns at
// the same row. This is a compatibility path (§4.C) for diagrams authored
// without explicit wiring; any ladder that already carries at least one
// connection is taken as authoritative and passed through unchanged.
//
// The spatial-adjacency vocabulary (a Cell occupying an (x,y) grid position,
// neighbor lookup by coordinate) is a sparse point-set model: a ladder
// diagram's nodes sit at scattered (x,y) coordinates rather than filling a
// dense raster, so adjacency is computed by indexing nodes per column and
// probing the next column at the same row, instead of scanning a filled
// grid.
package autowire

import (
	"fmt"
	"sort"

	"github.com/plcgo/ladderc/ladder"
)

// Apply returns l unchanged if it already has at least one wire. Otherwise
// it returns a copy of l whose Wires slice has been populated by connecting
// every node at grid position (x,y) to every node at (x+1,y).
//
// Synthesized wire IDs are deterministic ("w:" + from.ID + "->" + to.ID),
// never random — §8 invariant I3 requires byte-identical repeated
// compilations, so no randomness-based ID source (e.g. a UUID generator)
// may appear on this path.
func Apply(l *ladder.Ladder) *ladder.Ladder {
	if len(l.Wires) > 0 || len(l.Nodes) == 0 {
		return l
	}

	byPosition := make(map[[2]int][]ladder.Node)
	for _, n := range l.Nodes {
		key := [2]int{n.X, n.Y}
		byPosition[key] = append(byPosition[key], n)
	}

	out := *l
	for _, n := range l.Nodes {
		nextKey := [2]int{n.X + 1, n.Y}
		partners, ok := byPosition[nextKey]
		if !ok {
			continue
		}
		for _, partner := range partners {
			out.Wires = append(out.Wires, ladder.Connection{
				ID:   fmt.Sprintf("w:%s->%s", n.ID, partner.ID),
				From: n.ID,
				To:   partner.ID,
			})
		}
	}

	// Deterministic order independent of input node ordering, per I3.
	sort.Slice(out.Wires, func(i, j int) bool { return out.Wires[i].ID < out.Wires[j].ID })

	return &out
}
