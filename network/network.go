// Package network implements the network partitioner (component E):
// weakly-connected-component discovery over a ladder's undirected adjacency
// view, restricted to the nodes that appear in at least one wire.
//
// The traversal engine is a plain breadth-first walker — a queue of pending
// node IDs plus a visited set — generalized from "find shortest paths from
// one start vertex" to "repeat from every unvisited connected node to carve
// the graph into components", since single-source distance is not the
// question this package answers; exhaustive partition is.
package network

import (
	"sort"

	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/ladder"
)

// Network is one weakly-connected component of the ladder graph, restricted
// to nodes reachable via the undirected adjacency view and known to contain
// at least one start block (§4.E: "a network is non-empty only if it
// contains at least one start block").
type Network struct {
	// NodeIDs holds every node in this component, sorted ascending.
	NodeIDs []string
	// StartIDs holds the component's start blocks (contacts at x=0 with no
	// predecessor), sorted by (y asc, x asc).
	StartIDs []string
	// MinStartY is the smallest y among StartIDs; used to order network
	// processing deterministically (§4.H: "networks are processed in
	// start-block y order").
	MinStartY int
}

// Partition runs repeated BFS over idx's undirected view, restricted to
// connected nodes, and returns one Network per weakly-connected component
// that contains at least one start block. Components without a start block
// are skipped per §4.E ("rationale: they have no power-rail entry").
//
// The returned slice is sorted by MinStartY ascending, then by the ID of the
// component's first start block, StartIDs[0] (a stable tie-break
// when two networks start at the same row, which cannot happen for
// well-formed input since a start block is unique per column-0 row, but
// keeps output deterministic under malformed input too).
func Partition(l *ladder.Ladder, idx *core.Index) []Network {
	visited := make(map[string]bool, len(l.Nodes))
	var out []Network

	// Iterate in a fixed node order (input order) so that which connected
	// component is discovered first never depends on map iteration order.
	for i := range l.Nodes {
		root := l.Nodes[i].ID
		if !idx.Connected(root) || visited[root] {
			continue
		}

		members := walk(idx, root, visited)
		sort.Strings(members)

		var starts []string
		for _, id := range members {
			if n := idx.Node(id); n != nil && idx.IsStartBlock(n) {
				starts = append(starts, id)
			}
		}
		if len(starts) == 0 {
			continue
		}
		sort.Slice(starts, func(a, b int) bool {
			na, nb := idx.Node(starts[a]), idx.Node(starts[b])
			if na.Y != nb.Y {
				return na.Y < nb.Y
			}
			return na.X < nb.X
		})

		minY := idx.Node(starts[0]).Y
		for _, id := range starts {
			if y := idx.Node(id).Y; y < minY {
				minY = y
			}
		}

		out = append(out, Network{NodeIDs: members, StartIDs: starts, MinStartY: minY})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MinStartY != out[j].MinStartY {
			return out[i].MinStartY < out[j].MinStartY
		}
		return out[i].StartIDs[0] < out[j].StartIDs[0]
	})

	return out
}

// walk performs one breadth-first traversal from root over idx's undirected
// view, marking every reached node visited, and returns the member IDs.
func walk(idx *core.Index, root string, visited map[string]bool) []string {
	queue := []string{root}
	visited[root] = true
	members := []string{root}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, nbr := range idx.Undirected(id) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			members = append(members, nbr)
			queue = append(queue, nbr)
		}
	}

	return members
}
