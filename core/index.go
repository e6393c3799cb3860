// Package core builds the graph index (component B) over a ladder.Ladder:
// forward and reverse adjacency, an undirected view used solely for
// connected-component discovery, and the set of node IDs that appear in at
// least one wire.
//
// An Index is built once from an already-immutable Ladder and never mutated
// again, unlike a long-lived mutable graph protected by a read/write mutex:
// per §5 the whole compiler is a pure, single-threaded, synchronous
// transformation, so there is no concurrent mutation to guard against and a
// lock would be dead weight here.
package core

import (
	"sort"

	"github.com/plcgo/ladderc/ladder"
)

// Index is the read-only adjacency view of one ladder. Build it once per
// compile call; never mutate it afterward.
type Index struct {
	ladder *ladder.Ladder
	nodes  map[string]*ladder.Node

	forward     map[string][]string
	reverse     map[string][]string
	undirected  map[string][]string
	connectedID map[string]struct{}
}

// Build constructs an Index from l. It does not validate l (callers run
// ladder.Validate or diag.CollectModelErrors first); Build is defensive only
// against wires that reference unknown node IDs, which it silently skips,
// since such wires are already reported as diagnostics upstream.
func Build(l *ladder.Ladder) *Index {
	idx := &Index{
		ladder:      l,
		nodes:       l.NodesByID(),
		forward:     make(map[string][]string, len(l.Nodes)),
		reverse:     make(map[string][]string, len(l.Nodes)),
		undirected:  make(map[string][]string, len(l.Nodes)),
		connectedID: make(map[string]struct{}, len(l.Nodes)),
	}

	for _, w := range l.Wires {
		if _, ok := idx.nodes[w.From]; !ok {
			continue
		}
		if _, ok := idx.nodes[w.To]; !ok {
			continue
		}
		idx.forward[w.From] = append(idx.forward[w.From], w.To)
		idx.reverse[w.To] = append(idx.reverse[w.To], w.From)
		idx.undirected[w.From] = append(idx.undirected[w.From], w.To)
		idx.undirected[w.To] = append(idx.undirected[w.To], w.From)
		idx.connectedID[w.From] = struct{}{}
		idx.connectedID[w.To] = struct{}{}
	}

	for id := range idx.forward {
		sort.Strings(idx.forward[id])
	}
	for id := range idx.reverse {
		sort.Strings(idx.reverse[id])
	}
	for id := range idx.undirected {
		sort.Strings(idx.undirected[id])
	}

	return idx
}

// Node resolves a node ID to its record, or nil if absent.
func (idx *Index) Node(id string) *ladder.Node { return idx.nodes[id] }

// Successors returns the sorted, outgoing-neighbor IDs of id.
func (idx *Index) Successors(id string) []string { return idx.forward[id] }

// Predecessors returns the sorted, incoming-neighbor IDs of id.
func (idx *Index) Predecessors(id string) []string { return idx.reverse[id] }

// Undirected returns the sorted neighbor IDs of id in the undirected view,
// used only for connected-component discovery (§4.B).
func (idx *Index) Undirected(id string) []string { return idx.undirected[id] }

// Connected reports whether id appears in at least one wire.
func (idx *Index) Connected(id string) bool {
	_, ok := idx.connectedID[id]
	return ok
}

// ConnectedIDs returns the set of node IDs appearing in at least one wire.
func (idx *Index) ConnectedIDs() map[string]struct{} { return idx.connectedID }

// Ladder returns the underlying ladder this Index was built from.
func (idx *Index) Ladder() *ladder.Ladder { return idx.ladder }

// IsStartBlock reports whether n is a left-rail entry point: a contact at
// grid column 0 with no incoming wire (§4.E, §4.F). This is the single
// predicate both the network partitioner and the classifier use to decide
// where power enters a network, so it lives on Index rather than being
// duplicated in each consumer.
func (idx *Index) IsStartBlock(n *ladder.Node) bool {
	return n.Kind == ladder.KindContact && n.X == 0 && len(idx.Predecessors(n.ID)) == 0
}
