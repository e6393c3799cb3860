package diag

import "github.com/plcgo/ladderc/ladder"

// CollectModelErrors re-checks the structural invariants ladder.Validate
// enforces (I1, I2, W1) but, unlike Validate's fail-fast single error,
// records every violation it finds and keeps going — per §7, the core
// reports rather than aborts. Callers typically run this before
// core.Build so downstream components see diagnostics for every malformed
// node/wire even when Validate itself would have stopped at the first one.
func CollectModelErrors(c *Collector, l *ladder.Ladder) {
	seen := make(map[string]struct{}, len(l.Nodes))
	byID := make(map[string]*ladder.Node, len(l.Nodes))

	for i := range l.Nodes {
		n := &l.Nodes[i]
		if n.ID == "" {
			c.Error(KindEmptyNodeID, nil, "node at index %d has an empty ID", i)
			continue
		}
		if n.X < 0 || n.Y < 0 {
			c.Error(KindNegativeCoordinate, []string{n.ID}, "node %q has negative coordinate (%d,%d)", n.ID, n.X, n.Y)
		}
		if !ladder.ValidKind(n.Kind) {
			c.Error(KindUnknownKind, []string{n.ID}, "node %q has unknown kind %q", n.ID, n.Kind)
		}
		if _, dup := seen[n.ID]; dup {
			c.Error(KindDuplicateNodeID, []string{n.ID}, "duplicate node ID %q", n.ID)
			continue
		}
		seen[n.ID] = struct{}{}
		byID[n.ID] = n
	}

	for _, w := range l.Wires {
		from, fromOK := byID[w.From]
		to, toOK := byID[w.To]
		if !fromOK || !toOK {
			c.Error(KindDanglingConnection, []string{w.From, w.To}, "wire %q references an unknown node", w.ID)
			continue
		}
		if !(from.X < to.X) {
			c.Error(KindBackwardWire, []string{from.ID, to.ID}, "wire %q violates left-to-right direction (W1): %s@%d -> %s@%d", w.ID, from.ID, from.X, to.ID, to.X)
		}
	}
}
