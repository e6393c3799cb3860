package diag

import (
	"sort"

	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/ladder"
)

// familyOf groups a node kind into the family name used by the "disconnected"
// diagnostic (§4.D: "grouped by kind family (contact / coil / timer /
// counter)").
func familyOf(n *ladder.Node) string {
	switch {
	case n.IsContact():
		return "contact"
	case n.IsCoil():
		return "coil"
	case n.IsTimer():
		return "timer"
	case n.IsCounter():
		return "counter"
	case n.IsCompareFB():
		return "compare"
	case n.IsFunctionBlock():
		return "function_block"
	default:
		return "node"
	}
}

// CollectStructural records the structural diagnostics of §4.D/§7 that can be
// determined before network partitioning: all-empty ladder, disconnected
// nodes (grouped by family), and dangling actions/timers/counters (action or
// timer/counter with no incoming wire).
func CollectStructural(c *Collector, l *ladder.Ladder, idx *core.Index) {
	if len(l.Nodes) == 0 {
		c.Error(KindEmptyLadder, nil, "ladder has no nodes")
		return
	}

	disconnectedByFamily := map[string][]string{}
	anyConnected := false
	for i := range l.Nodes {
		n := &l.Nodes[i]
		if idx.Connected(n.ID) {
			anyConnected = true
			continue
		}
		disconnectedByFamily[familyOf(n)] = append(disconnectedByFamily[familyOf(n)], n.ID)
	}

	if !anyConnected {
		c.Error(KindNoWires, nil, "ladder has %d node(s) but zero connections after auto-wiring", len(l.Nodes))
		return
	}

	families := make([]string, 0, len(disconnectedByFamily))
	for fam := range disconnectedByFamily {
		families = append(families, fam)
	}
	sort.Strings(families)
	for _, fam := range families {
		ids := disconnectedByFamily[fam]
		sort.Strings(ids)
		c.Error(KindDisconnectedNode, ids, "%d disconnected %s node(s): %v", len(ids), fam, ids)
	}

	for _, n := range l.Nodes {
		needsPower := n.IsAction() || n.IsTimer() || n.IsCounter()
		if !needsPower {
			continue
		}
		if len(idx.Predecessors(n.ID)) > 0 {
			continue
		}
		if !idx.Connected(n.ID) {
			// Already reported as disconnected; a dangling report would be
			// redundant noise for the same node.
			continue
		}
		c.Error(KindDanglingAction, []string{n.ID}, "%s %q has no incoming wire", n.Kind, n.ID)
	}
}

// ReportUnreachableContactPath records the diagnostic this repo computes for
// real: a contact or compare block that never reaches any terminal. ids is
// the set of intermediate contact/compare-FB node IDs that never appeared as
// a leaf element in any emitted rung.
func ReportUnreachableContactPath(c *Collector, ids []string) {
	if len(ids) == 0 {
		return
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	c.Warning(KindUnreachableContactPath, sorted, "%d contact/compare node(s) drive no action: %v", len(sorted), sorted)
}
