// Package emit implements the rung emitter (component H): groups a
// network's terminals by shared condition and kind, and produces one rung
// per group in deterministic order (§4.H).
package emit

import (
	"sort"

	"github.com/plcgo/ladderc/classify"
	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/diag"
	"github.com/plcgo/ladderc/ir"
	"github.com/plcgo/ladderc/ladder"
	"github.com/plcgo/ladderc/network"
	"github.com/plcgo/ladderc/synth"
)

// Network emits the rungs for one network. comment is the ladder's
// RungLabel(), shared by every rung this network produces. diags receives
// any cycle-detected warnings synth raises while walking the network.
//
// Determinism follows §4.H: terminals are discovered in NodeIDs order (which
// network.Partition already sorts ascending), terminal groups are emitted in
// the order their fingerprint key is first encountered, and terminals within
// a group are sorted by (y asc, x asc) before being appended.
func Network(idx *core.Index, net network.Network, comment string, diags *diag.Collector) []ir.Rung {
	roles := classify.Roles(idx, net)
	s := synth.New(idx, roles, diags)

	type group struct {
		condition []ir.Element
		kind      ladder.Kind
		terminals []string
	}

	var order []string
	groups := make(map[string]*group)

	for _, id := range net.NodeIDs {
		if roles[id] != classify.RoleTerminal {
			continue
		}
		n := idx.Node(id)
		condition := s.Condition(id)
		key := ir.Fingerprint(condition) + "|" + string(n.Kind)

		g, ok := groups[key]
		if !ok {
			g = &group{condition: condition, kind: n.Kind}
			groups[key] = g
			order = append(order, key)
		}
		g.terminals = append(g.terminals, id)
	}

	rungs := make([]ir.Rung, 0, len(order))
	for _, key := range order {
		g := groups[key]

		sort.Slice(g.terminals, func(i, j int) bool {
			ni, nj := idx.Node(g.terminals[i]), idx.Node(g.terminals[j])
			if ni.Y != nj.Y {
				return ni.Y < nj.Y
			}
			return ni.X < nj.X
		})

		elements := append([]ir.Element(nil), g.condition...)
		for _, tid := range g.terminals {
			elements = append(elements, ir.LeafFromNode(idx.Node(tid)))
		}

		rungs = append(rungs, ir.Rung{Comment: comment, Elements: elements})
	}

	return rungs
}
