// Package classify implements the classifier (component F): per-network
// node tagging into the five roles §4.F defines. Its predicate style
// (exhaustive switch over Kind-derived booleans, no type assertions) follows
// the same tagged-variant idiom as ladder's predicates.go, which it builds
// directly on.
package classify

import (
	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/ladder"
	"github.com/plcgo/ladderc/network"
)

// Role is one of the five per-node classifications §4.F defines.
type Role int

const (
	// RoleStart: a contact at x=0 with no predecessor.
	RoleStart Role = iota
	// RoleTerminal: an action with no downstream at all, or a timer/counter
	// with no outgoing wires. Compare FBs are never terminals.
	RoleTerminal
	// RolePassThroughAction: an action whose downstream is exclusively
	// other actions; contributes no element, only propagates power.
	RolePassThroughAction
	// RoleTapRequiringAction: an action with at least one non-action
	// downstream; contributes its element followed by a tap marker.
	RoleTapRequiringAction
	// RoleIntermediate: a contact, a compare FB, or a timer/counter that
	// still has outgoing wires — anything not covered above.
	RoleIntermediate
)

// Roles maps every node ID in net to its Role.
//
// §4.F's "terminal" bullet list reads, literally, as two overlapping
// conditions: "an action with no action-downstream and no non-action
// downstream" and "an action whose downstream is exclusively other actions
// (end-of-action-chain)" — but the second is the same trigger the very next
// paragraph assigns to pass-through action ("action with downstream that is
// exclusively other actions"). Read together with §4.H (only terminals are
// grouped into rungs; a pass-through action "contributes no element" and so
// cannot itself anchor a rung), the consistent reading is: an action is
// terminal only when it has *zero* successors at all; an action whose every
// successor is itself an action, but which *has* successors, is a
// pass-through link in a longer chain, not a second kind of terminal. This
// function implements that reading.
func Roles(idx *core.Index, net network.Network) map[string]Role {
	roles := make(map[string]Role, len(net.NodeIDs))

	for _, id := range net.NodeIDs {
		n := idx.Node(id)
		if n == nil {
			continue
		}
		roles[id] = classify(idx, n)
	}

	return roles
}

func classify(idx *core.Index, n *ladder.Node) Role {
	if idx.IsStartBlock(n) {
		return RoleStart
	}

	if n.IsTimer() || n.IsCounter() {
		if len(idx.Successors(n.ID)) == 0 {
			return RoleTerminal
		}
		return RoleIntermediate
	}

	if !n.IsAction() {
		// Contact, or compare FB: never a terminal, always intermediate.
		return RoleIntermediate
	}

	successors := idx.Successors(n.ID)
	if len(successors) == 0 {
		return RoleTerminal
	}

	allActions := true
	for _, sid := range successors {
		sn := idx.Node(sid)
		if sn == nil || !sn.IsAction() {
			allActions = false
			break
		}
	}
	if allActions {
		return RolePassThroughAction
	}
	return RoleTapRequiringAction
}
