// Package compile implements the top-level facade (§4 control flow): it
// wires components A through H into the single entry point a host calls to
// turn a ladder.Ladder into an ir.Output.
package compile

import (
	"github.com/plcgo/ladderc/autowire"
	"github.com/plcgo/ladderc/classify"
	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/diag"
	"github.com/plcgo/ladderc/emit"
	"github.com/plcgo/ladderc/ir"
	"github.com/plcgo/ladderc/ladder"
	"github.com/plcgo/ladderc/network"
)

// Compile runs the full pipeline: auto-wire, build the graph index, collect
// structural/preset diagnostics, partition into networks, classify and
// synthesize each network's terminals, and emit rungs. It never returns a Go
// error — per §7, malformed input degrades to diagnostics attached to the
// output, and rungs are still emitted for whatever structure remains valid.
func Compile(l *ladder.Ladder) *ir.Output {
	wired := autowire.Apply(l)

	c := diag.New()
	diag.CollectModelErrors(c, wired)
	diag.CollectPresetErrors(c, wired)

	idx := core.Build(wired)
	diag.CollectStructural(c, wired, idx)

	nets := network.Partition(wired, idx)

	var rungs []ir.Rung
	var unreachable []string
	label := wired.RungLabel()

	for _, net := range nets {
		roles := classify.Roles(idx, net)
		rungs = append(rungs, emit.Network(idx, net, label, c)...)

		reachable := make(map[string]struct{})
		markReachable(idx, net, roles, reachable)
		for _, id := range net.NodeIDs {
			n := idx.Node(id)
			if roles[id] != classify.RoleIntermediate || !(n.IsContact() || n.IsCompareFB()) {
				continue
			}
			if _, ok := reachable[id]; !ok {
				unreachable = append(unreachable, id)
			}
		}
	}
	diag.ReportUnreachableContactPath(c, unreachable)

	out := &ir.Output{Rungs: rungs, Errors: toDiagnostics(c.Entries())}
	if out.Rungs == nil {
		out.Rungs = []ir.Rung{}
	}
	return out
}

// markReachable flags every node in net that can reach a terminal (directly
// or through intervening intermediates), by walking backward from each
// terminal over the reverse adjacency — cheaper than a forward search from
// every intermediate node, and equivalent since reachability is symmetric
// under edge reversal.
func markReachable(idx *core.Index, net network.Network, roles map[string]classify.Role, reachable map[string]struct{}) {
	var stack []string
	for _, id := range net.NodeIDs {
		if roles[id] == classify.RoleTerminal {
			stack = append(stack, id)
		}
	}

	seen := make(map[string]bool)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		reachable[id] = struct{}{}
		stack = append(stack, idx.Predecessors(id)...)
	}
}

func toDiagnostics(entries []diag.Entry) []ir.Diagnostic {
	out := make([]ir.Diagnostic, len(entries))
	for i, e := range entries {
		out[i] = ir.Diagnostic{
			Severity: string(e.Severity),
			Message:  e.Message,
			NodeIDs:  e.NodeIDs,
		}
	}
	if out == nil {
		out = []ir.Diagnostic{}
	}
	return out
}
