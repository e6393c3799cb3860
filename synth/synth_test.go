package synth_test

import (
	"testing"

	"github.com/plcgo/ladderc/classify"
	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/diag"
	"github.com/plcgo/ladderc/ir"
	"github.com/plcgo/ladderc/ladder"
	"github.com/plcgo/ladderc/network"
	"github.com/plcgo/ladderc/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, l *ladder.Ladder) (*core.Index, map[string]classify.Role) {
	t.Helper()
	idx := core.Build(l)
	nets := network.Partition(l, idx)
	require.Len(t, nets, 1)
	return idx, classify.Roles(idx, nets[0])
}

func TestConditionSeriesChain(t *testing.T) {
	// X0 -> X1 -> Y0
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindContact, Symbol: "X1"},
			{ID: "c", X: 2, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "b"},
			{ID: "w2", From: "b", To: "c"},
		},
	}
	idx, roles := build(t, l)
	s := synth.New(idx, roles, nil)
	cond := s.Condition("c")

	require.Len(t, cond, 2)
	assert.Equal(t, ir.ElementContact, cond[0].Kind)
	assert.Equal(t, "X0", cond[0].Address)
	assert.Equal(t, "X1", cond[1].Address)
}

func TestConditionParallelMergeProducesOr(t *testing.T) {
	// X0 -> Y0
	// X1 -> Y0   (two independent contacts driving the same coil: OR)
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 0, Y: 1, Kind: ladder.KindContact, Symbol: "X1"},
			{ID: "c", X: 1, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "c"},
			{ID: "w2", From: "b", To: "c"},
		},
	}
	idx, roles := build(t, l)
	s := synth.New(idx, roles, nil)
	cond := s.Condition("c")

	require.Len(t, cond, 1)
	require.Equal(t, ir.ElementOr, cond[0].Kind)
	require.Len(t, cond[0].Branches, 2)
	assert.Equal(t, "X0", cond[0].Branches[0].Elements[0].Address)
	assert.Equal(t, "X1", cond[0].Branches[1].Elements[0].Address)
}

func TestConditionCommonPrefixFactored(t *testing.T) {
	// X0 -> X1 -> Y0
	// X0 -> X2 -> Y0   (shared X0 prefix factored out of the OR)
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindContact, Symbol: "X1"},
			{ID: "c", X: 1, Y: 1, Kind: ladder.KindContact, Symbol: "X2"},
			{ID: "d", X: 2, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "b"},
			{ID: "w2", From: "a", To: "c"},
			{ID: "w3", From: "b", To: "d"},
			{ID: "w4", From: "c", To: "d"},
		},
	}
	idx, roles := build(t, l)
	s := synth.New(idx, roles, nil)
	cond := s.Condition("d")

	// prefix = [X0], then an OR of [X1] / [X2].
	require.Len(t, cond, 2)
	assert.Equal(t, "X0", cond[0].Address)
	require.Equal(t, ir.ElementOr, cond[1].Kind)
	require.Len(t, cond[1].Branches, 2)
	assert.Equal(t, "X1", cond[1].Branches[0].Elements[0].Address)
	assert.Equal(t, "X2", cond[1].Branches[1].Elements[0].Address)
}

func TestConditionPassThroughActionContributesNoElement(t *testing.T) {
	// X0 -> Y0(pass-through, since it also drives Y1) -> Y1(terminal)
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
			{ID: "c", X: 2, Y: 0, Kind: ladder.KindCoil, Symbol: "Y1"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "b"},
			{ID: "w2", From: "b", To: "c"},
		},
	}
	idx, roles := build(t, l)
	require.Equal(t, classify.RolePassThroughAction, roles["b"])

	s := synth.New(idx, roles, nil)
	cond := s.Condition("c")

	require.Len(t, cond, 1)
	assert.Equal(t, "X0", cond[0].Address)
}

func TestConditionTapRequiringActionInsertsTapMarker(t *testing.T) {
	// X0 -> Y0(tap-requiring: feeds both Y1 and X1) -> Y1(terminal)
	//                                               -> X1 -> Y2(terminal)
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
			{ID: "c", X: 2, Y: 0, Kind: ladder.KindCoil, Symbol: "Y1"},
			{ID: "d", X: 2, Y: 1, Kind: ladder.KindContact, Symbol: "X1"},
			{ID: "e", X: 3, Y: 1, Kind: ladder.KindCoil, Symbol: "Y2"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "b"},
			{ID: "w2", From: "b", To: "c"},
			{ID: "w3", From: "b", To: "d"},
			{ID: "w4", From: "d", To: "e"},
		},
	}
	idx, roles := build(t, l)
	require.Equal(t, classify.RoleTapRequiringAction, roles["b"])

	s := synth.New(idx, roles, nil)

	// e's (Y2) only path runs through d (X1), whose own predecessor chain
	// already carries b's (Y0) tap: [X0, Y0, tap, X1].
	condY2 := s.Condition("e")
	require.Len(t, condY2, 4)
	assert.Equal(t, "X0", condY2[0].Address)
	assert.Equal(t, ir.ElementCoil, condY2[1].Kind)
	assert.Equal(t, "Y0", condY2[1].Address)
	assert.Equal(t, ir.ElementTap, condY2[2].Kind)
	assert.Equal(t, "X1", condY2[3].Address)

	// c's (Y1) only predecessor is b itself: [X0, Y0, tap].
	condY1 := s.Condition("c")
	require.Len(t, condY1, 3)
	assert.Equal(t, "X0", condY1[0].Address)
	assert.Equal(t, ir.ElementCoil, condY1[1].Kind)
	assert.Equal(t, "Y0", condY1[1].Address)
	assert.Equal(t, ir.ElementTap, condY1[2].Kind)
}

func TestConditionBackEdgeIsTruncatedAndReportedAsCycle(t *testing.T) {
	// a (X0, start) -> b (X1) -> d (Y0, terminal)
	//                  b -> e (X2) -> b   (back edge: a 2-node ring b -> e -> b)
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindContact, Symbol: "X1"},
			{ID: "d", X: 2, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
			{ID: "e", X: 2, Y: 1, Kind: ladder.KindContact, Symbol: "X2"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "b"},
			{ID: "w2", From: "b", To: "d"},
			{ID: "w3", From: "b", To: "e"},
			{ID: "w4", From: "e", To: "b"},
		},
	}
	idx, roles := build(t, l)

	c := diag.New()
	s := synth.New(idx, roles, c)
	cond := s.Condition("d")

	// The back edge through b is truncated rather than recursed forever: b's
	// own condition still resolves, finitely, to an OR of its two incoming
	// branches (a's chain, and e's chain with the cycle cut out), followed
	// by b's own element.
	require.Len(t, cond, 2)
	require.Equal(t, ir.ElementOr, cond[0].Kind)
	require.Len(t, cond[0].Branches, 2)
	assert.Equal(t, "X0", cond[0].Branches[0].Elements[0].Address)
	assert.Equal(t, "X2", cond[0].Branches[1].Elements[0].Address)
	assert.Equal(t, "X1", cond[1].Address)

	var sawCycle bool
	for _, e := range c.Entries() {
		if e.Kind == diag.KindCycleDetected {
			sawCycle = true
			assert.Equal(t, diag.SeverityWarning, e.Severity)
			assert.Contains(t, e.NodeIDs, "b")
		}
	}
	assert.True(t, sawCycle, "expected a KindCycleDetected warning for the back edge")
}
