package compile_test

import (
	"bytes"
	"testing"

	"github.com/plcgo/ladderc/compile"
	"github.com/plcgo/ladderc/diag"
	"github.com/plcgo/ladderc/ir"
	"github.com/plcgo/ladderc/ladder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSimpleRung(t *testing.T) {
	l := &ladder.Ladder{
		Name: "RUNG_0",
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
		},
		Wires: []ladder.Connection{{ID: "w1", From: "a", To: "b"}},
	}

	out := compile.Compile(l)
	require.Len(t, out.Rungs, 1)
	assert.Equal(t, "RUNG_0", out.Rungs[0].Comment)
	require.Len(t, out.Rungs[0].Elements, 2)
	assert.Equal(t, "X0", out.Rungs[0].Elements[0].Address)
	assert.Equal(t, "Y0", out.Rungs[0].Elements[1].Address)
	assert.Empty(t, out.Errors)
}

func TestCompileEmptyLadderReportsError(t *testing.T) {
	out := compile.Compile(&ladder.Ladder{})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "error", out.Errors[0].Severity)
	assert.Empty(t, out.Rungs)
}

func TestCompileInvalidPresetReportsErrorButStillEmits(t *testing.T) {
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "t", X: 1, Y: 0, Kind: ladder.KindTimerTON, Symbol: "T0", Preset: "bogus"},
		},
		Wires: []ladder.Connection{{ID: "w1", From: "a", To: "t"}},
	}

	out := compile.Compile(l)
	require.Len(t, out.Rungs, 1)

	var found bool
	for _, e := range out.Errors {
		if e.Severity == "error" && len(e.NodeIDs) == 1 && e.NodeIDs[0] == "t" {
			found = true
		}
	}
	assert.True(t, found, "expected an invalid_preset error attached to node t")
}

func TestCompileDisconnectedContactReportsUnreachableWarning(t *testing.T) {
	// X0 -> Y0 (fine), plus a second chain X1 -> X2 of contacts only, never
	// reaching a terminal; X2 is the intermediate contact reported (X1 is a
	// start block, which this diagnostic does not cover).
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
			{ID: "c", X: 0, Y: 1, Kind: ladder.KindContact, Symbol: "X1"},
			{ID: "d", X: 1, Y: 1, Kind: ladder.KindContact, Symbol: "X2"},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a", To: "b"},
			{ID: "w2", From: "c", To: "d"},
		},
	}

	out := compile.Compile(l)
	require.Len(t, out.Rungs, 1)

	var found bool
	for _, e := range out.Errors {
		if e.Severity == string(diag.SeverityWarning) {
			found = true
		}
	}
	assert.True(t, found, "expected an unreachable_contact_path warning")
}

func TestCompileOutputRoundTripsThroughFraming(t *testing.T) {
	l := &ladder.Ladder{
		Name: "RUNG_0",
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact, Symbol: "X0"},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindCoil, Symbol: "Y0"},
		},
		Wires: []ladder.Connection{{ID: "w1", From: "a", To: "b"}},
	}
	out := compile.Compile(l)

	var buf bytes.Buffer
	require.NoError(t, ir.WriteFramed(&buf, out))

	got, err := ir.ReadFramed(&buf)
	require.NoError(t, err)
	require.Len(t, got.Rungs, 1)
	assert.Equal(t, out.Rungs[0].Comment, got.Rungs[0].Comment)
}

func TestCompileIsDeterministic(t *testing.T) {
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

	first, err1 := ir.Marshal(compile.Compile(l))
	second, err2 := ir.Marshal(compile.Compile(l))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
