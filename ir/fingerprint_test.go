package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plcgo/ladderc/ir"
)

func TestEqualSameAddressAndKind(t *testing.T) {
	a := ir.Element{Kind: ir.ElementContact, Address: "X0"}
	b := ir.Element{Kind: ir.ElementContact, Address: "X0"}
	assert.True(t, ir.Equal(a, b))
}

func TestEqualDistinctAddressesNeverEqual(t *testing.T) {
	a := ir.Element{Kind: ir.ElementContact, Address: "X0"}
	b := ir.Element{Kind: ir.ElementContact, Address: "X1"}
	assert.False(t, ir.Equal(a, b))
}

func TestEqualIgnoresFieldsUnusedByKind(t *testing.T) {
	a := ir.Element{Kind: ir.ElementContact, Address: "X0", DataType: "int"}
	b := ir.Element{Kind: ir.ElementContact, Address: "X0", DataType: ""}
	assert.True(t, ir.Equal(a, b))
}

func TestFingerprintDistinguishesOrderedSequences(t *testing.T) {
	f1 := ir.Fingerprint([]ir.Element{
		{Kind: ir.ElementContact, Address: "X0"},
		{Kind: ir.ElementContact, Address: "X1"},
	})
	f2 := ir.Fingerprint([]ir.Element{
		{Kind: ir.ElementContact, Address: "X1"},
		{Kind: ir.ElementContact, Address: "X0"},
	})
	assert.NotEqual(t, f1, f2)
}

func TestFingerprintNestedOrBranches(t *testing.T) {
	or1 := ir.Element{Kind: ir.ElementOr, Branches: []ir.Branch{
		{Elements: []ir.Element{{Kind: ir.ElementContact, Address: "X0"}}},
		{Elements: []ir.Element{{Kind: ir.ElementContact, Address: "X1"}}},
	}}
	or2 := ir.Element{Kind: ir.ElementOr, Branches: []ir.Branch{
		{Elements: []ir.Element{{Kind: ir.ElementContact, Address: "X0"}}},
		{Elements: []ir.Element{{Kind: ir.ElementContact, Address: "X2"}}},
	}}
	assert.False(t, ir.Equal(or1, or2))

	or1Copy := ir.Element{Kind: ir.ElementOr, Branches: []ir.Branch{
		{Elements: []ir.Element{{Kind: ir.ElementContact, Address: "X0"}}},
		{Elements: []ir.Element{{Kind: ir.ElementContact, Address: "X1"}}},
	}}
	assert.True(t, ir.Equal(or1, or1Copy))
}
