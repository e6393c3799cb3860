package network_test

import (
	"testing"

	"github.com/plcgo/ladderc/core"
	"github.com/plcgo/ladderc/ladder"
	"github.com/plcgo/ladderc/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionTwoNetworksOrderedByStartY(t *testing.T) {
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			// Network starting at y=5.
			{ID: "a1", X: 0, Y: 5, Kind: ladder.KindContact},
			{ID: "a2", X: 1, Y: 5, Kind: ladder.KindCoil},
			// Network starting at y=0.
			{ID: "b1", X: 0, Y: 0, Kind: ladder.KindContact},
			{ID: "b2", X: 1, Y: 0, Kind: ladder.KindCoil},
		},
		Wires: []ladder.Connection{
			{ID: "w1", From: "a1", To: "a2"},
			{ID: "w2", From: "b1", To: "b2"},
		},
	}
	idx := core.Build(l)
	nets := network.Partition(l, idx)
	require.Len(t, nets, 2)
	assert.Equal(t, 0, nets[0].MinStartY)
	assert.Equal(t, 5, nets[1].MinStartY)
}

func TestPartitionSkipsComponentWithoutStartBlock(t *testing.T) {
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			// Contact not at x=0: no start block in this component.
			{ID: "a", X: 1, Y: 0, Kind: ladder.KindContact},
			{ID: "b", X: 2, Y: 0, Kind: ladder.KindCoil},
		},
		Wires: []ladder.Connection{{ID: "w1", From: "a", To: "b"}},
	}
	idx := core.Build(l)
	nets := network.Partition(l, idx)
	assert.Empty(t, nets)
}

func TestPartitionIgnoresDisconnectedNodes(t *testing.T) {
	l := &ladder.Ladder{
		Nodes: []ladder.Node{
			{ID: "a", X: 0, Y: 0, Kind: ladder.KindContact},
			{ID: "b", X: 1, Y: 0, Kind: ladder.KindCoil},
			{ID: "loner", X: 5, Y: 5, Kind: ladder.KindCoil},
		},
		Wires: []ladder.Connection{{ID: "w1", From: "a", To: "b"}},
	}
	idx := core.Build(l)
	nets := network.Partition(l, idx)
	require.Len(t, nets, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, nets[0].NodeIDs)
}
