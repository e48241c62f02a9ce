package bridger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/procchain/bridger"
	"github.com/riftline/procchain/core"
)

func rootedGraph(t *testing.T, traceID, rootID string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddNode(rootID, core.NodeTypeProcess)
	require.NoError(t, err)
	g.MarkRoot(rootID, traceID)

	return g
}

func TestBridge_NilGraph(t *testing.T) {
	_, err := bridger.Bridge(nil, nil, nil, nil)
	assert.ErrorIs(t, err, bridger.ErrNilGraph)
}

// B4 (direct edge case): a victim not in sourceSet yields exactly one
// bridge edge directly to the root.
func TestBridge_VictimNotInSourceSet_DirectEdge(t *testing.T) {
	g := rootedGraph(t, "t1", "root1")
	nodes := []bridger.NetworkNode{{NodeID: "victim1", NodeType: bridger.VictimNodeType, IP: "10.0.0.1"}}
	edges := []bridger.NetworkEdge{{Source: "attacker1", Target: "victim1"}}

	story, err := bridger.Bridge(g, nodes, edges, map[string]string{"10.0.0.1": "t1"})
	require.NoError(t, err)
	require.Len(t, story, 1)
	assert.Equal(t, "victim1", story[0].Source)
	assert.Equal(t, "root1", story[0].Target)
	assert.Equal(t, core.EdgeLabelBridge, story[0].Val)
}

// B4 (spacer case): a victim that IS a source elsewhere yields exactly
// two bridge edges through one VIRTUAL_BRIDGE_ spacer.
func TestBridge_VictimInSourceSet_SpacerInserted(t *testing.T) {
	g := rootedGraph(t, "t1", "root1")
	nodes := []bridger.NetworkNode{{NodeID: "victim1", NodeType: bridger.VictimNodeType, IP: "10.0.0.1"}}
	edges := []bridger.NetworkEdge{{Source: "victim1", Target: "server1"}}

	story, err := bridger.Bridge(g, nodes, edges, map[string]string{"10.0.0.1": "t1"})
	require.NoError(t, err)
	require.Len(t, story, 1)
	assert.Equal(t, "victim1", story[0].Source)
	assert.Contains(t, story[0].Target, "VIRTUAL_BRIDGE_victim1")

	assert.True(t, g.HasNode("VIRTUAL_BRIDGE_victim1"))
	assert.True(t, g.HasEdge("VIRTUAL_BRIDGE_victim1", "root1"))
}

func TestBridge_SkipsNonVictimAndMissingMapping(t *testing.T) {
	g := rootedGraph(t, "t1", "root1")
	nodes := []bridger.NetworkNode{
		{NodeID: "server1", NodeType: "server", IP: "10.0.0.2"},
		{NodeID: "victim2", NodeType: bridger.VictimNodeType, IP: "10.0.0.3"}, // no trace mapping
	}

	story, err := bridger.Bridge(g, nodes, nil, map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, story)
}
