package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/procchain/bridger"
	converters "github.com/riftline/procchain/converterts"
	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

func TestToChain_NilGraph(t *testing.T) {
	_, err := converters.ToChain(nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestToChain_ChainNodeFieldsAndSeverityRollup(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("p1", core.NodeTypeProcess)
	require.NoError(t, err)
	n.IsRoot = true
	n.IsAlarm = true
	n.Alarms = append(n.Alarms, evidence.RawAlarm{Evidence: evidence.Evidence{
		EventID: "e1", AlarmName: "suspicious-exec", ThreatSeverity: evidence.SeverityHigh,
		OpType: "create", Process: evidence.ProcessFields{ProcessName: "cmd.exe"},
	}})

	chain, err := converters.ToChain(g, []string{"t1"}, []string{"10.0.0.1"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, evidence.SeverityHigh, chain.ThreatSeverity)
	require.Len(t, chain.Nodes, 1)

	node := chain.Nodes[0]
	assert.True(t, node.IsChainNode)
	require.NotNil(t, node.ChainNode)
	assert.True(t, node.ChainNode.IsRoot)
	assert.True(t, node.ChainNode.IsAlarm)
	require.NotNil(t, node.ChainNode.AlarmNodeInfo)
	assert.Equal(t, "e1", node.ChainNode.AlarmNodeInfo.EventID)
	require.NotNil(t, node.ChainNode.ProcessEntity)
	assert.Equal(t, "cmd.exe", node.ChainNode.ProcessEntity.ProcessName)
}

func TestToChain_EntityNodeCarriesPayload(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("f1", core.NodeTypeFileEntity)
	require.NoError(t, err)
	n.Logs = append(n.Logs, evidence.RawLog{Evidence: evidence.Evidence{
		EventID: "l1", LogType: "file", OpType: "write",
		File: evidence.FileFields{FileName: "evil.dll"},
	}})

	chain, err := converters.ToChain(g, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, chain.Nodes, 1)
	require.NotNil(t, chain.Nodes[0].ChainNode.Entity)
	require.NotNil(t, chain.Nodes[0].ChainNode.Entity.File)
	assert.Equal(t, "evil.dll", chain.Nodes[0].ChainNode.Entity.File.FileName)
}

func TestToChain_FoldsStoryNodesAndEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("root1", core.NodeTypeProcess)
	require.NoError(t, err)

	storyNodes := []bridger.NetworkNode{{NodeID: "victim1", NodeType: "victim", IP: "10.0.0.1"}}
	storyEdges := []bridger.NetworkEdge{{Source: "victim1", Target: "root1", Val: core.EdgeLabelBridge}}

	chain, err := converters.ToChain(g, nil, nil, storyNodes, storyEdges)
	require.NoError(t, err)
	require.Len(t, chain.Nodes, 2)
	require.Len(t, chain.Edges, 1)

	var story *converters.IncidentNode
	for i := range chain.Nodes {
		if chain.Nodes[i].NodeID == "victim1" {
			story = &chain.Nodes[i]
		}
	}
	require.NotNil(t, story)
	assert.False(t, story.IsChainNode)
	require.NotNil(t, story.StoryNode)
	assert.Equal(t, "10.0.0.1", story.StoryNode.IP)
}

func TestToChain_ExtensionNodeFlaggedForVirtualAndExplore(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("EXPLORE_ROOT_t1", core.NodeTypeExplore)
	require.NoError(t, err)

	chain, err := converters.ToChain(g, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, chain.Nodes, 1)
	assert.True(t, chain.Nodes[0].ChainNode.IsExtensionNode)
}
