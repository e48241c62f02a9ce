package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	converters "github.com/riftline/procchain/converterts"
	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

func TestApplyEntityFilter_NilGraph(t *testing.T) {
	err := converters.ApplyEntityFilter(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestApplyEntityFilter_FileCreateRetypesToFileEntity(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("f1", core.NodeTypeProcess)
	require.NoError(t, err)
	n.Logs = append(n.Logs, evidence.RawLog{Evidence: evidence.Evidence{
		EventID: "l1", LogType: "file", OpType: "create",
	}})

	require.NoError(t, converters.ApplyEntityFilter(g))

	got, err := g.GetNode("f1")
	require.NoError(t, err)
	assert.Equal(t, core.NodeTypeFileEntity, got.NodeType)
}

func TestApplyEntityFilter_FileDeleteBlanksIncomingEdgeLabel(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("parent", core.NodeTypeProcess)
	require.NoError(t, err)
	n, err := g.AddNode("deleted", core.NodeTypeProcess)
	require.NoError(t, err)
	n.Logs = append(n.Logs, evidence.RawLog{Evidence: evidence.Evidence{
		EventID: "l1", LogType: "file", OpType: "delete",
	}})
	require.NoError(t, g.AddEdge("parent", "deleted", core.EdgeLabelConnected))

	require.NoError(t, converters.ApplyEntityFilter(g))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, core.EdgeLabelNone, edges[0].Val)
}

func TestApplyEntityFilter_NetworkConnectRetypesToNetworkEntity(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("n1", core.NodeTypeProcess)
	require.NoError(t, err)
	n.Logs = append(n.Logs, evidence.RawLog{Evidence: evidence.Evidence{
		EventID: "l1", LogType: "network", OpType: "connect",
	}})

	require.NoError(t, converters.ApplyEntityFilter(g))

	got, err := g.GetNode("n1")
	require.NoError(t, err)
	assert.Equal(t, core.NodeTypeNetworkEntity, got.NodeType)
}

func TestApplyEntityFilter_MixedCategoryStaysProcess(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("mixed", core.NodeTypeProcess)
	require.NoError(t, err)
	n.Logs = append(n.Logs,
		evidence.RawLog{Evidence: evidence.Evidence{EventID: "l1", LogType: "file", OpType: "create"}},
		evidence.RawLog{Evidence: evidence.Evidence{EventID: "l2", LogType: "network", OpType: "connect"}},
	)

	require.NoError(t, converters.ApplyEntityFilter(g))

	got, err := g.GetNode("mixed")
	require.NoError(t, err)
	assert.Equal(t, core.NodeTypeProcess, got.NodeType)
}

func TestApplyEntityFilter_VirtualLogsIgnored(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("p1", core.NodeTypeProcess)
	require.NoError(t, err)
	n.Logs = append(n.Logs, evidence.RawLog{Evidence: evidence.Evidence{
		EventID: evidence.VirtualLogPrefix + "p1", LogType: "file", OpType: "write",
	}})

	require.NoError(t, converters.ApplyEntityFilter(g))

	got, err := g.GetNode("p1")
	require.NoError(t, err)
	assert.Equal(t, core.NodeTypeProcess, got.NodeType, "a node with only a virtual log has no real evidence to classify on")
}

func TestApplyEntityFilter_NoEvidenceStaysProcess(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("bare", core.NodeTypeProcess)
	require.NoError(t, err)

	require.NoError(t, converters.ApplyEntityFilter(g))

	got, err := g.GetNode("bare")
	require.NoError(t, err)
	assert.Equal(t, core.NodeTypeProcess, got.NodeType)
}
