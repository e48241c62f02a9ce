package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/procchain/bfs"
	"github.com/riftline/procchain/core"
)

func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"root", "mid", "leaf1", "leaf2"} {
		_, err := g.AddNode(id, core.NodeTypeProcess)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge("root", "mid", core.EdgeLabelConnected))
	require.NoError(t, g.AddEdge("mid", "leaf1", core.EdgeLabelConnected))
	require.NoError(t, g.AddEdge("mid", "leaf2", core.EdgeLabelConnected))

	return g
}

func TestBFS_Down_VisitsDescendants(t *testing.T) {
	g := chainGraph(t)

	res, err := bfs.BFS(g, "root", bfs.Down)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root", "mid", "leaf1", "leaf2"}, res.Order)
	assert.Equal(t, 0, res.Depth["root"])
	assert.Equal(t, 2, res.Depth["leaf1"])
}

func TestBFS_Up_WalksToRoot(t *testing.T) {
	g := chainGraph(t)

	res, err := bfs.BFS(g, "leaf1", bfs.Up)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"leaf1", "mid", "root"}, res.Order)

	path, err := res.PathTo("root")
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf1", "mid", "root"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := chainGraph(t)

	res, err := bfs.BFS(g, "root", bfs.Down, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root", "mid"}, res.Order)
}

func TestBFS_StartNodeMissing(t *testing.T) {
	g := core.NewGraph()
	_, err := bfs.BFS(g, "missing", bfs.Down)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestBFS_NegativeMaxDepthRejected(t *testing.T) {
	g := chainGraph(t)
	_, err := bfs.BFS(g, "root", bfs.Down, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}
