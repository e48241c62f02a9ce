package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

func alarm(guid, parent, trace string) evidence.RawAlarm {
	return evidence.RawAlarm{Evidence: evidence.Evidence{
		EventID: "a-" + guid, ProcessGUID: guid, ParentProcessGUID: parent, TraceID: trace,
	}}
}

func log(guid, parent, trace string) evidence.RawLog {
	return evidence.RawLog{Evidence: evidence.Evidence{
		EventID: "l-" + guid, ProcessGUID: guid, ParentProcessGUID: parent, TraceID: trace,
	}}
}

func TestBuildGraph_PhaseA_AlarmNodesMarked(t *testing.T) {
	g, diag, err := BuildGraph([]evidence.RawAlarm{alarm("p1", "p0", "t1")}, nil)
	require.NoError(t, err)
	assert.Empty(t, diag)

	n, err := g.GetNode("p1")
	require.NoError(t, err)
	assert.True(t, n.IsAlarm)
	assert.Equal(t, "t1", n.TraceID)
}

func TestBuildGraph_PhaseA_SkipsMissingProcessGUID(t *testing.T) {
	g, _, err := BuildGraph([]evidence.RawAlarm{alarm("", "p0", "t1")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

func TestBuildGraph_PhaseB_LeavesParentUnmaterializedWhenNeverReal(t *testing.T) {
	g, _, err := BuildGraph(nil, []evidence.RawLog{log("child", "parent", "t1")})
	require.NoError(t, err)

	assert.False(t, g.HasNode("parent"))
	assert.False(t, g.HasEdge("parent", "child"))

	child, err := g.GetNode("child")
	require.NoError(t, err)
	assert.Equal(t, "parent", child.ParentProcessGUID)
	assert.Equal(t, 0, g.InDegree("child"))
}

func TestBuildGraph_PhaseB_MaterializesParentOnLaterRealRecord(t *testing.T) {
	logs := []evidence.RawLog{
		log("child", "parent", "t1"),
		log("parent", "", "t1"),
	}

	g, _, err := BuildGraph(nil, logs)
	require.NoError(t, err)

	parent, err := g.GetNode("parent")
	require.NoError(t, err)
	assert.False(t, parent.IsVirtual)
	assert.Equal(t, core.NodeTypeProcess, parent.NodeType)
	require.Len(t, parent.Logs, 2)

	assert.True(t, g.HasEdge("parent", "child"))
}

func TestBuildGraph_PhaseB_SelfParentRewrittenToVirtualRoot(t *testing.T) {
	g, diag, err := BuildGraph(nil, []evidence.RawLog{log("self", "self", "t1")})
	require.NoError(t, err)

	want := VirtualRootParentID("self")
	assert.True(t, g.HasNode(want))
	assert.True(t, g.HasEdge(want, "self"))

	n, err := g.GetNode("self")
	require.NoError(t, err)
	assert.Equal(t, want, n.ParentProcessGUID)

	found := false
	for _, d := range diag {
		if d == `self-parent "self" rewritten to virtual root "`+want+`"` {
			found = true
		}
	}
	assert.True(t, found, "diagnostics: %v", diag)
}

func TestBuildGraph_PhaseB_DoesNotStageWhenParentAlreadyReal(t *testing.T) {
	alerts := []evidence.RawAlarm{alarm("parent", "", "t1")}
	logs := []evidence.RawLog{log("child", "parent", "t1")}

	g, _, err := BuildGraph(alerts, logs)
	require.NoError(t, err)

	parent, err := g.GetNode("parent")
	require.NoError(t, err)
	assert.False(t, parent.IsVirtual)
}

func TestBuildGraph_PhaseB_LogCapDiagnostic(t *testing.T) {
	logs := make([]evidence.RawLog, 0, core.MaxLogsPerNode+1)
	for i := 0; i < core.MaxLogsPerNode+1; i++ {
		logs = append(logs, log("child", "", ""))
	}

	_, diag, err := BuildGraph(nil, logs)
	require.NoError(t, err)

	found := false
	for _, d := range diag {
		if d == `log cap exceeded for node "child"` {
			found = true
		}
	}
	assert.True(t, found, "diagnostics: %v", diag)
}

func TestBuildGraph_PhaseC_WiresAlarmParentChildEdge(t *testing.T) {
	alerts := []evidence.RawAlarm{
		alarm("parent", "", "t1"),
		alarm("child", "parent", "t1"),
	}

	g, _, err := BuildGraph(alerts, nil)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("parent", "child"))
}

func TestBuildGraph_PhaseC_SkipsEdgeThatWouldCloseCycle(t *testing.T) {
	alerts := []evidence.RawAlarm{
		alarm("a", "", "t1"),
		alarm("b", "a", "t1"),
	}
	logs := []evidence.RawLog{
		// establishes b -> a via Phase B before Phase C tries a -> b.
		log("a", "b", "t1"),
	}

	g, diag, err := BuildGraph(alerts, logs)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "b"))

	found := false
	for _, d := range diag {
		if d == MethodAlarmEdges+": a->b: "+ErrCycleSkipped.Error() {
			found = true
		}
	}
	assert.True(t, found, "diagnostics: %v", diag)
}

func TestBuildGraph_PhaseC_SkipsWhenParentNodeAbsent(t *testing.T) {
	alerts := []evidence.RawAlarm{alarm("child", "ghost-parent", "t1")}

	g, _, err := BuildGraph(alerts, nil)
	require.NoError(t, err)
	assert.False(t, g.HasNode("ghost-parent"))
	assert.False(t, g.HasEdge("ghost-parent", "child"))
}
