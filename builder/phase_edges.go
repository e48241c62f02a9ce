package builder

import (
	"errors"
	"fmt"

	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// phaseAlarmEdges implements spec.md §4.2 Phase C: for each alert with
// both a processGuid and a parentProcessGuid already present as nodes,
// add parent→child. A reverse edge already in place means accepting
// this edge would close a cycle (I3); AddEdge rejects it and the
// candidate is skipped, not retried.
func phaseAlarmEdges(g *core.Graph, alerts []evidence.RawAlarm) []string {
	var diagnostics []string

	for _, a := range alerts {
		if a.ProcessGUID == "" || a.ParentProcessGUID == "" {
			continue
		}
		if !g.HasNode(a.ParentProcessGUID) || !g.HasNode(a.ProcessGUID) {
			continue
		}

		err := g.AddEdge(a.ParentProcessGUID, a.ProcessGUID, core.EdgeLabelConnected)
		switch {
		case err == nil:
		case errors.Is(err, core.ErrReverseEdgeExists):
			diagnostics = append(diagnostics, fmt.Sprintf(
				"%s: %s->%s: %v", MethodAlarmEdges, a.ParentProcessGUID, a.ProcessGUID, ErrCycleSkipped))
		default:
			diagnostics = append(diagnostics, fmt.Sprintf(
				"%s: %s->%s skipped: %v", MethodAlarmEdges, a.ParentProcessGUID, a.ProcessGUID, err))
		}
	}

	return diagnostics
}
