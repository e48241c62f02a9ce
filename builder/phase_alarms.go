package builder

import (
	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// phaseAlarmNodes implements spec.md §4.2 Phase A: for each alert
// carrying a processGuid, create or fetch the node keyed by that GUID,
// attach the alert, and mark it an alarm node. Alerts without a
// processGuid cannot be placed in the graph and are skipped.
func phaseAlarmNodes(g *core.Graph, alerts []evidence.RawAlarm) {
	for _, a := range alerts {
		if a.ProcessGUID == "" {
			continue
		}
		g.MergeAlarm(a.ProcessGUID, a)
	}
}
