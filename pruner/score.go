package pruner

import (
	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// score computes spec.md §4.6's admission score for n: +1000 if
// network-associated, severity-weighted per alert (reusing
// evidence.Severity.Weight, which already encodes HIGH=100/MEDIUM=50/
// LOW=20/UNKNOWN=0), +80 if root, +min(2×degree,30) for connectivity,
// +10 if any log, +5 if any log is process-type.
func score(g *core.Graph, n *core.GraphNode, assocEventIDs map[string]struct{}) int {
	s := 0
	if hasAssociatedAlert(n, assocEventIDs) {
		s += 1000
	}
	for _, a := range n.Alarms {
		s += a.ThreatSeverity.Weight()
	}
	if g.IsRootNode(n.NodeID) {
		s += 80
	}
	if deg := 2 * g.Degree(n.NodeID); deg < 30 {
		s += deg
	} else {
		s += 30
	}
	if len(n.Logs) > 0 {
		s += 10
	}
	for _, l := range n.Logs {
		if l.LogType == "process" {
			s += 5

			break
		}
	}

	return s
}

func hasAssociatedAlert(n *core.GraphNode, assocEventIDs map[string]struct{}) bool {
	if len(assocEventIDs) == 0 {
		return false
	}
	for _, a := range n.Alarms {
		if _, ok := assocEventIDs[a.EventID]; ok {
			return true
		}
	}

	return false
}

func hasHighOrMediumAlert(n *core.GraphNode) bool {
	for _, a := range n.Alarms {
		if a.ThreatSeverity == evidence.SeverityHigh || a.ThreatSeverity == evidence.SeverityMedium {
			return true
		}
	}

	return false
}
