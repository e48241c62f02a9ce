package builder

import (
	"fmt"

	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// pendingChild is a log whose resolved parentID has no backing node
// yet. Its synthesized virtual-parent log is held here, keyed by
// parentID, rather than merged into a node immediately.
type pendingChild struct {
	childID    string
	virtualLog evidence.RawLog
}

// phaseLogMerge implements spec.md §4.2 Phase B: merge every log into
// its child node and wire parent->child edges, handling the self-parent
// case by rewriting the edge target to a synthetic root ID. Returns one
// diagnostic string per cap-just-hit and per self-parent rewrite, for
// engine to log.
//
// A missing parent referenced by an ordinary log is never materialized
// speculatively: its synthesized VIRTUAL_LOG_<parentId> is staged in a
// pending buffer keyed by parentID, and only merged into a real node
// (with the deferred edge) once some log or alert actually carries that
// processGuid as its own. A parentID that never turns up stays out of
// the graph entirely, which is what lets analyzer's broken-chain rule
// (spec.md §4.3 rule 3) fire for the child instead of the child
// silently acquiring a synthetic ancestor. The self-parent case is the
// one exception: its hashed VIRTUAL_ROOT_PARENT_ ID can never be
// "discovered" by a later real record, so it is materialized on the
// spot, same as before.
func phaseLogMerge(g *core.Graph, logs []evidence.RawLog, cfg *Config) []string {
	var diagnostics []string
	pending := make(map[string][]pendingChild)

	for _, l := range logs {
		if l.ProcessGUID == "" {
			continue
		}

		res := g.MergeLog(l.ProcessGUID, l)
		if res.CapJustHit {
			diagnostics = append(diagnostics, fmt.Sprintf("log cap exceeded for node %q", l.ProcessGUID))
		}

		// l.ProcessGUID just became a real node (or already was one). If
		// any earlier child staged a virtual parent under this exact ID,
		// resolve it now: merge its held virtual log and wire the edge.
		if waiters, ok := pending[l.ProcessGUID]; ok {
			delete(pending, l.ProcessGUID)
			for _, w := range waiters {
				g.MergeLog(l.ProcessGUID, w.virtualLog)
				if err := g.AddEdge(l.ProcessGUID, w.childID, core.EdgeLabelConnected); err != nil {
					diagnostics = append(diagnostics, fmt.Sprintf("edge %s->%s skipped: %v", l.ProcessGUID, w.childID, err))
				}
			}
		}

		if l.ParentProcessGUID == "" {
			continue
		}

		if l.ProcessGUID == l.ParentProcessGUID {
			parentID := VirtualRootParentID(l.ParentProcessGUID)
			res.Node.ParentProcessGUID = parentID
			diagnostics = append(diagnostics, fmt.Sprintf("self-parent %q rewritten to virtual root %q", l.ProcessGUID, parentID))

			if !g.HasNode(parentID) {
				stageVirtualRootParent(g, parentID, l, cfg)
			}
			if err := g.AddEdge(parentID, l.ProcessGUID, core.EdgeLabelConnected); err != nil {
				diagnostics = append(diagnostics, fmt.Sprintf("edge %s->%s skipped: %v", parentID, l.ProcessGUID, err))
			}

			continue
		}

		parentID := l.ParentProcessGUID

		if g.HasNode(parentID) {
			if err := g.AddEdge(parentID, l.ProcessGUID, core.EdgeLabelConnected); err != nil {
				diagnostics = append(diagnostics, fmt.Sprintf("edge %s->%s skipped: %v", parentID, l.ProcessGUID, err))
			}
			continue
		}

		pending[parentID] = append(pending[parentID], pendingChild{
			childID:    l.ProcessGUID,
			virtualLog: virtualParentLog(parentID, l),
		})
	}

	return diagnostics
}

// virtualParentLog synthesizes the VIRTUAL_LOG_<parentId> record
// derived from child's parent* fields (spec.md §4.2 Phase B). It does
// not merge the log into any node; callers decide whether and when.
func virtualParentLog(parentID string, child evidence.RawLog) evidence.RawLog {
	return evidence.RawLog{
		Evidence: evidence.Evidence{
			EventID:     VirtualLogEventID(parentID),
			TraceID:     child.TraceID,
			HostAddress: child.HostAddress,
			ProcessGUID: parentID,
			StartTime:   child.StartTime,
			LogType:     child.LogType,
			Process:     child.ParentProcess,
		},
		EventType: child.EventType,
	}
}

// stageVirtualRootParent materializes a self-parent's synthetic root
// immediately: unlike an ordinary staged virtual parent, its hashed ID
// can never later turn out to be real, so deferring it would mean it
// never appears at all (spec.md §4.2, boundary test B2).
func stageVirtualRootParent(g *core.Graph, parentID string, child evidence.RawLog, cfg *Config) {
	g.MergeLog(parentID, virtualParentLog(parentID, child))
	if n, err := g.GetNode(parentID); err == nil {
		n.IsVirtual = true
	} else {
		cfg.Logger.Warn("virtual root parent node vanished immediately after creation")
	}
}
