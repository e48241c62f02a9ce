// api.go — BuildGraph is the builder package's single entry point,
// running Phase A (alarm nodes), Phase B (log merging, with virtual
// parent synthesis), then Phase C (alarm edges) against one
// core.Graph, in that fixed order, per spec.md §4.2.
package builder

import (
	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// BuildGraph constructs the provenance graph from alerts and logs.
// Phase D (analysis) is the analyzer package's responsibility — engine
// calls it after BuildGraph returns, so callers that only need the raw
// topology (tests, tooling) can stop here.
func BuildGraph(alerts []evidence.RawAlarm, logs []evidence.RawLog, opts ...Option) (*core.Graph, []string, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph()
	var diagnostics []string

	phaseAlarmNodes(g, alerts)

	logDiag := phaseLogMerge(g, logs, cfg)
	diagnostics = append(diagnostics, logDiag...)

	diagnostics = append(diagnostics, phaseAlarmEdges(g, alerts)...)

	return g, diagnostics, nil
}
