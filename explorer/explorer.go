package explorer

import (
	"fmt"
	"sort"

	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// Inject runs spec.md §4.7 over g: it computes the set of traceIDs
// absent from g's traceId→root lookup table, injects an EXPLORE_ROOT_
// anchor for each, then attaches every broken node to the anchor for
// its own recorded traceId (falling back, per SPEC_FULL's Open
// Question 1 decision, to the anchor for the lexicographically
// smallest traceId among those injected when a broken node's traceId
// is unrecorded or already had a real root).
//
// Does nothing when every traceId already resolves to a root and no
// broken node exists.
func Inject(g *core.Graph, traceIDs []string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	withoutRoot := make([]string, 0, len(traceIDs))
	for _, t := range traceIDs {
		if _, ok := g.RootNodeForTrace(t); !ok && t != "" {
			withoutRoot = append(withoutRoot, t)
		}
	}
	sort.Strings(withoutRoot)
	withoutRoot = dedup(withoutRoot)

	broken := g.BrokenNodeIDs()
	if len(withoutRoot) == 0 && len(broken) == 0 {
		return nil, nil
	}

	var diagnostics []string
	for _, t := range withoutRoot {
		id := evidence.ExploreRootPrefix + t
		if _, err := g.AddNode(id, core.NodeTypeExplore); err != nil {
			diagnostics = append(diagnostics, fmt.Sprintf("explore root %q skipped: %v", id, err))

			continue
		}
		g.MarkRoot(id, t)
		diagnostics = append(diagnostics, fmt.Sprintf("explore root injected for trace %q", t))
	}

	fallback := ""
	if len(withoutRoot) > 0 {
		fallback = evidence.ExploreRootPrefix + withoutRoot[0]
	}

	for _, b := range broken {
		target := anchorFor(g, b, fallback)
		if target == "" {
			continue
		}
		if err := g.AddEdge(target, b, core.EdgeLabelBroken); err != nil {
			diagnostics = append(diagnostics, fmt.Sprintf("broken edge %s->%s skipped: %v", target, b, err))
		}
	}

	return diagnostics, nil
}

// anchorFor picks the EXPLORE_ROOT anchor for broken node b: its own
// traceId's anchor if that anchor was injected this call, otherwise
// fallback (the anchor for the lexicographically smallest withoutRoot
// traceId, or "" if none were injected at all).
func anchorFor(g *core.Graph, b, fallback string) string {
	traceID, ok := g.TraceForBrokenNode(b)
	if ok && traceID != "" {
		candidate := evidence.ExploreRootPrefix + traceID
		if g.HasNode(candidate) {
			return candidate
		}
	}

	return fallback
}

func dedup(sorted []string) []string {
	out := sorted[:0:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}

	return out
}
