package analyzer

import (
	"fmt"
	"strings"

	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/dfs"
	"github.com/riftline/procchain/evidence"
)

// Result reports the outcome of Analyze's cycle diagnostic. Root/broken
// classification is recorded directly on g (spec.md's "Graph state, not
// analyzer state" rationale — pruner and bridger both consult these
// maps after Analyze has returned).
type Result struct {
	CyclesFound bool
	Cycles      [][]string
}

// Analyze runs spec.md §4.3's root identification table over every node
// in g, then a cycle diagnostic. Nodes are visited in core.Graph.Nodes's
// deterministic sorted order rather than an insertion sequence, since
// this module has no separate notion of insertion order once a node is
// in the map; "first in sorted order wins" is the chosen stand-in for
// the spec's "insertion-order wins" tie-break for the rule-4 fallback
// root.
func Analyze(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	for _, n := range g.Nodes() {
		classify(g, n)
	}

	found, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return nil, fmt.Errorf("analyzer: Analyze: %w", err)
	}

	return &Result{CyclesFound: found, Cycles: cycles}, nil
}

// classify applies spec.md §4.3's root/broken table to a single node.
func classify(g *core.Graph, n *core.GraphNode) {
	if n.NodeID == n.TraceID && n.TraceID != "" {
		g.MarkRoot(n.NodeID, n.TraceID)

		return
	}

	if strings.HasPrefix(n.NodeID, evidence.VirtualRootParentPrefix) && g.InDegree(n.NodeID) == 0 {
		if prevID, ok := g.RootNodeForTrace(n.TraceID); ok && prevID != n.NodeID {
			g.UnmarkRoot(prevID)
		}
		g.MarkRoot(n.NodeID, n.TraceID)

		return
	}

	if g.InDegree(n.NodeID) != 0 {
		return
	}

	parent := n.ParentProcessGUID
	switch {
	case parent != "" && !strings.HasPrefix(parent, "VIRTUAL_") && !g.HasNode(parent):
		g.MarkBroken(n.NodeID, n.TraceID)
	case parent == "" || strings.HasPrefix(parent, "VIRTUAL_"):
		if _, exists := g.RootNodeForTrace(n.TraceID); exists {
			g.MarkRoot(n.NodeID, "")
		} else {
			g.MarkRoot(n.NodeID, n.TraceID)
		}
	}
}
