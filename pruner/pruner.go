package pruner

import (
	"fmt"
	"sort"

	"github.com/riftline/procchain/bfs"
	"github.com/riftline/procchain/core"
)

// Prune runs spec.md §4.6 over g. maxNodeCount <= 0 uses
// DefaultMaxNodeCount. If g already has at most maxNodeCount nodes,
// Prune is a no-op and returns g unchanged (spec.md §4.6's "invoked
// iff |V| > MAX_NODE_COUNT" trigger).
func Prune(g *core.Graph, assocEventIDs map[string]struct{}, maxNodeCount int) (out *core.Graph, diagnostics []string, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if maxNodeCount <= 0 {
		maxNodeCount = DefaultMaxNodeCount
	}

	defer func() {
		if r := recover(); r != nil {
			diagnostics = append(diagnostics, fmt.Sprintf("pruner: panic recovered, retaining unpruned graph: %v", r))
			out = g
			err = nil
		}
	}()

	if g.NodeCount() <= maxNodeCount {
		return g, nil, nil
	}

	mustKeep := computeMustKeep(g, assocEventIDs)
	cascade := computeCascade(g, mustKeep)

	keep := make(map[string]struct{}, len(mustKeep)+len(cascade))
	for id := range mustKeep {
		keep[id] = struct{}{}
	}
	for id := range cascade {
		keep[id] = struct{}{}
	}

	switch {
	case len(keep) > maxNodeCount:
		size := len(keep)
		keep = trimCascade(g, mustKeep, cascade, maxNodeCount, assocEventIDs)
		diagnostics = append(diagnostics, fmt.Sprintf("pruner: must-keep+cascade set (%d) exceeded cap (%d), trimmed cascade-only nodes", size, maxNodeCount))
	case len(keep) < maxNodeCount:
		keep = fillBudget(g, keep, maxNodeCount, assocEventIDs)
	}

	return g.Subgraph(keep), diagnostics, nil
}

// computeMustKeep returns spec.md §4.6's must-keep set: all root
// nodes, all HIGH/MEDIUM-severity alarm nodes, and all nodes carrying
// an alert whose eventId is network-associated.
func computeMustKeep(g *core.Graph, assocEventIDs map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, id := range g.RootNodeIDs() {
		out[id] = struct{}{}
	}
	for _, n := range g.Nodes() {
		if hasHighOrMediumAlert(n) || hasAssociatedAlert(n, assocEventIDs) {
			out[n.NodeID] = struct{}{}
		}
	}

	return out
}

// computeCascade walks every must-keep node up toward its root
// (stopping at the first root reached, mirroring extractor's upward
// walk) and returns the union of every node visited. This is what
// keeps attack paths connected without needing an EXPLORE anchor for
// anything that survives pruning.
func computeCascade(g *core.Graph, mustKeep map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	ids := make([]string, 0, len(mustKeep))
	for id := range mustKeep {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		res, err := bfs.BFS(g, id, bfs.Up,
			bfs.WithFilterNeighbor(func(curr, _ string) bool { return !g.IsRootNode(curr) }),
		)
		if err != nil {
			continue
		}
		for _, n := range res.Order {
			out[n] = struct{}{}
		}
	}

	return out
}

// trimCascade drops the lowest-scoring cascade-only nodes (never a
// must-keep node) until |mustKeep|+|cascadeOnly| == maxNodeCount.
// Ties are broken by dropping the lexicographically larger nodeId
// first (SPEC_FULL Open Question 2 decision).
func trimCascade(g *core.Graph, mustKeep, cascade map[string]struct{}, maxNodeCount int, assocEventIDs map[string]struct{}) map[string]struct{} {
	type scored struct {
		id string
		sc int
	}

	cascadeOnly := make([]scored, 0, len(cascade))
	for id := range cascade {
		if _, ok := mustKeep[id]; ok {
			continue
		}
		n, err := g.GetNode(id)
		if err != nil {
			continue
		}
		cascadeOnly = append(cascadeOnly, scored{id: id, sc: score(g, n, assocEventIDs)})
	}

	sort.Slice(cascadeOnly, func(i, j int) bool {
		if cascadeOnly[i].sc != cascadeOnly[j].sc {
			return cascadeOnly[i].sc < cascadeOnly[j].sc
		}

		return cascadeOnly[i].id > cascadeOnly[j].id
	})

	keep := make(map[string]struct{}, maxNodeCount)
	for id := range mustKeep {
		keep[id] = struct{}{}
	}

	budget := maxNodeCount - len(mustKeep)
	if budget < 0 {
		budget = 0
	}
	numToKeepFromCascade := budget
	if numToKeepFromCascade > len(cascadeOnly) {
		numToKeepFromCascade = len(cascadeOnly)
	}

	// cascadeOnly is sorted worst-first; keep the best
	// numToKeepFromCascade entries, i.e. the tail of the slice.
	start := len(cascadeOnly) - numToKeepFromCascade
	for _, s := range cascadeOnly[start:] {
		keep[s.id] = struct{}{}
	}

	return keep
}

// fillBudget admits the highest-scoring remaining nodes (outside keep)
// until len(keep) == maxNodeCount or no candidates remain.
func fillBudget(g *core.Graph, keep map[string]struct{}, maxNodeCount int, assocEventIDs map[string]struct{}) map[string]struct{} {
	type scored struct {
		id string
		sc int
	}

	candidates := make([]scored, 0)
	for _, n := range g.Nodes() {
		if _, ok := keep[n.NodeID]; ok {
			continue
		}
		candidates = append(candidates, scored{id: n.NodeID, sc: score(g, n, assocEventIDs)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sc != candidates[j].sc {
			return candidates[i].sc > candidates[j].sc
		}

		return candidates[i].id < candidates[j].id
	})

	for _, c := range candidates {
		if len(keep) >= maxNodeCount {
			break
		}
		keep[c.id] = struct{}{}
	}

	return keep
}
