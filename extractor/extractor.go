package extractor

import (
	"github.com/riftline/procchain/bfs"
	"github.com/riftline/procchain/core"
)

// Extract runs spec.md §4.4's full-tree traversal from every node in
// starts: walk upward toward ancestry until a root is reached or
// predecessors are exhausted, then walk downward from every node
// visited on that upward path, unioning the result across all starts.
// Start IDs absent from g are skipped rather than treated as an error
// (an elected alert's processGuid may not have made it into the graph
// if Phase A/B never saw it).
func Extract(g *core.Graph, starts []string) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	keep := make(map[string]struct{})
	for _, start := range starts {
		if !g.HasNode(start) {
			continue
		}
		for _, id := range upwardPath(g, start) {
			keep[id] = struct{}{}
			downwardSubtree(g, id, keep)
		}
	}

	return g.Subgraph(keep), nil
}

// upwardPath walks from start toward the root, stopping as soon as a
// root node has been visited (its own predecessors, if any, are not
// explored further) or MaxTraverseDepth is reached. Returns every node
// ID visited along the way, start included.
func upwardPath(g *core.Graph, start string) []string {
	res, err := bfs.BFS(g, start, bfs.Up,
		bfs.WithMaxDepth(MaxTraverseDepth),
		bfs.WithFilterNeighbor(func(curr, _ string) bool {
			return !g.IsRootNode(curr)
		}),
	)
	if err != nil {
		return []string{start}
	}

	return res.Order
}

// downwardSubtree walks every descendant of id and adds it to keep.
func downwardSubtree(g *core.Graph, id string, keep map[string]struct{}) {
	res, err := bfs.BFS(g, id, bfs.Down, bfs.WithMaxDepth(MaxTraverseDepth))
	if err != nil {
		return
	}
	for _, n := range res.Order {
		keep[n] = struct{}{}
	}
}
