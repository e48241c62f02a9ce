// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/HasEdge/Edges/EdgeCount) and adjacency
// queries (Successors/Predecessors/InDegree/OutDegree).
//
// Determinism: Edges() is sorted by (source, target) ID ascending,
// Predecessors() by source ID ascending, and Successors() by log count
// descending, then target ID ascending.
// Concurrency: edges+adjacency guarded by muEdgeAdj; both endpoints must
// already exist in muNode's catalog (AddEdge checks this first).
package core

import "sort"

// AddEdge inserts source→target with label val. Both nodes must already
// exist (ErrNodeNotFound otherwise — builder always creates nodes before
// wiring edges). Enforces:
//
//   - I2: source == target is rejected with ErrSelfLoop.
//   - I3: if target→source already exists, the insert is rejected with
//     ErrReverseEdgeExists so the graph never gains a 2-cycle. Longer
//     cycles are not checked here.
//   - uniqueness per (source,target): re-adding the same pair updates
//     the label and is otherwise a no-op.
func (g *Graph) AddEdge(source, target, val string) error {
	if source == "" || target == "" {
		return ErrEmptyNodeID
	}
	if source == target {
		return ErrSelfLoop
	}
	if !g.HasNode(source) || !g.HasNode(target) {
		return ErrNodeNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if existing := g.adjacencyOut[source][target]; existing != nil {
		existing.Val = val

		return nil
	}
	if g.adjacencyOut[target][source] != nil {
		return ErrReverseEdgeExists
	}

	e := &GraphEdge{Source: source, Target: target, Val: val}
	if g.adjacencyOut[source] == nil {
		g.adjacencyOut[source] = make(map[string]*GraphEdge)
	}
	if g.adjacencyIn[target] == nil {
		g.adjacencyIn[target] = make(map[string]*GraphEdge)
	}
	g.adjacencyOut[source][target] = e
	g.adjacencyIn[target][source] = e

	return nil
}

// HasEdge reports whether source→target exists.
func (g *Graph) HasEdge(source, target string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.adjacencyOut[source][target] != nil
}

// Edges returns every edge, sorted by (Source,Target) ascending.
func (g *Graph) Edges() []*GraphEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*GraphEdge, 0)
	for _, byTarget := range g.adjacencyOut {
		for _, e := range byTarget {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}

		return out[i].Target < out[j].Target
	})

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, byTarget := range g.adjacencyOut {
		n += len(byTarget)
	}

	return n
}

// Successors returns the target IDs of id's outgoing edges, sorted by
// (log-count descending, then nodeId ascending) per spec.md §4.3's
// traversal ordering guarantee. Ties on log count are broken
// lexicographically.
func (g *Graph) Successors(id string) []string {
	g.muEdgeAdj.RLock()
	byTarget := g.adjacencyOut[id]
	targets := make([]string, 0, len(byTarget))
	for t := range byTarget {
		targets = append(targets, t)
	}
	g.muEdgeAdj.RUnlock()

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	sort.Slice(targets, func(i, j int) bool {
		ni, nj := g.nodes[targets[i]], g.nodes[targets[j]]
		li, lj := logCount(ni), logCount(nj)
		if li != lj {
			return li > lj
		}

		return targets[i] < targets[j]
	})

	return targets
}

func logCount(n *GraphNode) int {
	if n == nil {
		return 0
	}

	return len(n.Logs)
}

// Predecessors returns the source IDs of id's incoming edges, sorted
// ascending.
func (g *Graph) Predecessors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bySource := g.adjacencyIn[id]
	out := make([]string, 0, len(bySource))
	for s := range bySource {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// InDegree returns the number of incoming edges at id.
func (g *Graph) InDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyIn[id])
}

// OutDegree returns the number of outgoing edges at id.
func (g *Graph) OutDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyOut[id])
}

// Degree returns InDegree(id) + OutDegree(id), used by the pruner's
// connectivity score term.
func (g *Graph) Degree(id string) int {
	return g.InDegree(id) + g.OutDegree(id)
}
