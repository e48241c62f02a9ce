// Package bfs provides breadth-first traversal over a core.Graph in
// either direction: Down follows outgoing (parent→child) edges via
// Successors, Up follows incoming edges via Predecessors. extractor
// uses both to walk from an elected alert up to its root and back down
// through every descendant subtree.
//
// What
//
//   - Explores nodes in non-decreasing distance (edge count) from a
//     start node.
//   - Returns a BFSResult with Order (visit sequence), Depth (distance
//     map), and Parent (BFS-tree predecessor map).
//   - Supports OnEnqueue/OnDequeue/OnVisit hooks, WithFilterNeighbor,
//     WithMaxDepth, and context cancellation.
//
// Determinism
//
//	core.Graph.Successors/Predecessors return IDs in a fixed order
//	(log-count descending then lexicographic for Successors; pure
//	lexicographic for Predecessors), so BFS enqueues neighbors in that
//	same order and the visit sequence is fully reproducible.
//
// Complexity: Time O(V+E), Memory O(V).
package bfs

import "errors"

// Direction selects which adjacency BFS walks.
type Direction int

const (
	// Down follows outgoing edges (parent→child).
	Down Direction = iota
	// Up follows incoming edges (child→parent).
	Up
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when adjacency lookup fails unexpectedly.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)
