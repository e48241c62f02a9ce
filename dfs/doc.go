// Package dfs detects cycles in a core.Graph using three-color
// (White/Gray/Black) depth-first search with back-edge recording and
// canonical-signature deduplication.
//
// core.Graph.AddEdge already refuses a direct back-edge (I3), so a
// 2-cycle can never be constructed; DetectCycles exists to catch the
// longer cycles reverse-edge rejection alone cannot rule out — A→B→C→A
// and up — which can still arise once explorer and bridger splice
// synthetic nodes into an already-built graph.
//
// Complexity: Time O(V+E+C·L), Memory O(V+L_max) where C is the cycle
// count and L the average cycle length.
package dfs

import "errors"

// VertexState marks a node's depth-first visitation state.
const (
	White = iota
	Gray
	Black
)

// ErrGraphNil marks a nil *core.Graph. DetectCycles does not return it:
// it treats a nil graph as cycle-free and returns (false, nil, nil).
var ErrGraphNil = errors.New("dfs: graph is nil")
