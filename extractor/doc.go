// Package extractor implements spec.md §4.4: given a built, analyzed
// core.Graph and a set of start nodes (elected alert processGuids, or
// log-derived processGuids in the "no alarm" mode), it produces the
// induced subgraph reachable by the "full-tree traversal" rule —
// upward to each start's root, then downward from every node on that
// upward path — unioned across all starts.
//
// Extract never mutates g; it returns a fresh *core.Graph built via
// core.Graph.Subgraph over the union of retained node IDs.
package extractor

import "errors"

// MaxTraverseDepth bounds both the upward and downward walks (spec.md
// §5's MAX_TRAVERSE_DEPTH = 50), guarding against pathological depth.
// core.Graph rejects reverse edges only, so longer cycles can exist;
// bfs's visited set keeps them from looping the walk.
const MaxTraverseDepth = 50

// ErrNilGraph is returned when Extract is called with a nil graph.
var ErrNilGraph = errors.New("extractor: graph is nil")
