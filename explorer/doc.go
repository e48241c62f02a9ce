// Package explorer implements spec.md §4.7: giving every traceId
// without a real root, and every broken node, a synthetic upward
// anchor so the final graph always has a reachable root per traceId.
//
// Inject never removes anything; it only adds EXPLORE_ROOT_<traceId>
// nodes and "broken"-labeled edges from those anchors to broken nodes.
package explorer

import "errors"

// ErrNilGraph is returned when Inject is called with a nil graph.
var ErrNilGraph = errors.New("explorer: graph is nil")
