// Package pruner implements spec.md §4.6: shrinking a core.Graph to at
// most MaxNodeCount nodes while preserving every must-keep node (roots,
// HIGH/MEDIUM-severity alarm nodes, network-associated alarm nodes) and
// the root-reaching path ("cascade") of each.
//
// Prune never mutates g; on success it returns a fresh *core.Graph via
// g.Subgraph. Per spec.md §7's PruneFailure policy, any panic during
// scoring/selection is recovered and the original, un-pruned graph is
// returned unchanged alongside a diagnostic, rather than propagating.
package pruner

import "errors"

// ErrNilGraph is returned when Prune is called with a nil graph.
var ErrNilGraph = errors.New("pruner: graph is nil")

// DefaultMaxNodeCount is spec.md §5's MAX_NODE_COUNT.
const DefaultMaxNodeCount = 400
