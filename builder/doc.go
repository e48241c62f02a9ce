// Package builder consumes elected alerts and their surrounding raw
// logs and produces the full provenance core.Graph (spec.md §4.2).
//
// BuildGraph is the single public entry point; it runs Phases A-C in
// order against one core.Graph, add-only, and leaves Phase D to the
// analyzer package:
//
//   - Phase A: alarm nodes — one node per alert's processGuid.
//   - Phase B: log merging — attaches logs to existing/new nodes,
//     synthesizing virtual parent nodes/logs where the parent hasn't
//     been seen yet, and a self-parent virtual root when a log's
//     processGuid equals its own parentProcessGuid.
//   - Phase C: alarm edges — parent→child edges between alert nodes,
//     skipped (not rejected) when a reverse edge would close a cycle.
//   - Phase D: analysis — delegated to the analyzer package by engine;
//     BuildGraph itself stops after Phase C so callers can choose
//     whether to analyze immediately.
//
// Config carries the ambient knobs (currently only the logger) via the
// same functional-options shape the teacher uses for its topology
// constructors, generalized to this package's actual inputs. The
// per-node log cap is core.MaxLogsPerNode, not a Config setting.
package builder

import "errors"

// ErrNilGraph marks a nil target graph. BuildGraph allocates its own
// graph and does not return it.
var ErrNilGraph = errors.New("builder: nil graph")
