// Package analyzer runs Phase D over a built core.Graph: it classifies
// every node as a real root, a virtual root, a broken chain entry, or
// neither, populating the graph's root/broken index maps and
// traceId→root lookup table, then runs a cycle diagnostic over the
// result (spec.md §4.3).
//
// Classification never removes or rewires anything; it only flags
// existing nodes and records lookup-table entries. Cycle detection is a
// read-only diagnostic — core.Graph.AddEdge's I3 rejection already
// rules out 2-cycles, so a cycle report here names a longer loop
// (A→B→C→A) that reverse-edge rejection cannot prevent; the graph is
// left as it is.
package analyzer
