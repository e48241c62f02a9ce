// Package procchain reconstructs incident process chains for
// endpoint-detection-and-response (EDR) investigations.
//
// Given one or more victim host IP addresses, procchain:
//
//   - elects the causally relevant set of EDR alerts on each host (elector),
//   - fetches the surrounding raw telemetry via a pluggable query client (query),
//   - builds a directed attack-provenance graph rooted at the suspected
//     initial process (builder, core),
//   - classifies roots/broken chains and verifies the graph stays acyclic
//     (analyzer, dfs),
//   - extracts the full ancestor/descendant subtree reachable from the
//     elected alerts (extractor, bfs),
//   - retypes leaf nodes into entity categories and projects the result
//     onto the wire shape (converterts),
//   - prunes the graph to a bounded size while preserving critical attack
//     paths (pruner),
//   - anchors traceIds without a real root and broken nodes to synthetic
//     EXPLORE roots (explorer),
//   - bridges per-host endpoint graphs to an externally supplied
//     network-side storyline graph (bridger).
//
// engine wires every phase above, in that order, into a single entry
// point. cmd/chainctl is a thin CLI front-end; config and logging hold
// the ambient viper/zap wiring.
//
//	go get github.com/riftline/procchain
package procchain
