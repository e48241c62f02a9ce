// Package bridger implements spec.md §4.8: linking an externally
// supplied network-side storyline graph to the endpoint provenance
// graph via victim-ip-to-root lookups, synthesizing a spacer node when
// the victim node is already the source of a network edge (spec.md §9
// Glossary "Bridge").
//
// Bridge mutates g directly for anything both endpoints of which it can
// place inside g (the VIRTUAL_BRIDGE_ spacer and its edge to the
// endpoint root); it cannot add an edge from a network-side node into g
// because that node was never one of g's own vertices, so those edges
// are returned from Bridge as story edges for converterts.ToChain to merge into the
// final unified node/edge list alongside g's own.
package bridger

import "errors"

// ErrNilGraph is returned when Bridge is called with a nil endpoint graph.
var ErrNilGraph = errors.New("bridger: endpoint graph is nil")

// VictimNodeType is the NetworkNode.NodeType value Bridge looks for
// (spec.md §4.8: "story node of type victim carrying an ip attribute").
const VictimNodeType = "victim"
