package bridger

import (
	"sort"

	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// Bridge links every victim node in nodes to its host's root node in g
// (spec.md §4.8). hostToTraceID maps a victim's IP to the traceId whose
// root should be targeted; g must already have that traceId's root
// recorded (analyzer/explorer run before Bridge).
//
// Nodes are processed in NodeID order for determinism regardless of
// the order the caller supplied them in (spec.md P7) — the network
// graph arrives from an external, out-of-scope collaborator with no
// ordering guarantee of its own.
//
// Returns the extra story-side edges (victim→root, or victim→spacer
// when the victim is itself a source elsewhere in edges) that
// converterts.ToChain must fold into the final edge list alongside
// g.Edges(); the spacer node and its edge into the endpoint root are
// added directly to g since both of those endpoints live in g.
func Bridge(g *core.Graph, nodes []NetworkNode, edges []NetworkEdge, hostToTraceID map[string]string) ([]NetworkEdge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	sourceSet := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		sourceSet[e.Source] = struct{}{}
	}

	ordered := append([]NetworkNode(nil), nodes...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].NodeID < ordered[j].NodeID })

	var storyEdges []NetworkEdge
	for _, v := range ordered {
		if v.NodeType != VictimNodeType || v.IP == "" {
			continue
		}
		traceID, ok := hostToTraceID[v.IP]
		if !ok {
			continue
		}
		rootID, ok := g.RootNodeForTrace(traceID)
		if !ok {
			continue
		}

		if _, isSource := sourceSet[v.NodeID]; isSource {
			bridgeID := evidence.VirtualBridgePrefix + v.NodeID
			if _, err := g.AddNode(bridgeID, core.NodeTypeVirtual); err != nil {
				continue
			}
			if err := g.AddEdge(bridgeID, rootID, core.EdgeLabelBridge); err != nil {
				continue
			}
			storyEdges = append(storyEdges, NetworkEdge{Source: v.NodeID, Target: bridgeID, Val: core.EdgeLabelBridge})

			continue
		}

		storyEdges = append(storyEdges, NetworkEdge{Source: v.NodeID, Target: rootID, Val: core.EdgeLabelBridge})
	}

	return storyEdges, nil
}
