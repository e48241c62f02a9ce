package converters

import (
	"github.com/riftline/procchain/bridger"
	"github.com/riftline/procchain/core"
	"github.com/riftline/procchain/evidence"
)

// ToChain assembles the final IncidentProcessChain from g (the
// extracted/entity-filtered/pruned/explore-injected/bridged endpoint
// graph) plus the story-side nodes/edges bridger.Bridge was given.
// traceIDs and hostAddresses are carried through from elector/engine
// unchanged.
func ToChain(
	g *core.Graph,
	traceIDs []string,
	hostAddresses []string,
	storyNodes []bridger.NetworkNode,
	storyEdges []bridger.NetworkEdge,
) (*IncidentProcessChain, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := make([]IncidentNode, 0, g.NodeCount()+len(storyNodes))
	overall := evidence.SeverityUnknown

	for _, n := range g.Nodes() {
		in := chainIncidentNode(g, n)
		if in.NodeThreatSeverity > overall {
			overall = in.NodeThreatSeverity
		}
		nodes = append(nodes, in)
	}
	for _, sn := range storyNodes {
		nodes = append(nodes, storyIncidentNode(sn))
	}

	edges := make([]IncidentEdge, 0, g.EdgeCount()+len(storyEdges))
	for _, e := range g.Edges() {
		edges = append(edges, IncidentEdge{Source: e.Source, Target: e.Target, Val: e.Val})
	}
	for _, e := range storyEdges {
		edges = append(edges, IncidentEdge{Source: e.Source, Target: e.Target, Val: e.Val})
	}

	return &IncidentProcessChain{
		TraceIDs:       traceIDs,
		HostAddresses:  hostAddresses,
		ThreatSeverity: overall,
		Nodes:          nodes,
		Edges:          edges,
	}, nil
}

func chainIncidentNode(g *core.Graph, n *core.GraphNode) IncidentNode {
	primary := primaryAlarm(n)
	rep := representativeEvidence(n)

	in := IncidentNode{
		NodeID:        n.NodeID,
		LogType:       n.NodeType,
		IsChainNode:   true,
		ChildrenCount: g.OutDegree(n.NodeID),
	}
	if rep != nil {
		in.OpType = rep.OpType
	}

	cn := &ChainNodeInfo{
		IsRoot:   n.IsRoot,
		IsBroken: n.IsBroken,
		IsAlarm:  n.IsAlarm,
	}

	if primary != nil {
		in.NodeThreatSeverity = primary.ThreatSeverity
		cn.AlarmNodeInfo = &AlarmNodeInfo{
			EventID:   primary.EventID,
			AlarmName: primary.AlarmName,
			Severity:  primary.ThreatSeverity,
			StartTime: primary.StartTime,
		}
	}

	switch n.NodeType {
	case core.NodeTypeProcess:
		if rep != nil {
			proc := rep.Process
			if primary != nil {
				proc = primary.Process
			}
			cn.ProcessEntity = &ProcessEntity{
				ProcessName:       proc.ProcessName,
				ProcessPath:       proc.ProcessPath,
				CommandLine:       proc.CommandLine,
				ParentProcessGUID: n.ParentProcessGUID,
			}
		}
	case core.NodeTypeFileEntity:
		if rep != nil {
			cn.Entity = &EntityPayload{File: &rep.File}
		}
	case core.NodeTypeNetworkEntity:
		if rep != nil {
			cn.Entity = &EntityPayload{Network: &rep.Network}
		}
	case core.NodeTypeDomainEntity:
		if rep != nil {
			cn.Entity = &EntityPayload{Domain: &rep.Domain}
		}
	case core.NodeTypeRegistryEntity:
		if rep != nil {
			cn.Entity = &EntityPayload{Registry: &rep.Registry}
		}
	}

	// Synthetic nodes (virtual parents, EXPLORE roots, bridge spacers)
	// extend the graph beyond witnessed evidence; flagging them lets
	// callers render a visual distinction without re-deriving it from
	// nodeType string comparisons.
	if n.NodeType == core.NodeTypeVirtual || n.NodeType == core.NodeTypeExplore || n.IsVirtual {
		cn.IsExtensionNode = true
		cn.ExtensionDepth = 1
	}

	in.ChainNode = cn

	return in
}

func storyIncidentNode(sn bridger.NetworkNode) IncidentNode {
	return IncidentNode{
		NodeID:      sn.NodeID,
		LogType:     sn.NodeType,
		IsChainNode: false,
		StoryNode: &StoryNodeInfo{
			Type:  sn.NodeType,
			IP:    sn.IP,
			Attrs: sn.Attrs,
		},
	}
}

// primaryAlarm returns the alarm to surface in AlarmNodeInfo: highest
// severity first, ties broken by earliest StartTime.
func primaryAlarm(n *core.GraphNode) *evidence.RawAlarm {
	if len(n.Alarms) == 0 {
		return nil
	}

	best := n.Alarms[0]
	for _, a := range n.Alarms[1:] {
		switch {
		case a.ThreatSeverity > best.ThreatSeverity:
			best = a
		case a.ThreatSeverity == best.ThreatSeverity && a.StartTime != "" && (best.StartTime == "" || a.StartTime < best.StartTime):
			best = a
		}
	}

	return &best
}

// representativeEvidence returns the evidence record used to project
// OpType/ProcessEntity/Entity fields: the primary alarm if present,
// else the latest real (non-virtual) log, else the latest log of any
// kind (spec.md §9: "prefer real logs over virtual when both exist").
func representativeEvidence(n *core.GraphNode) *evidence.Evidence {
	if a := primaryAlarm(n); a != nil {
		return &a.Evidence
	}

	var latestReal, latestAny *evidence.Evidence
	for i := range n.Logs {
		l := &n.Logs[i]
		if latestAny == nil || l.StartTime > latestAny.StartTime {
			latestAny = &l.Evidence
		}
		if l.IsVirtual() {
			continue
		}
		if latestReal == nil || l.StartTime > latestReal.StartTime {
			latestReal = &l.Evidence
		}
	}
	if latestReal != nil {
		return latestReal
	}

	return latestAny
}
