package converters

import "github.com/riftline/procchain/evidence"

// IncidentProcessChain is the JSON wire shape produced by the engine
// (spec.md §6). Field names are the normative wire surface for callers.
type IncidentProcessChain struct {
	TraceIDs       []string         `json:"traceIds"`
	HostAddresses  []string         `json:"hostAddresses"`
	ThreatSeverity evidence.Severity `json:"threatSeverity"`
	Nodes          []IncidentNode   `json:"nodes"`
	Edges          []IncidentEdge   `json:"edges"`
}

// IncidentNode carries at most one of ChainNode/StoryNode populated,
// selected by IsChainNode (spec.md §9's "polymorphism over
// {ChainNode, StoryNode}").
type IncidentNode struct {
	NodeID             string            `json:"nodeId"`
	LogType            string            `json:"logType"`
	OpType             string            `json:"opType,omitempty"`
	NodeThreatSeverity evidence.Severity `json:"nodeThreatSeverity"`
	IsChainNode        bool              `json:"isChainNode"`
	ChainNode          *ChainNodeInfo    `json:"chainNode,omitempty"`
	StoryNode          *StoryNodeInfo    `json:"storyNode,omitempty"`
	ChildrenCount      int               `json:"childrenCount"`
}

// ChainNodeInfo is the endpoint-provenance payload of an IncidentNode.
type ChainNodeInfo struct {
	IsRoot          bool           `json:"isRoot"`
	IsBroken        bool           `json:"isBroken"`
	IsAlarm         bool           `json:"isAlarm"`
	AlarmNodeInfo   *AlarmNodeInfo `json:"alarmNodeInfo,omitempty"`
	ProcessEntity   *ProcessEntity `json:"processEntity,omitempty"`
	Entity          *EntityPayload `json:"entity,omitempty"`
	IsExtensionNode bool           `json:"isExtensionNode,omitempty"`
	ExtensionDepth  int            `json:"extensionDepth,omitempty"`
}

// AlarmNodeInfo summarizes the alert that made a node an alarm node.
// When a node carries more than one alarm, the alarm with the highest
// severity (ties broken by earliest StartTime) is surfaced here; the
// full evidence set is not re-serialized onto the wire shape.
type AlarmNodeInfo struct {
	EventID   string            `json:"eventId"`
	AlarmName string            `json:"alarmName,omitempty"`
	Severity  evidence.Severity `json:"severity"`
	StartTime string            `json:"startTime,omitempty"`
}

// ProcessEntity is the process-specific projection of a node's
// representative evidence: its primary alarm when it has one, else its
// latest real (non-virtual, per spec.md §9) log.
type ProcessEntity struct {
	ProcessName       string `json:"processName,omitempty"`
	ProcessPath       string `json:"processPath,omitempty"`
	CommandLine       string `json:"commandLine,omitempty"`
	ParentProcessGUID string `json:"parentProcessGuid,omitempty"`
}

// EntityPayload is the sum-type-per-category payload for a node
// retyped by ApplyEntityFilter; exactly one field is populated,
// matching the node's NodeType.
type EntityPayload struct {
	File     *evidence.FileFields     `json:"file,omitempty"`
	Network  *evidence.NetworkFields  `json:"network,omitempty"`
	Domain   *evidence.DomainFields   `json:"domain,omitempty"`
	Registry *evidence.RegistryFields `json:"registry,omitempty"`
}

// StoryNodeInfo is the network-side-storyline payload of an
// IncidentNode whose IsChainNode is false (spec.md §4.8 input).
type StoryNodeInfo struct {
	Type  string            `json:"type,omitempty"`
	IP    string            `json:"ip,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// IncidentEdge is one wire edge; Val is one of "连接"/"断链"/"桥接"/"".
type IncidentEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Val    string `json:"val"`
}
