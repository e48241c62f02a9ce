package core

import (
	"sync"

	"github.com/riftline/procchain/evidence"
)

// MaxLogsPerNode bounds the number of logs a non-alarm node may
// accumulate (spec.md §3 I7, §4.9). Alarm nodes are unbounded.
const MaxLogsPerNode = 1000

// Node type tags (spec.md §3, §9 "tagged union for node kind").
const (
	NodeTypeProcess         = "process"
	NodeTypeFileEntity      = "file_entity"
	NodeTypeDomainEntity    = "domain_entity"
	NodeTypeNetworkEntity   = "network_entity"
	NodeTypeRegistryEntity  = "registry_entity"
	NodeTypeExplore         = "explore"
	NodeTypeVirtual         = "virtual"
)

// Edge label values (spec.md §3, §9 Open Question 3).
const (
	EdgeLabelConnected = "连接"
	EdgeLabelBroken    = "断链"
	EdgeLabelBridge    = "桥接"
	// EdgeLabelNone is used for file-delete targets (Open Question 3).
	EdgeLabelNone = ""
)

// GraphNode is the internal vertex type described in spec.md §3. Its
// ID equals the processGuid for real nodes, or a synthesized ID for
// virtual/explore nodes.
type GraphNode struct {
	NodeID            string
	ParentProcessGUID string
	TraceID           string
	HostAddress       string
	NodeType          string

	Alarms []evidence.RawAlarm
	Logs   []evidence.RawLog

	IsRoot    bool
	IsBroken  bool
	IsAlarm   bool
	IsVirtual bool

	// logCapWarned tracks whether MAX_LOGS_PER_NODE has already produced
	// a one-time warning for this node (spec.md §4.9); it is mutated only
	// under Graph.muNode and never serialized.
	logCapWarned bool
}

// GraphEdge is an ordered (source,target) pair with an optional label.
// Edges are unique per (source,target): Graph.AddEdge enforces this.
type GraphEdge struct {
	Source string
	Target string
	Val    string
}

// Graph is the directed, loop-free provenance graph built by builder,
// classified by analyzer, walked by extractor, and shrunk by pruner.
// Graph is safe for concurrent single-phase use: within one invocation
// only one phase mutates the graph at a time (spec.md §5), but the
// locks below make read-only queries safe to call from concurrent
// I/O-fan-out goroutines while a build is not in progress.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nodes map[string]*GraphNode

	// adjacencyOut[from][to] / adjacencyIn[to][from] give O(1) edge
	// lookups in both directions; in-degree = len(adjacencyIn[id]).
	adjacencyOut map[string]map[string]*GraphEdge
	adjacencyIn  map[string]map[string]*GraphEdge

	rootNodes           map[string]struct{}
	brokenNodes         map[string]struct{}
	traceIDToRootNode   map[string]string
	brokenNodeToTraceID map[string]string
}

// NewGraph returns an empty Graph ready for GraphBuilder's phases.
func NewGraph() *Graph {
	return &Graph{
		nodes:               make(map[string]*GraphNode),
		adjacencyOut:        make(map[string]map[string]*GraphEdge),
		adjacencyIn:         make(map[string]map[string]*GraphEdge),
		rootNodes:           make(map[string]struct{}),
		brokenNodes:         make(map[string]struct{}),
		traceIDToRootNode:   make(map[string]string),
		brokenNodeToTraceID: make(map[string]string),
	}
}
