// Package evidence defines the raw, externally sourced records the engine
// reasons over: RawAlarm (EDR alerts), RawLog (process/file/network/
// domain/registry telemetry), Severity, and IpMappingRelation (the
// per-host pre-correlation input). Nothing in this package mutates;
// every value is treated as an immutable snapshot handed in by the
// query client.
//
// Alerts carry intent classification only (Severity, AlarmName); they
// never imply a node's eventual type in the built graph — that
// classification happens later in converterts.ApplyEntityFilter.
package evidence

// Sentinel ID prefixes that are part of the wire data model (spec.md §3,
// §4.2, §4.7, §4.8): recognizing them is not an implementation detail,
// it is how downstream phases distinguish synthesized nodes from real
// ones.
const (
	// VirtualLogPrefix marks a synthesized log record derived from a
	// child log's parent* fields when no real log/alert witnesses the
	// parent process directly.
	VirtualLogPrefix = "VIRTUAL_LOG_"

	// VirtualRootParentPrefix marks a synthetic ancestor node created for
	// a self-parent log (processGuid == parentProcessGuid). A self-parent
	// alert with no matching log does not create one; its alarm edge is
	// skipped as a self-loop.
	VirtualRootParentPrefix = "VIRTUAL_ROOT_PARENT_"

	// ExploreRootPrefix marks a synthetic root anchor injected for a
	// traceId that has no real root node after graph construction.
	ExploreRootPrefix = "EXPLORE_ROOT_"

	// VirtualBridgePrefix marks a synthetic spacer node inserted between
	// a network-side victim node and its endpoint-side root when the
	// victim node is itself a source of other network edges.
	VirtualBridgePrefix = "VIRTUAL_BRIDGE_"
)
