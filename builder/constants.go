// Package builder: shared constants for the four ingestion phases.
package builder

const (
	// MethodAlarmNodes prefixes errors from Phase A.
	MethodAlarmNodes = "AlarmNodes"
	// MethodLogMerge prefixes errors from Phase B.
	MethodLogMerge = "LogMerge"
	// MethodAlarmEdges prefixes errors from Phase C.
	MethodAlarmEdges = "AlarmEdges"
)

// RootParentHashSuffix is appended to a self-parent's processGuid before
// hashing, per spec.md §4.2's virtual-root-parent ID scheme.
const RootParentHashSuffix = "_ROOT_PARENT"
