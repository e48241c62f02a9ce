package query

import (
	"context"

	"github.com/riftline/procchain/evidence"
)

// TimeWindow bounds a log query to [Lo, Hi] (spec.md §4.4's "start-time
// minus/plus ten minutes" restriction when recovering a no-alarm start
// log). Both bounds are inclusive, ISO-8601 wall-clock strings matching
// evidence.Evidence.StartTime's format.
type TimeWindow struct {
	Lo string
	Hi string
}

// Client is the narrow surface the engine needs from the EDR's
// alert/log search backend (spec.md §6). Implementations may back onto
// any document store; StaticClient backs onto an in-memory fixture for
// tests and cmd/chainctl demos.
type Client interface {
	// QueryAlarms returns every alert recorded for hostIP.
	QueryAlarms(ctx context.Context, hostIP string) ([]evidence.RawAlarm, error)

	// QueryLogs returns logs for traceID on hostIP, restricted to w and
	// filtered to logTypes when logTypes is non-empty.
	QueryLogs(ctx context.Context, traceID, hostIP string, w TimeWindow, logTypes []string) ([]evidence.RawLog, error)

	// BatchAlarms fans QueryAlarms out over hostIPs, one sub-request per
	// host, keyed by host in the result map.
	BatchAlarms(ctx context.Context, hostIPs []string) map[string][]evidence.RawAlarm

	// BatchLogs fans QueryLogs out over every (hostIP, traceID) pair
	// named by hostToTraceID, windowed around hostToStartTime[hostIP].
	BatchLogs(ctx context.Context, hostToTraceID, hostToStartTime map[string]string, logTypes []string) map[string][]evidence.RawLog
}
