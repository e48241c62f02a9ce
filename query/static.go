package query

import (
	"context"
	"strings"

	"github.com/riftline/procchain/evidence"
)

// StaticClient is an in-memory Client backed by fixture data, used by
// tests and cmd/chainctl's demo mode in place of a live search backend.
type StaticClient struct {
	cfg *batchConfig

	alarmsByHost map[string][]evidence.RawAlarm
	logsByKey    map[string][]evidence.RawLog // key: hostIP + "|" + traceID
}

// NewStaticClient builds a StaticClient from fixture alert/log sets.
// logsByKey is keyed "hostIP|traceID" to match QueryLogs' lookup.
func NewStaticClient(alarmsByHost map[string][]evidence.RawAlarm, logsByKey map[string][]evidence.RawLog, opts ...Option) *StaticClient {
	if alarmsByHost == nil {
		alarmsByHost = map[string][]evidence.RawAlarm{}
	}
	if logsByKey == nil {
		logsByKey = map[string][]evidence.RawLog{}
	}

	return &StaticClient{
		cfg:          newBatchConfig(opts...),
		alarmsByHost: alarmsByHost,
		logsByKey:    logsByKey,
	}
}

func logKey(hostIP, traceID string) string {
	return hostIP + "|" + traceID
}

// QueryAlarms returns the fixture's alerts for hostIP, or nil if none.
func (c *StaticClient) QueryAlarms(_ context.Context, hostIP string) ([]evidence.RawAlarm, error) {
	return c.alarmsByHost[hostIP], nil
}

// QueryLogs returns the fixture's logs for (traceID, hostIP), windowed
// to w and filtered to logTypes when non-empty.
func (c *StaticClient) QueryLogs(_ context.Context, traceID, hostIP string, w TimeWindow, logTypes []string) ([]evidence.RawLog, error) {
	all := c.logsByKey[logKey(hostIP, traceID)]
	if len(all) == 0 {
		return nil, nil
	}

	allow := make(map[string]struct{}, len(logTypes))
	for _, lt := range logTypes {
		allow[strings.ToLower(lt)] = struct{}{}
	}

	out := make([]evidence.RawLog, 0, len(all))
	for _, l := range all {
		if w.Lo != "" && l.StartTime < w.Lo {
			continue
		}
		if w.Hi != "" && l.StartTime > w.Hi {
			continue
		}
		if len(allow) > 0 {
			if _, ok := allow[strings.ToLower(l.LogType)]; !ok {
				continue
			}
		}
		out = append(out, l)
	}

	return out, nil
}

// BatchAlarms fans QueryAlarms out over hostIPs via the shared errgroup
// fan-out helper.
func (c *StaticClient) BatchAlarms(ctx context.Context, hostIPs []string) map[string][]evidence.RawAlarm {
	return batchAlarms(ctx, hostIPs, c.cfg, func(ctx context.Context, hostIP string) ([]evidence.RawAlarm, error) {
		return c.QueryAlarms(ctx, hostIP)
	})
}

// BatchLogs fans QueryLogs out over every host in hostToTraceID,
// windowing each sub-request to [startTime-10m, startTime+10m] per
// spec.md §4.4. hostToStartTime entries missing a host leave that
// sub-request unwindowed.
func (c *StaticClient) BatchLogs(ctx context.Context, hostToTraceID, hostToStartTime map[string]string, logTypes []string) map[string][]evidence.RawLog {
	hosts := make([]string, 0, len(hostToTraceID))
	for h := range hostToTraceID {
		hosts = append(hosts, h)
	}

	return batchLogs(ctx, hosts, c.cfg, func(ctx context.Context, hostIP string) ([]evidence.RawLog, error) {
		w := WindowAround(hostToStartTime[hostIP], tenMinutes)
		return c.QueryLogs(ctx, hostToTraceID[hostIP], hostIP, w, logTypes)
	})
}
