package engine

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/riftline/procchain/analyzer"
	"github.com/riftline/procchain/bridger"
	"github.com/riftline/procchain/builder"
	converters "github.com/riftline/procchain/converterts"
	"github.com/riftline/procchain/elector"
	"github.com/riftline/procchain/evidence"
	"github.com/riftline/procchain/explorer"
	"github.com/riftline/procchain/extractor"
	"github.com/riftline/procchain/pruner"
)

// Build runs the full pipeline against in and returns a best-effort
// IncidentProcessChain plus every diagnostic emitted along the way.
// Build never returns an error (spec.md §7); a stage that cannot
// proceed degrades and is logged instead.
func Build(ctx context.Context, in Input, opts ...Option) (*converters.IncidentProcessChain, []Diagnostic) {
	cfg := newRunConfig(opts...)
	runID := uuid.New().String()
	logger := cfg.logger.With(zap.String("runId", runID))

	var diags []Diagnostic
	if in.Client == nil {
		logger.Error("engine: nil query client, aborting")
		return emptyChain(), []Diagnostic{diag("query", "nil query client: no alerts or logs were retrieved")}
	}

	alarmsByHost := in.Client.BatchAlarms(ctx, in.HostIPs)

	electedAlerts, traceIDs, hostToTraceID, hostToStartTime, noAlarmHosts, electDiags := electPerHost(in.Mapping, in.HostIPs, alarmsByHost)
	diags = append(diags, electDiags...)

	logsByHost := in.Client.BatchLogs(ctx, hostToTraceID, hostToStartTime, cfg.logTypes)
	var allLogs []evidence.RawLog
	for _, ls := range logsByHost {
		allLogs = append(allLogs, ls...)
	}

	// spec.md §4.4's "no alarm" mode: a host with no electable alert
	// still seeds extractor's start set from the log named by
	// IpMappingRelation's ip→logId entry, once that log is in hand.
	noAlarmStarts := startLogProcessGUIDs(in.Mapping, noAlarmHosts, logsByHost)

	g, buildDiags, err := builder.BuildGraph(electedAlerts, allLogs, builder.WithLogger(logger))
	diags = append(diags, wrapDiags("builder", buildDiags)...)
	if err != nil {
		logger.Error("engine: BuildGraph failed", zap.Error(err))
		diags = append(diags, diag("builder", "graph build failed: %v", err))
		return emptyChain(), diags
	}

	if _, err := analyzer.Analyze(g); err != nil {
		logger.Error("engine: Analyze failed", zap.Error(err))
		diags = append(diags, diag("analyzer", "classification failed: %v", err))
	}

	starts := startProcessGUIDs(electedAlerts, noAlarmStarts)
	if extracted, err := extractor.Extract(g, starts); err != nil {
		logger.Warn("engine: Extract failed, keeping full graph", zap.Error(err))
		diags = append(diags, diag("extractor", "subgraph extraction failed, retaining full graph: %v", err))
	} else {
		g = extracted
	}

	if err := converters.ApplyEntityFilter(g); err != nil {
		logger.Warn("engine: ApplyEntityFilter failed", zap.Error(err))
		diags = append(diags, diag("converters", "entity filter failed: %v", err))
	}

	assocEventIDs := associatedEventIDs(in.Mapping, in.HostIPs)
	if prunedGraph, pruneDiags, err := pruner.Prune(g, assocEventIDs, cfg.maxNodeCount); err != nil {
		logger.Warn("engine: Prune failed, keeping unpruned graph", zap.Error(err))
		diags = append(diags, diag("pruner", "prune failed, retaining original graph: %v", err))
	} else {
		g = prunedGraph
		diags = append(diags, wrapDiags("pruner", pruneDiags)...)
	}

	if exploreDiags, err := explorer.Inject(g, traceIDs); err != nil {
		logger.Warn("engine: Inject failed", zap.Error(err))
		diags = append(diags, diag("explorer", "explore injection failed: %v", err))
	} else {
		diags = append(diags, wrapDiags("explorer", exploreDiags)...)
	}

	storyEdges, err := bridger.Bridge(g, in.NetworkNodes, in.NetworkEdges, hostToTraceID)
	if err != nil {
		logger.Warn("engine: Bridge failed, story graph omitted", zap.Error(err))
		diags = append(diags, diag("bridger", "bridging failed, story graph omitted: %v", err))
	}

	chain, err := converters.ToChain(g, traceIDs, hostAddresses(in.HostIPs), in.NetworkNodes, storyEdges)
	if err != nil {
		logger.Error("engine: ToChain failed", zap.Error(err))
		diags = append(diags, diag("converters", "final chain assembly failed: %v", err))
		return emptyChain(), diags
	}

	return chain, diags
}

func emptyChain() *converters.IncidentProcessChain {
	return &converters.IncidentProcessChain{ThreatSeverity: evidence.SeverityUnknown}
}

func wrapDiags(stage string, msgs []string) []Diagnostic {
	out := make([]Diagnostic, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Diagnostic{Stage: stage, Message: m})
	}

	return out
}

func hostAddresses(hostIPs []string) []string {
	out := append([]string(nil), hostIPs...)
	sort.Strings(out)

	return out
}

// electPerHost runs elector.Elect independently per host, aggregating
// the elected alerts, the set of traceIds represented, and the
// hostIP→traceId / hostIP→startTime maps BatchLogs needs. A host with
// no electable trace falls back to IpMappingRelation's ip→traceId entry
// (spec.md §3, §4.4's "no alarm" mode) so BatchLogs still has a traceId
// to fetch against; such hosts are returned in noAlarmHosts so Build can
// later resolve their start nodes from ip→logId instead of an alert.
func electPerHost(
	mapping *evidence.IpMappingRelation,
	hostIPs []string,
	alarmsByHost map[string][]evidence.RawAlarm,
) (elected []evidence.RawAlarm, traceIDs []string, hostToTraceID, hostToStartTime map[string]string, noAlarmHosts []string, diags []Diagnostic) {
	hostToTraceID = make(map[string]string)
	hostToStartTime = make(map[string]string)
	traceSet := make(map[string]struct{})

	hosts := append([]string(nil), hostIPs...)
	sort.Strings(hosts)

	for _, ip := range hosts {
		assocEventID, _ := mapping.AssociatedEventIDFor(ip)
		sel, err := elector.Elect(alarmsByHost[ip], assocEventID, mapping.HasAssociation(ip))
		if err != nil {
			if traceID, ok := mapping.TraceIDFor(ip); ok {
				hostToTraceID[ip] = traceID
				traceSet[traceID] = struct{}{}
				noAlarmHosts = append(noAlarmHosts, ip)
				diags = append(diags, diag("elector", "no electable alert for host %q, using mapped traceId %q (no-alarm mode)", ip, traceID))

				continue
			}
			diags = append(diags, diag("elector", "no electable trace for host %q: %v", ip, err))

			continue
		}

		elected = append(elected, sel...)
		for _, a := range sel {
			if a.TraceID == "" {
				continue
			}
			traceSet[a.TraceID] = struct{}{}
			if a.HostAddress == "" {
				continue
			}
			hostToTraceID[a.HostAddress] = a.TraceID
			if hostToStartTime[a.HostAddress] == "" || (a.StartTime != "" && a.StartTime < hostToStartTime[a.HostAddress]) {
				hostToStartTime[a.HostAddress] = a.StartTime
			}
		}
	}

	traceIDs = make([]string, 0, len(traceSet))
	for t := range traceSet {
		traceIDs = append(traceIDs, t)
	}
	sort.Strings(traceIDs)

	return elected, traceIDs, hostToTraceID, hostToStartTime, noAlarmHosts, diags
}

// startLogProcessGUIDs resolves spec.md §4.4's "no alarm" start nodes:
// for every host in noAlarmHosts, find the log in logsByHost[host]
// whose EventID matches IpMappingRelation's ip→logId entry and return
// its ProcessGUID. A host whose mapped log never showed up in the fetch
// (e.g. outside the query time window) contributes nothing.
func startLogProcessGUIDs(mapping *evidence.IpMappingRelation, noAlarmHosts []string, logsByHost map[string][]evidence.RawLog) []string {
	var out []string
	for _, ip := range noAlarmHosts {
		logID, ok := mapping.LogID[ip]
		if !ok || logID == "" {
			continue
		}
		for _, l := range logsByHost[ip] {
			if l.EventID == logID && l.ProcessGUID != "" {
				out = append(out, l.ProcessGUID)

				break
			}
		}
	}
	sort.Strings(out)

	return out
}

// startProcessGUIDs returns the sorted, deduplicated set of
// processGuids that seed extractor.Extract (spec.md §4.4's "start
// nodes" — the elected alerts' processGuids, plus any no-alarm-mode
// start log processGuids resolved by startLogProcessGUIDs).
func startProcessGUIDs(alerts []evidence.RawAlarm, extra []string) []string {
	set := make(map[string]struct{}, len(alerts)+len(extra))
	for _, a := range alerts {
		if a.ProcessGUID != "" {
			set[a.ProcessGUID] = struct{}{}
		}
	}
	for _, id := range extra {
		if id != "" {
			set[id] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// associatedEventIDs collects every ip→eventId association named by
// mapping across hostIPs, for the pruner's must-keep/score rules.
func associatedEventIDs(mapping *evidence.IpMappingRelation, hostIPs []string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, ip := range hostIPs {
		if id, ok := mapping.AssociatedEventIDFor(ip); ok {
			out[id] = struct{}{}
		}
	}

	return out
}
