package elector

import (
	"sort"

	"github.com/riftline/procchain/evidence"
)

// traceScore accumulates the severity-weighted score for one traceId's
// alert group, and the earliest startTime seen in the group (used as a
// tie-break).
type traceScore struct {
	traceID        string
	weight         int
	earliestStart  string
	alertCount     int
}

// Elect picks the traceId that best represents the suspected incident
// on one host and returns every input alert carrying that traceId
// (spec.md §4.1).
//
// If associatedEventID is non-empty and hasAssociation is true, the
// traceId of the alert whose EventID matches associatedEventID is
// chosen directly, bypassing scoring. Otherwise alerts are grouped by
// traceId and scored by count × severity weight, with ties broken by
// the earliest StartTime (lexicographic, per spec.md's string-ordering
// convention for timestamps).
//
// Returns ErrNoTrace if no input alert carries a traceId.
func Elect(alerts []evidence.RawAlarm, associatedEventID string, hasAssociation bool) ([]evidence.RawAlarm, error) {
	if hasAssociation && associatedEventID != "" {
		for _, a := range alerts {
			if a.EventID == associatedEventID && a.TraceID != "" {
				return selectByTrace(alerts, a.TraceID), nil
			}
		}
	}

	chosen, ok := bestTrace(alerts)
	if !ok {
		return nil, ErrNoTrace
	}

	return selectByTrace(alerts, chosen), nil
}

func bestTrace(alerts []evidence.RawAlarm) (string, bool) {
	groups := make(map[string]*traceScore)
	for _, a := range alerts {
		if a.TraceID == "" {
			continue
		}
		g, ok := groups[a.TraceID]
		if !ok {
			g = &traceScore{traceID: a.TraceID, earliestStart: a.StartTime}
			groups[a.TraceID] = g
		}
		g.alertCount++
		g.weight += a.ThreatSeverity.Weight()
		if g.earliestStart == "" || (a.StartTime != "" && a.StartTime < g.earliestStart) {
			g.earliestStart = a.StartTime
		}
	}
	if len(groups) == 0 {
		return "", false
	}

	ordered := make([]*traceScore, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].weight != ordered[j].weight {
			return ordered[i].weight > ordered[j].weight
		}
		if ordered[i].earliestStart != ordered[j].earliestStart {
			return ordered[i].earliestStart < ordered[j].earliestStart
		}

		return ordered[i].traceID < ordered[j].traceID
	})

	return ordered[0].traceID, true
}

func selectByTrace(alerts []evidence.RawAlarm, traceID string) []evidence.RawAlarm {
	out := make([]evidence.RawAlarm, 0, len(alerts))
	for _, a := range alerts {
		if a.TraceID == traceID {
			out = append(out, a)
		}
	}

	return out
}
