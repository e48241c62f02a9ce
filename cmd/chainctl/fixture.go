package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/riftline/procchain/evidence"
)

// fixture is chainctl's demo input shape: everything engine.Input needs
// except the live query.Client, which chainCmd wires up as a
// query.StaticClient over AlarmsByHost/LogsByKey.
type fixture struct {
	HostIPs      []string                        `json:"hostIps"`
	AlarmsByHost map[string][]evidence.RawAlarm   `json:"alarmsByHost"`
	LogsByKey    map[string][]evidence.RawLog     `json:"logsByKey"` // "hostIp|traceId"
	Mapping      *fixtureMapping                  `json:"mapping"`
}

type fixtureMapping struct {
	HasNetworkAssociation map[string]bool   `json:"hasNetworkAssociation"`
	AssociatedEventID     map[string]string `json:"associatedEventId"`
	LogID                 map[string]string `json:"logId"`
	TraceID               map[string]string `json:"traceId"`
}

func (m *fixtureMapping) toIpMappingRelation() *evidence.IpMappingRelation {
	out := evidence.NewIpMappingRelation()
	if m == nil {
		return out
	}
	for k, v := range m.HasNetworkAssociation {
		out.HasNetworkAssociation[k] = v
	}
	for k, v := range m.AssociatedEventID {
		out.AssociatedEventID[k] = v
	}
	for k, v := range m.LogID {
		out.LogID[k] = v
	}
	for k, v := range m.TraceID {
		out.TraceID[k] = v
	}

	return out
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chainctl: read fixture %s: %w", path, err)
	}

	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chainctl: parse fixture %s: %w", path, err)
	}

	return &f, nil
}
