package evidence

import "strings"

// ProcessFields carries the process-specific payload of a process-type
// alert or log: the "recognized log projection fields" from spec.md §6
// that describe the process itself (as opposed to its parent).
type ProcessFields struct {
	ProcessName string `json:"processName,omitempty"`
	ProcessPath string `json:"processPath,omitempty"`
	CommandLine string `json:"commandLine,omitempty"`
}

// FileFields carries file-event payload fields.
type FileFields struct {
	FileName       string `json:"fileName,omitempty"`
	FilePath       string `json:"filePath,omitempty"`
	FileSize       int64  `json:"fileSize,omitempty"`
	TargetFilename string `json:"targetFilename,omitempty"`
	FileMD5        string `json:"fileMd5,omitempty"`
	FileType       string `json:"fileType,omitempty"`
}

// NetworkFields carries network-connection payload fields.
type NetworkFields struct {
	SourceIP   string `json:"sourceIp,omitempty"`
	SourcePort int     `json:"sourcePort,omitempty"`
	DestIP     string `json:"destIp,omitempty"`
	DestPort   int     `json:"destPort,omitempty"`
}

// DomainFields carries DNS/domain-resolution payload fields.
type DomainFields struct {
	DomainName    string `json:"domainName,omitempty"`
	RequestDomain string `json:"requestDomain,omitempty"`
	QueryResults  string `json:"queryResults,omitempty"`
}

// RegistryFields carries registry-mutation payload fields.
type RegistryFields struct {
	TargetObject string `json:"targetObject,omitempty"`
	RegValue     string `json:"regValue,omitempty"`
}

// Evidence holds the fields shared by RawAlarm and RawLog (spec.md §3:
// "RawLog — same keys as RawAlarm plus eventType"). The logType-specific
// payload structs are held by value and left zero when irrelevant to
// a given record's logType.
type Evidence struct {
	EventID           string `json:"eventId"`
	TraceID           string `json:"traceId,omitempty"`
	HostAddress       string `json:"hostAddress,omitempty"`
	ProcessGUID       string `json:"processGuid,omitempty"`
	ParentProcessGUID string `json:"parentProcessGuid,omitempty"`
	AlarmName         string `json:"alarmName,omitempty"`
	ThreatSeverity    Severity `json:"threatSeverity"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime,omitempty"`
	AlarmSource       string `json:"alarmSource,omitempty"`
	LogType           string `json:"logType"`
	OpType            string `json:"opType,omitempty"`

	Process       ProcessFields  `json:"process,omitempty"`
	ParentProcess ProcessFields  `json:"parentProcess,omitempty"`
	File          FileFields     `json:"file,omitempty"`
	Network       NetworkFields  `json:"network,omitempty"`
	Domain        DomainFields   `json:"domain,omitempty"`
	Registry      RegistryFields `json:"registry,omitempty"`

	// OtherFields holds the free-form projection named in spec.md §6:
	// dvcAction, alarmDescription, alarmSource, alarmResults, and any
	// backend-specific extras the query client chooses to surface.
	OtherFields map[string]string `json:"otherFields,omitempty"`
}

// RawAlarm is an immutable EDR alert record (spec.md §3). Alerts carry
// intent classification only; they do not imply node type.
type RawAlarm struct {
	Evidence
}

// RawLog is an immutable raw telemetry record (spec.md §3), distinguished
// from a RawAlarm by origin (log index vs. alert index) rather than by
// shape.
type RawLog struct {
	Evidence
	EventType string `json:"eventType,omitempty"`
}

// IsVirtual reports whether l is a synthesized log record (its EventID
// begins with VirtualLogPrefix), per spec.md §3's virtual-log rule.
func (l RawLog) IsVirtual() bool {
	return strings.HasPrefix(l.EventID, VirtualLogPrefix)
}

// IpMappingRelation is the per-host pre-correlation input (spec.md §3):
// whether an IP has a network-side association, which alert/log/traceId
// that association points at.
type IpMappingRelation struct {
	HasNetworkAssociation map[string]bool
	AssociatedEventID     map[string]string
	LogID                 map[string]string
	TraceID               map[string]string
}

// NewIpMappingRelation returns an IpMappingRelation with all four maps
// initialized, so callers can populate it without nil-map panics.
func NewIpMappingRelation() *IpMappingRelation {
	return &IpMappingRelation{
		HasNetworkAssociation: make(map[string]bool),
		AssociatedEventID:     make(map[string]string),
		LogID:                 make(map[string]string),
		TraceID:               make(map[string]string),
	}
}

// HasAssociation reports whether ip carries a network-side association.
func (m *IpMappingRelation) HasAssociation(ip string) bool {
	if m == nil {
		return false
	}

	return m.HasNetworkAssociation[ip]
}

// AssociatedEventIDFor returns the alert eventId pre-correlated with ip, if any.
func (m *IpMappingRelation) AssociatedEventIDFor(ip string) (string, bool) {
	if m == nil {
		return "", false
	}
	id, ok := m.AssociatedEventID[ip]

	return id, ok && id != ""
}

// TraceIDFor returns the traceId pre-correlated with ip, used only by the
// "no-alarm start-log" mode (spec.md §4.4).
func (m *IpMappingRelation) TraceIDFor(ip string) (string, bool) {
	if m == nil {
		return "", false
	}
	t, ok := m.TraceID[ip]

	return t, ok && t != ""
}
