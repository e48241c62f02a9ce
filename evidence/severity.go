package evidence

import "strings"

// Severity is the threat-severity classification carried by a RawAlarm.
// Comparison accepts both English tokens and their Chinese equivalents;
// unknown tokens map to SeverityUnknown rather than erroring, since the
// elector and pruner must still be able to rank a record even when its
// severity token is malformed or from an unrecognized taxonomy.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

// electionWeight/pruneScore tables (spec.md §4.1, §4.6): HIGH=100,
// MEDIUM=50, LOW=20, UNKNOWN=0.
var severityWeight = [...]int{
	SeverityUnknown: 0,
	SeverityLow:     20,
	SeverityMedium:  50,
	SeverityHigh:    100,
}

// ParseSeverity maps a raw token to Severity, accepting English tokens
// (case-insensitive) and their Chinese equivalents (高=high, 中=medium,
// 低=low). Any other token yields SeverityUnknown.
func ParseSeverity(token string) Severity {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "HIGH", "高":
		return SeverityHigh
	case "MEDIUM", "中":
		return SeverityMedium
	case "LOW", "低":
		return SeverityLow
	default:
		return SeverityUnknown
	}
}

// String renders the canonical English token for s.
func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Weight returns the election/prune scoring weight for s (spec.md §4.1,
// §4.6): HIGH=100, MEDIUM=50, LOW=20, UNKNOWN=0.
func (s Severity) Weight() int {
	if int(s) < 0 || int(s) >= len(severityWeight) {
		return 0
	}

	return severityWeight[s]
}

// MarshalJSON renders Severity as its canonical English token so the
// wire shape stays human-readable regardless of the input taxonomy.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts any quoted token ParseSeverity understands.
func (s *Severity) UnmarshalJSON(data []byte) error {
	token := strings.Trim(string(data), `"`)
	*s = ParseSeverity(token)

	return nil
}
