package evidence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riftline/procchain/evidence"
)

func TestParseSeverity_EnglishAndChinese(t *testing.T) {
	cases := map[string]evidence.Severity{
		"HIGH":   evidence.SeverityHigh,
		"high":   evidence.SeverityHigh,
		"高":      evidence.SeverityHigh,
		"MEDIUM": evidence.SeverityMedium,
		"中":      evidence.SeverityMedium,
		"LOW":    evidence.SeverityLow,
		"低":      evidence.SeverityLow,
		"":       evidence.SeverityUnknown,
		"bogus":  evidence.SeverityUnknown,
	}
	for token, want := range cases {
		assert.Equal(t, want, evidence.ParseSeverity(token), "token %q", token)
	}
}

func TestSeverity_Weight(t *testing.T) {
	assert.Equal(t, 100, evidence.SeverityHigh.Weight())
	assert.Equal(t, 50, evidence.SeverityMedium.Weight())
	assert.Equal(t, 20, evidence.SeverityLow.Weight())
	assert.Equal(t, 0, evidence.SeverityUnknown.Weight())
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	for _, s := range []evidence.Severity{evidence.SeverityHigh, evidence.SeverityMedium, evidence.SeverityLow, evidence.SeverityUnknown} {
		b, err := s.MarshalJSON()
		assert.NoError(t, err)
		var out evidence.Severity
		assert.NoError(t, out.UnmarshalJSON(b))
		assert.Equal(t, s, out)
	}
}
