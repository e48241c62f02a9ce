package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/procchain/evidence"
	"github.com/riftline/procchain/query"
)

func TestCheckClient(t *testing.T) {
	assert.ErrorIs(t, query.CheckClient(nil), query.ErrNilClient)
	assert.NoError(t, query.CheckClient(query.NewStaticClient(nil, nil)))
}

func TestStaticClient_QueryAlarms_UnknownHostReturnsEmpty(t *testing.T) {
	c := query.NewStaticClient(map[string][]evidence.RawAlarm{
		"10.0.0.1": {{Evidence: evidence.Evidence{EventID: "e1"}}},
	}, nil)

	got, err := c.QueryAlarms(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStaticClient_QueryLogs_FiltersByWindowAndLogType(t *testing.T) {
	logs := map[string][]evidence.RawLog{
		"10.0.0.1|t1": {
			{Evidence: evidence.Evidence{EventID: "l1", LogType: "file", StartTime: "2026-01-01T00:00:00Z"}},
			{Evidence: evidence.Evidence{EventID: "l2", LogType: "network", StartTime: "2026-01-01T00:05:00Z"}},
			{Evidence: evidence.Evidence{EventID: "l3", LogType: "file", StartTime: "2026-01-01T01:00:00Z"}},
		},
	}
	c := query.NewStaticClient(nil, logs)

	w := query.WindowAround("2026-01-01T00:00:00Z", 10*time.Minute)
	got, err := c.QueryLogs(context.Background(), "t1", "10.0.0.1", w, []string{"file"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].EventID)
}

func TestStaticClient_BatchAlarms_FansOutAndKeysByHost(t *testing.T) {
	c := query.NewStaticClient(map[string][]evidence.RawAlarm{
		"10.0.0.1": {{Evidence: evidence.Evidence{EventID: "e1"}}},
		"10.0.0.2": {{Evidence: evidence.Evidence{EventID: "e2"}}},
	}, nil)

	got := c.BatchAlarms(context.Background(), []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"})
	assert.Len(t, got, 3)
	assert.Len(t, got["10.0.0.1"], 1)
	assert.Len(t, got["10.0.0.2"], 1)
	assert.Empty(t, got["10.0.0.3"])
}

func TestStaticClient_BatchLogs_WindowsPerHostStartTime(t *testing.T) {
	logs := map[string][]evidence.RawLog{
		"10.0.0.1|t1": {{Evidence: evidence.Evidence{EventID: "l1", LogType: "file", StartTime: "2026-01-01T00:00:00Z"}}},
	}
	c := query.NewStaticClient(nil, logs)

	got := c.BatchLogs(context.Background(),
		map[string]string{"10.0.0.1": "t1"},
		map[string]string{"10.0.0.1": "2026-01-01T00:00:00Z"},
		nil,
	)
	require.Len(t, got["10.0.0.1"], 1)
	assert.Equal(t, "l1", got["10.0.0.1"][0].EventID)
}

func TestWindowAround_UnparsableStartTimeYieldsUnbounded(t *testing.T) {
	w := query.WindowAround("not-a-time", 10*time.Minute)
	assert.Empty(t, w.Lo)
	assert.Empty(t, w.Hi)
}
