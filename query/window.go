package query

import "time"

const tenMinutes = 10 * time.Minute

// startTimeLayout is the wall-clock format evidence.Evidence.StartTime
// values are expected in. Records that don't parse against it leave
// WindowAround's result unbounded on that side rather than erroring,
// since a malformed timestamp shouldn't abort a whole batch sub-request.
const startTimeLayout = time.RFC3339

// WindowAround returns [startTime-delta, startTime+delta] formatted in
// startTimeLayout. An unparsable or empty startTime yields a zero-value
// TimeWindow (both bounds empty), which QueryLogs treats as unbounded.
func WindowAround(startTime string, delta time.Duration) TimeWindow {
	t, err := time.Parse(startTimeLayout, startTime)
	if err != nil {
		return TimeWindow{}
	}

	return TimeWindow{
		Lo: t.Add(-delta).Format(startTimeLayout),
		Hi: t.Add(delta).Format(startTimeLayout),
	}
}
