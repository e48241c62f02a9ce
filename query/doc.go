// Package query models the out-of-scope full-text/document search
// backend as a narrow Go interface (spec.md §6): QueryAlarms/QueryLogs
// retrieve one host/traceId's records, BatchAlarms/BatchLogs fan out
// over many hosts at once.
//
// Batch fan-out runs one goroutine per sub-request through a plain
// (non-context-propagating) errgroup.Group, so a failing sub-request
// degrades to an empty result for that key instead of cancelling its
// siblings (spec.md §7's QueryFailure policy) — this is deliberately
// NOT errgroup.WithContext's fail-fast shape, since that would abort
// sibling sub-requests on the first error. Optional request pacing
// uses golang.org/x/time/rate, with one limiter shared across the
// whole batch.
package query

import "errors"

// ErrNilClient is returned by CheckClient when given a nil Client.
var ErrNilClient = errors.New("query: client is nil")
