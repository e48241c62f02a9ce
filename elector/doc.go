// Package elector implements per-host alert election: choosing the
// single traceId whose alerts best represent the suspected incident,
// and returning every alert carrying that traceId.
package elector

import "errors"

// ErrNoTrace is returned by Elect when the input carries no alert with
// a non-empty traceId, so no incident can be elected.
var ErrNoTrace = errors.New("elector: no alert carries a traceId")
