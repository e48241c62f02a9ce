// errors.go — sentinel errors for the builder package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is, never string matching. Sentinels are never wrapped with
// formatted text at definition site; call sites attach context via %w.
package builder

import (
	"errors"
	"fmt"
)

// ErrCycleSkipped indicates Phase C found a reverse edge already in
// place for a candidate alarm edge and skipped the insert rather than
// closing a cycle (spec.md §4.2 Phase C, I3). Not a failure: engine
// logs it as a diagnostic and continues.
var ErrCycleSkipped = errors.New("builder: candidate edge would close a cycle, skipped")

// buildErrorf wraps an inner error message with the given method context,
// of the form "<method>: <formatted message>".
func buildErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
