package analyzer

import "errors"

// ErrNilGraph is returned when Analyze is called with a nil graph.
var ErrNilGraph = errors.New("analyzer: graph is nil")
