package converters

import "errors"

// ErrNilGraph is returned by ApplyEntityFilter and ToChain when called
// with a nil graph.
var ErrNilGraph = errors.New("converters: graph is nil")
