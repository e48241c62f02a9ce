package logging

import "go.uber.org/zap"

// New returns a production (JSON-encoded) logger, or a development
// (console-encoded, debug-level) logger when dev is true.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// MustNew is New, panicking on construction failure. Intended for
// cmd/chainctl's startup path, where a broken logger configuration
// should abort immediately rather than run unobserved.
func MustNew(dev bool) *zap.Logger {
	l, err := New(dev)
	if err != nil {
		panic(err)
	}

	return l
}
