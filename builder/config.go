package builder

import "go.uber.org/zap"

// Option customizes BuildGraph's behavior. Mutates a Config before
// ingestion begins, mirroring the teacher's functional-options shape
// generalized to this package's actual knobs.
type Option func(*Config)

// Config holds BuildGraph's resolved settings: currently only the
// logger used for Phase B cap-warning and Phase C cycle-skip
// diagnostics.
type Config struct {
	Logger *zap.Logger
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger injects a *zap.Logger. A nil logger is a no-op (the
// no-op logger from newConfig's default is retained).
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}
