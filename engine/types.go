package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/riftline/procchain/bridger"
	"github.com/riftline/procchain/evidence"
	"github.com/riftline/procchain/query"
)

// Input bundles everything one Build invocation needs: the query
// backend, the pre-correlation mapping (spec.md §3's IpMappingRelation),
// the hosts in scope, and the network-side story graph bridger.Bridge
// consumes (spec.md §4.8 — this is supplied by the caller, not derived
// from Client, since it comes from a separate network-topology source).
type Input struct {
	Client       query.Client
	Mapping      *evidence.IpMappingRelation
	HostIPs      []string
	NetworkNodes []bridger.NetworkNode
	NetworkEdges []bridger.NetworkEdge
}

// Diagnostic is one human-readable degradation note attached to a
// Build result: which stage produced it and what happened.
type Diagnostic struct {
	Stage   string
	Message string
}

// Option customizes a Build run.
type Option func(*runConfig)

type runConfig struct {
	logger       *zap.Logger
	maxNodeCount int
	logTypes     []string
}

func newRunConfig(opts ...Option) *runConfig {
	cfg := &runConfig{logger: zap.NewNop(), maxNodeCount: 0}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger injects a *zap.Logger; a nil logger is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *runConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithMaxNodeCount overrides pruner.DefaultMaxNodeCount. n <= 0 leaves
// the pruner's own default in effect.
func WithMaxNodeCount(n int) Option {
	return func(cfg *runConfig) {
		cfg.maxNodeCount = n
	}
}

// WithLogTypes restricts BatchLogs to the given logType whitelist. An
// empty/nil list fetches every logType (the default).
func WithLogTypes(logTypes []string) Option {
	return func(cfg *runConfig) {
		cfg.logTypes = logTypes
	}
}

func diag(stage, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Stage: stage, Message: fmt.Sprintf(format, args...)}
}
