package query

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/riftline/procchain/evidence"
)

// Option customizes a batch run's ambient behavior, mirroring the
// builder package's functional-options shape.
type Option func(*batchConfig)

type batchConfig struct {
	logger  *zap.Logger
	limiter *rate.Limiter
}

func newBatchConfig(opts ...Option) *batchConfig {
	cfg := &batchConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger injects a *zap.Logger for per-sub-request failure
// diagnostics. A nil logger is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *batchConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithRateLimit caps sub-request issuance at r events/sec with burst b,
// shared across the whole batch. Zero r disables limiting (the default).
func WithRateLimit(r rate.Limit, b int) Option {
	return func(cfg *batchConfig) {
		if r > 0 {
			cfg.limiter = rate.NewLimiter(r, b)
		}
	}
}

// batchAlarms fans singleFn out over keys, one goroutine per key,
// reassembling results keyed by the same string. It deliberately uses a
// bare errgroup.Group (not errgroup.WithContext) so one key's failure
// never cancels its siblings: a failing sub-request contributes an
// empty slice for its key instead of failing the batch (spec.md §7's
// QueryFailure policy).
func batchAlarms(
	ctx context.Context,
	keys []string,
	cfg *batchConfig,
	singleFn func(ctx context.Context, key string) ([]evidence.RawAlarm, error),
) map[string][]evidence.RawAlarm {
	out := make(map[string][]evidence.RawAlarm, len(keys))
	var mu sync.Mutex

	g := new(errgroup.Group)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if cfg.limiter != nil {
				if err := cfg.limiter.Wait(ctx); err != nil {
					cfg.logger.Warn("rate limiter wait aborted", zap.String("key", key), zap.Error(err))
					return nil
				}
			}

			alarms, err := singleFn(ctx, key)
			if err != nil {
				cfg.logger.Warn("batch alarms sub-request failed", zap.String("key", key), zap.Error(err))
				return nil
			}

			mu.Lock()
			out[key] = alarms
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return out
}

// batchLogs is batchAlarms's counterpart for log sub-requests.
func batchLogs(
	ctx context.Context,
	keys []string,
	cfg *batchConfig,
	singleFn func(ctx context.Context, key string) ([]evidence.RawLog, error),
) map[string][]evidence.RawLog {
	out := make(map[string][]evidence.RawLog, len(keys))
	var mu sync.Mutex

	g := new(errgroup.Group)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if cfg.limiter != nil {
				if err := cfg.limiter.Wait(ctx); err != nil {
					cfg.logger.Warn("rate limiter wait aborted", zap.String("key", key), zap.Error(err))
					return nil
				}
			}

			logs, err := singleFn(ctx, key)
			if err != nil {
				cfg.logger.Warn("batch logs sub-request failed", zap.String("key", key), zap.Error(err))
				return nil
			}

			mu.Lock()
			out[key] = logs
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return out
}
