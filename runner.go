package tinybt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Runner is the caller-side control loop around a tree: it ticks the root at
// a fixed interval until the tree settles on Success or Failure. This allows
// embedding the same tree in a CLI, a service loop or a test without
// rewriting the drive logic.
//
// Cancellation lives here, not in the tree: Tick itself never blocks, so the
// context only gates the waits between ticks. A Runner assumes exclusive
// access to the tree while Run is in flight.
type Runner[P, R, F any] struct {
	root     Node[P, R, F]
	interval time.Duration
	maxTicks int
	logger   *slog.Logger
}

type runnerConfig struct {
	interval time.Duration
	maxTicks int
	logger   *slog.Logger
	// wrap holds a func(Node[P, R, F]) Node[P, R, F]; the concrete types are
	// only known inside NewRunner, which asserts and applies it.
	wrap any
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

// WithInterval sets the delay between ticks while the tree reports Running.
// Zero (the default) re-ticks immediately.
func WithInterval(d time.Duration) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.interval = d
	}
}

// WithMaxTicks bounds how many ticks Run attempts before giving up with
// ErrTickBudget. Zero (the default) means unbounded.
func WithMaxTicks(n int) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.maxTicks = n
	}
}

// WithLogger sets a structured logger for per-tick debug logging.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.logger = logger
	}
}

// WithHooks interposes wrap between the Runner and its root before the
// first tick, so observation attaches to a tree without rebuilding it.
// The wrap function must preserve the root's payload types; a mismatch is
// construction-time misuse and NewRunner rejects it with ErrHooksMismatch.
//
// A curried observe.Wrap satisfies the signature:
//
//	tinybt.WithHooks(func(n tinybt.Node[*World, R, F]) tinybt.Node[*World, R, F] {
//		return observe.Wrap("root", n, hooks)
//	})
func WithHooks[P, R, F any](wrap func(Node[P, R, F]) Node[P, R, F]) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.wrap = wrap
	}
}

// NewRunner builds a Runner around an assembled tree.
func NewRunner[P, R, F any](root Node[P, R, F], opts ...RunnerOption) (*Runner[P, R, F], error) {
	if root == nil {
		return nil, fmt.Errorf("runner: %w", ErrNilRoot)
	}
	cfg := runnerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.wrap != nil {
		wrap, ok := cfg.wrap.(func(Node[P, R, F]) Node[P, R, F])
		if !ok {
			return nil, fmt.Errorf("runner: %w", ErrHooksMismatch)
		}
		root = wrap(root)
	}
	return &Runner[P, R, F]{
		root:     root,
		interval: cfg.interval,
		maxTicks: cfg.maxTicks,
		logger:   cfg.logger,
	}, nil
}

// Run ticks the tree against payload until it returns Success or Failure.
// The first tick happens immediately; later ticks wait for the interval.
//
// The returned Result is the last one observed. The error is nil on a
// terminal result, ctx.Err() if the context ended between ticks, or wraps
// ErrTickBudget if the tree was still Running after the configured maximum.
func (r *Runner[P, R, F]) Run(ctx context.Context, payload P) (Result[R, F], error) {
	ticks := 0
	for {
		res := r.root.Tick(payload)
		ticks++
		r.logger.Debug("tick", "n", ticks, "status", res.Status().String())

		if res.Terminal() {
			return res, nil
		}
		if r.maxTicks > 0 && ticks >= r.maxTicks {
			return res, fmt.Errorf("runner: still %s after %d ticks: %w", res.Status(), ticks, ErrTickBudget)
		}

		if r.interval > 0 {
			timer := time.NewTimer(r.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return res, ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}
	}
}
