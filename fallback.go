package tinybt

import "fmt"

// Fallback is the logical-OR composite, symmetric to Sequence with the
// success and failure roles swapped: it ticks its children left to right,
// stopping at the first Success or Running and returning it unchanged. If
// every child fails, the Fallback returns Failure carrying the folded
// failure value, by default the last child's.
type Fallback[P, R, F any] struct {
	children []Node[P, R, F]
	combine  func(acc *F, next F)
}

type fallbackConfig[F any] struct {
	combine func(acc *F, next F)
}

// FallbackOption configures a Fallback at construction time.
type FallbackOption[F any] func(*fallbackConfig[F])

// WithFallbackCombine overrides how each child's failure value folds into
// the composite result when every child fails. The default keeps the most
// recent value.
func WithFallbackCombine[F any](fn func(acc *F, next F)) FallbackOption[F] {
	return func(cfg *fallbackConfig[F]) {
		cfg.combine = fn
	}
}

// NewFallback builds a Fallback over an ordered, fixed child list. Empty
// lists and nil children are rejected at construction.
func NewFallback[P, R, F any](children []Node[P, R, F], opts ...FallbackOption[F]) (*Fallback[P, R, F], error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("fallback: %w", ErrNoChildren)
	}
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("fallback: child %d: %w", i, ErrNilChild)
		}
	}
	cfg := fallbackConfig[F]{combine: keepLast[F]}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Fallback[P, R, F]{
		children: append([]Node[P, R, F](nil), children...),
		combine:  cfg.combine,
	}, nil
}

// Tick evaluates children strictly in construction order. A child's Success
// or Running returns immediately; children after it are not ticked this
// round. An Idle child is skipped.
func (f *Fallback[P, R, F]) Tick(payload P) Result[R, F] {
	var acc F
	for _, child := range f.children {
		res := child.Tick(payload)
		switch res.status {
		case StatusSuccess, StatusRunning:
			return res
		case StatusFailure:
			f.combine(&acc, res.failure)
		}
	}
	return Failure[R](acc)
}
