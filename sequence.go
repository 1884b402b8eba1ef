package tinybt

import "fmt"

// Sequence is the logical-AND composite: it ticks its children left to right
// against the same payload, stopping at the first Failure or Running and
// returning it unchanged. If every child succeeds, the Sequence returns
// Success carrying the folded success value, by default the last child's.
//
// Evaluation always restarts from the first child on every tick; no
// running-child index is retained across ticks.
type Sequence[P, R, F any] struct {
	children []Node[P, R, F]
	combine  func(acc *R, next R)
}

type sequenceConfig[R any] struct {
	combine func(acc *R, next R)
}

// SequenceOption configures a Sequence at construction time.
type SequenceOption[R any] func(*sequenceConfig[R])

// WithSequenceCombine overrides how each child's success value folds into
// the composite result. The accumulator starts at the zero value of R and
// fn is applied once per succeeding child, in tick order. The default keeps
// the most recent value, so an all-success tick carries the last child's
// payload.
func WithSequenceCombine[R any](fn func(acc *R, next R)) SequenceOption[R] {
	return func(cfg *sequenceConfig[R]) {
		cfg.combine = fn
	}
}

// NewSequence builds a Sequence over an ordered, fixed child list. Empty
// lists and nil children are construction-time misuse and are rejected here,
// never discovered mid-tick.
func NewSequence[P, R, F any](children []Node[P, R, F], opts ...SequenceOption[R]) (*Sequence[P, R, F], error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("sequence: %w", ErrNoChildren)
	}
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("sequence: child %d: %w", i, ErrNilChild)
		}
	}
	cfg := sequenceConfig[R]{combine: keepLast[R]}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sequence[P, R, F]{
		children: append([]Node[P, R, F](nil), children...),
		combine:  cfg.combine,
	}, nil
}

func keepLast[T any](acc *T, next T) {
	*acc = next
}

// Tick evaluates children strictly in construction order. A child's Failure
// or Running returns immediately; children after it are not ticked this
// round. An Idle child carries nothing and is skipped.
func (s *Sequence[P, R, F]) Tick(payload P) Result[R, F] {
	var acc R
	for _, child := range s.children {
		res := child.Tick(payload)
		switch res.status {
		case StatusFailure, StatusRunning:
			return res
		case StatusSuccess:
			s.combine(&acc, res.success)
		}
	}
	return Success[R, F](acc)
}
