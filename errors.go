package tinybt

import "errors"

// ErrNoChildren is returned when a composite is constructed with an empty
// child list. An empty composite has no well-defined terminal value, so the
// misuse is rejected before the tree can ever tick.
var ErrNoChildren = errors.New("composite requires at least one child")

// ErrNilChild is returned when a nil node is supplied to a composite or an
// adapter at construction time.
var ErrNilChild = errors.New("nil child node")

// ErrNilProjection is returned when a Peel is constructed without a
// projection function.
var ErrNilProjection = errors.New("nil projection")

// ErrNilRoot is returned when a Runner is constructed without a root node.
var ErrNilRoot = errors.New("nil root node")

// ErrHooksMismatch is returned when a WithHooks wrap function does not match
// the root node's payload types.
var ErrHooksMismatch = errors.New("hooks do not match the root's payload types")

// ErrTickBudget is returned by Runner.Run when the tree is still Running
// after the configured maximum number of ticks.
var ErrTickBudget = errors.New("tick budget exhausted")
