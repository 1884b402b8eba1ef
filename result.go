package tinybt

import "fmt"

// Status identifies which variant a Result holds.
type Status uint8

const (
	// StatusIdle marks a node that has not been ticked yet. It exists as a
	// pre-tick placeholder; composites never produce it mid-evaluation.
	StatusIdle Status = iota
	// StatusRunning marks a node that is mid-execution and expects to be
	// ticked again on a later cycle.
	StatusRunning
	// StatusSuccess marks a node that completed and carries a success payload.
	StatusSuccess
	// StatusFailure marks a node that completed and carries a failure payload.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Result is the outcome of one tick. It is a closed set of four variants:
// Idle and Running carry no value, Success carries a payload of type R and
// Failure a payload of type F. There are no implicit conversions between
// variants; callers branch on Status (or use the ok-returning accessors).
//
// R and F are fixed per tree level: every child of a composite shares the
// composite's R and F, which the type system enforces at construction.
type Result[R, F any] struct {
	status  Status
	success R
	failure F
}

// Idle returns the pre-tick placeholder Result.
func Idle[R, F any]() Result[R, F] {
	return Result[R, F]{status: StatusIdle}
}

// Running returns a Result signalling the node is still in progress.
func Running[R, F any]() Result[R, F] {
	return Result[R, F]{status: StatusRunning}
}

// Success returns a Result carrying a success payload.
func Success[R, F any](value R) Result[R, F] {
	return Result[R, F]{status: StatusSuccess, success: value}
}

// Failure returns a Result carrying a failure payload. A Failure is a normal
// domain outcome, not an error: it is always returned, never raised.
func Failure[R, F any](reason F) Result[R, F] {
	return Result[R, F]{status: StatusFailure, failure: reason}
}

// Status reports which variant this Result holds.
func (r Result[R, F]) Status() Status {
	return r.status
}

// Success returns the success payload. The bool is false unless the Result
// is a Success, in which case the payload is the zero value of R.
func (r Result[R, F]) Success() (R, bool) {
	if r.status != StatusSuccess {
		var zero R
		return zero, false
	}
	return r.success, true
}

// Failure returns the failure payload. The bool is false unless the Result
// is a Failure.
func (r Result[R, F]) Failure() (F, bool) {
	if r.status != StatusFailure {
		var zero F
		return zero, false
	}
	return r.failure, true
}

// Terminal reports whether the Result is a Success or a Failure, i.e. the
// tree settled and a driving loop can stop re-ticking.
func (r Result[R, F]) Terminal() bool {
	return r.status == StatusSuccess || r.status == StatusFailure
}

func (r Result[R, F]) String() string {
	switch r.status {
	case StatusSuccess:
		return fmt.Sprintf("success(%v)", r.success)
	case StatusFailure:
		return fmt.Sprintf("failure(%v)", r.failure)
	default:
		return r.status.String()
	}
}
