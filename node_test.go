package tinybt_test

import (
	"github.com/aretw0/tinybt"
)

// stubNode returns a fixed result and counts its ticks, so tests can verify
// exactly which children a composite evaluated.
type stubNode[P, R, F any] struct {
	ticks int
	res   tinybt.Result[R, F]
}

func (n *stubNode[P, R, F]) Tick(P) tinybt.Result[R, F] {
	n.ticks++
	return n.res
}

func alwaysSuccess[P, R, F any](value R) *stubNode[P, R, F] {
	return &stubNode[P, R, F]{res: tinybt.Success[R, F](value)}
}

func alwaysFailure[P, R, F any](reason F) *stubNode[P, R, F] {
	return &stubNode[P, R, F]{res: tinybt.Failure[R](reason)}
}

func alwaysRunning[P, R, F any]() *stubNode[P, R, F] {
	return &stubNode[P, R, F]{res: tinybt.Running[R, F]()}
}

func alwaysIdle[P, R, F any]() *stubNode[P, R, F] {
	return &stubNode[P, R, F]{res: tinybt.Idle[R, F]()}
}

// tracing wraps a node so each tick appends name to log, preserving the
// exact evaluation order across a whole tree.
func tracing[P, R, F any](log *[]string, name string, node tinybt.Node[P, R, F]) tinybt.Node[P, R, F] {
	return tinybt.Func[P, R, F](func(payload P) tinybt.Result[R, F] {
		*log = append(*log, name)
		return node.Tick(payload)
	})
}
