package tinybt

// Node is the capability every tree participant implements: one synchronous
// evaluation pass against a payload, producing one Result.
//
// P is the payload type the node reads (and possibly mutates through), R the
// success payload type and F the failure payload type. Tick may be called
// any number of times. Side effects inside Tick are expected; they are a
// leaf's entire reason to exist. Tick must not block or suspend: a node that
// cannot finish this cycle returns Running and waits to be ticked again.
//
// A Node may keep private mutable state across ticks, but a single tree
// instance assumes exclusive access during a tick; callers that share a tree
// across goroutines must serialize its use.
type Node[P, R, F any] interface {
	Tick(payload P) Result[R, F]
}

// Func adapts an ordinary function to a Node, so plain closures can serve as
// leaves without a named type.
type Func[P, R, F any] func(payload P) Result[R, F]

// Tick calls fn(payload).
func (fn Func[P, R, F]) Tick(payload P) Result[R, F] {
	return fn(payload)
}

// Children collects nodes of differing concrete types into the homogeneous
// ordered slice a composite holds. The interface type is the erasure
// boundary: each element exposes only Tick, hiding its implementation and
// private state. Order is significant and fixed once the composite is built.
func Children[P, R, F any](nodes ...Node[P, R, F]) []Node[P, R, F] {
	return nodes
}
