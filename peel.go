package tinybt

import "fmt"

// Peel bridges a tree level that sees payload P to a child that expects a
// narrower view C. On each tick it applies the projection and delegates:
//
//	child.Tick(project(payload))
//
// The child's Result passes through untouched: a Peel is the identity on
// Result and never produces its own Running or Failure. The projection must
// be total over the parent payload (typically a field accessor returning a
// pointer into the parent, not a copy).
//
// A family of Peels over disjoint fields of one payload is how a single leaf
// implementation is reused against multiple facets of a larger state while
// each composite still sees one uniform payload type for all its children.
type Peel[P, C, R, F any] struct {
	child   Node[C, R, F]
	project func(P) C
}

// NewPeel builds a Peel from a child node and a projection. Nil arguments
// are construction-time misuse and are rejected here.
func NewPeel[P, C, R, F any](child Node[C, R, F], project func(P) C) (*Peel[P, C, R, F], error) {
	if child == nil {
		return nil, fmt.Errorf("peel: %w", ErrNilChild)
	}
	if project == nil {
		return nil, fmt.Errorf("peel: %w", ErrNilProjection)
	}
	return &Peel[P, C, R, F]{child: child, project: project}, nil
}

// Tick narrows the payload and delegates to the child.
func (p *Peel[P, C, R, F]) Tick(payload P) Result[R, F] {
	return p.child.Tick(p.project(payload))
}
