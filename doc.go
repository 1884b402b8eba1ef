/*
Package tinybt is a minimal, statically typed behavior-tree engine for
embedded, game and robotics control logic, where a lightweight decision tree
replaces hand-written conditional chains.

A tree is composed once from small decision/action units ("nodes") and then
evaluated repeatedly ("ticked") against a shared world-state payload. Every
tick produces exactly one Result: Idle, Running, Success carrying a value, or
Failure carrying a reason.

# Concept

Nodes are generic over three types: the payload P they read, the success
payload R and the failure payload F. Leaves implement the Node interface (or
are plain closures via Func) and hold the domain logic. Two composites
orchestrate them:

  - Sequence: logical AND. Ticks children left to right; the first Failure or
    Running short-circuits. All-success carries the last child's value.
  - Fallback: logical OR. The first Success or Running short-circuits;
    all-failure carries the last child's reason.

Peel adapters let nodes with narrower views of the world embed inside a tree
whose root sees the full state: a Peel pairs one child with a projection from
the parent payload to the child payload and forwards the child's Result
untouched. Building one Peel per facet of the state is how a single leaf
implementation is reused against multiple disjoint fields.

Evaluation is single-threaded, synchronous and call-and-return: the entire
tree evaluates within one call stack, children strictly left to right. That
determinism is load-bearing: it is what makes short-circuiting observable
through side effects. A Running result simply returns to the caller, who
decides when to tick again; Runner packages that control loop.

# Usage

	type World struct {
		Door struct{ Open bool }
	}

	isOpen := tinybt.Func[*World, string, string](func(w *World) tinybt.Result[string, string] {
		if w.Door.Open {
			return tinybt.Success[string, string]("door is open")
		}
		return tinybt.Failure[string]("door is closed")
	})

	root, err := tinybt.NewFallback(tinybt.Children[*World, string, string](isOpen))
	if err != nil {
		log.Fatal(err)
	}
	result := root.Tick(&World{})

Construction misuse (empty composites, nil children or projections) fails at
assembly time, never mid-tick. Domain failure is always a Failure result,
never an error.
*/
package tinybt
