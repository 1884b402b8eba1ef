// Package demo holds the door/agent scenario shipped with the tinybt CLI:
// an agent walks up to a door and gets through it by the cheapest means
// available: already open, openable with a push, or unlockable first.
//
// The package doubles as the reference wiring for heterogeneous trees: the
// leaves see only their slice of the world (*Door or *Agent) and are lifted
// to the full *World payload with Peel projections.
package demo

import (
	"github.com/aretw0/tinybt"
	"github.com/aretw0/tinybt/pkg/observe"
)

// Door is the openable part of the world.
type Door struct {
	Open   bool
	Locked bool
}

// Agent is the actor trying to get through the door.
type Agent struct {
	HasKey bool
	// Distance is how many ticks of walking separate the agent from the
	// door. Approach reports Running until it reaches zero.
	Distance int
}

// World is the payload the demo tree ticks against. The tree holds a shared
// reference for the duration of each tick; leaves mutate it through their
// peeled views.
type World struct {
	Door  Door
	Agent Agent
}

// Approach walks the agent one step closer per tick, Running until it
// arrives.
func Approach() tinybt.Node[*Agent, []string, string] {
	return tinybt.Func[*Agent, []string, string](func(a *Agent) tinybt.Result[[]string, string] {
		if a.Distance > 0 {
			a.Distance--
			return tinybt.Running[[]string, string]()
		}
		return tinybt.Success[[]string, string]([]string{"at the door"})
	})
}

// IsDoorOpen succeeds when the door is already open.
func IsDoorOpen() tinybt.Node[*Door, []string, string] {
	return tinybt.Func[*Door, []string, string](func(d *Door) tinybt.Result[[]string, string] {
		if d.Open {
			return tinybt.Success[[]string, string]([]string{"door is open"})
		}
		return tinybt.Failure[[]string]("door is closed")
	})
}

// OpenDoor opens an unlocked door and fails against a locked one.
func OpenDoor() tinybt.Node[*Door, []string, string] {
	return tinybt.Func[*Door, []string, string](func(d *Door) tinybt.Result[[]string, string] {
		if d.Locked {
			return tinybt.Failure[[]string]("door is locked")
		}
		d.Open = true
		return tinybt.Success[[]string, string]([]string{"opened the door"})
	})
}

// HaveKey succeeds when the agent carries the key.
func HaveKey() tinybt.Node[*Agent, []string, string] {
	return tinybt.Func[*Agent, []string, string](func(a *Agent) tinybt.Result[[]string, string] {
		if a.HasKey {
			return tinybt.Success[[]string, string](nil)
		}
		return tinybt.Failure[[]string]("no key")
	})
}

// UnlockDoor unlocks the door. It assumes the key check already passed, so
// it never fails on its own.
func UnlockDoor() tinybt.Node[*Door, []string, string] {
	return tinybt.Func[*Door, []string, string](func(d *Door) tinybt.Result[[]string, string] {
		d.Locked = false
		return tinybt.Success[[]string, string]([]string{"unlocked the door"})
	})
}

func appendActions(acc *[]string, next []string) {
	*acc = append(*acc, next...)
}

// Build assembles the demo tree:
//
//	Sequence (collects the action log)
//	├── Peel(Agent) approach_door
//	└── Fallback
//	    ├── Peel(Door)  is_door_open
//	    ├── Peel(Door)  open_door
//	    └── Sequence (collects the action log)
//	        ├── Peel(Agent) have_key
//	        ├── Peel(Door)  unlock_door
//	        └── Peel(Door)  open_door
//
// Every leaf is wrapped with the given hooks so callers can attach logging
// or metrics without altering the tree's behavior.
func Build(hooks observe.Hooks) (tinybt.Node[*World, []string, string], error) {
	door := func(w *World) *Door { return &w.Door }
	agent := func(w *World) *Agent { return &w.Agent }

	approach, err := tinybt.NewPeel(observe.Wrap("approach_door", Approach(), hooks), agent)
	if err != nil {
		return nil, err
	}
	isOpen, err := tinybt.NewPeel(observe.Wrap("is_door_open", IsDoorOpen(), hooks), door)
	if err != nil {
		return nil, err
	}
	push, err := tinybt.NewPeel(observe.Wrap("open_door", OpenDoor(), hooks), door)
	if err != nil {
		return nil, err
	}
	haveKey, err := tinybt.NewPeel(observe.Wrap("have_key", HaveKey(), hooks), agent)
	if err != nil {
		return nil, err
	}
	unlock, err := tinybt.NewPeel(observe.Wrap("unlock_door", UnlockDoor(), hooks), door)
	if err != nil {
		return nil, err
	}
	unlockedPush, err := tinybt.NewPeel(observe.Wrap("open_door", OpenDoor(), hooks), door)
	if err != nil {
		return nil, err
	}

	unlockAndOpen, err := tinybt.NewSequence(
		tinybt.Children[*World, []string, string](haveKey, unlock, unlockedPush),
		tinybt.WithSequenceCombine(appendActions),
	)
	if err != nil {
		return nil, err
	}

	getThrough, err := tinybt.NewFallback(
		tinybt.Children[*World, []string, string](isOpen, push, unlockAndOpen),
	)
	if err != nil {
		return nil, err
	}

	return tinybt.NewSequence(
		tinybt.Children[*World, []string, string](approach, getThrough),
		tinybt.WithSequenceCombine(appendActions),
	)
}
