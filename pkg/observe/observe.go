package observe

import (
	"log/slog"
	"time"

	"github.com/aretw0/tinybt"
)

// Event describes one completed tick of an instrumented node.
type Event struct {
	Node    string
	Status  tinybt.Status
	Elapsed time.Duration
}

// Hooks carries callbacks fired around each tick of a wrapped node.
// Nil callbacks are skipped.
type Hooks struct {
	OnTickStart func(node string)
	OnTickEnd   func(Event)
}

// Join merges hooks into one; callbacks fire in argument order.
func Join(hooks ...Hooks) Hooks {
	return Hooks{
		OnTickStart: func(node string) {
			for _, h := range hooks {
				if h.OnTickStart != nil {
					h.OnTickStart(node)
				}
			}
		},
		OnTickEnd: func(ev Event) {
			for _, h := range hooks {
				if h.OnTickEnd != nil {
					h.OnTickEnd(ev)
				}
			}
		},
	}
}

// Wrap decorates node so hooks observe every tick under the given name.
// The wrapper is the identity on Result and on side effects; it only adds
// the callbacks.
func Wrap[P, R, F any](name string, node tinybt.Node[P, R, F], hooks Hooks) tinybt.Node[P, R, F] {
	return tinybt.Func[P, R, F](func(payload P) tinybt.Result[R, F] {
		if hooks.OnTickStart != nil {
			hooks.OnTickStart(name)
		}
		start := time.Now()
		res := node.Tick(payload)
		if hooks.OnTickEnd != nil {
			hooks.OnTickEnd(Event{Node: name, Status: res.Status(), Elapsed: time.Since(start)})
		}
		return res
	})
}

// SlogHooks emits one debug line per completed tick.
func SlogHooks(logger *slog.Logger) Hooks {
	return Hooks{
		OnTickEnd: func(ev Event) {
			logger.Debug("tick",
				"node", ev.Node,
				"status", ev.Status.String(),
				"elapsed", ev.Elapsed,
			)
		},
	}
}
