package concurrency

import (
	"fmt"
	"runtime/debug"

	"github.com/ngutten/concord/internal/logging"
)

// GoSafe runs fn in a new goroutine and recovers from panics, logging the
// panic and stack via the project's `Log`. Panics are logged; process
// lifecycle (restarts) should be handled by the runtime/container.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logging.Log.WithFields(map[string]any{
					"panic": r,
				}).Error("recovered panic in background goroutine: " + fmt.Sprintf("%v", r) + "\n" + stack)
			}
		}()
		fn()
	}()
}

// GoSafeLoop runs fn in a new goroutine and, if it panics, logs the panic and
// restarts it. Used for subsystems that must keep running for the lifetime of
// the engine (the event dispatch loop, the reconnect loop) where a single
// recovered panic should not permanently stop the subsystem.
func GoSafeLoop(fn func()) {
	go func() {
		for {
			stopped := runRecovered(fn)
			if stopped {
				return
			}
		}
	}()
}

func runRecovered(fn func()) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			logging.Log.WithFields(map[string]any{
				"panic": r,
			}).Error("recovered panic in supervised loop: " + fmt.Sprintf("%v", r) + "\n" + stack)
			stopped = false
			return
		}
	}()
	fn()
	return true
}
