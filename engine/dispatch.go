package engine

import (
	"errors"

	"github.com/ngutten/concord/internal/concurrency"
	"github.com/ngutten/concord/internal/logging"
	"github.com/ngutten/concord/protocol"
)

// runDispatchLoop is the Event Dispatcher (§4.3): the single goroutine that
// decodes raw frames off the transport, feeds them through Store.Apply, and
// re-issues any side-effect commands the reducer returned. It is the only
// caller of Store.Apply, satisfying the single-writer requirement (§5).
func (e *Engine) runDispatchLoop() {
	concurrency.GoSafeLoop(func() {
		for raw := range e.transport.Events() {
			e.processFrame(raw)
		}
	})
}

// processFrame decodes and applies exactly one raw event frame. Split out
// from runDispatchLoop so it can be exercised directly without a live
// transport goroutine.
func (e *Engine) processFrame(raw []byte) {
	evt, err := protocol.DecodeEvent(raw)
	if err != nil {
		var unknown *protocol.ErrUnknownEventType
		if errors.As(err, &unknown) {
			logging.Log.WithField("type", unknown.Type).Debug("engine: dropping unknown event type")
			return
		}
		logging.Log.WithError(err).Warn("engine: failed to decode event frame")
		return
	}

	switch e2 := evt.(type) {
	case *protocol.ErrorEvent:
		logging.Log.WithFields(map[string]any{
			"code":    e2.Code,
			"message": e2.Message,
		}).Warn("engine: server reported error")
	case *protocol.ServerNoticeEvent:
		logging.Log.WithField("message", e2.Message).Info("engine: server notice")
	}

	cmds := e.store.Apply(evt)
	for _, cmd := range cmds {
		e.transport.Send(cmd)
	}
}
