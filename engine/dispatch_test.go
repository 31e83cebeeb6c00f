package engine

import (
	"testing"

	"github.com/ngutten/concord/internal/config"
	"github.com/ngutten/concord/store"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Config{
		Host:            "example.invalid",
		FolderStorePath: t.TempDir() + "/folders.json",
	}
	return New(cfg)
}

func TestProcessFrameAppliesKnownEvent(t *testing.T) {
	e := newTestEngine(t)

	raw := []byte(`{"type":"message","server_id":"s1","target":"general","from":"ann","id":"m1","content":"hi","timestamp":"2024-01-01T00:00:00Z"}`)
	e.processFrame(raw)

	key := store.ChannelKey("s1", "general")
	msgs := e.Store().Messages(key)
	if len(msgs) != 1 || msgs[0].ID != "m1" {
		t.Fatalf("expected message m1 to be applied, got %+v", msgs)
	}
}

func TestProcessFrameIgnoresUnknownType(t *testing.T) {
	e := newTestEngine(t)

	raw := []byte(`{"type":"some_future_event","foo":"bar"}`)
	e.processFrame(raw) // must not panic

	if len(e.Store().Servers()) != 0 {
		t.Fatalf("expected no state change from unknown event type")
	}
}

func TestProcessFrameIgnoresMalformedJSON(t *testing.T) {
	e := newTestEngine(t)

	e.processFrame([]byte(`{not json`)) // must not panic
}
