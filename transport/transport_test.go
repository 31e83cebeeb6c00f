package transport

import (
	"testing"

	"github.com/ngutten/concord/protocol"
)

func TestSendQueuesWhileDisconnected(t *testing.T) {
	tr := New("example.invalid", false, 100, 0, 0)

	tr.Send(protocol.NewListServers())
	tr.Send(protocol.NewListServers())

	tr.mu.Lock()
	n := len(tr.queue)
	tr.mu.Unlock()

	if n != 2 {
		t.Fatalf("expected 2 queued commands, got %d", n)
	}
}

func TestEnqueueDropsOldestOnOverflow(t *testing.T) {
	tr := New("example.invalid", false, 100, 0, 0)

	for i := 0; i < maxQueuedCommands+10; i++ {
		tr.Send(protocol.NewListServers())
	}

	tr.mu.Lock()
	n := len(tr.queue)
	tr.mu.Unlock()

	if n != maxQueuedCommands {
		t.Fatalf("expected queue capped at %d, got %d", maxQueuedCommands, n)
	}
}

func TestURLBuildsExpectedScheme(t *testing.T) {
	tr := New("chat.example.com", true, 10, 0, 0)
	tr.nickname = "ann"

	got := tr.url()
	want := "wss://chat.example.com/ws?nickname=ann"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}
