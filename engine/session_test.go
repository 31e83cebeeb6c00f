package engine

import "testing"

func TestDisconnectClearsConnectionScopedState(t *testing.T) {
	e := newTestEngine(t)

	e.processFrame([]byte(`{"type":"server_list","servers":[{"id":"s1","name":"Home"}]}`))
	if len(e.Store().Servers()) != 1 {
		t.Fatalf("expected server seeded before disconnect")
	}

	e.Disconnect()

	if len(e.Store().Servers()) != 0 {
		t.Fatalf("expected servers cleared after explicit disconnect")
	}
	if e.Store().Connected() {
		t.Fatalf("expected connected=false after disconnect")
	}
}
