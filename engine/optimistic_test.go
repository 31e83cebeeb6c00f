package engine

import (
	"testing"

	"github.com/ngutten/concord/store"
)

func TestSendMessageNoopWhenDisconnected(t *testing.T) {
	e := newTestEngine(t)

	e.SendMessage("s1", "general", "hello", nil)

	key := store.ChannelKey("s1", "general")
	if len(e.Store().Messages(key)) != 0 {
		t.Fatalf("expected no optimistic message while disconnected")
	}
}

func TestAttachmentsFromIDsEmptyIsStable(t *testing.T) {
	a := attachmentsFromIDs(nil)
	b := attachmentsFromIDs([]string{})
	if len(a) != 0 || len(b) != 0 {
		t.Fatalf("expected empty attachment slices")
	}
}

func TestAttachmentsFromIDsCarriesID(t *testing.T) {
	got := attachmentsFromIDs([]string{"a1", "a2"})
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("unexpected attachments: %+v", got)
	}
}

func TestMarkReadClearsUnreadOptimistically(t *testing.T) {
	e := newTestEngine(t)
	key := store.ChannelKey("s1", "general")

	e.processFrame([]byte(`{"type":"unread_counts","server_id":"s1","counts":{"general":5}}`))
	if e.Store().UnreadCount(key) != 5 {
		t.Fatalf("expected unread seeded to 5, got %d", e.Store().UnreadCount(key))
	}

	e.MarkRead("s1", "general", "m1")
	if e.Store().UnreadCount(key) != 0 {
		t.Fatalf("expected unread cleared optimistically, got %d", e.Store().UnreadCount(key))
	}
}
