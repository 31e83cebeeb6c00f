package protocol

import (
	"errors"
	"testing"
)

func TestDecodeEventKnownType(t *testing.T) {
	raw := []byte(`{"type":"message","server_id":"s1","target":"general","from":"ann","id":"m1","content":"hi","timestamp":"2024-01-01T00:00:00Z"}`)

	evt, err := DecodeEvent(raw)
	if err != nil {
		t.Fatalf("DecodeEvent returned error: %v", err)
	}

	msg, ok := evt.(*MessageEvent)
	if !ok {
		t.Fatalf("expected *MessageEvent, got %T", evt)
	}
	if msg.ID != "m1" || msg.Target != "general" || msg.From != "ann" {
		t.Fatalf("unexpected decode: %+v", msg)
	}
}

func TestDecodeEventUnknownTypeIsNotFatal(t *testing.T) {
	raw := []byte(`{"type":"some_future_event","payload":"whatever"}`)

	_, err := DecodeEvent(raw)
	if err == nil {
		t.Fatal("expected an error for an unknown type")
	}

	var unknown *ErrUnknownEventType
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *ErrUnknownEventType, got %T (%v)", err, err)
	}
	if unknown.Type != "some_future_event" {
		t.Fatalf("unexpected type captured: %q", unknown.Type)
	}
}

func TestEncodeCommandSetsType(t *testing.T) {
	cmd := NewSendMessage("s1", "general", "hello", "", nil)

	raw, err := EncodeCommand(cmd)
	if err != nil {
		t.Fatalf("EncodeCommand returned error: %v", err)
	}

	decoded, err := DecodeEvent(raw)
	if decoded != nil {
		t.Fatalf("expected decode to fail against the event catalog, got %+v", decoded)
	}
	var unknown *ErrUnknownEventType
	if !errors.As(err, &unknown) {
		t.Fatalf("expected send_message to not collide with any event type, got %v", err)
	}
	if unknown.Type != CmdSendMessage {
		t.Fatalf("expected encoded frame to carry type %q, got %q", CmdSendMessage, unknown.Type)
	}
}

func TestHasPermissionAdministratorShortCircuits(t *testing.T) {
	if !HasPermission(PermissionAdministrator, 1<<3) {
		t.Fatal("administrator should grant any permission")
	}
	if HasPermission(1<<2, 1<<3) {
		t.Fatal("unrelated bit should not be granted")
	}
	if !HasPermission(1<<3, 1<<3) {
		t.Fatal("exact bit should be granted")
	}
}
