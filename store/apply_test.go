package store

import (
	"reflect"
	"testing"

	"github.com/ngutten/concord/protocol"
)

func TestMessageDedupesByIDOnServerEcho(t *testing.T) {
	s := NewStore()
	s.SetConnected(true, "ann")
	key := ChannelKey("s1", "general")

	s.AppendOptimisticMessage(key, protocol.Message{ID: "local-1", Author: "ann", Content: "hi"})
	if got := len(s.Messages(key)); got != 1 {
		t.Fatalf("expected 1 message after optimistic append, got %d", got)
	}

	s.Apply(&protocol.MessageEvent{
		Type: protocol.EvtMessage, ServerID: "s1", Target: "general",
		From: "ann", ID: "local-1", Content: "hi", Timestamp: "t1",
	})

	msgs := s.Messages(key)
	if len(msgs) != 1 {
		t.Fatalf("expected echo to replace in place, got %d messages", len(msgs))
	}
	if msgs[0].Timestamp != "t1" {
		t.Fatalf("expected authoritative copy to win, got %+v", msgs[0])
	}
}

func TestMessageIncrementsUnreadOnlyForOthers(t *testing.T) {
	s := NewStore()
	s.SetConnected(true, "ann")
	key := ChannelKey("s1", "general")

	s.Apply(&protocol.MessageEvent{Type: protocol.EvtMessage, ServerID: "s1", Target: "general", From: "ann", ID: "m1"})
	if got := s.UnreadCount(key); got != 0 {
		t.Fatalf("own message must not increment unread, got %d", got)
	}

	s.Apply(&protocol.MessageEvent{Type: protocol.EvtMessage, ServerID: "s1", Target: "general", From: "bob", ID: "m2"})
	if got := s.UnreadCount(key); got != 1 {
		t.Fatalf("other's message must increment unread, got %d", got)
	}
}

func TestReactionLifecycle(t *testing.T) {
	s := NewStore()
	key := ChannelKey("s1", "general")
	s.Apply(&protocol.MessageEvent{Type: protocol.EvtMessage, ServerID: "s1", Target: "general", From: "bob", ID: "m1"})

	s.Apply(&protocol.ReactionAddEvent{Type: protocol.EvtReactionAdd, ServerID: "s1", Channel: "general", MessageID: "m1", Emoji: "👍", UserID: "ann"})
	s.Apply(&protocol.ReactionAddEvent{Type: protocol.EvtReactionAdd, ServerID: "s1", Channel: "general", MessageID: "m1", Emoji: "👍", UserID: "cid"})

	msgs := s.Messages(key)
	if len(msgs[0].Reactions) != 1 || msgs[0].Reactions[0].Count != 2 {
		t.Fatalf("expected one group with count 2, got %+v", msgs[0].Reactions)
	}

	s.Apply(&protocol.ReactionRemoveEvent{Type: protocol.EvtReactionRemove, ServerID: "s1", Channel: "general", MessageID: "m1", Emoji: "👍", UserID: "ann"})
	msgs = s.Messages(key)
	if len(msgs[0].Reactions) != 1 || msgs[0].Reactions[0].Count != 1 {
		t.Fatalf("expected count 1 after one removal, got %+v", msgs[0].Reactions)
	}

	s.Apply(&protocol.ReactionRemoveEvent{Type: protocol.EvtReactionRemove, ServerID: "s1", Channel: "general", MessageID: "m1", Emoji: "👍", UserID: "cid"})
	msgs = s.Messages(key)
	if len(msgs[0].Reactions) != 0 {
		t.Fatalf("expected reaction group dropped at count 0, got %+v", msgs[0].Reactions)
	}
}

func TestHistoryPrependsInChronologicalOrder(t *testing.T) {
	s := NewStore()
	key := ChannelKey("s1", "general")
	s.Apply(&protocol.MessageEvent{Type: protocol.EvtMessage, ServerID: "s1", Target: "general", From: "bob", ID: "live"})

	// Server sends history newest-first, as a descending page.
	s.Apply(&protocol.HistoryEvent{
		Type: protocol.EvtHistory, ServerID: "s1", Channel: "general",
		Messages: []protocol.Message{{ID: "page-3"}, {ID: "page-2"}, {ID: "page-1"}},
		HasMore:  true,
	})

	msgs := s.Messages(key)
	want := []string{"page-1", "page-2", "page-3", "live"}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d: %+v", len(want), len(msgs), msgs)
	}
	for i, id := range want {
		if msgs[i].ID != id {
			t.Fatalf("position %d: want %q got %q", i, id, msgs[i].ID)
		}
	}
	if !s.HasMore(key) {
		t.Fatal("expected hasMore true")
	}
}

func TestTypingStartSuppressesSelf(t *testing.T) {
	s := NewStore()
	s.SetConnected(true, "ann")
	key := ChannelKey("s1", "general")

	s.Apply(&protocol.TypingStartEvent{Type: protocol.EvtTypingStart, ServerID: "s1", Channel: "general", Nickname: "ann"})
	if got := s.TypingUsers(key); len(got) != 0 {
		t.Fatalf("own typing_start must be suppressed, got %v", got)
	}

	s.Apply(&protocol.TypingStartEvent{Type: protocol.EvtTypingStart, ServerID: "s1", Channel: "general", Nickname: "bob"})
	if got := s.TypingUsers(key); len(got) != 1 || got[0] != "bob" {
		t.Fatalf("expected [bob], got %v", got)
	}
}

func TestChannelListEmitsPrimingCommandsInOrder(t *testing.T) {
	s := NewStore()
	cmds := s.Apply(&protocol.ChannelListEvent{Type: protocol.EvtChannelList, ServerID: "s1", Channels: []protocol.Channel{{ID: "c1", Name: "general"}}})

	if len(cmds) != 3 {
		t.Fatalf("expected 3 priming commands, got %d", len(cmds))
	}
	types := []string{cmds[0].(protocol.ListRolesCommand).Type, cmds[1].(protocol.ListCategoriesCommand).Type, cmds[2].(protocol.GetPresencesCommand).Type}
	want := []string{protocol.CmdListRoles, protocol.CmdListCategories, protocol.CmdGetPresences}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("priming command %d: want %q got %q", i, want[i], types[i])
		}
	}

	if got := s.Channels("s1"); len(got) != 1 || got[0].Name != "general" {
		t.Fatalf("expected channel list applied, got %+v", got)
	}
}

func TestQuitIsIdempotentAcrossChannels(t *testing.T) {
	s := NewStore()
	keyA := ChannelKey("s1", "general")
	keyB := ChannelKey("s1", "random")

	s.Apply(&protocol.JoinEvent{Type: protocol.EvtJoin, ServerID: "s1", Channel: "general", Member: protocol.Member{Nickname: "bob"}})
	s.Apply(&protocol.JoinEvent{Type: protocol.EvtJoin, ServerID: "s1", Channel: "random", Member: protocol.Member{Nickname: "bob"}})

	s.Apply(&protocol.QuitEvent{Type: protocol.EvtQuit, Nickname: "bob"})
	s.Apply(&protocol.QuitEvent{Type: protocol.EvtQuit, Nickname: "bob"})

	if got := s.Members(keyA); len(got) != 0 {
		t.Fatalf("expected bob removed from general, got %+v", got)
	}
	if got := s.Members(keyB); len(got) != 0 {
		t.Fatalf("expected bob removed from random, got %+v", got)
	}
}

func TestJoinIsIdempotentByNickname(t *testing.T) {
	s := NewStore()
	key := ChannelKey("s1", "general")

	s.Apply(&protocol.JoinEvent{Type: protocol.EvtJoin, ServerID: "s1", Channel: "general", Member: protocol.Member{Nickname: "bob", Status: "online"}})
	s.Apply(&protocol.JoinEvent{Type: protocol.EvtJoin, ServerID: "s1", Channel: "general", Member: protocol.Member{Nickname: "bob", Status: "idle"}})

	members := s.Members(key)
	if len(members) != 1 {
		t.Fatalf("expected exactly one bob, got %+v", members)
	}
	if members[0].Status != "idle" {
		t.Fatalf("expected re-join to refresh fields, got %+v", members[0])
	}
}

func TestNamesReplaceIsIdempotent(t *testing.T) {
	s := NewStore()
	key := ChannelKey("s1", "general")
	evt := &protocol.NamesEvent{Type: protocol.EvtNames, ServerID: "s1", Channel: "general", Members: []protocol.Member{{Nickname: "ann"}, {Nickname: "bob"}}}

	s.Apply(evt)
	s.Apply(evt)

	if got := s.Members(key); len(got) != 2 {
		t.Fatalf("expected exactly 2 members after repeated names, got %+v", got)
	}
}

func TestEmptySentinelsAreReferentiallyStable(t *testing.T) {
	s := NewStore()
	a := s.Channels("nonexistent")
	b := s.Channels("other-missing-key")

	if len(a) != 0 || len(b) != 0 {
		t.Fatalf("expected empty slices")
	}
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Fatal("two misses on the empty selector must return the identical sentinel slice")
	}
}

func TestUnreadCountZeroOnMissingKey(t *testing.T) {
	s := NewStore()
	if got := s.UnreadCount(ChannelKey("s1", "nope")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestDisconnectPreservesNicknameResetsServerState(t *testing.T) {
	s := NewStore()
	s.SetConnected(true, "ann")
	s.Apply(&protocol.ServerListEvent{Type: protocol.EvtServerList, Servers: []protocol.Server{{ID: "s1", Name: "Test"}}})

	s.Disconnect()

	if s.Connected() {
		t.Fatal("expected disconnected")
	}
	if s.Nickname() != "ann" {
		t.Fatalf("expected nickname preserved, got %q", s.Nickname())
	}
	if got := s.Servers(); len(got) != 0 {
		t.Fatalf("expected servers cleared, got %+v", got)
	}
}

func TestChannelKeyRoundTrip(t *testing.T) {
	key := ChannelKey("srv-1", "general")
	if key != "srv-1:general" {
		t.Fatalf("unexpected channelKey shape: %q", key)
	}
}

func TestTypingStartResetsTimerEpochOnRefresh(t *testing.T) {
	s := NewStore()
	key := ChannelKey("s1", "general")
	timerKey := key + "\x00" + "bob"

	s.Apply(&protocol.TypingStartEvent{Type: protocol.EvtTypingStart, ServerID: "s1", Channel: "general", Nickname: "bob"})
	first := s.typingTimers[timerKey]
	if first == nil || first.epoch != 0 {
		t.Fatalf("expected a fresh timer at epoch 0, got %+v", first)
	}

	s.Apply(&protocol.TypingStartEvent{Type: protocol.EvtTypingStart, ServerID: "s1", Channel: "general", Nickname: "bob"})
	second := s.typingTimers[timerKey]
	if second.epoch != 1 {
		t.Fatalf("expected epoch bumped to 1 on refresh, got %d", second.epoch)
	}

	// A stale callback captured at epoch 0 must not remove the refreshed entry.
	s.expireTyping(key, "bob", timerKey, 0)
	if got := s.TypingUsers(key); len(got) != 1 || got[0] != "bob" {
		t.Fatalf("stale expiry must not remove refreshed entry, got %v", got)
	}

	s.expireTyping(key, "bob", timerKey, 1)
	if got := s.TypingUsers(key); len(got) != 0 {
		t.Fatalf("current-epoch expiry must remove the entry, got %v", got)
	}
}

func TestErrorEventApplyIsNoop(t *testing.T) {
	s := NewStore()
	cmds := s.Apply(&protocol.ErrorEvent{Type: protocol.EvtError, Code: "boom", Message: "bad"})
	if cmds != nil {
		t.Fatalf("expected nil side effects, got %+v", cmds)
	}
}

func TestForumTagsAreScopedByFullChannelKey(t *testing.T) {
	s := NewStore()
	s.Apply(&protocol.ForumTagListEvent{
		Type: protocol.EvtForumTagList, ServerID: "s1", Channel: "help",
		Tags: []protocol.ForumTag{{ID: "t1", Name: "answered"}},
	})
	// A forum channel named "help" on a different server must not collide.
	s.Apply(&protocol.ForumTagListEvent{
		Type: protocol.EvtForumTagList, ServerID: "s2", Channel: "help",
		Tags: []protocol.ForumTag{{ID: "t2", Name: "unanswered"}},
	})

	tagsS1 := s.ForumTags(ChannelKey("s1", "help"))
	tagsS2 := s.ForumTags(ChannelKey("s2", "help"))
	if len(tagsS1) != 1 || tagsS1[0].ID != "t1" {
		t.Fatalf("expected s1's own tags, got %+v", tagsS1)
	}
	if len(tagsS2) != 1 || tagsS2[0].ID != "t2" {
		t.Fatalf("expected s2's own tags, got %+v", tagsS2)
	}
}
