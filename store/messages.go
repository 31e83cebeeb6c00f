package store

import "github.com/ngutten/concord/protocol"

// applyMessage implements the `message` reducer (§4.3). It is also the
// reconciliation point for the optimistic-send dedupe policy recommended in
// §9: if a message with the same id is already present (placed there by
// AppendOptimisticMessage), the incoming authoritative copy replaces it in
// place instead of appending a duplicate.
func (s *Store) applyMessage(evt *protocol.MessageEvent) {
	serverID := evt.ServerID
	if serverID == "" {
		serverID = "default"
	}
	key := ChannelKey(serverID, evt.Target)

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := protocol.Message{
		ID:        evt.ID,
		Author:    evt.From,
		Content:   evt.Content,
		Timestamp: evt.Timestamp,
		ReplyTo:   evt.ReplyTo,
		Embeds:    evt.Embeds,
	}
	if len(evt.AttachmentIDs) > 0 {
		msg.Attachments = make([]protocol.Attachment, len(evt.AttachmentIDs))
		for i, id := range evt.AttachmentIDs {
			msg.Attachments[i] = protocol.Attachment{ID: id}
		}
	}

	existing := s.messages[key]
	for i, m := range existing {
		if m.ID == msg.ID {
			existing[i] = msg
			s.cacheAvatar(evt.From, evt.AvatarURL)
			return
		}
	}
	s.messages[key] = append(existing, msg)
	s.cacheAvatar(evt.From, evt.AvatarURL)

	if evt.From != s.nickname {
		s.unreadCounts[key]++
	}
}

func (s *Store) applyMessageEdit(evt *protocol.MessageEditEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID == evt.MessageID {
			msgs[i].Content = evt.Content
			msgs[i].EditedAt = evt.EditedAt
			return
		}
	}
}

func (s *Store) applyMessageDelete(evt *protocol.MessageDeleteEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[key] = removeMessageByID(s.messages[key], evt.MessageID)
}

func (s *Store) applyBulkMessageDelete(evt *protocol.BulkMessageDeleteEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)
	toDelete := make(map[string]struct{}, len(evt.MessageIDs))
	for _, id := range evt.MessageIDs {
		toDelete[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.messages[key]
	filtered := make([]protocol.Message, 0, len(existing))
	for _, m := range existing {
		if _, drop := toDelete[m.ID]; !drop {
			filtered = append(filtered, m)
		}
	}
	s.messages[key] = filtered
}

func (s *Store) applyMessageEmbed(evt *protocol.MessageEmbedEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID == evt.MessageID {
			msgs[i].Embeds = evt.Embeds
			return
		}
	}
}

// applyHistory reverses the server's descending-order page and prepends it
// (§4.3, §5 "History prepends are race-free", §8 scenario S4).
func (s *Store) applyHistory(evt *protocol.HistoryEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	reversed := make([]protocol.Message, len(evt.Messages))
	for i, m := range evt.Messages {
		reversed[len(evt.Messages)-1-i] = m
	}
	s.messages[key] = append(reversed, s.messages[key]...)
	s.hasMore[key] = evt.HasMore
}

func (s *Store) applyReactionAdd(evt *protocol.ReactionAddEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID != evt.MessageID {
			continue
		}
		for g := range msgs[i].Reactions {
			if msgs[i].Reactions[g].Emoji == evt.Emoji {
				if !containsString(msgs[i].Reactions[g].UserIDs, evt.UserID) {
					msgs[i].Reactions[g].UserIDs = append(msgs[i].Reactions[g].UserIDs, evt.UserID)
					msgs[i].Reactions[g].Count = len(msgs[i].Reactions[g].UserIDs)
				}
				return
			}
		}
		msgs[i].Reactions = append(msgs[i].Reactions, protocol.Reaction{
			Emoji:   evt.Emoji,
			Count:   1,
			UserIDs: []string{evt.UserID},
		})
		return
	}
}

func (s *Store) applyReactionRemove(evt *protocol.ReactionRemoveEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID != evt.MessageID {
			continue
		}
		groups := msgs[i].Reactions
		for g := range groups {
			if groups[g].Emoji != evt.Emoji {
				continue
			}
			groups[g].UserIDs = removeString(groups[g].UserIDs, evt.UserID)
			groups[g].Count = len(groups[g].UserIDs)
			if groups[g].Count == 0 {
				msgs[i].Reactions = append(groups[:g], groups[g+1:]...)
			}
			return
		}
		return
	}
}

// AppendOptimisticMessage inserts a locally-authored message before any
// server acknowledgement (§4.4 sendMessage) and clears replyingTo.
func (s *Store) AppendOptimisticMessage(channelKey string, msg protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[channelKey] = append(s.messages[channelKey], msg)
	s.replyingTo = nil
}

// ClearUnread implements the optimistic half of markRead (§4.4): the count
// is deleted (not set to 0) so UnreadCount returns 0 via key-absence,
// matching §3 invariant 4.
func (s *Store) ClearUnread(channelKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.unreadCounts, channelKey)
}

// SetReplyingTo records the message the next send will reply to.
func (s *Store) SetReplyingTo(info *protocol.ReplyInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replyingTo = info
}

func removeMessageByID(msgs []protocol.Message, id string) []protocol.Message {
	for i, m := range msgs {
		if m.ID == id {
			return append(msgs[:i], msgs[i+1:]...)
		}
	}
	return msgs
}

func containsString(vals []string, v string) bool {
	for _, existing := range vals {
		if existing == v {
			return true
		}
	}
	return false
}

func removeString(vals []string, v string) []string {
	for i, existing := range vals {
		if existing == v {
			return append(vals[:i], vals[i+1:]...)
		}
	}
	return vals
}
