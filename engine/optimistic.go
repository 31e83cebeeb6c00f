package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/ngutten/concord/protocol"
	"github.com/ngutten/concord/store"
)

// SendMessage implements the optimistic half of §4.4's sendMessage: a
// locally-authored message is appended to the store immediately under a
// client-generated id, then the real command is transmitted. When the
// server echoes the message back with the same id, Store.Apply replaces
// the optimistic entry in place (§5, §9) instead of duplicating it.
func (e *Engine) SendMessage(serverID, channel, content string, attachmentIDs []string) {
	if !e.transport.Connected() {
		return
	}
	nickname := e.store.Nickname()
	if nickname == "" {
		return
	}

	key := store.ChannelKey(serverID, channel)
	reply := e.store.ReplyingTo()

	msg := protocol.Message{
		ID:          uuid.NewString(),
		Author:      nickname,
		Content:     content,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		ReplyTo:     reply,
		Reactions:   []protocol.Reaction{},
		Attachments: attachmentsFromIDs(attachmentIDs),
		Embeds:      []protocol.Embed{},
	}
	e.store.AppendOptimisticMessage(key, msg)

	replyTo := ""
	if reply != nil {
		replyTo = reply.ID
	}
	e.Commands.send(protocol.NewSendMessage(serverID, channel, content, replyTo, attachmentIDs))
}

// attachmentsFromIDs builds the optimistic message's attachment entries from
// the ids alone; filename, URL and the other metadata fields are left empty.
func attachmentsFromIDs(ids []string) []protocol.Attachment {
	if len(ids) == 0 {
		return []protocol.Attachment{}
	}
	out := make([]protocol.Attachment, 0, len(ids))
	for _, id := range ids {
		out = append(out, protocol.Attachment{ID: id})
	}
	return out
}

// MarkRead clears the unread count optimistically before the server
// acknowledges mark_read (§4.4).
func (e *Engine) MarkRead(serverID, channel, messageID string) {
	key := store.ChannelKey(serverID, channel)
	e.store.ClearUnread(key)
	e.Commands.send(protocol.NewMarkRead(serverID, channel, messageID))
}
