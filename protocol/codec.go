package protocol

import (
	"encoding/json"
	"fmt"
)

// frameEnvelope peeks at a frame's discriminator without committing to a
// concrete shape.
type frameEnvelope struct {
	Type string `json:"type"`
}

// ErrUnknownEventType is returned by DecodeEvent when a frame's "type" does
// not match any known event. Callers must treat this as a no-op, not a
// fatal decode error (§6.3, §9): a server may ship new event types before
// clients are updated to understand them.
type ErrUnknownEventType struct {
	Type string
}

func (e *ErrUnknownEventType) Error() string {
	return fmt.Sprintf("protocol: unknown event type %q", e.Type)
}

// DecodeEvent decodes a raw inbound frame into its concrete Event. Callers
// should check for *ErrUnknownEventType with errors.As and silently drop
// the frame rather than surfacing it as a connection-level failure.
func DecodeEvent(raw []byte) (Event, error) {
	var env frameEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("protocol: decode envelope: %w", err)
	}

	var evt Event
	switch env.Type {
	case EvtServerList:
		evt = &ServerListEvent{}
	case EvtError:
		evt = &ErrorEvent{}
	case EvtMessage:
		evt = &MessageEvent{}
	case EvtMessageEdit:
		evt = &MessageEditEvent{}
	case EvtMessageDelete:
		evt = &MessageDeleteEvent{}
	case EvtMessageEmbed:
		evt = &MessageEmbedEvent{}
	case EvtBulkMessageDelete:
		evt = &BulkMessageDeleteEvent{}
	case EvtHistory:
		evt = &HistoryEvent{}
	case EvtReactionAdd:
		evt = &ReactionAddEvent{}
	case EvtReactionRemove:
		evt = &ReactionRemoveEvent{}
	case EvtTypingStart:
		evt = &TypingStartEvent{}
	case EvtJoin:
		evt = &JoinEvent{}
	case EvtPart:
		evt = &PartEvent{}
	case EvtQuit:
		evt = &QuitEvent{}
	case EvtNames:
		evt = &NamesEvent{}
	case EvtNickChange:
		evt = &NickChangeEvent{}
	case EvtTopic:
		evt = &TopicEvent{}
	case EvtTopicChange:
		evt = &TopicChangeEvent{}
	case EvtChannelList:
		evt = &ChannelListEvent{}
	case EvtChannelReorder:
		evt = &ChannelReorderEvent{}
	case EvtSlowModeUpdate:
		evt = &SlowModeUpdateEvent{}
	case EvtNSFWUpdate:
		evt = &NSFWUpdateEvent{}
	case EvtUnreadCounts:
		evt = &UnreadCountsEvent{}
	case EvtServerNotice:
		evt = &ServerNoticeEvent{}
	case EvtRoleList:
		evt = &RoleListEvent{}
	case EvtRoleUpdate:
		evt = &RoleUpdateEvent{}
	case EvtRoleDelete:
		evt = &RoleDeleteEvent{}
	case EvtMemberRoleUpdate:
		evt = &MemberRoleUpdateEvent{}
	case EvtCategoryList:
		evt = &CategoryListEvent{}
	case EvtCategoryUpdate:
		evt = &CategoryUpdateEvent{}
	case EvtCategoryDelete:
		evt = &CategoryDeleteEvent{}
	case EvtMemberKick:
		evt = &MemberKickEvent{}
	case EvtMemberBan:
		evt = &MemberBanEvent{}
	case EvtMemberUnban:
		evt = &MemberUnbanEvent{}
	case EvtMemberTimeout:
		evt = &MemberTimeoutEvent{}
	case EvtServerNicknameUpdate:
		evt = &ServerNicknameUpdateEvent{}
	case EvtPresenceUpdate:
		evt = &PresenceUpdateEvent{}
	case EvtPresenceList:
		evt = &PresenceListEvent{}
	case EvtUserProfile:
		evt = &UserProfileEvent{}
	case EvtNotificationSettings:
		evt = &NotificationSettingsEvent{}
	case EvtSearchResults:
		evt = &SearchResultsEvent{}
	case EvtMessagePin:
		evt = &MessagePinEvent{}
	case EvtMessageUnpin:
		evt = &MessageUnpinEvent{}
	case EvtPinnedMessages:
		evt = &PinnedMessagesEvent{}
	case EvtThreadCreate:
		evt = &ThreadCreateEvent{}
	case EvtThreadUpdate:
		evt = &ThreadUpdateEvent{}
	case EvtThreadList:
		evt = &ThreadListEvent{}
	case EvtForumTagList:
		evt = &ForumTagListEvent{}
	case EvtForumTagUpdate:
		evt = &ForumTagUpdateEvent{}
	case EvtForumTagDelete:
		evt = &ForumTagDeleteEvent{}
	case EvtBookmarkList:
		evt = &BookmarkListEvent{}
	case EvtBookmarkAdd:
		evt = &BookmarkAddEvent{}
	case EvtBookmarkRemove:
		evt = &BookmarkRemoveEvent{}
	case EvtAuditLogEntries:
		evt = &AuditLogEntriesEvent{}
	case EvtBanList:
		evt = &BanListEvent{}
	case EvtAutomodRuleList:
		evt = &AutomodRuleListEvent{}
	case EvtAutomodRuleUpdate:
		evt = &AutomodRuleUpdateEvent{}
	case EvtAutomodRuleDelete:
		evt = &AutomodRuleDeleteEvent{}
	case EvtInviteList:
		evt = &InviteListEvent{}
	case EvtInviteCreate:
		evt = &InviteCreateEvent{}
	case EvtInviteDelete:
		evt = &InviteDeleteEvent{}
	case EvtEventList:
		evt = &EventListEvent{}
	case EvtEventUpdate:
		evt = &EventUpdateEvent{}
	case EvtEventDelete:
		evt = &EventDeleteEvent{}
	case EvtEventRSVPList:
		evt = &EventRSVPListEvent{}
	case EvtServerCommunity:
		evt = &ServerCommunityEvent{}
	case EvtDiscoverServers:
		evt = &DiscoverServersEvent{}
	case EvtChannelFollowList:
		evt = &ChannelFollowListEvent{}
	case EvtChannelFollowCreate:
		evt = &ChannelFollowCreateEvent{}
	case EvtChannelFollowDelete:
		evt = &ChannelFollowDeleteEvent{}
	case EvtTemplateList:
		evt = &TemplateListEvent{}
	case EvtTemplateUpdate:
		evt = &TemplateUpdateEvent{}
	case EvtTemplateDelete:
		evt = &TemplateDeleteEvent{}
	default:
		return nil, &ErrUnknownEventType{Type: env.Type}
	}

	if err := json.Unmarshal(raw, evt); err != nil {
		return nil, fmt.Errorf("protocol: decode %s: %w", env.Type, err)
	}
	return evt, nil
}

// EncodeCommand marshals a command to its wire frame.
func EncodeCommand(cmd Command) ([]byte, error) {
	return json.Marshal(cmd)
}
