package store

import "github.com/ngutten/concord/protocol"

// Apply is the Event Dispatcher's single entry point into the Store: it
// applies exactly one decoded event and returns any side-effect commands
// the Command Router must issue next (only channel_list produces any,
// §4.3, §8 scenario S7). Every call notifies subscribers exactly once,
// whether or not the event actually changed anything - the single-
// threaded cooperative model (§5) means composing reducers is already
// atomic from a reader's perspective, so over-notifying is harmless.
func (s *Store) Apply(evt protocol.Event) []protocol.Command {
	defer s.notify()

	switch e := evt.(type) {
	case *protocol.MessageEvent:
		s.applyMessage(e)
	case *protocol.MessageEditEvent:
		s.applyMessageEdit(e)
	case *protocol.MessageDeleteEvent:
		s.applyMessageDelete(e)
	case *protocol.MessageEmbedEvent:
		s.applyMessageEmbed(e)
	case *protocol.BulkMessageDeleteEvent:
		s.applyBulkMessageDelete(e)
	case *protocol.HistoryEvent:
		s.applyHistory(e)
	case *protocol.ReactionAddEvent:
		s.applyReactionAdd(e)
	case *protocol.ReactionRemoveEvent:
		s.applyReactionRemove(e)
	case *protocol.TypingStartEvent:
		s.applyTypingStart(e)

	case *protocol.JoinEvent:
		s.applyJoin(e)
	case *protocol.PartEvent:
		s.applyPart(e)
	case *protocol.QuitEvent:
		s.applyQuit(e)
	case *protocol.NamesEvent:
		s.applyNames(e)
	case *protocol.NickChangeEvent:
		s.applyNickChange(e)
	case *protocol.MemberKickEvent:
		s.applyMemberKick(e)
	case *protocol.MemberBanEvent:
		s.applyMemberBan(e)
	case *protocol.MemberUnbanEvent:
		s.applyMemberUnban(e)
	case *protocol.MemberTimeoutEvent:
		s.applyMemberTimeout(e)
	case *protocol.ServerNicknameUpdateEvent:
		s.applyServerNicknameUpdate(e)
	case *protocol.MemberRoleUpdateEvent:
		s.applyMemberRoleUpdate(e)

	case *protocol.ChannelListEvent:
		return s.applyChannelList(e)
	case *protocol.TopicEvent:
		s.applyTopic(e)
	case *protocol.TopicChangeEvent:
		s.applyTopicChange(e)
	case *protocol.ChannelReorderEvent:
		s.applyChannelReorder(e)
	case *protocol.SlowModeUpdateEvent:
		s.applySlowModeUpdate(e)
	case *protocol.NSFWUpdateEvent:
		s.applyNSFWUpdate(e)
	case *protocol.CategoryListEvent:
		s.applyCategoryList(e)
	case *protocol.CategoryUpdateEvent:
		s.applyCategoryUpdate(e)
	case *protocol.CategoryDeleteEvent:
		s.applyCategoryDelete(e)
	case *protocol.RoleListEvent:
		s.applyRoleList(e)
	case *protocol.RoleUpdateEvent:
		s.applyRoleUpdate(e)
	case *protocol.RoleDeleteEvent:
		s.applyRoleDelete(e)

	case *protocol.PresenceUpdateEvent:
		s.applyPresenceUpdate(e)
	case *protocol.PresenceListEvent:
		s.applyPresenceList(e)
	case *protocol.ServerListEvent:
		s.applyServerList(e)
	case *protocol.UnreadCountsEvent:
		s.applyUnreadCounts(e)

	case *protocol.MessagePinEvent:
		s.applyMessagePin(e)
	case *protocol.MessageUnpinEvent:
		s.applyMessageUnpin(e)
	case *protocol.PinnedMessagesEvent:
		s.applyPinnedMessages(e)
	case *protocol.ThreadCreateEvent:
		s.applyThreadCreate(e)
	case *protocol.ThreadUpdateEvent:
		s.applyThreadUpdate(e)
	case *protocol.ThreadListEvent:
		s.applyThreadList(e)
	case *protocol.ForumTagListEvent:
		s.applyForumTagList(e)
	case *protocol.ForumTagUpdateEvent:
		s.applyForumTagUpdate(e)
	case *protocol.ForumTagDeleteEvent:
		s.applyForumTagDelete(e)

	case *protocol.BookmarkListEvent:
		s.applyBookmarkList(e)
	case *protocol.BookmarkAddEvent:
		s.applyBookmarkAdd(e)
	case *protocol.BookmarkRemoveEvent:
		s.applyBookmarkRemove(e)

	case *protocol.BanListEvent:
		s.applyBanList(e)
	case *protocol.AuditLogEntriesEvent:
		s.applyAuditLogEntries(e)
	case *protocol.AutomodRuleListEvent:
		s.applyAutomodRuleList(e)
	case *protocol.AutomodRuleUpdateEvent:
		s.applyAutomodRuleUpdate(e)
	case *protocol.AutomodRuleDeleteEvent:
		s.applyAutomodRuleDelete(e)

	case *protocol.InviteListEvent:
		s.applyInviteList(e)
	case *protocol.InviteCreateEvent:
		s.applyInviteCreate(e)
	case *protocol.InviteDeleteEvent:
		s.applyInviteDelete(e)
	case *protocol.EventListEvent:
		s.applyEventList(e)
	case *protocol.EventUpdateEvent:
		s.applyEventUpdate(e)
	case *protocol.EventDeleteEvent:
		s.applyEventDelete(e)
	case *protocol.EventRSVPListEvent:
		s.applyEventRSVPList(e)
	case *protocol.ServerCommunityEvent:
		s.applyServerCommunity(e)
	case *protocol.DiscoverServersEvent:
		s.applyDiscoverServers(e)
	case *protocol.ChannelFollowListEvent:
		s.applyChannelFollowList(e)
	case *protocol.ChannelFollowCreateEvent:
		s.applyChannelFollowCreate(e)
	case *protocol.ChannelFollowDeleteEvent:
		s.applyChannelFollowDelete(e)
	case *protocol.TemplateListEvent:
		s.applyTemplateList(e)
	case *protocol.TemplateUpdateEvent:
		s.applyTemplateUpdate(e)
	case *protocol.TemplateDeleteEvent:
		s.applyTemplateDelete(e)

	case *protocol.SearchResultsEvent:
		s.applySearchResults(e)
	case *protocol.UserProfileEvent:
		s.applyUserProfile(e)
	case *protocol.NotificationSettingsEvent:
		s.applyNotificationSettings(e)

	case *protocol.ErrorEvent, *protocol.ServerNoticeEvent:
		// Logged by the caller (§7); never mutates state.
	}

	return nil
}
