// Reducers for the catalog entries that are "straightforward upsert /
// replace / remove into the corresponding map" per §4.3 and the §6 wire
// table: pins, threads, forum tags, bookmarks, moderation, invites,
// events, community, templates, search, user profile, and notification
// settings.
package store

import "github.com/ngutten/concord/protocol"

func (s *Store) applyMessagePin(evt *protocol.MessagePinEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	pins := s.pinnedMessages[key]
	for i, p := range pins {
		if p.MessageID == evt.Pin.MessageID {
			pins[i] = evt.Pin
			return
		}
	}
	s.pinnedMessages[key] = append(pins, evt.Pin)
}

func (s *Store) applyMessageUnpin(evt *protocol.MessageUnpinEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	pins := s.pinnedMessages[key]
	for i, p := range pins {
		if p.MessageID == evt.MessageID {
			s.pinnedMessages[key] = append(pins[:i], pins[i+1:]...)
			return
		}
	}
}

func (s *Store) applyPinnedMessages(evt *protocol.PinnedMessagesEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinnedMessages[key] = evt.Pins
}

func (s *Store) applyThreadCreate(evt *protocol.ThreadCreateEvent) {
	key := ChannelKey(evt.Thread.ServerID, evt.Thread.ParentChannel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[key] = append(s.threads[key], evt.Thread)
}

func (s *Store) applyThreadUpdate(evt *protocol.ThreadUpdateEvent) {
	key := ChannelKey(evt.Thread.ServerID, evt.Thread.ParentChannel)

	s.mu.Lock()
	defer s.mu.Unlock()

	threads := s.threads[key]
	for i, t := range threads {
		if t.ID == evt.Thread.ID {
			threads[i] = evt.Thread
			return
		}
	}
	s.threads[key] = append(threads, evt.Thread)
}

func (s *Store) applyThreadList(evt *protocol.ThreadListEvent) {
	key := ChannelKey(evt.ServerID, evt.ParentChannel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[key] = evt.Threads
}

func (s *Store) applyForumTagList(evt *protocol.ForumTagListEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forumTags[key] = evt.Tags
}

func (s *Store) applyForumTagUpdate(evt *protocol.ForumTagUpdateEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	tags := s.forumTags[key]
	for i, t := range tags {
		if t.ID == evt.Tag.ID {
			tags[i] = evt.Tag
			return
		}
	}
	s.forumTags[key] = append(tags, evt.Tag)
}

func (s *Store) applyForumTagDelete(evt *protocol.ForumTagDeleteEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	tags := s.forumTags[key]
	for i, t := range tags {
		if t.ID == evt.TagID {
			s.forumTags[key] = append(tags[:i], tags[i+1:]...)
			return
		}
	}
}

func (s *Store) applyBookmarkList(evt *protocol.BookmarkListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = evt.Bookmarks
}

func (s *Store) applyBookmarkAdd(evt *protocol.BookmarkAddEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookmarks {
		if b.MessageID == evt.Bookmark.MessageID {
			s.bookmarks[i] = evt.Bookmark
			return
		}
	}
	s.bookmarks = append(s.bookmarks, evt.Bookmark)
}

func (s *Store) applyBookmarkRemove(evt *protocol.BookmarkRemoveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookmarks {
		if b.MessageID == evt.MessageID {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			return
		}
	}
}

func (s *Store) applyBanList(evt *protocol.BanListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bans[evt.ServerID] = evt.Bans
}

func (s *Store) applyAuditLogEntries(evt *protocol.AuditLogEntriesEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLog[evt.ServerID] = evt.Entries
	s.auditLogHasMore[evt.ServerID] = evt.HasMore
}

func (s *Store) applyAutomodRuleList(evt *protocol.AutomodRuleListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.automodRules[evt.ServerID] = evt.Rules
}

func (s *Store) applyAutomodRuleUpdate(evt *protocol.AutomodRuleUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := s.automodRules[evt.ServerID]
	for i, r := range rules {
		if r.ID == evt.Rule.ID {
			rules[i] = evt.Rule
			return
		}
	}
	s.automodRules[evt.ServerID] = append(rules, evt.Rule)
}

func (s *Store) applyAutomodRuleDelete(evt *protocol.AutomodRuleDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := s.automodRules[evt.ServerID]
	for i, r := range rules {
		if r.ID == evt.RuleID {
			s.automodRules[evt.ServerID] = append(rules[:i], rules[i+1:]...)
			return
		}
	}
}

func (s *Store) applyInviteList(evt *protocol.InviteListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[evt.ServerID] = evt.Invites
}

func (s *Store) applyInviteCreate(evt *protocol.InviteCreateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[evt.Invite.ServerID] = append(s.invites[evt.Invite.ServerID], evt.Invite)
}

func (s *Store) applyInviteDelete(evt *protocol.InviteDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invites := s.invites[evt.ServerID]
	for i, inv := range invites {
		if inv.Code == evt.Code {
			s.invites[evt.ServerID] = append(invites[:i], invites[i+1:]...)
			return
		}
	}
}

func (s *Store) applyEventList(evt *protocol.EventListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverEvents[evt.ServerID] = evt.Events
}

func (s *Store) applyEventUpdate(evt *protocol.EventUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.serverEvents[evt.Event.ServerID]
	for i, e := range events {
		if e.ID == evt.Event.ID {
			events[i] = evt.Event
			return
		}
	}
	s.serverEvents[evt.Event.ServerID] = append(events, evt.Event)
}

func (s *Store) applyEventDelete(evt *protocol.EventDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.serverEvents[evt.ServerID]
	for i, e := range events {
		if e.ID == evt.EventID {
			s.serverEvents[evt.ServerID] = append(events[:i], events[i+1:]...)
			return
		}
	}
}

func (s *Store) applyEventRSVPList(evt *protocol.EventRSVPListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventRSVPs[evt.EventID] = evt.RSVPs
}

func (s *Store) applyServerCommunity(evt *protocol.ServerCommunityEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.communitySettings[evt.Settings.ServerID] = evt.Settings
}

func (s *Store) applyDiscoverServers(evt *protocol.DiscoverServersEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discoverableServers = evt.Servers
}

func (s *Store) applyChannelFollowList(evt *protocol.ChannelFollowListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channelFollows[evt.ChannelID] = evt.Follows
}

func (s *Store) applyChannelFollowCreate(evt *protocol.ChannelFollowCreateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channelFollows[evt.Follow.ChannelID] = append(s.channelFollows[evt.Follow.ChannelID], evt.Follow)
}

func (s *Store) applyChannelFollowDelete(evt *protocol.ChannelFollowDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	follows := s.channelFollows[evt.ChannelID]
	for i, f := range follows {
		if f.TargetChannelID == evt.TargetChannelID {
			s.channelFollows[evt.ChannelID] = append(follows[:i], follows[i+1:]...)
			return
		}
	}
}

func (s *Store) applyTemplateList(evt *protocol.TemplateListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[evt.ServerID] = evt.Templates
}

func (s *Store) applyTemplateUpdate(evt *protocol.TemplateUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.templates[evt.ServerID]
	for i, t := range templates {
		if t.ID == evt.Template.ID {
			templates[i] = evt.Template
			return
		}
	}
	s.templates[evt.ServerID] = append(templates, evt.Template)
}

func (s *Store) applyTemplateDelete(evt *protocol.TemplateDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.templates[evt.ServerID]
	for i, t := range templates {
		if t.ID == evt.TemplateID {
			s.templates[evt.ServerID] = append(templates[:i], templates[i+1:]...)
			return
		}
	}
}

func (s *Store) applySearchResults(evt *protocol.SearchResultsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = SearchState{Query: evt.Query, Results: evt.Messages, TotalCount: evt.Total}
}

func (s *Store) applyUserProfile(evt *protocol.UserProfileEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userProfiles[evt.Profile.UserID] = evt.Profile
}

func (s *Store) applyNotificationSettings(evt *protocol.NotificationSettingsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationSettings[evt.Settings.ServerID] = evt.Settings
}
