package store

import "github.com/ngutten/concord/protocol"

// Connected reports whether the Transport currently holds an open socket.
func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Nickname returns the identity used on the current (or most recent) connect.
func (s *Store) Nickname() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nickname
}

// Servers returns the viewer's joined servers.
func (s *Store) Servers() []protocol.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.servers
}

func (s *Store) Channels(serverID string) []protocol.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.channels[serverID]; ok {
		return v
	}
	return emptyChannels
}

func (s *Store) Categories(serverID string) []protocol.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.categories[serverID]; ok {
		return v
	}
	return emptyCategories
}

func (s *Store) Roles(serverID string) []protocol.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.roles[serverID]; ok {
		return v
	}
	return emptyRoles
}

func (s *Store) Messages(channelKey string) []protocol.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.messages[channelKey]; ok {
		return v
	}
	return emptyMessages
}

func (s *Store) HasMore(channelKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasMore[channelKey]
}

func (s *Store) Members(channelKey string) []protocol.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.members[channelKey]; ok {
		return v
	}
	return emptyMembers
}

// UnreadCount returns 0 for an absent key by construction (§3 invariant 4).
func (s *Store) UnreadCount(channelKey string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadCounts[channelKey]
}

func (s *Store) TypingUsers(channelKey string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.typingUsers[channelKey]; ok {
		return v
	}
	return emptyStrings
}

func (s *Store) Presences(serverID string) map[string]protocol.Presence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.presences[serverID]; ok {
		return v
	}
	return emptyPresences
}

func (s *Store) CustomEmoji(serverID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.customEmoji[serverID]; ok {
		return v
	}
	return emptyEmoji
}

func (s *Store) PinnedMessages(channelKey string) []protocol.PinnedMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.pinnedMessages[channelKey]; ok {
		return v
	}
	return emptyPins
}

func (s *Store) Threads(parentChannelKey string) []protocol.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.threads[parentChannelKey]; ok {
		return v
	}
	return emptyThreads
}

func (s *Store) ForumTags(channelKey string) []protocol.ForumTag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.forumTags[channelKey]; ok {
		return v
	}
	return emptyForumTags
}

func (s *Store) Bans(serverID string) []protocol.Ban {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.bans[serverID]; ok {
		return v
	}
	return emptyBans
}

func (s *Store) AuditLog(serverID string) []protocol.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.auditLog[serverID]; ok {
		return v
	}
	return emptyAuditLog
}

func (s *Store) AuditLogHasMore(serverID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auditLogHasMore[serverID]
}

func (s *Store) AutomodRules(serverID string) []protocol.AutomodRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.automodRules[serverID]; ok {
		return v
	}
	return emptyAutomodRules
}

func (s *Store) Invites(serverID string) []protocol.Invite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.invites[serverID]; ok {
		return v
	}
	return emptyInvites
}

func (s *Store) ServerEvents(serverID string) []protocol.ScheduledEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.serverEvents[serverID]; ok {
		return v
	}
	return emptyServerEvents
}

func (s *Store) EventRSVPs(eventID string) []protocol.RSVP {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.eventRSVPs[eventID]; ok {
		return v
	}
	return emptyRSVPs
}

func (s *Store) CommunitySettings(serverID string) (protocol.CommunitySettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.communitySettings[serverID]
	return v, ok
}

func (s *Store) Templates(serverID string) []protocol.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.templates[serverID]; ok {
		return v
	}
	return emptyTemplates
}

func (s *Store) ChannelFollows(channelID string) []protocol.ChannelFollow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.channelFollows[channelID]; ok {
		return v
	}
	return emptyChannelFollows
}

func (s *Store) NotificationSettings(serverID string) (protocol.NotificationSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.notificationSettings[serverID]
	return v, ok
}

func (s *Store) UserProfile(userID string) (protocol.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.userProfiles[userID]
	return v, ok
}

func (s *Store) Avatar(nickname string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.avatars[nickname]
}

func (s *Store) Bookmarks() []protocol.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bookmarks == nil {
		return emptyBookmarks
	}
	return s.bookmarks
}

func (s *Store) DiscoverableServers() []protocol.CommunitySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.discoverableServers == nil {
		return emptyDiscoverable
	}
	return s.discoverableServers
}

func (s *Store) Search() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *Store) ReplyingTo() *protocol.ReplyInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replyingTo
}
