package store

import (
	"time"

	"github.com/ngutten/concord/protocol"
)

const typingExpiry = 8 * time.Second

func (s *Store) applyPresenceUpdate(evt *protocol.PresenceUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.presences[evt.ServerID]
	if !ok {
		m = make(map[string]protocol.Presence)
		s.presences[evt.ServerID] = m
	}
	m[evt.UserID] = evt.Presence
}

func (s *Store) applyPresenceList(evt *protocol.PresenceListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presences[evt.ServerID] = evt.Presences
}

func (s *Store) applyServerList(evt *protocol.ServerListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servers = evt.Servers
}

func (s *Store) applyUnreadCounts(evt *protocol.UnreadCountsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for channel, count := range evt.Counts {
		key := ChannelKey(evt.ServerID, channel)
		if count <= 0 {
			delete(s.unreadCounts, key)
			continue
		}
		s.unreadCounts[key] = count
	}
}

// applyTypingStart implements §4.3/§5/§9's typing indicator contract: the
// client's own nickname is dropped, other nicknames are added with
// set semantics, and a per-(key, nickname) timer resets on every fresh
// event for that pair rather than risk removing a just-refreshed entry.
func (s *Store) applyTypingStart(evt *protocol.TypingStartEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	if evt.Nickname == s.nickname {
		s.mu.Unlock()
		return
	}

	users := s.typingUsers[key]
	if !containsString(users, evt.Nickname) {
		s.typingUsers[key] = append(users, evt.Nickname)
	}

	timerKey := key + "\x00" + evt.Nickname
	var epoch uint64
	if existing, ok := s.typingTimers[timerKey]; ok {
		existing.timer.Stop()
		epoch = existing.epoch + 1
	}
	tt := &typingTimer{epoch: epoch}
	s.typingTimers[timerKey] = tt
	tt.timer = time.AfterFunc(typingExpiry, func() {
		s.expireTyping(key, evt.Nickname, timerKey, epoch)
	})
	s.mu.Unlock()
}

func (s *Store) expireTyping(key, nickname, timerKey string, epoch uint64) {
	s.mu.Lock()
	current, ok := s.typingTimers[timerKey]
	if !ok || current.epoch != epoch {
		s.mu.Unlock()
		return
	}
	delete(s.typingTimers, timerKey)
	s.typingUsers[key] = removeString(s.typingUsers[key], nickname)
	s.mu.Unlock()

	s.notify()
}

// Disconnect resets all server-derived state to its empty sentinels while
// preserving UI intent state, which lives outside this package (§4.1,
// §7, §8 scenario S6). It does not touch s.nickname: the last-used
// identity is still meaningful for display purposes while disconnected.
func (s *Store) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tt := range s.typingTimers {
		tt.timer.Stop()
	}

	s.connected = false
	s.servers = nil
	s.channels = make(map[string][]protocol.Channel)
	s.categories = make(map[string][]protocol.Category)
	s.roles = make(map[string][]protocol.Role)
	s.messages = make(map[string][]protocol.Message)
	s.hasMore = make(map[string]bool)
	s.members = make(map[string][]protocol.Member)
	s.unreadCounts = make(map[string]int)
	s.typingUsers = make(map[string][]string)
	s.typingTimers = make(map[string]*typingTimer)
	s.presences = make(map[string]map[string]protocol.Presence)
	s.customEmoji = make(map[string]map[string]string)
	s.pinnedMessages = make(map[string][]protocol.PinnedMessage)
	s.threads = make(map[string][]protocol.Thread)
	s.forumTags = make(map[string][]protocol.ForumTag)
	s.bans = make(map[string][]protocol.Ban)
	s.auditLog = make(map[string][]protocol.AuditEntry)
	s.auditLogHasMore = make(map[string]bool)
	s.automodRules = make(map[string][]protocol.AutomodRule)
	s.invites = make(map[string][]protocol.Invite)
	s.serverEvents = make(map[string][]protocol.ScheduledEvent)
	s.eventRSVPs = make(map[string][]protocol.RSVP)
	s.communitySettings = make(map[string]protocol.CommunitySettings)
	s.templates = make(map[string][]protocol.Template)
	s.channelFollows = make(map[string][]protocol.ChannelFollow)
	s.notificationSettings = make(map[string]protocol.NotificationSettings)
	s.userProfiles = make(map[string]protocol.UserProfile)
	s.avatars = make(map[string]string)
	s.bookmarks = nil
	s.discoverableServers = nil
	s.search = SearchState{}
	s.replyingTo = nil
}

// SetConnected flips the connected flag and, on a fresh connect, records
// the identity used (§4.1 connect contract).
func (s *Store) SetConnected(connected bool, nickname string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
	if connected && nickname != "" {
		s.nickname = nickname
	}
}
