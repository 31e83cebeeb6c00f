// Package store holds Concord's normalized client-side cache: the single
// mutation point for everything the Event Dispatcher learns from the
// server. It is guarded by one RWMutex rather than goroutine-per-request,
// mirroring the single-threaded cooperative reducer model the source
// describes - Apply is expected to be called from one goroutine (the
// engine's dispatch loop) while any number of reader goroutines call the
// selector methods concurrently.
package store

import (
	"sync"
	"time"

	"github.com/ngutten/concord/protocol"
)

// SearchState is the transient result of the last search_messages command.
type SearchState struct {
	Query      string
	Results    []protocol.Message
	TotalCount int
}

// Empty sentinels. Every selector that would otherwise return a nil map
// value returns one of these instead, so repeated reads of a missing key
// return the exact same backing value (§3 invariant 6, §4.6, §8 property 7).
var (
	emptyChannels       = []protocol.Channel{}
	emptyCategories     = []protocol.Category{}
	emptyRoles          = []protocol.Role{}
	emptyMessages       = []protocol.Message{}
	emptyMembers        = []protocol.Member{}
	emptyStrings        = []string{}
	emptyPresences      = map[string]protocol.Presence{}
	emptyEmoji          = map[string]string{}
	emptyPins           = []protocol.PinnedMessage{}
	emptyThreads        = []protocol.Thread{}
	emptyForumTags      = []protocol.ForumTag{}
	emptyBans           = []protocol.Ban{}
	emptyAuditLog       = []protocol.AuditEntry{}
	emptyAutomodRules   = []protocol.AutomodRule{}
	emptyInvites        = []protocol.Invite{}
	emptyServerEvents   = []protocol.ScheduledEvent{}
	emptyTemplates      = []protocol.Template{}
	emptyBookmarks      = []protocol.Bookmark{}
	emptyDiscoverable   = []protocol.CommunitySettings{}
	emptyRSVPs          = []protocol.RSVP{}
	emptyChannelFollows = []protocol.ChannelFollow{}
)

// typingTimer is a per-(channelKey, nickname) cancellation token: a fresh
// typing_start for the same pair resets the 8-second expiry instead of
// letting a stale timer remove a just-refreshed entry (§5 "Cancellation",
// §9 "Timer ownership" - the stricter of the two acceptable behaviors).
type typingTimer struct {
	timer *time.Timer
	epoch uint64
}

// Store is the CSE's single normalized cache. Zero value is not usable;
// construct with NewStore.
type Store struct {
	mu sync.RWMutex

	connected bool
	nickname  string
	servers   []protocol.Server

	channels   map[string][]protocol.Channel
	categories map[string][]protocol.Category
	roles      map[string][]protocol.Role

	messages map[string][]protocol.Message
	hasMore  map[string]bool

	members      map[string][]protocol.Member
	unreadCounts map[string]int
	typingUsers  map[string][]string
	typingTimers map[string]*typingTimer

	presences   map[string]map[string]protocol.Presence
	customEmoji map[string]map[string]string

	pinnedMessages map[string][]protocol.PinnedMessage
	threads        map[string][]protocol.Thread
	forumTags      map[string][]protocol.ForumTag

	bans               map[string][]protocol.Ban
	auditLog           map[string][]protocol.AuditEntry
	auditLogHasMore    map[string]bool
	automodRules       map[string][]protocol.AutomodRule
	invites            map[string][]protocol.Invite
	serverEvents       map[string][]protocol.ScheduledEvent
	eventRSVPs         map[string][]protocol.RSVP
	communitySettings  map[string]protocol.CommunitySettings
	templates          map[string][]protocol.Template
	channelFollows     map[string][]protocol.ChannelFollow
	notificationSettings map[string]protocol.NotificationSettings

	userProfiles map[string]protocol.UserProfile
	avatars      map[string]string

	bookmarks           []protocol.Bookmark
	discoverableServers []protocol.CommunitySettings
	search              SearchState
	replyingTo          *protocol.ReplyInfo

	watchers      map[int]chan struct{}
	nextWatcherID int
}

// NewStore returns an empty, connected=false store ready for use.
func NewStore() *Store {
	return &Store{
		channels:          make(map[string][]protocol.Channel),
		categories:        make(map[string][]protocol.Category),
		roles:             make(map[string][]protocol.Role),
		messages:          make(map[string][]protocol.Message),
		hasMore:           make(map[string]bool),
		members:           make(map[string][]protocol.Member),
		unreadCounts:      make(map[string]int),
		typingUsers:       make(map[string][]string),
		typingTimers:      make(map[string]*typingTimer),
		presences:         make(map[string]map[string]protocol.Presence),
		customEmoji:       make(map[string]map[string]string),
		pinnedMessages:    make(map[string][]protocol.PinnedMessage),
		threads:           make(map[string][]protocol.Thread),
		forumTags:         make(map[string][]protocol.ForumTag),
		bans:              make(map[string][]protocol.Ban),
		auditLog:          make(map[string][]protocol.AuditEntry),
		auditLogHasMore:   make(map[string]bool),
		automodRules:      make(map[string][]protocol.AutomodRule),
		invites:           make(map[string][]protocol.Invite),
		serverEvents:      make(map[string][]protocol.ScheduledEvent),
		eventRSVPs:        make(map[string][]protocol.RSVP),
		communitySettings: make(map[string]protocol.CommunitySettings),
		templates:         make(map[string][]protocol.Template),
		channelFollows:    make(map[string][]protocol.ChannelFollow),
		notificationSettings: make(map[string]protocol.NotificationSettings),
		userProfiles:      make(map[string]protocol.UserProfile),
		avatars:           make(map[string]string),
		watchers:          make(map[int]chan struct{}),
	}
}

// Subscribe registers a watcher that receives a signal after every Apply
// call, whether or not it changed state, and after a typing indicator
// expires. The channel is buffered and lossy by design: a slow
// subscriber misses coalesced notifications rather than blocking the
// dispatch loop (mirrors the teacher's broadcast-with-drop pattern).
func (s *Store) Subscribe() (id int, ch <-chan struct{}, cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	watcherID := s.nextWatcherID
	s.nextWatcherID++
	c := make(chan struct{}, 1)
	s.watchers[watcherID] = c

	cancelFn := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.watchers[watcherID]; ok {
			delete(s.watchers, watcherID)
			close(existing)
		}
	}
	return watcherID, c, cancelFn
}

// notify wakes every subscriber. Callers must hold no lock when calling
// this (it takes its own RLock internally).
func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// cacheAvatar records a nickname's most recently observed non-empty avatar
// url (§3 invariant 5). Caller must hold the write lock.
func (s *Store) cacheAvatar(nickname, url string) {
	if url == "" {
		return
	}
	s.avatars[nickname] = url
}
