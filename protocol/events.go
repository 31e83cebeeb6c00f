package protocol

// Event is implemented by every server-to-client event payload (§6.3).
// The Event Dispatcher decodes a raw frame into one of these and hands it
// to the Store; an unrecognized "type" never produces an Event - see
// DecodeEvent.
type Event interface {
	eventMarker()
}

type eventBase struct{}

func (eventBase) eventMarker() {}

// Event type discriminators, enumerated exactly as §6.3 lists them. Several
// commands never get a dedicated per-item event; the server instead
// resends the owning list (server_list, channel_list, names, role_list,
// category_list, ...) and the reducer replaces the whole collection.
const (
	// Session
	EvtServerList = "server_list"
	EvtError      = "error"

	// Messages
	EvtMessage           = "message"
	EvtMessageEdit       = "message_edit"
	EvtMessageDelete     = "message_delete"
	EvtMessageEmbed      = "message_embed"
	EvtBulkMessageDelete = "bulk_message_delete"
	EvtHistory           = "history"

	// Reactions & typing
	EvtReactionAdd    = "reaction_add"
	EvtReactionRemove = "reaction_remove"
	EvtTypingStart    = "typing_start"

	// Membership & identity
	EvtJoin       = "join"
	EvtPart       = "part"
	EvtQuit       = "quit"
	EvtNames      = "names"
	EvtNickChange = "nick_change"

	// Channel structure
	EvtTopic            = "topic"
	EvtTopicChange      = "topic_change"
	EvtChannelList      = "channel_list"
	EvtChannelReorder   = "channel_reorder"
	EvtSlowModeUpdate   = "slow_mode_update"
	EvtNSFWUpdate       = "nsfw_update"
	EvtUnreadCounts     = "unread_counts"
	EvtServerNotice     = "server_notice"

	// Roles & categories & membership actions
	EvtRoleList             = "role_list"
	EvtRoleUpdate           = "role_update"
	EvtRoleDelete           = "role_delete"
	EvtMemberRoleUpdate     = "member_role_update"
	EvtCategoryList         = "category_list"
	EvtCategoryUpdate       = "category_update"
	EvtCategoryDelete       = "category_delete"
	EvtMemberKick           = "member_kick"
	EvtMemberBan            = "member_ban"
	EvtMemberUnban          = "member_unban"
	EvtMemberTimeout        = "member_timeout"
	EvtServerNicknameUpdate = "server_nickname_update"

	// Presence & profile
	EvtPresenceUpdate      = "presence_update"
	EvtPresenceList        = "presence_list"
	EvtUserProfile         = "user_profile"
	EvtNotificationSettings = "notification_settings"

	// Search
	EvtSearchResults = "search_results"

	// Pins & threads & forum tags
	EvtMessagePin      = "message_pin"
	EvtMessageUnpin    = "message_unpin"
	EvtPinnedMessages  = "pinned_messages"
	EvtThreadCreate    = "thread_create"
	EvtThreadUpdate    = "thread_update"
	EvtThreadList      = "thread_list"
	EvtForumTagList    = "forum_tag_list"
	EvtForumTagUpdate  = "forum_tag_update"
	EvtForumTagDelete  = "forum_tag_delete"

	// Bookmarks
	EvtBookmarkList   = "bookmark_list"
	EvtBookmarkAdd    = "bookmark_add"
	EvtBookmarkRemove = "bookmark_remove"

	// Moderation
	EvtAuditLogEntries   = "audit_log_entries"
	EvtBanList           = "ban_list"
	EvtAutomodRuleList   = "automod_rule_list"
	EvtAutomodRuleUpdate = "automod_rule_update"
	EvtAutomodRuleDelete = "automod_rule_delete"

	// Community
	EvtInviteList         = "invite_list"
	EvtInviteCreate       = "invite_create"
	EvtInviteDelete       = "invite_delete"
	EvtEventList          = "event_list"
	EvtEventUpdate        = "event_update"
	EvtEventDelete        = "event_delete"
	EvtEventRSVPList      = "event_rsvp_list"
	EvtServerCommunity    = "server_community"
	EvtDiscoverServers    = "discover_servers"
	EvtChannelFollowList  = "channel_follow_list"
	EvtChannelFollowCreate = "channel_follow_create"
	EvtChannelFollowDelete = "channel_follow_delete"
	EvtTemplateList       = "template_list"
	EvtTemplateUpdate     = "template_update"
	EvtTemplateDelete     = "template_delete"
)

// --- Session ---

type ServerListEvent struct {
	eventBase
	Type    string   `json:"type"`
	Servers []Server `json:"servers"`
}

type ErrorEvent struct {
	eventBase
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// --- Messages ---

// MessageEvent is flat on the wire ("target" for the channel name, "from"
// for the author) rather than nesting a Message object (§8 scenario S2).
type MessageEvent struct {
	eventBase
	Type          string     `json:"type"`
	ServerID      string     `json:"server_id"`
	Target        string     `json:"target"`
	From          string     `json:"from"`
	ID            string     `json:"id"`
	Content       string     `json:"content"`
	Timestamp     string     `json:"timestamp"`
	AvatarURL     string     `json:"avatar_url,omitempty"`
	ReplyTo       *ReplyInfo `json:"reply_to,omitempty"`
	AttachmentIDs []string   `json:"attachment_ids,omitempty"`
	Embeds        []Embed    `json:"embeds,omitempty"`
}

type MessageEditEvent struct {
	eventBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
	EditedAt  string `json:"edited_at"`
}

type MessageDeleteEvent struct {
	eventBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

type MessageEmbedEvent struct {
	eventBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
	Embeds    []Embed `json:"embeds"`
}

type BulkMessageDeleteEvent struct {
	eventBase
	Type       string   `json:"type"`
	ServerID   string   `json:"server_id"`
	Channel    string   `json:"channel"`
	MessageIDs []string `json:"message_ids"`
}

// HistoryEvent carries messages in descending time order, newest first;
// the reducer reverses them before prepending (§4.3).
type HistoryEvent struct {
	eventBase
	Type     string    `json:"type"`
	ServerID string    `json:"server_id"`
	Channel  string    `json:"channel"`
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"has_more"`
}

// --- Reactions & typing ---

type ReactionAddEvent struct {
	eventBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
	UserID    string `json:"user_id"`
}

type ReactionRemoveEvent struct {
	eventBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
	UserID    string `json:"user_id"`
}

type TypingStartEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Nickname string `json:"nickname"`
}

// --- Membership & identity ---

type JoinEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Member   Member `json:"member"`
}

type PartEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Nickname string `json:"nickname"`
}

type QuitEvent struct {
	eventBase
	Type     string `json:"type"`
	Nickname string `json:"nickname"`
	Reason   string `json:"reason,omitempty"`
}

type NamesEvent struct {
	eventBase
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Channel  string   `json:"channel"`
	Members  []Member `json:"members"`
}

// NickChangeEvent is a global identity nickname change, distinct from
// server_nickname_update's per-server nickname override.
type NickChangeEvent struct {
	eventBase
	Type        string `json:"type"`
	OldNickname string `json:"old_nickname"`
	NewNickname string `json:"new_nickname"`
}

// --- Channel structure ---

type TopicEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Topic    string `json:"topic"`
}

type TopicChangeEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Topic    string `json:"topic"`
}

type ChannelListEvent struct {
	eventBase
	Type     string    `json:"type"`
	ServerID string    `json:"server_id"`
	Channels []Channel `json:"channels"`
}

type ChannelReorderEvent struct {
	eventBase
	Type     string            `json:"type"`
	ServerID string            `json:"server_id"`
	Channels []ChannelPosition `json:"channels"`
}

type SlowModeUpdateEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Seconds  int    `json:"seconds"`
}

type NSFWUpdateEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	IsNSFW   bool   `json:"is_nsfw"`
}

type UnreadCountsEvent struct {
	eventBase
	Type     string         `json:"type"`
	ServerID string         `json:"server_id"`
	Counts   map[string]int `json:"counts"`
}

type ServerNoticeEvent struct {
	eventBase
	Type    string `json:"type"`
	Level   string `json:"level,omitempty"`
	Message string `json:"message"`
}

// --- Roles, categories & membership actions ---

type RoleListEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Roles    []Role `json:"roles"`
}

// RoleUpdateEvent both creates and updates: the reducer upserts by id.
type RoleUpdateEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Role     Role   `json:"role"`
}

type RoleDeleteEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RoleID   string `json:"role_id"`
}

type MemberRoleUpdateEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}

type CategoryListEvent struct {
	eventBase
	Type       string     `json:"type"`
	ServerID   string     `json:"server_id"`
	Categories []Category `json:"categories"`
}

type CategoryUpdateEvent struct {
	eventBase
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Category Category `json:"category"`
}

type CategoryDeleteEvent struct {
	eventBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	CategoryID string `json:"category_id"`
}

type MemberKickEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	Reason   string `json:"reason,omitempty"`
}

type MemberBanEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Ban      Ban    `json:"ban"`
}

type MemberUnbanEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
}

type MemberTimeoutEvent struct {
	eventBase
	Type         string `json:"type"`
	ServerID     string `json:"server_id"`
	UserID       string `json:"user_id"`
	TimeoutUntil string `json:"timeout_until,omitempty"`
}

type ServerNicknameUpdateEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname,omitempty"`
}

// --- Presence & profile ---

type PresenceUpdateEvent struct {
	eventBase
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	UserID   string   `json:"user_id"`
	Presence Presence `json:"presence"`
}

type PresenceListEvent struct {
	eventBase
	Type      string              `json:"type"`
	ServerID  string              `json:"server_id"`
	Presences map[string]Presence `json:"presences"`
}

type UserProfileEvent struct {
	eventBase
	Type    string      `json:"type"`
	Profile UserProfile `json:"profile"`
}

type NotificationSettingsEvent struct {
	eventBase
	Type     string               `json:"type"`
	Settings NotificationSettings `json:"settings"`
}

// --- Search ---

type SearchResultsEvent struct {
	eventBase
	Type     string    `json:"type"`
	ServerID string    `json:"server_id"`
	Query    string    `json:"query"`
	Messages []Message `json:"messages"`
	Total    int       `json:"total_count"`
}

// --- Pins, threads & forum tags ---

type MessagePinEvent struct {
	eventBase
	Type     string        `json:"type"`
	ServerID string        `json:"server_id"`
	Channel  string        `json:"channel"`
	Pin      PinnedMessage `json:"pin"`
}

type MessageUnpinEvent struct {
	eventBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

type PinnedMessagesEvent struct {
	eventBase
	Type     string          `json:"type"`
	ServerID string          `json:"server_id"`
	Channel  string          `json:"channel"`
	Pins     []PinnedMessage `json:"pins"`
}

type ThreadCreateEvent struct {
	eventBase
	Type   string `json:"type"`
	Thread Thread `json:"thread"`
}

type ThreadUpdateEvent struct {
	eventBase
	Type   string `json:"type"`
	Thread Thread `json:"thread"`
}

type ThreadListEvent struct {
	eventBase
	Type          string   `json:"type"`
	ServerID      string   `json:"server_id"`
	ParentChannel string   `json:"parent_channel"`
	Threads       []Thread `json:"threads"`
}

type ForumTagListEvent struct {
	eventBase
	Type     string     `json:"type"`
	ServerID string     `json:"server_id"`
	Channel  string     `json:"channel"`
	Tags     []ForumTag `json:"tags"`
}

type ForumTagUpdateEvent struct {
	eventBase
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Channel  string   `json:"channel"`
	Tag      ForumTag `json:"tag"`
}

type ForumTagDeleteEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	TagID    string `json:"tag_id"`
}

// --- Bookmarks ---

type BookmarkListEvent struct {
	eventBase
	Type      string     `json:"type"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

type BookmarkAddEvent struct {
	eventBase
	Type     string   `json:"type"`
	Bookmark Bookmark `json:"bookmark"`
}

type BookmarkRemoveEvent struct {
	eventBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
}

// --- Moderation ---

type AuditLogEntriesEvent struct {
	eventBase
	Type     string       `json:"type"`
	ServerID string       `json:"server_id"`
	Entries  []AuditEntry `json:"entries"`
	HasMore  bool         `json:"has_more"`
}

type BanListEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Bans     []Ban  `json:"bans"`
}

type AutomodRuleListEvent struct {
	eventBase
	Type     string        `json:"type"`
	ServerID string        `json:"server_id"`
	Rules    []AutomodRule `json:"rules"`
}

type AutomodRuleUpdateEvent struct {
	eventBase
	Type     string      `json:"type"`
	ServerID string      `json:"server_id"`
	Rule     AutomodRule `json:"rule"`
}

type AutomodRuleDeleteEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RuleID   string `json:"rule_id"`
}

// --- Community ---

type InviteListEvent struct {
	eventBase
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Invites  []Invite `json:"invites"`
}

type InviteCreateEvent struct {
	eventBase
	Type   string `json:"type"`
	Invite Invite `json:"invite"`
}

type InviteDeleteEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Code     string `json:"code"`
}

type EventListEvent struct {
	eventBase
	Type     string           `json:"type"`
	ServerID string           `json:"server_id"`
	Events   []ScheduledEvent `json:"events"`
}

type EventUpdateEvent struct {
	eventBase
	Type  string         `json:"type"`
	Event ScheduledEvent `json:"event"`
}

type EventDeleteEvent struct {
	eventBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
}

type EventRSVPListEvent struct {
	eventBase
	Type    string `json:"type"`
	EventID string `json:"event_id"`
	RSVPs   []RSVP `json:"rsvps"`
}

type ServerCommunityEvent struct {
	eventBase
	Type     string            `json:"type"`
	Settings CommunitySettings `json:"settings"`
}

type DiscoverServersEvent struct {
	eventBase
	Type    string              `json:"type"`
	Servers []CommunitySettings `json:"servers"`
}

type ChannelFollowListEvent struct {
	eventBase
	Type      string          `json:"type"`
	ChannelID string          `json:"channel_id"`
	Follows   []ChannelFollow `json:"follows"`
}

type ChannelFollowCreateEvent struct {
	eventBase
	Type   string        `json:"type"`
	Follow ChannelFollow `json:"follow"`
}

type ChannelFollowDeleteEvent struct {
	eventBase
	Type            string `json:"type"`
	ServerID        string `json:"server_id"`
	ChannelID       string `json:"channel_id"`
	TargetChannelID string `json:"target_channel_id"`
}

type TemplateListEvent struct {
	eventBase
	Type      string     `json:"type"`
	ServerID  string     `json:"server_id"`
	Templates []Template `json:"templates"`
}

type TemplateUpdateEvent struct {
	eventBase
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Template Template `json:"template"`
}

type TemplateDeleteEvent struct {
	eventBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	TemplateID string `json:"template_id"`
}
