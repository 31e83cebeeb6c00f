// Package protocol defines Concord's wire format: the client-to-server
// command catalog, the server-to-client event catalog, and the shared
// entity shapes they carry (§6 of the specification). Every frame -
// inbound or outbound - is a single JSON object discriminated by a "type"
// field (§6.1); unknown discriminators must be ignored by callers rather
// than treated as a decode error (§6.3, §9).
package protocol

// Reaction is a reaction group attached to a Message. Invariant: a group
// with Count == 0 must not exist (§3 invariant 1) - reducers are
// responsible for dropping it, not this type.
type Reaction struct {
	Emoji   string   `json:"emoji"`
	Count   int      `json:"count"`
	UserIDs []string `json:"user_ids"`
}

// Attachment describes a previously uploaded file (§6.4 POST /uploads
// returns an AttachmentInfo which a message references by ID).
type Attachment struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// Embed is a rich preview attached to a message (link unfurl, image, etc).
type Embed struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url,omitempty"`
	Color        int    `json:"color,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ReplyInfo is the denormalized reply preview carried on a Message
// (§3: "id, author, content_preview (first 100 chars of target message)").
type ReplyInfo struct {
	ID             string `json:"id"`
	Author         string `json:"author"`
	ContentPreview string `json:"content_preview"`
}

// Message is the canonical chat message shape stored in messages[channelKey].
type Message struct {
	ID          string       `json:"id"`
	Author      string       `json:"author"`
	Content     string       `json:"content"`
	Timestamp   string       `json:"timestamp"`
	EditedAt    string       `json:"edited_at,omitempty"`
	ReplyTo     *ReplyInfo   `json:"reply_to,omitempty"`
	Reactions   []Reaction   `json:"reactions"`
	Attachments []Attachment `json:"attachments"`
	Embeds      []Embed      `json:"embeds"`
}

// Channel is a server channel (§3).
type Channel struct {
	ID                    string `json:"id"`
	ServerID              string `json:"server_id"`
	Name                  string `json:"name"`
	Topic                 string `json:"topic"`
	CategoryID            string `json:"category_id,omitempty"`
	Position              int    `json:"position"`
	IsPrivate             bool   `json:"is_private"`
	ChannelType           string `json:"channel_type"`
	ThreadParentMessageID string `json:"thread_parent_message_id,omitempty"`
	Archived              bool   `json:"archived"`
	SlowmodeSeconds       int    `json:"slowmode_seconds"`
	IsNSFW                bool   `json:"is_nsfw"`
	IsAnnouncement        bool   `json:"is_announcement"`
}

// Channel type constants (§GLOSSARY).
const (
	ChannelTypeText            = "text"
	ChannelTypeVoice           = "voice"
	ChannelTypePublicThread    = "public_thread"
	ChannelTypePrivateThread   = "private_thread"
	ChannelTypeForum           = "forum"
	ChannelTypeAnnouncement    = "announcement"
)

// Category groups channels within a server.
type Category struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Role carries a 64-bit-or-wider permission bitfield. ADMINISTATOR
// short-circuits to grant every permission (§GLOSSARY).
type Role struct {
	ID          string `json:"id"`
	ServerID    string `json:"server_id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Position    int    `json:"position"`
	Permissions uint64 `json:"permissions"`
	IsDefault   bool   `json:"is_default"`
}

const PermissionAdministrator uint64 = 1 << 63

// HasPermission reports whether perms grants flag, honoring the
// ADMINISTRATOR short-circuit.
func HasPermission(perms uint64, flag uint64) bool {
	if perms&PermissionAdministrator != 0 {
		return true
	}
	return perms&flag != 0
}

// Member is a channel-scoped view of a user (§3).
type Member struct {
	Nickname     string `json:"nickname"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Status       string `json:"status,omitempty"`
	CustomStatus string `json:"custom_status,omitempty"`
	StatusEmoji  string `json:"status_emoji,omitempty"`
}

// Server is a top-level community the viewer belongs to.
type Server struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	MemberCount int    `json:"member_count"`
	ViewerRole  string `json:"viewer_role,omitempty"`
}

// Presence is a per-(server,user) online status.
type Presence struct {
	Status       string `json:"status"`
	CustomStatus string `json:"custom_status,omitempty"`
	StatusEmoji  string `json:"status_emoji,omitempty"`
}

// Presence status constants.
const (
	PresenceOnline    = "online"
	PresenceIdle      = "idle"
	PresenceDND       = "dnd"
	PresenceInvisible = "invisible"
	PresenceOffline   = "offline"
)

// UserProfile is the full profile surfaced by get_user_profile.
type UserProfile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Pronouns  string `json:"pronouns,omitempty"`
	Banner    string `json:"banner,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PinnedMessage records a pin on a channel.
type PinnedMessage struct {
	MessageID string `json:"message_id"`
	PinnedBy  string `json:"pinned_by,omitempty"`
	PinnedAt  string `json:"pinned_at,omitempty"`
}

// Bookmark is a saved message with an optional private note.
type Bookmark struct {
	MessageID string `json:"message_id"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Thread is a sub-conversation rooted at a parent channel/message.
type Thread struct {
	ID              string `json:"id"`
	ServerID        string `json:"server_id"`
	ParentChannel   string `json:"parent_channel"`
	Name            string `json:"name"`
	ParentMessageID string `json:"message_id,omitempty"`
	IsPrivate       bool   `json:"is_private"`
	Archived        bool   `json:"archived"`
}

// ForumTag is a selectable label on a forum channel's posts.
type ForumTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// Ban records a server ban.
type Ban struct {
	UserID            string `json:"user_id"`
	Reason            string `json:"reason,omitempty"`
	DeleteMessageDays int    `json:"delete_message_days,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
}

// AuditEntry is one moderation-log row.
type AuditEntry struct {
	ID         string `json:"id"`
	ActionType string `json:"action_type"`
	ActorID    string `json:"actor_id"`
	TargetID   string `json:"target_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// AutomodRule is a server-configured content filter.
type AutomodRule struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	TriggerType string   `json:"trigger_type"`
	Keywords    []string `json:"keywords,omitempty"`
	Action      string   `json:"action"`
	Enabled     bool     `json:"enabled"`
}

// Invite is a redeemable server invite.
type Invite struct {
	Code      string `json:"code"`
	ServerID  string `json:"server_id"`
	ChannelID string `json:"channel_id,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
	MaxUses   int    `json:"max_uses,omitempty"`
	Uses      int    `json:"uses"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// ScheduledEvent is a community calendar event.
type ScheduledEvent struct {
	ID          string `json:"id"`
	ServerID    string `json:"server_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ChannelID   string `json:"channel_id,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	Status      string `json:"status"`
}

// RSVP is one user's response to a ScheduledEvent.
type RSVP struct {
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}

// CommunitySettings is a server's public community profile, also used as
// the discoverable listing shape.
type CommunitySettings struct {
	ServerID     string `json:"server_id"`
	Description  string `json:"description,omitempty"`
	RulesText    string `json:"rules_text,omitempty"`
	Discoverable bool   `json:"discoverable"`
	Category     string `json:"category,omitempty"`
}

// Template is a saved server layout blueprint.
type Template struct {
	ID          string `json:"id"`
	ServerID    string `json:"server_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// NotificationSettings is per-server notification configuration.
type NotificationSettings struct {
	ServerID         string `json:"server_id"`
	Level            string `json:"level"`
	SuppressEveryone bool   `json:"suppress_everyone,omitempty"`
	SuppressRoles    bool   `json:"suppress_roles,omitempty"`
	Muted            bool   `json:"muted,omitempty"`
	MuteUntil        string `json:"mute_until,omitempty"`
}

// ChannelFollow mirrors an announcement channel's posts into another
// channel (follow_channel/unfollow_channel).
type ChannelFollow struct {
	ChannelID       string `json:"channel_id"`
	TargetChannelID string `json:"target_channel_id"`
	ServerID        string `json:"server_id,omitempty"`
}

// AttachmentInfo is what the REST upload endpoint returns (§6.4).
type AttachmentInfo struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
}

// PublicUserProfile is what GET /users/{nickname} returns (§6.4).
type PublicUserProfile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Pronouns  string `json:"pronouns,omitempty"`
	Banner    string `json:"banner,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// EmojiInfo is one entry of GET /servers/{id}/emoji (§6.4).
type EmojiInfo struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ChannelPosition is one element of reorder_channels' channels list.
type ChannelPosition struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id,omitempty"`
	Position   int    `json:"position"`
}
