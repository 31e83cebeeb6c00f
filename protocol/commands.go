package protocol

// Command is implemented by every client-to-server command payload (§6.2).
// The Command Router never assigns request ids - every command is
// fire-and-forget; results, if any, arrive later as broadcast events.
type Command interface {
	commandMarker()
}

type commandBase struct{}

func (commandBase) commandMarker() {}

// Command type discriminators, grouped exactly as §6.2 groups them.
const (
	// Session
	CmdListServers = "list_servers"

	// Servers
	CmdCreateServer = "create_server"
	CmdJoinServer   = "join_server"
	CmdLeaveServer  = "leave_server"
	CmdDeleteServer = "delete_server"

	// Channels
	CmdListChannels          = "list_channels"
	CmdCreateChannel         = "create_channel"
	CmdDeleteChannel         = "delete_channel"
	CmdSetTopic              = "set_topic"
	CmdJoinChannel           = "join_channel"
	CmdPartChannel           = "part_channel"
	CmdReorderChannels       = "reorder_channels"
	CmdSetSlowMode           = "set_slow_mode"
	CmdSetNSFW               = "set_nsfw"
	CmdSetAnnouncementChannel = "set_announcement_channel"

	// Messages
	CmdSendMessage        = "send_message"
	CmdEditMessage        = "edit_message"
	CmdDeleteMessage      = "delete_message"
	CmdBulkDeleteMessages = "bulk_delete_messages"
	CmdFetchHistory       = "fetch_history"

	// Reactions & typing
	CmdAddReaction    = "add_reaction"
	CmdRemoveReaction = "remove_reaction"
	CmdTyping         = "typing"

	// Members
	CmdGetMembers          = "get_members"
	CmdUpdateMemberRole    = "update_member_role"
	CmdSetServerNickname   = "set_server_nickname"

	// Roles
	CmdListRoles   = "list_roles"
	CmdCreateRole  = "create_role"
	CmdUpdateRole  = "update_role"
	CmdDeleteRole  = "delete_role"
	CmdAssignRole  = "assign_role"
	CmdRemoveRole  = "remove_role"

	// Categories
	CmdListCategories  = "list_categories"
	CmdCreateCategory  = "create_category"
	CmdUpdateCategory  = "update_category"
	CmdDeleteCategory  = "delete_category"

	// Presence & profile
	CmdSetPresence    = "set_presence"
	CmdGetPresences   = "get_presences"
	CmdGetUserProfile = "get_user_profile"

	// Read state
	CmdMarkRead          = "mark_read"
	CmdGetUnreadCounts   = "get_unread_counts"

	// Search & notifications
	CmdSearchMessages             = "search_messages"
	CmdUpdateNotificationSettings = "update_notification_settings"
	CmdGetNotificationSettings    = "get_notification_settings"

	// Pins & threads
	CmdPinMessage         = "pin_message"
	CmdUnpinMessage       = "unpin_message"
	CmdGetPinnedMessages  = "get_pinned_messages"
	CmdCreateThread       = "create_thread"
	CmdArchiveThread      = "archive_thread"
	CmdListThreads        = "list_threads"

	// Bookmarks
	CmdAddBookmark    = "add_bookmark"
	CmdRemoveBookmark = "remove_bookmark"
	CmdListBookmarks  = "list_bookmarks"

	// Moderation
	CmdKickMember         = "kick_member"
	CmdBanMember          = "ban_member"
	CmdUnbanMember        = "unban_member"
	CmdListBans           = "list_bans"
	CmdTimeoutMember      = "timeout_member"
	CmdGetAuditLog        = "get_audit_log"
	CmdCreateAutomodRule  = "create_automod_rule"
	CmdUpdateAutomodRule  = "update_automod_rule"
	CmdDeleteAutomodRule  = "delete_automod_rule"
	CmdListAutomodRules   = "list_automod_rules"

	// Community
	CmdCreateInvite          = "create_invite"
	CmdListInvites           = "list_invites"
	CmdDeleteInvite          = "delete_invite"
	CmdUseInvite             = "use_invite"
	CmdCreateEvent           = "create_event"
	CmdListEvents            = "list_events"
	CmdUpdateEventStatus     = "update_event_status"
	CmdDeleteEvent           = "delete_event"
	CmdSetRSVP               = "set_rsvp"
	CmdRemoveRSVP            = "remove_rsvp"
	CmdListRSVPs             = "list_rsvps"
	CmdUpdateCommunitySettings = "update_community_settings"
	CmdGetCommunitySettings  = "get_community_settings"
	CmdDiscoverServers       = "discover_servers"
	CmdAcceptRules           = "accept_rules"
	CmdFollowChannel         = "follow_channel"
	CmdUnfollowChannel       = "unfollow_channel"
	CmdListChannelFollows    = "list_channel_follows"
	CmdCreateTemplate        = "create_template"
	CmdListTemplates         = "list_templates"
	CmdDeleteTemplate        = "delete_template"
)

// --- Session ---

type ListServersCommand struct {
	commandBase
	Type string `json:"type"`
}

func NewListServers() ListServersCommand { return ListServersCommand{Type: CmdListServers} }

// --- Servers ---

type CreateServerCommand struct {
	commandBase
	Type    string `json:"type"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

func NewCreateServer(name, iconURL string) CreateServerCommand {
	return CreateServerCommand{Type: CmdCreateServer, Name: name, IconURL: iconURL}
}

type JoinServerCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewJoinServer(serverID string) JoinServerCommand {
	return JoinServerCommand{Type: CmdJoinServer, ServerID: serverID}
}

type LeaveServerCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewLeaveServer(serverID string) LeaveServerCommand {
	return LeaveServerCommand{Type: CmdLeaveServer, ServerID: serverID}
}

type DeleteServerCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewDeleteServer(serverID string) DeleteServerCommand {
	return DeleteServerCommand{Type: CmdDeleteServer, ServerID: serverID}
}

// --- Channels ---

type ListChannelsCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListChannels(serverID string) ListChannelsCommand {
	return ListChannelsCommand{Type: CmdListChannels, ServerID: serverID}
}

type CreateChannelCommand struct {
	commandBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id,omitempty"`
	IsPrivate  bool   `json:"is_private,omitempty"`
}

func NewCreateChannel(serverID, name, categoryID string, isPrivate bool) CreateChannelCommand {
	return CreateChannelCommand{Type: CmdCreateChannel, ServerID: serverID, Name: name, CategoryID: categoryID, IsPrivate: isPrivate}
}

type DeleteChannelCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
}

func NewDeleteChannel(serverID, channel string) DeleteChannelCommand {
	return DeleteChannelCommand{Type: CmdDeleteChannel, ServerID: serverID, Channel: channel}
}

type SetTopicCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Topic    string `json:"topic"`
}

func NewSetTopic(serverID, channel, topic string) SetTopicCommand {
	return SetTopicCommand{Type: CmdSetTopic, ServerID: serverID, Channel: channel, Topic: topic}
}

type JoinChannelCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
}

func NewJoinChannel(serverID, channel string) JoinChannelCommand {
	return JoinChannelCommand{Type: CmdJoinChannel, ServerID: serverID, Channel: channel}
}

type PartChannelCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Reason   string `json:"reason,omitempty"`
}

func NewPartChannel(serverID, channel, reason string) PartChannelCommand {
	return PartChannelCommand{Type: CmdPartChannel, ServerID: serverID, Channel: channel, Reason: reason}
}

type ReorderChannelsCommand struct {
	commandBase
	Type     string            `json:"type"`
	ServerID string            `json:"server_id"`
	Channels []ChannelPosition `json:"channels"`
}

func NewReorderChannels(serverID string, channels []ChannelPosition) ReorderChannelsCommand {
	return ReorderChannelsCommand{Type: CmdReorderChannels, ServerID: serverID, Channels: channels}
}

type SetSlowModeCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Seconds  int    `json:"seconds"`
}

func NewSetSlowMode(serverID, channel string, seconds int) SetSlowModeCommand {
	return SetSlowModeCommand{Type: CmdSetSlowMode, ServerID: serverID, Channel: channel, Seconds: seconds}
}

type SetNSFWCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	IsNSFW   bool   `json:"is_nsfw"`
}

func NewSetNSFW(serverID, channel string, isNSFW bool) SetNSFWCommand {
	return SetNSFWCommand{Type: CmdSetNSFW, ServerID: serverID, Channel: channel, IsNSFW: isNSFW}
}

type SetAnnouncementChannelCommand struct {
	commandBase
	Type           string `json:"type"`
	ServerID       string `json:"server_id"`
	Channel        string `json:"channel"`
	IsAnnouncement bool   `json:"is_announcement"`
}

func NewSetAnnouncementChannel(serverID, channel string, isAnnouncement bool) SetAnnouncementChannelCommand {
	return SetAnnouncementChannelCommand{Type: CmdSetAnnouncementChannel, ServerID: serverID, Channel: channel, IsAnnouncement: isAnnouncement}
}

// --- Messages ---

type SendMessageCommand struct {
	commandBase
	Type          string   `json:"type"`
	ServerID      string   `json:"server_id"`
	Channel       string   `json:"channel"`
	Content       string   `json:"content"`
	ReplyTo       string   `json:"reply_to,omitempty"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
}

func NewSendMessage(serverID, channel, content, replyTo string, attachmentIDs []string) SendMessageCommand {
	return SendMessageCommand{Type: CmdSendMessage, ServerID: serverID, Channel: channel, Content: content, ReplyTo: replyTo, AttachmentIDs: attachmentIDs}
}

type EditMessageCommand struct {
	commandBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

func NewEditMessage(messageID, content string) EditMessageCommand {
	return EditMessageCommand{Type: CmdEditMessage, MessageID: messageID, Content: content}
}

type DeleteMessageCommand struct {
	commandBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
}

func NewDeleteMessage(messageID string) DeleteMessageCommand {
	return DeleteMessageCommand{Type: CmdDeleteMessage, MessageID: messageID}
}

type BulkDeleteMessagesCommand struct {
	commandBase
	Type       string   `json:"type"`
	ServerID   string   `json:"server_id"`
	Channel    string   `json:"channel"`
	MessageIDs []string `json:"message_ids"`
}

func NewBulkDeleteMessages(serverID, channel string, messageIDs []string) BulkDeleteMessagesCommand {
	return BulkDeleteMessagesCommand{Type: CmdBulkDeleteMessages, ServerID: serverID, Channel: channel, MessageIDs: messageIDs}
}

type FetchHistoryCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Before   string `json:"before,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

func NewFetchHistory(serverID, channel, before string, limit int) FetchHistoryCommand {
	return FetchHistoryCommand{Type: CmdFetchHistory, ServerID: serverID, Channel: channel, Before: before, Limit: limit}
}

// --- Reactions & typing ---

type AddReactionCommand struct {
	commandBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

func NewAddReaction(messageID, emoji string) AddReactionCommand {
	return AddReactionCommand{Type: CmdAddReaction, MessageID: messageID, Emoji: emoji}
}

type RemoveReactionCommand struct {
	commandBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

func NewRemoveReaction(messageID, emoji string) RemoveReactionCommand {
	return RemoveReactionCommand{Type: CmdRemoveReaction, MessageID: messageID, Emoji: emoji}
}

type TypingCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
}

func NewTyping(serverID, channel string) TypingCommand {
	return TypingCommand{Type: CmdTyping, ServerID: serverID, Channel: channel}
}

// --- Members ---

type GetMembersCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
}

func NewGetMembers(serverID, channel string) GetMembersCommand {
	return GetMembersCommand{Type: CmdGetMembers, ServerID: serverID, Channel: channel}
}

type UpdateMemberRoleCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}

func NewUpdateMemberRole(serverID, userID, role string) UpdateMemberRoleCommand {
	return UpdateMemberRoleCommand{Type: CmdUpdateMemberRole, ServerID: serverID, UserID: userID, Role: role}
}

type SetServerNicknameCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Nickname string `json:"nickname,omitempty"`
}

func NewSetServerNickname(serverID, nickname string) SetServerNicknameCommand {
	return SetServerNicknameCommand{Type: CmdSetServerNickname, ServerID: serverID, Nickname: nickname}
}

// --- Roles ---

type ListRolesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListRoles(serverID string) ListRolesCommand {
	return ListRolesCommand{Type: CmdListRoles, ServerID: serverID}
}

type CreateRoleCommand struct {
	commandBase
	Type        string `json:"type"`
	ServerID    string `json:"server_id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Permissions uint64 `json:"permissions"`
}

func NewCreateRole(serverID, name, color string, permissions uint64) CreateRoleCommand {
	return CreateRoleCommand{Type: CmdCreateRole, ServerID: serverID, Name: name, Color: color, Permissions: permissions}
}

type UpdateRoleCommand struct {
	commandBase
	Type        string  `json:"type"`
	ServerID    string  `json:"server_id"`
	RoleID      string  `json:"role_id"`
	Name        string  `json:"name,omitempty"`
	Color       string  `json:"color,omitempty"`
	Permissions *uint64 `json:"permissions,omitempty"`
	Position    *int    `json:"position,omitempty"`
}

func NewUpdateRole(serverID, roleID string) UpdateRoleCommand {
	return UpdateRoleCommand{Type: CmdUpdateRole, ServerID: serverID, RoleID: roleID}
}

type DeleteRoleCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RoleID   string `json:"role_id"`
}

func NewDeleteRole(serverID, roleID string) DeleteRoleCommand {
	return DeleteRoleCommand{Type: CmdDeleteRole, ServerID: serverID, RoleID: roleID}
}

type AssignRoleCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	RoleID   string `json:"role_id"`
}

func NewAssignRole(serverID, userID, roleID string) AssignRoleCommand {
	return AssignRoleCommand{Type: CmdAssignRole, ServerID: serverID, UserID: userID, RoleID: roleID}
}

type RemoveRoleCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	RoleID   string `json:"role_id"`
}

func NewRemoveRole(serverID, userID, roleID string) RemoveRoleCommand {
	return RemoveRoleCommand{Type: CmdRemoveRole, ServerID: serverID, UserID: userID, RoleID: roleID}
}

// --- Categories ---

type ListCategoriesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListCategories(serverID string) ListCategoriesCommand {
	return ListCategoriesCommand{Type: CmdListCategories, ServerID: serverID}
}

type CreateCategoryCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
}

func NewCreateCategory(serverID, name string) CreateCategoryCommand {
	return CreateCategoryCommand{Type: CmdCreateCategory, ServerID: serverID, Name: name}
}

type UpdateCategoryCommand struct {
	commandBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name,omitempty"`
	Position   *int   `json:"position,omitempty"`
}

func NewUpdateCategory(serverID, categoryID string) UpdateCategoryCommand {
	return UpdateCategoryCommand{Type: CmdUpdateCategory, ServerID: serverID, CategoryID: categoryID}
}

type DeleteCategoryCommand struct {
	commandBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	CategoryID string `json:"category_id"`
}

func NewDeleteCategory(serverID, categoryID string) DeleteCategoryCommand {
	return DeleteCategoryCommand{Type: CmdDeleteCategory, ServerID: serverID, CategoryID: categoryID}
}

// --- Presence & profile ---

type SetPresenceCommand struct {
	commandBase
	Type         string `json:"type"`
	Status       string `json:"status"`
	CustomStatus string `json:"custom_status,omitempty"`
	StatusEmoji  string `json:"status_emoji,omitempty"`
}

func NewSetPresence(status, customStatus, statusEmoji string) SetPresenceCommand {
	return SetPresenceCommand{Type: CmdSetPresence, Status: status, CustomStatus: customStatus, StatusEmoji: statusEmoji}
}

type GetPresencesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewGetPresences(serverID string) GetPresencesCommand {
	return GetPresencesCommand{Type: CmdGetPresences, ServerID: serverID}
}

type GetUserProfileCommand struct {
	commandBase
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

func NewGetUserProfile(userID string) GetUserProfileCommand {
	return GetUserProfileCommand{Type: CmdGetUserProfile, UserID: userID}
}

// --- Read state ---

type MarkReadCommand struct {
	commandBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

func NewMarkRead(serverID, channel, messageID string) MarkReadCommand {
	return MarkReadCommand{Type: CmdMarkRead, ServerID: serverID, Channel: channel, MessageID: messageID}
}

type GetUnreadCountsCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewGetUnreadCounts(serverID string) GetUnreadCountsCommand {
	return GetUnreadCountsCommand{Type: CmdGetUnreadCounts, ServerID: serverID}
}

// --- Search & notifications ---

type SearchMessagesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Query    string `json:"query"`
	Channel  string `json:"channel,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

func NewSearchMessages(serverID, query, channel string, limit, offset int) SearchMessagesCommand {
	return SearchMessagesCommand{Type: CmdSearchMessages, ServerID: serverID, Query: query, Channel: channel, Limit: limit, Offset: offset}
}

type UpdateNotificationSettingsCommand struct {
	commandBase
	Type             string `json:"type"`
	ServerID         string `json:"server_id"`
	Level            string `json:"level"`
	SuppressEveryone *bool  `json:"suppress_everyone,omitempty"`
	SuppressRoles    *bool  `json:"suppress_roles,omitempty"`
	Muted            *bool  `json:"muted,omitempty"`
	MuteUntil        string `json:"mute_until,omitempty"`
}

func NewUpdateNotificationSettings(serverID, level string) UpdateNotificationSettingsCommand {
	return UpdateNotificationSettingsCommand{Type: CmdUpdateNotificationSettings, ServerID: serverID, Level: level}
}

type GetNotificationSettingsCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewGetNotificationSettings(serverID string) GetNotificationSettingsCommand {
	return GetNotificationSettingsCommand{Type: CmdGetNotificationSettings, ServerID: serverID}
}

// --- Pins & threads ---

type PinMessageCommand struct {
	commandBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

func NewPinMessage(serverID, channel, messageID string) PinMessageCommand {
	return PinMessageCommand{Type: CmdPinMessage, ServerID: serverID, Channel: channel, MessageID: messageID}
}

type UnpinMessageCommand struct {
	commandBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

func NewUnpinMessage(serverID, channel, messageID string) UnpinMessageCommand {
	return UnpinMessageCommand{Type: CmdUnpinMessage, ServerID: serverID, Channel: channel, MessageID: messageID}
}

type GetPinnedMessagesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
}

func NewGetPinnedMessages(serverID, channel string) GetPinnedMessagesCommand {
	return GetPinnedMessagesCommand{Type: CmdGetPinnedMessages, ServerID: serverID, Channel: channel}
}

type CreateThreadCommand struct {
	commandBase
	Type          string `json:"type"`
	ServerID      string `json:"server_id"`
	ParentChannel string `json:"parent_channel"`
	Name          string `json:"name"`
	MessageID     string `json:"message_id"`
	IsPrivate     bool   `json:"is_private,omitempty"`
}

func NewCreateThread(serverID, parentChannel, name, messageID string, isPrivate bool) CreateThreadCommand {
	return CreateThreadCommand{Type: CmdCreateThread, ServerID: serverID, ParentChannel: parentChannel, Name: name, MessageID: messageID, IsPrivate: isPrivate}
}

type ArchiveThreadCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	ThreadID string `json:"thread_id"`
}

func NewArchiveThread(serverID, threadID string) ArchiveThreadCommand {
	return ArchiveThreadCommand{Type: CmdArchiveThread, ServerID: serverID, ThreadID: threadID}
}

type ListThreadsCommand struct {
	commandBase
	Type          string `json:"type"`
	ServerID      string `json:"server_id"`
	ParentChannel string `json:"parent_channel"`
}

func NewListThreads(serverID, parentChannel string) ListThreadsCommand {
	return ListThreadsCommand{Type: CmdListThreads, ServerID: serverID, ParentChannel: parentChannel}
}

// --- Bookmarks ---

type AddBookmarkCommand struct {
	commandBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	Note      string `json:"note,omitempty"`
}

func NewAddBookmark(messageID, note string) AddBookmarkCommand {
	return AddBookmarkCommand{Type: CmdAddBookmark, MessageID: messageID, Note: note}
}

type RemoveBookmarkCommand struct {
	commandBase
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
}

func NewRemoveBookmark(messageID string) RemoveBookmarkCommand {
	return RemoveBookmarkCommand{Type: CmdRemoveBookmark, MessageID: messageID}
}

type ListBookmarksCommand struct {
	commandBase
	Type string `json:"type"`
}

func NewListBookmarks() ListBookmarksCommand { return ListBookmarksCommand{Type: CmdListBookmarks} }

// --- Moderation ---

type KickMemberCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	Reason   string `json:"reason,omitempty"`
}

func NewKickMember(serverID, userID, reason string) KickMemberCommand {
	return KickMemberCommand{Type: CmdKickMember, ServerID: serverID, UserID: userID, Reason: reason}
}

type BanMemberCommand struct {
	commandBase
	Type              string `json:"type"`
	ServerID          string `json:"server_id"`
	UserID            string `json:"user_id"`
	Reason            string `json:"reason,omitempty"`
	DeleteMessageDays int    `json:"delete_message_days,omitempty"`
}

func NewBanMember(serverID, userID, reason string, deleteMessageDays int) BanMemberCommand {
	return BanMemberCommand{Type: CmdBanMember, ServerID: serverID, UserID: userID, Reason: reason, DeleteMessageDays: deleteMessageDays}
}

type UnbanMemberCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
}

func NewUnbanMember(serverID, userID string) UnbanMemberCommand {
	return UnbanMemberCommand{Type: CmdUnbanMember, ServerID: serverID, UserID: userID}
}

type ListBansCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListBans(serverID string) ListBansCommand { return ListBansCommand{Type: CmdListBans, ServerID: serverID} }

type TimeoutMemberCommand struct {
	commandBase
	Type         string `json:"type"`
	ServerID     string `json:"server_id"`
	UserID       string `json:"user_id"`
	TimeoutUntil string `json:"timeout_until,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

func NewTimeoutMember(serverID, userID, timeoutUntil, reason string) TimeoutMemberCommand {
	return TimeoutMemberCommand{Type: CmdTimeoutMember, ServerID: serverID, UserID: userID, TimeoutUntil: timeoutUntil, Reason: reason}
}

type GetAuditLogCommand struct {
	commandBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	ActionType string `json:"action_type,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Before     string `json:"before,omitempty"`
}

func NewGetAuditLog(serverID, actionType string, limit int, before string) GetAuditLogCommand {
	return GetAuditLogCommand{Type: CmdGetAuditLog, ServerID: serverID, ActionType: actionType, Limit: limit, Before: before}
}

type CreateAutomodRuleCommand struct {
	commandBase
	Type        string   `json:"type"`
	ServerID    string   `json:"server_id"`
	Name        string   `json:"name"`
	TriggerType string   `json:"trigger_type"`
	Keywords    []string `json:"keywords,omitempty"`
	Action      string   `json:"action"`
}

func NewCreateAutomodRule(serverID, name, triggerType string, keywords []string, action string) CreateAutomodRuleCommand {
	return CreateAutomodRuleCommand{Type: CmdCreateAutomodRule, ServerID: serverID, Name: name, TriggerType: triggerType, Keywords: keywords, Action: action}
}

type UpdateAutomodRuleCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RuleID   string `json:"rule_id"`
	Enabled  *bool  `json:"enabled,omitempty"`
}

func NewUpdateAutomodRule(serverID, ruleID string) UpdateAutomodRuleCommand {
	return UpdateAutomodRuleCommand{Type: CmdUpdateAutomodRule, ServerID: serverID, RuleID: ruleID}
}

type DeleteAutomodRuleCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RuleID   string `json:"rule_id"`
}

func NewDeleteAutomodRule(serverID, ruleID string) DeleteAutomodRuleCommand {
	return DeleteAutomodRuleCommand{Type: CmdDeleteAutomodRule, ServerID: serverID, RuleID: ruleID}
}

type ListAutomodRulesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListAutomodRules(serverID string) ListAutomodRulesCommand {
	return ListAutomodRulesCommand{Type: CmdListAutomodRules, ServerID: serverID}
}

// --- Community ---

type CreateInviteCommand struct {
	commandBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	ChannelID string `json:"channel_id,omitempty"`
	MaxUses   int    `json:"max_uses,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

func NewCreateInvite(serverID, channelID string, maxUses int, expiresAt string) CreateInviteCommand {
	return CreateInviteCommand{Type: CmdCreateInvite, ServerID: serverID, ChannelID: channelID, MaxUses: maxUses, ExpiresAt: expiresAt}
}

type ListInvitesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListInvites(serverID string) ListInvitesCommand {
	return ListInvitesCommand{Type: CmdListInvites, ServerID: serverID}
}

type DeleteInviteCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Code     string `json:"code"`
}

func NewDeleteInvite(serverID, code string) DeleteInviteCommand {
	return DeleteInviteCommand{Type: CmdDeleteInvite, ServerID: serverID, Code: code}
}

type UseInviteCommand struct {
	commandBase
	Type string `json:"type"`
	Code string `json:"code"`
}

func NewUseInvite(code string) UseInviteCommand { return UseInviteCommand{Type: CmdUseInvite, Code: code} }

type CreateEventCommand struct {
	commandBase
	Type        string `json:"type"`
	ServerID    string `json:"server_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ChannelID   string `json:"channel_id,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
}

func NewCreateEvent(serverID, name, description, channelID, startTime, endTime string) CreateEventCommand {
	return CreateEventCommand{Type: CmdCreateEvent, ServerID: serverID, Name: name, Description: description, ChannelID: channelID, StartTime: startTime, EndTime: endTime}
}

type ListEventsCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListEvents(serverID string) ListEventsCommand {
	return ListEventsCommand{Type: CmdListEvents, ServerID: serverID}
}

type UpdateEventStatusCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
	Status   string `json:"status"`
}

func NewUpdateEventStatus(serverID, eventID, status string) UpdateEventStatusCommand {
	return UpdateEventStatusCommand{Type: CmdUpdateEventStatus, ServerID: serverID, EventID: eventID, Status: status}
}

type DeleteEventCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
}

func NewDeleteEvent(serverID, eventID string) DeleteEventCommand {
	return DeleteEventCommand{Type: CmdDeleteEvent, ServerID: serverID, EventID: eventID}
}

type SetRSVPCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
	Status   string `json:"status"`
}

func NewSetRSVP(serverID, eventID, status string) SetRSVPCommand {
	return SetRSVPCommand{Type: CmdSetRSVP, ServerID: serverID, EventID: eventID, Status: status}
}

type RemoveRSVPCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
}

func NewRemoveRSVP(serverID, eventID string) RemoveRSVPCommand {
	return RemoveRSVPCommand{Type: CmdRemoveRSVP, ServerID: serverID, EventID: eventID}
}

type ListRSVPsCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
}

func NewListRSVPs(serverID, eventID string) ListRSVPsCommand {
	return ListRSVPsCommand{Type: CmdListRSVPs, ServerID: serverID, EventID: eventID}
}

type UpdateCommunitySettingsCommand struct {
	commandBase
	Type         string `json:"type"`
	ServerID     string `json:"server_id"`
	Description  string `json:"description,omitempty"`
	RulesText    string `json:"rules_text,omitempty"`
	Discoverable *bool  `json:"discoverable,omitempty"`
	Category     string `json:"category,omitempty"`
}

func NewUpdateCommunitySettings(serverID string) UpdateCommunitySettingsCommand {
	return UpdateCommunitySettingsCommand{Type: CmdUpdateCommunitySettings, ServerID: serverID}
}

type GetCommunitySettingsCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewGetCommunitySettings(serverID string) GetCommunitySettingsCommand {
	return GetCommunitySettingsCommand{Type: CmdGetCommunitySettings, ServerID: serverID}
}

type DiscoverServersCommand struct {
	commandBase
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

func NewDiscoverServers(category string) DiscoverServersCommand {
	return DiscoverServersCommand{Type: CmdDiscoverServers, Category: category}
}

type AcceptRulesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewAcceptRules(serverID string) AcceptRulesCommand {
	return AcceptRulesCommand{Type: CmdAcceptRules, ServerID: serverID}
}

type FollowChannelCommand struct {
	commandBase
	Type            string `json:"type"`
	ServerID        string `json:"server_id"`
	ChannelID       string `json:"channel_id"`
	TargetChannelID string `json:"target_channel_id"`
}

func NewFollowChannel(serverID, channelID, targetChannelID string) FollowChannelCommand {
	return FollowChannelCommand{Type: CmdFollowChannel, ServerID: serverID, ChannelID: channelID, TargetChannelID: targetChannelID}
}

type UnfollowChannelCommand struct {
	commandBase
	Type            string `json:"type"`
	ServerID        string `json:"server_id"`
	ChannelID       string `json:"channel_id"`
	TargetChannelID string `json:"target_channel_id"`
}

func NewUnfollowChannel(serverID, channelID, targetChannelID string) UnfollowChannelCommand {
	return UnfollowChannelCommand{Type: CmdUnfollowChannel, ServerID: serverID, ChannelID: channelID, TargetChannelID: targetChannelID}
}

type ListChannelFollowsCommand struct {
	commandBase
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	ChannelID string `json:"channel_id"`
}

func NewListChannelFollows(serverID, channelID string) ListChannelFollowsCommand {
	return ListChannelFollowsCommand{Type: CmdListChannelFollows, ServerID: serverID, ChannelID: channelID}
}

type CreateTemplateCommand struct {
	commandBase
	Type        string `json:"type"`
	ServerID    string `json:"server_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewCreateTemplate(serverID, name, description string) CreateTemplateCommand {
	return CreateTemplateCommand{Type: CmdCreateTemplate, ServerID: serverID, Name: name, Description: description}
}

type ListTemplatesCommand struct {
	commandBase
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
}

func NewListTemplates(serverID string) ListTemplatesCommand {
	return ListTemplatesCommand{Type: CmdListTemplates, ServerID: serverID}
}

type DeleteTemplateCommand struct {
	commandBase
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	TemplateID string `json:"template_id"`
}

func NewDeleteTemplate(serverID, templateID string) DeleteTemplateCommand {
	return DeleteTemplateCommand{Type: CmdDeleteTemplate, ServerID: serverID, TemplateID: templateID}
}
