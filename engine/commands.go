package engine

import (
	"github.com/ngutten/concord/protocol"
	"github.com/ngutten/concord/transport"
)

// Router is the Command Router (§4.2): a typed API over the full command
// catalog (§6.2). Every method just builds the matching protocol.Command
// and hands it to Transport.Send — no request/reply correlation, since
// every result arrives later as a broadcast event.
type Router struct {
	transport *transport.Transport
}

func newRouter(t *transport.Transport) *Router {
	return &Router{transport: t}
}

func (r *Router) send(cmd protocol.Command) { r.transport.Send(cmd) }

// Session

func (r *Router) ListServers() { r.send(protocol.NewListServers()) }

// Servers

func (r *Router) CreateServer(name, iconURL string) { r.send(protocol.NewCreateServer(name, iconURL)) }
func (r *Router) JoinServer(serverID string)         { r.send(protocol.NewJoinServer(serverID)) }
func (r *Router) LeaveServer(serverID string)         { r.send(protocol.NewLeaveServer(serverID)) }
func (r *Router) DeleteServer(serverID string)        { r.send(protocol.NewDeleteServer(serverID)) }

// Channels

func (r *Router) ListChannels(serverID string) { r.send(protocol.NewListChannels(serverID)) }
func (r *Router) CreateChannel(serverID, name, categoryID string, isPrivate bool) {
	r.send(protocol.NewCreateChannel(serverID, name, categoryID, isPrivate))
}
func (r *Router) DeleteChannel(serverID, channel string) {
	r.send(protocol.NewDeleteChannel(serverID, channel))
}
func (r *Router) SetTopic(serverID, channel, topic string) {
	r.send(protocol.NewSetTopic(serverID, channel, topic))
}
func (r *Router) JoinChannel(serverID, channel string) {
	r.send(protocol.NewJoinChannel(serverID, channel))
}
func (r *Router) PartChannel(serverID, channel, reason string) {
	r.send(protocol.NewPartChannel(serverID, channel, reason))
}
func (r *Router) ReorderChannels(serverID string, channels []protocol.ChannelPosition) {
	r.send(protocol.NewReorderChannels(serverID, channels))
}
func (r *Router) SetSlowMode(serverID, channel string, seconds int) {
	r.send(protocol.NewSetSlowMode(serverID, channel, seconds))
}
func (r *Router) SetNSFW(serverID, channel string, isNSFW bool) {
	r.send(protocol.NewSetNSFW(serverID, channel, isNSFW))
}
func (r *Router) SetAnnouncementChannel(serverID, channel string, isAnnouncement bool) {
	r.send(protocol.NewSetAnnouncementChannel(serverID, channel, isAnnouncement))
}

// Messages (see optimistic.go for SendMessage/MarkRead, which also mutate
// the store before transmitting)

func (r *Router) EditMessage(messageID, content string) {
	r.send(protocol.NewEditMessage(messageID, content))
}
func (r *Router) DeleteMessage(messageID string) { r.send(protocol.NewDeleteMessage(messageID)) }
func (r *Router) BulkDeleteMessages(serverID, channel string, messageIDs []string) {
	r.send(protocol.NewBulkDeleteMessages(serverID, channel, messageIDs))
}
func (r *Router) FetchHistory(serverID, channel, before string, limit int) {
	r.send(protocol.NewFetchHistory(serverID, channel, before, limit))
}

// Reactions & typing

func (r *Router) AddReaction(messageID, emoji string)    { r.send(protocol.NewAddReaction(messageID, emoji)) }
func (r *Router) RemoveReaction(messageID, emoji string) { r.send(protocol.NewRemoveReaction(messageID, emoji)) }
func (r *Router) Typing(serverID, channel string)        { r.send(protocol.NewTyping(serverID, channel)) }

// Members

func (r *Router) GetMembers(serverID, channel string) { r.send(protocol.NewGetMembers(serverID, channel)) }
func (r *Router) UpdateMemberRole(serverID, userID, role string) {
	r.send(protocol.NewUpdateMemberRole(serverID, userID, role))
}
func (r *Router) SetServerNickname(serverID, nickname string) {
	r.send(protocol.NewSetServerNickname(serverID, nickname))
}

// Roles

func (r *Router) ListRoles(serverID string) { r.send(protocol.NewListRoles(serverID)) }
func (r *Router) CreateRole(serverID, name, color string, permissions uint64) {
	r.send(protocol.NewCreateRole(serverID, name, color, permissions))
}
func (r *Router) UpdateRole(serverID, roleID string) { r.send(protocol.NewUpdateRole(serverID, roleID)) }
func (r *Router) DeleteRole(serverID, roleID string) { r.send(protocol.NewDeleteRole(serverID, roleID)) }
func (r *Router) AssignRole(serverID, userID, roleID string) {
	r.send(protocol.NewAssignRole(serverID, userID, roleID))
}
func (r *Router) RemoveRole(serverID, userID, roleID string) {
	r.send(protocol.NewRemoveRole(serverID, userID, roleID))
}

// Categories

func (r *Router) ListCategories(serverID string) { r.send(protocol.NewListCategories(serverID)) }
func (r *Router) CreateCategory(serverID, name string) {
	r.send(protocol.NewCreateCategory(serverID, name))
}
func (r *Router) UpdateCategory(serverID, categoryID string) {
	r.send(protocol.NewUpdateCategory(serverID, categoryID))
}
func (r *Router) DeleteCategory(serverID, categoryID string) {
	r.send(protocol.NewDeleteCategory(serverID, categoryID))
}

// Presence & profile

func (r *Router) SetPresence(status, customStatus, statusEmoji string) {
	r.send(protocol.NewSetPresence(status, customStatus, statusEmoji))
}
func (r *Router) GetPresences(serverID string)  { r.send(protocol.NewGetPresences(serverID)) }
func (r *Router) GetUserProfile(userID string) { r.send(protocol.NewGetUserProfile(userID)) }

// Read state

func (r *Router) GetUnreadCounts(serverID string) { r.send(protocol.NewGetUnreadCounts(serverID)) }

// Search & notifications

func (r *Router) SearchMessages(serverID, query, channel string, limit, offset int) {
	r.send(protocol.NewSearchMessages(serverID, query, channel, limit, offset))
}
func (r *Router) UpdateNotificationSettings(serverID, level string) {
	r.send(protocol.NewUpdateNotificationSettings(serverID, level))
}
func (r *Router) GetNotificationSettings(serverID string) {
	r.send(protocol.NewGetNotificationSettings(serverID))
}

// Pins & threads

func (r *Router) PinMessage(serverID, channel, messageID string) {
	r.send(protocol.NewPinMessage(serverID, channel, messageID))
}
func (r *Router) UnpinMessage(serverID, channel, messageID string) {
	r.send(protocol.NewUnpinMessage(serverID, channel, messageID))
}
func (r *Router) GetPinnedMessages(serverID, channel string) {
	r.send(protocol.NewGetPinnedMessages(serverID, channel))
}
func (r *Router) CreateThread(serverID, parentChannel, name, messageID string, isPrivate bool) {
	r.send(protocol.NewCreateThread(serverID, parentChannel, name, messageID, isPrivate))
}
func (r *Router) ArchiveThread(serverID, threadID string) {
	r.send(protocol.NewArchiveThread(serverID, threadID))
}
func (r *Router) ListThreads(serverID, parentChannel string) {
	r.send(protocol.NewListThreads(serverID, parentChannel))
}

// Bookmarks

func (r *Router) AddBookmark(messageID, note string) { r.send(protocol.NewAddBookmark(messageID, note)) }
func (r *Router) RemoveBookmark(messageID string)    { r.send(protocol.NewRemoveBookmark(messageID)) }
func (r *Router) ListBookmarks()                     { r.send(protocol.NewListBookmarks()) }

// Moderation

func (r *Router) KickMember(serverID, userID, reason string) {
	r.send(protocol.NewKickMember(serverID, userID, reason))
}
func (r *Router) BanMember(serverID, userID, reason string, deleteMessageDays int) {
	r.send(protocol.NewBanMember(serverID, userID, reason, deleteMessageDays))
}
func (r *Router) UnbanMember(serverID, userID string) { r.send(protocol.NewUnbanMember(serverID, userID)) }
func (r *Router) ListBans(serverID string)            { r.send(protocol.NewListBans(serverID)) }
func (r *Router) TimeoutMember(serverID, userID, timeoutUntil, reason string) {
	r.send(protocol.NewTimeoutMember(serverID, userID, timeoutUntil, reason))
}
func (r *Router) GetAuditLog(serverID, actionType string, limit int, before string) {
	r.send(protocol.NewGetAuditLog(serverID, actionType, limit, before))
}
func (r *Router) CreateAutomodRule(serverID, name, triggerType string, keywords []string, action string) {
	r.send(protocol.NewCreateAutomodRule(serverID, name, triggerType, keywords, action))
}
func (r *Router) UpdateAutomodRule(serverID, ruleID string) {
	r.send(protocol.NewUpdateAutomodRule(serverID, ruleID))
}
func (r *Router) DeleteAutomodRule(serverID, ruleID string) {
	r.send(protocol.NewDeleteAutomodRule(serverID, ruleID))
}
func (r *Router) ListAutomodRules(serverID string) { r.send(protocol.NewListAutomodRules(serverID)) }

// Community

func (r *Router) CreateInvite(serverID, channelID string, maxUses int, expiresAt string) {
	r.send(protocol.NewCreateInvite(serverID, channelID, maxUses, expiresAt))
}
func (r *Router) ListInvites(serverID string)       { r.send(protocol.NewListInvites(serverID)) }
func (r *Router) DeleteInvite(serverID, code string) { r.send(protocol.NewDeleteInvite(serverID, code)) }
func (r *Router) UseInvite(code string)              { r.send(protocol.NewUseInvite(code)) }
func (r *Router) CreateEvent(serverID, name, description, channelID, startTime, endTime string) {
	r.send(protocol.NewCreateEvent(serverID, name, description, channelID, startTime, endTime))
}
func (r *Router) ListEvents(serverID string) { r.send(protocol.NewListEvents(serverID)) }
func (r *Router) UpdateEventStatus(serverID, eventID, status string) {
	r.send(protocol.NewUpdateEventStatus(serverID, eventID, status))
}
func (r *Router) DeleteEvent(serverID, eventID string) { r.send(protocol.NewDeleteEvent(serverID, eventID)) }
func (r *Router) SetRSVP(serverID, eventID, status string) {
	r.send(protocol.NewSetRSVP(serverID, eventID, status))
}
func (r *Router) RemoveRSVP(serverID, eventID string) { r.send(protocol.NewRemoveRSVP(serverID, eventID)) }
func (r *Router) ListRSVPs(serverID, eventID string)  { r.send(protocol.NewListRSVPs(serverID, eventID)) }
func (r *Router) UpdateCommunitySettings(serverID string) {
	r.send(protocol.NewUpdateCommunitySettings(serverID))
}
func (r *Router) GetCommunitySettings(serverID string) { r.send(protocol.NewGetCommunitySettings(serverID)) }
func (r *Router) DiscoverServers(category string)      { r.send(protocol.NewDiscoverServers(category)) }
func (r *Router) AcceptRules(serverID string)          { r.send(protocol.NewAcceptRules(serverID)) }
func (r *Router) FollowChannel(serverID, channelID, targetChannelID string) {
	r.send(protocol.NewFollowChannel(serverID, channelID, targetChannelID))
}
func (r *Router) UnfollowChannel(serverID, channelID, targetChannelID string) {
	r.send(protocol.NewUnfollowChannel(serverID, channelID, targetChannelID))
}
func (r *Router) ListChannelFollows(serverID, channelID string) {
	r.send(protocol.NewListChannelFollows(serverID, channelID))
}
func (r *Router) CreateTemplate(serverID, name, description string) {
	r.send(protocol.NewCreateTemplate(serverID, name, description))
}
func (r *Router) ListTemplates(serverID string) { r.send(protocol.NewListTemplates(serverID)) }
func (r *Router) DeleteTemplate(serverID, templateID string) {
	r.send(protocol.NewDeleteTemplate(serverID, templateID))
}
