package store

import (
	"strings"

	"github.com/ngutten/concord/protocol"
)

// applyJoin appends unique-by-nickname to members[key] and caches the
// member's avatar (§4.3, §8 property 3: idempotent by nickname).
func (s *Store) applyJoin(evt *protocol.JoinEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.members[key]
	for i := range existing {
		if existing[i].Nickname == evt.Member.Nickname {
			existing[i] = evt.Member
			s.cacheAvatar(evt.Member.Nickname, evt.Member.AvatarURL)
			return
		}
	}
	s.members[key] = append(existing, evt.Member)
	s.cacheAvatar(evt.Member.Nickname, evt.Member.AvatarURL)
}

func (s *Store) applyPart(evt *protocol.PartEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.members[key] = removeMemberByNickname(s.members[key], evt.Nickname)
}

// applyQuit removes the nickname from every members[*] list (§4.3, §8
// property 4: repeated quits for the same nickname are a no-op).
func (s *Store) applyQuit(evt *protocol.QuitEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, members := range s.members {
		s.members[key] = removeMemberByNickname(members, evt.Nickname)
	}
}

// applyNames replaces members[key] wholesale and merges non-empty avatars
// (§4.3, §8 property 2: applying the same names event twice is idempotent
// since it is a pure replace, not an append).
func (s *Store) applyNames(evt *protocol.NamesEvent) {
	key := ChannelKey(evt.ServerID, evt.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.members[key] = evt.Members
	for _, m := range evt.Members {
		s.cacheAvatar(m.Nickname, m.AvatarURL)
	}
}

func (s *Store) applyNickChange(evt *protocol.NickChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if url, ok := s.avatars[evt.OldNickname]; ok {
		s.avatars[evt.NewNickname] = url
	}
	for key, members := range s.members {
		for i := range members {
			if members[i].Nickname == evt.OldNickname {
				members[i].Nickname = evt.NewNickname
			}
		}
		s.members[key] = members
	}
	if s.nickname == evt.OldNickname {
		s.nickname = evt.NewNickname
	}
}

// applyMemberKick and applyMemberBan remove the user from every
// members[key] scoped to the affected server (§4.3: "every members[key]
// whose key has prefix server_id \":\"").
func (s *Store) applyMemberKick(evt *protocol.MemberKickEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeUserFromServerMembers(evt.ServerID, evt.UserID)
}

func (s *Store) applyMemberBan(evt *protocol.MemberBanEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeUserFromServerMembers(evt.ServerID, evt.Ban.UserID)

	bans := s.bans[evt.ServerID]
	for i, b := range bans {
		if b.UserID == evt.Ban.UserID {
			bans[i] = evt.Ban
			s.bans[evt.ServerID] = bans
			return
		}
	}
	s.bans[evt.ServerID] = append(bans, evt.Ban)
}

// removeUserFromServerMembers must be called with the write lock held.
func (s *Store) removeUserFromServerMembers(serverID, userID string) {
	prefix := serverID + ":"
	for key, members := range s.members {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		filtered := make([]protocol.Member, 0, len(members))
		for _, m := range members {
			if m.UserID != userID {
				filtered = append(filtered, m)
			}
		}
		s.members[key] = filtered
	}
}

// applyMemberUnban, applyMemberTimeout and applyServerNicknameUpdate are
// acknowledgements only (§4.3): surfaces are refreshed on next explicit
// query rather than patched here, except that an unban also drops any
// cached ban record for the user.
func (s *Store) applyMemberUnban(evt *protocol.MemberUnbanEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bans := s.bans[evt.ServerID]
	for i, b := range bans {
		if b.UserID == evt.UserID {
			s.bans[evt.ServerID] = append(bans[:i], bans[i+1:]...)
			return
		}
	}
}

func (s *Store) applyMemberTimeout(evt *protocol.MemberTimeoutEvent) {
	// Acknowledgement only; no cached state to patch.
}

func (s *Store) applyServerNicknameUpdate(evt *protocol.ServerNicknameUpdateEvent) {
	// Acknowledgement only; per-server nickname overrides are not cached
	// separately from the channel-scoped Member entries, which are
	// refreshed via the next `names` query.
}

func (s *Store) applyMemberRoleUpdate(evt *protocol.MemberRoleUpdateEvent) {
	// Acknowledgement only; role membership is authoritative via the
	// server's role_list/role_update events, not mirrored per-member here.
}

func removeMemberByNickname(members []protocol.Member, nickname string) []protocol.Member {
	for i, m := range members {
		if m.Nickname == nickname {
			return append(members[:i], members[i+1:]...)
		}
	}
	return members
}
