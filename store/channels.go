package store

import (
	"sort"

	"github.com/ngutten/concord/protocol"
)

// applyChannelList replaces channels[server_id] and returns the priming
// commands the Command Router must issue next (§4.3: "the only reducer
// with an observable side-effect"; §8 scenario S7 requires list_roles,
// list_categories, get_presences in that exact order).
func (s *Store) applyChannelList(evt *protocol.ChannelListEvent) []protocol.Command {
	s.mu.Lock()
	s.channels[evt.ServerID] = evt.Channels
	s.mu.Unlock()

	return []protocol.Command{
		protocol.NewListRoles(evt.ServerID),
		protocol.NewListCategories(evt.ServerID),
		protocol.NewGetPresences(evt.ServerID),
	}
}

func (s *Store) applyTopic(evt *protocol.TopicEvent) {
	s.patchChannel(evt.ServerID, evt.Channel, func(c *protocol.Channel) { c.Topic = evt.Topic })
}

func (s *Store) applyTopicChange(evt *protocol.TopicChangeEvent) {
	s.patchChannel(evt.ServerID, evt.Channel, func(c *protocol.Channel) { c.Topic = evt.Topic })
}

func (s *Store) applySlowModeUpdate(evt *protocol.SlowModeUpdateEvent) {
	s.patchChannel(evt.ServerID, evt.Channel, func(c *protocol.Channel) { c.SlowmodeSeconds = evt.Seconds })
}

func (s *Store) applyNSFWUpdate(evt *protocol.NSFWUpdateEvent) {
	s.patchChannel(evt.ServerID, evt.Channel, func(c *protocol.Channel) { c.IsNSFW = evt.IsNSFW })
}

// patchChannel mutates the matching channel in place by name.
func (s *Store) patchChannel(serverID, name string, patch func(*protocol.Channel)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := s.channels[serverID]
	for i := range channels {
		if channels[i].Name == name {
			patch(&channels[i])
			return
		}
	}
}

// applyChannelReorder applies new position/category_id to matching
// channels, then re-sorts within each category ascending by position
// (§3 invariant 3).
func (s *Store) applyChannelReorder(evt *protocol.ChannelReorderEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := s.channels[evt.ServerID]
	byID := make(map[string]protocol.ChannelPosition, len(evt.Channels))
	for _, cp := range evt.Channels {
		byID[cp.ID] = cp
	}
	for i := range channels {
		if cp, ok := byID[channels[i].ID]; ok {
			channels[i].Position = cp.Position
			channels[i].CategoryID = cp.CategoryID
		}
	}
	sort.SliceStable(channels, func(i, j int) bool { return channels[i].Position < channels[j].Position })
	s.channels[evt.ServerID] = channels
}

func (s *Store) applyCategoryList(evt *protocol.CategoryListEvent) {
	sorted := append([]protocol.Category(nil), evt.Categories...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[evt.ServerID] = sorted
}

func (s *Store) applyCategoryUpdate(evt *protocol.CategoryUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.categories[evt.ServerID]
	for i, c := range categories {
		if c.ID == evt.Category.ID {
			categories[i] = evt.Category
			s.resortCategories(evt.ServerID, categories)
			return
		}
	}
	categories = append(categories, evt.Category)
	s.resortCategories(evt.ServerID, categories)
}

func (s *Store) resortCategories(serverID string, categories []protocol.Category) {
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Position < categories[j].Position })
	s.categories[serverID] = categories
}

func (s *Store) applyCategoryDelete(evt *protocol.CategoryDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.categories[evt.ServerID]
	for i, c := range categories {
		if c.ID == evt.CategoryID {
			s.categories[evt.ServerID] = append(categories[:i], categories[i+1:]...)
			return
		}
	}
}

// applyRoleList replaces roles[server_id], sorted by position descending
// (§3 invariant 3).
func (s *Store) applyRoleList(evt *protocol.RoleListEvent) {
	sorted := append([]protocol.Role(nil), evt.Roles...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[evt.ServerID] = sorted
}

func (s *Store) applyRoleUpdate(evt *protocol.RoleUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles := s.roles[evt.ServerID]
	for i, r := range roles {
		if r.ID == evt.Role.ID {
			roles[i] = evt.Role
			s.resortRoles(evt.ServerID, roles)
			return
		}
	}
	roles = append(roles, evt.Role)
	s.resortRoles(evt.ServerID, roles)
}

func (s *Store) resortRoles(serverID string, roles []protocol.Role) {
	sort.SliceStable(roles, func(i, j int) bool { return roles[i].Position > roles[j].Position })
	s.roles[serverID] = roles
}

func (s *Store) applyRoleDelete(evt *protocol.RoleDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles := s.roles[evt.ServerID]
	for i, r := range roles {
		if r.ID == evt.RoleID {
			s.roles[evt.ServerID] = append(roles[:i], roles[i+1:]...)
			return
		}
	}
}
