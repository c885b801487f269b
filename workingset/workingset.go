// File: /workingset/workingset.go
package workingset

import (
	"context"
	"sync"

	"cleanworld-api/client"
	"cleanworld-api/geodata"
)

// Fetcher is the slice of the API client a refresh needs.
type Fetcher interface {
	Zones(ctx context.Context) ([]client.Zone, error)
	Events(ctx context.Context) ([]client.Event, error)
}

// Set is the unified in-memory collection of zones and events the views
// filter and render. All mutations go through its methods; a refresh swaps
// zones and events in one step so consumers never see half of an update.
type Set struct {
	mu        sync.RWMutex
	zones     []client.Zone
	events    []client.Event
	zoneIndex map[client.ID]int
}

func New() *Set {
	return &Set{zoneIndex: make(map[client.ID]int)}
}

// Replace installs a new working set: reported zones first, then container
// zones grouped in category declaration order.
func (s *Set) Replace(reported []client.Zone, containers map[string][]client.Zone, events []client.Event) {
	zones := make([]client.Zone, 0, len(reported))
	zones = append(zones, reported...)
	for _, category := range geodata.Categories {
		zones = append(zones, containers[category]...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones = zones
	s.events = append([]client.Event(nil), events...)
	s.rebuildIndexLocked()
}

// Refresh re-fetches zones and events and replaces the set atomically.
// Container zones are static, so callers pass the normalized sets they
// built at load time. On any fetch error the previous set is kept.
func (s *Set) Refresh(ctx context.Context, f Fetcher, containers map[string][]client.Zone) error {
	zones, err := f.Zones(ctx)
	if err != nil {
		return err
	}
	events, err := f.Events(ctx)
	if err != nil {
		return err
	}
	s.Replace(zones, containers, events)
	return nil
}

func (s *Set) rebuildIndexLocked() {
	s.zoneIndex = make(map[client.ID]int, len(s.zones))
	for i, z := range s.zones {
		s.zoneIndex[z.ID] = i
	}
}

// Zones returns a copy of the zone sequence.
func (s *Set) Zones() []client.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]client.Zone(nil), s.zones...)
}

// Events returns a copy of the event sequence.
func (s *Set) Events() []client.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]client.Event(nil), s.events...)
}

// Zone looks a zone up by id.
func (s *Set) Zone(id client.ID) (client.Zone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.zoneIndex[id]
	if !ok {
		return client.Zone{}, false
	}
	return s.zones[i], true
}

// ResolveZone maps an event's zone reference, embedded or bare id, to the
// zone record in the set. Events whose reference matches nothing are
// orphaned: they stay in the event list but resolve to false here, which
// keeps them out of zone-scoped rendering.
func (s *Set) ResolveZone(e *client.Event) (client.Zone, bool) {
	ref := e.ZoneRef()
	if ref == "" {
		return client.Zone{}, false
	}
	return s.Zone(ref)
}

// EventsForZone returns the events targeting the given zone.
func (s *Set) EventsForZone(zoneID client.ID) []client.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []client.Event
	for _, e := range s.events {
		if e.ZoneRef() == zoneID {
			matched = append(matched, e)
		}
	}
	return matched
}

// AppendZone adds a freshly created zone after a confirmed backend create.
func (s *Set) AppendZone(z client.Zone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones = append(s.zones, z)
	s.zoneIndex[z.ID] = len(s.zones) - 1
}

// AppendEvent adds a freshly created event after a confirmed backend create.
func (s *Set) AppendEvent(e client.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// RemoveZone drops a zone after a confirmed backend delete. Container
// zones are never removed. Events that referenced the zone remain in the
// list as orphans.
func (s *Set) RemoveZone(id client.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.zoneIndex[id]
	if !ok || s.zones[i].IsContainer() {
		return false
	}
	s.zones = append(s.zones[:i], s.zones[i+1:]...)
	s.rebuildIndexLocked()
	return true
}

// ReplaceEventAttendees swaps one event's attendee set for the
// server-confirmed one.
func (s *Set) ReplaceEventAttendees(eventID client.ID, attendees []client.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == eventID {
			s.events[i].Attendees = append([]client.User(nil), attendees...)
			return true
		}
	}
	return false
}
