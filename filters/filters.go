// File: /filters/filters.go
package filters

import (
	"fmt"
	"sort"
	"time"

	"cleanworld-api/client"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// ByCategory applies the map-view category policy. With no category
// selected only user-reported zones are visible; with any selection only
// containers of the selected categories are visible. Reported zones are
// hidden on purpose while a category filter is active.
func ByCategory(zones []client.Zone, selected []string) []client.Zone {
	visible := make([]client.Zone, 0, len(zones))
	if len(selected) == 0 {
		for _, z := range zones {
			if !z.IsContainer() {
				visible = append(visible, z)
			}
		}
		return visible
	}
	wanted := make(map[string]bool, len(selected))
	for _, c := range selected {
		wanted[c] = true
	}
	for _, z := range zones {
		if z.IsContainer() && wanted[z.Residuo] {
			visible = append(visible, z)
		}
	}
	return visible
}

// ByStatus keeps zones matching the status exactly; StatusAll passes all.
func ByStatus(zones []client.Zone, status string) []client.Zone {
	if status == StatusAll || status == "" {
		return append([]client.Zone(nil), zones...)
	}
	visible := make([]client.Zone, 0, len(zones))
	for _, z := range zones {
		if z.Status == status {
			visible = append(visible, z)
		}
	}
	return visible
}

// SortBySeverity orders zones by numeric severity rank, keeping the
// incoming order for equal ranks. Unrecognized severities rank 0.
func SortBySeverity(zones []client.Zone, desc bool) []client.Zone {
	sorted := append([]client.Zone(nil), zones...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return sorted[i].Severity > sorted[j].Severity
		}
		return sorted[i].Severity < sorted[j].Severity
	})
	return sorted
}

// SortByCreatedAt orders zones by creation time. Zones without a
// timestamp, which in practice are container zones, sort last either way.
func SortByCreatedAt(zones []client.Zone, desc bool) []client.Zone {
	sorted := append([]client.Zone(nil), zones...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CreatedAt, sorted[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if desc {
			return a.After(*b)
		}
		return a.Before(*b)
	})
	return sorted
}

// PartitionEvents splits events into upcoming (datetime >= now) and past.
// The caller captures now once per render pass so a borderline event
// cannot flip partitions mid-computation. A zero datetime classifies as
// past.
func PartitionEvents(events []client.Event, now time.Time) (upcoming, past []client.Event) {
	for _, e := range events {
		if !e.Datetime.Time().Before(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	return upcoming, past
}

// DisplaySequence builds the events-list ordering: upcoming events sorted
// by the caller's toggle, then past events when enabled. Past events
// always show most recent first regardless of the toggle.
func DisplaySequence(events []client.Event, now time.Time, showPast, upcomingDesc bool) []client.Event {
	upcoming, past := PartitionEvents(events, now)

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].Datetime.Time(), upcoming[j].Datetime.Time()
		if upcomingDesc {
			return a.After(b)
		}
		return a.Before(b)
	})

	if !showPast {
		return upcoming
	}

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Datetime.Time().After(past[j].Datetime.Time())
	})
	return append(upcoming, past...)
}

// MineOnly keeps events the user attends. A nil user yields an empty
// sequence rather than an error.
func MineOnly(events []client.Event, user *client.User) []client.Event {
	if user == nil {
		return []client.Event{}
	}
	mine := make([]client.Event, 0, len(events))
	for _, e := range events {
		if e.HasAttendee(user.ID) {
			mine = append(mine, e)
		}
	}
	return mine
}

// TimeUntil renders the relative-day label for an event. Agreement with
// PartitionEvents is guaranteed by using the same datetime comparison: a
// past event always yields "Evento pasado" and an upcoming one never does.
func TimeUntil(e *client.Event, now time.Time) string {
	t := e.Datetime.Time()
	if t.Before(now) {
		return "Evento pasado"
	}
	days := int(t.Sub(now).Hours() / 24)
	switch days {
	case 0:
		return "Hoy"
	case 1:
		return "Mañana"
	default:
		return fmt.Sprintf("En %d días", days)
	}
}
