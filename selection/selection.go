// File: /selection/selection.go
package selection

import (
	"sync"

	"cleanworld-api/client"
	"cleanworld-api/workingset"
)

// State names the overlay currently open. At most one of Reporting,
// ZoneSelected and EventCreation is ever active.
type State int

const (
	Idle State = iota
	Reporting
	ZoneSelected
	EventCreation
)

func (s State) String() string {
	switch s {
	case Reporting:
		return "reporting"
	case ZoneSelected:
		return "zone-selected"
	case EventCreation:
		return "event-creation"
	default:
		return "idle"
	}
}

// Hooks are the side effects some transitions owe the surrounding UI.
// Nil hooks are skipped.
type Hooks struct {
	// ClearCategoryFilters runs when report mode opens, so the pin is
	// placed on the unfiltered map.
	ClearCategoryFilters func()
	// CloseMenu runs when report mode opens.
	CloseMenu func()
	// ClearReportQuery runs when report mode closes, so back-navigation
	// does not re-enter it.
	ClearReportQuery func()
}

// Coordinator tracks which single zone/event pair is selected for detail
// display and keeps the report pin, detail drawer and event-creation modal
// mutually exclusive.
type Coordinator struct {
	mu    sync.Mutex
	state State
	zone  client.Zone
	event *client.Event
	set   *workingset.Set
	hooks Hooks
}

func New(set *workingset.Set, hooks Hooks) *Coordinator {
	return &Coordinator{state: Idle, set: set, hooks: hooks}
}

// State returns the active state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected returns the selected zone and its resolved event, if any.
func (c *Coordinator) Selected() (client.Zone, *client.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != ZoneSelected && c.state != EventCreation {
		return client.Zone{}, nil, false
	}
	return c.zone, c.event, true
}

// EnterReporting opens report mode, exiting any other overlay first.
func (c *Coordinator) EnterReporting() {
	c.mu.Lock()
	c.exitLocked()
	c.state = Reporting
	c.mu.Unlock()

	if c.hooks.ClearCategoryFilters != nil {
		c.hooks.ClearCategoryFilters()
	}
	if c.hooks.CloseMenu != nil {
		c.hooks.CloseMenu()
	}
}

// ExitReporting closes report mode, on submit or cancel alike.
func (c *Coordinator) ExitReporting() {
	c.mu.Lock()
	wasReporting := c.state == Reporting
	if wasReporting {
		c.state = Idle
	}
	c.mu.Unlock()

	if wasReporting && c.hooks.ClearReportQuery != nil {
		c.hooks.ClearReportQuery()
	}
}

// SelectZone opens the detail drawer for the zone, replacing any current
// selection. The zone's event is resolved against the working set; zones
// with no event select with a nil event.
func (c *Coordinator) SelectZone(zone client.Zone) {
	var event *client.Event
	if events := c.set.EventsForZone(zone.ID); len(events) > 0 {
		event = &events[0]
	}

	c.mu.Lock()
	wasReporting := c.state == Reporting
	c.exitLocked()
	c.state = ZoneSelected
	c.zone = zone
	c.event = event
	c.mu.Unlock()

	if wasReporting && c.hooks.ClearReportQuery != nil {
		c.hooks.ClearReportQuery()
	}
}

// StartEventCreation swaps the drawer for the event-creation modal. Only
// valid with a non-container zone selected.
func (c *Coordinator) StartEventCreation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != ZoneSelected || c.zone.IsContainer() {
		return false
	}
	c.state = EventCreation
	c.event = nil
	return true
}

// FinishEventCreation records a confirmed create: the event joins the
// working set and every overlay closes.
func (c *Coordinator) FinishEventCreation(e client.Event) {
	c.set.AppendEvent(e)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exitLocked()
}

// Close returns to Idle from any overlay.
func (c *Coordinator) Close() {
	c.mu.Lock()
	wasReporting := c.state == Reporting
	c.exitLocked()
	c.mu.Unlock()

	if wasReporting && c.hooks.ClearReportQuery != nil {
		c.hooks.ClearReportQuery()
	}
}

func (c *Coordinator) exitLocked() {
	c.state = Idle
	c.zone = client.Zone{}
	c.event = nil
}
