// File: /selection/selection_test.go
package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanworld-api/client"
	"cleanworld-api/workingset"
)

func seededSet() *workingset.Set {
	set := workingset.New()
	set.Replace(
		[]client.Zone{{ID: "7", Title: "Río"}, {ID: "8", Title: "Playa"}},
		map[string][]client.Zone{"vidrio": {{ID: "c-1", Residuo: "vidrio"}}},
		[]client.Event{{ID: "10", Title: "Limpieza", ZoneID: "7"}},
	)
	return set
}

func TestSelectZoneResolvesEvent(t *testing.T) {
	c := New(seededSet(), Hooks{})

	c.SelectZone(client.Zone{ID: "7", Title: "Río"})
	zone, event, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, client.ID("7"), zone.ID)
	require.NotNil(t, event)
	assert.Equal(t, client.ID("10"), event.ID)

	c.SelectZone(client.Zone{ID: "8", Title: "Playa"})
	zone, event, ok = c.Selected()
	require.True(t, ok)
	assert.Equal(t, client.ID("8"), zone.ID, "a new selection replaces the old one")
	assert.Nil(t, event)
}

func TestEnterReportingRunsHooksAndExcludesSelection(t *testing.T) {
	var clearedFilters, closedMenu bool
	c := New(seededSet(), Hooks{
		ClearCategoryFilters: func() { clearedFilters = true },
		CloseMenu:            func() { closedMenu = true },
	})

	c.SelectZone(client.Zone{ID: "7"})
	c.EnterReporting()

	assert.Equal(t, Reporting, c.State())
	assert.True(t, clearedFilters)
	assert.True(t, closedMenu)

	_, _, ok := c.Selected()
	assert.False(t, ok, "report mode and the drawer are never open together")
}

func TestExitReportingClearsQueryParam(t *testing.T) {
	var clearedQuery int
	c := New(seededSet(), Hooks{ClearReportQuery: func() { clearedQuery++ }})

	c.EnterReporting()
	c.ExitReporting()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, clearedQuery)

	// Exiting when not reporting is a no-op.
	c.ExitReporting()
	assert.Equal(t, 1, clearedQuery)
}

func TestSelectZoneWhileReportingExitsReportMode(t *testing.T) {
	var clearedQuery bool
	c := New(seededSet(), Hooks{ClearReportQuery: func() { clearedQuery = true }})

	c.EnterReporting()
	c.SelectZone(client.Zone{ID: "7"})

	assert.Equal(t, ZoneSelected, c.State())
	assert.True(t, clearedQuery, "leaving report mode must drop the query parameter")
}

func TestEventCreationFlow(t *testing.T) {
	set := seededSet()
	c := New(set, Hooks{})

	assert.False(t, c.StartEventCreation(), "no zone selected yet")

	c.SelectZone(client.Zone{ID: "8", Title: "Playa"})
	require.True(t, c.StartEventCreation())
	assert.Equal(t, EventCreation, c.State())

	zone, _, ok := c.Selected()
	require.True(t, ok, "the target zone stays addressable while the modal is open")
	assert.Equal(t, client.ID("8"), zone.ID)

	c.FinishEventCreation(client.Event{ID: "11", ZoneID: "8"})
	assert.Equal(t, Idle, c.State())
	assert.Len(t, set.EventsForZone("8"), 1, "the confirmed event joins the working set")
}

func TestStartEventCreationRefusesContainerZones(t *testing.T) {
	c := New(seededSet(), Hooks{})
	c.SelectZone(client.Zone{ID: "c-1", Residuo: "vidrio"})
	assert.False(t, c.StartEventCreation())
	assert.Equal(t, ZoneSelected, c.State())
}

func TestCloseReturnsToIdleFromAnyOverlay(t *testing.T) {
	c := New(seededSet(), Hooks{})

	c.SelectZone(client.Zone{ID: "7"})
	c.Close()
	assert.Equal(t, Idle, c.State())

	c.SelectZone(client.Zone{ID: "8"})
	require.True(t, c.StartEventCreation())
	c.Close()
	assert.Equal(t, Idle, c.State())
}
