// File: /workingset/workingset_test.go
package workingset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanworld-api/client"
)

func reportedZone(id client.ID, title string) client.Zone {
	now := time.Now()
	return client.Zone{ID: id, Title: title, Status: "SUCIO", CreatedAt: &now}
}

func containerZone(id client.ID, residuo string) client.Zone {
	return client.Zone{ID: id, Title: "Contenedor", Residuo: residuo, Status: "SUCIO"}
}

func TestReplaceOrdersReportedThenContainersByCategory(t *testing.T) {
	set := New()
	set.Replace(
		[]client.Zone{reportedZone("1", "Playa"), reportedZone("2", "Parque")},
		map[string][]client.Zone{
			"papel":   {containerZone("c-papel", "papel")},
			"envases": {containerZone("c-envases", "envases")},
			"vidrio":  {containerZone("c-vidrio", "vidrio")},
		},
		nil,
	)

	var ids []client.ID
	for _, z := range set.Zones() {
		ids = append(ids, z.ID)
	}
	assert.Equal(t, []client.ID{"1", "2", "c-envases", "c-vidrio", "c-papel"}, ids)
}

func TestResolveZoneAndOrphans(t *testing.T) {
	set := New()
	set.Replace(
		[]client.Zone{reportedZone("7", "Río")},
		nil,
		[]client.Event{
			{ID: "10", Title: "Limpieza", Zone: &client.Zone{ID: "7"}},
			{ID: "11", Title: "Huérfano", ZoneID: "404"},
		},
	)

	events := set.Events()
	require.Len(t, events, 2, "orphaned events stay in the list")

	zone, ok := set.ResolveZone(&events[0])
	require.True(t, ok)
	assert.Equal(t, "Río", zone.Title)

	_, ok = set.ResolveZone(&events[1])
	assert.False(t, ok, "orphaned events resolve to nothing")

	assert.Len(t, set.EventsForZone("7"), 1)
	assert.Empty(t, set.EventsForZone("404"))
}

func TestRemoveZone(t *testing.T) {
	set := New()
	set.Replace(
		[]client.Zone{reportedZone("7", "Río"), reportedZone("8", "Playa")},
		map[string][]client.Zone{"vidrio": {containerZone("c-1", "vidrio")}},
		[]client.Event{{ID: "10", ZoneID: "7"}},
	)

	assert.True(t, set.RemoveZone("7"))
	_, found := set.Zone("7")
	assert.False(t, found)
	_, found = set.Zone("8")
	assert.True(t, found, "other zones keep resolving after the index rebuild")

	events := set.Events()
	require.Len(t, events, 1)
	_, ok := set.ResolveZone(&events[0])
	assert.False(t, ok, "the event outlives the zone as an orphan")
}

func TestRemoveZoneRefusesContainers(t *testing.T) {
	set := New()
	set.Replace(nil, map[string][]client.Zone{"vidrio": {containerZone("c-1", "vidrio")}}, nil)

	assert.False(t, set.RemoveZone("c-1"))
	_, found := set.Zone("c-1")
	assert.True(t, found)
}

func TestAppendZoneAndEvent(t *testing.T) {
	set := New()
	set.AppendZone(reportedZone("1", "Playa"))
	set.AppendEvent(client.Event{ID: "10", ZoneID: "1"})

	zone, found := set.Zone("1")
	require.True(t, found)
	assert.Equal(t, "Playa", zone.Title)
	assert.Len(t, set.EventsForZone("1"), 1)
}

func TestReplaceEventAttendees(t *testing.T) {
	set := New()
	set.Replace(nil, nil, []client.Event{{ID: "10"}})

	assert.True(t, set.ReplaceEventAttendees("10", []client.User{{ID: "1"}}))
	assert.False(t, set.ReplaceEventAttendees("404", nil))

	events := set.Events()
	assert.True(t, events[0].HasAttendee("1"))
}

type stubFetcher struct {
	zones     []client.Zone
	events    []client.Event
	zonesErr  error
	eventsErr error
}

func (f *stubFetcher) Zones(ctx context.Context) ([]client.Zone, error) {
	return f.zones, f.zonesErr
}

func (f *stubFetcher) Events(ctx context.Context) ([]client.Event, error) {
	return f.events, f.eventsErr
}

func TestRefreshSwapsAtomically(t *testing.T) {
	set := New()
	set.Replace([]client.Zone{reportedZone("old", "Antigua")}, nil, []client.Event{{ID: "old-event"}})

	fetcher := &stubFetcher{
		zones:  []client.Zone{reportedZone("1", "Playa")},
		events: []client.Event{{ID: "10", ZoneID: "1"}},
	}
	require.NoError(t, set.Refresh(context.Background(), fetcher, nil))

	zones := set.Zones()
	require.Len(t, zones, 1)
	assert.Equal(t, client.ID("1"), zones[0].ID)
	require.Len(t, set.Events(), 1)
}

func TestRefreshKeepsPriorSetOnError(t *testing.T) {
	set := New()
	set.Replace([]client.Zone{reportedZone("1", "Playa")}, nil, []client.Event{{ID: "10"}})

	fetcher := &stubFetcher{eventsErr: errors.New("backend down")}
	assert.Error(t, set.Refresh(context.Background(), fetcher, nil))

	assert.Len(t, set.Zones(), 1, "a failed refresh must not leave half-updated data")
	assert.Len(t, set.Events(), 1)
}
