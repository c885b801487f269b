// File: /geodata/geodata_test.go
package geodata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanworld-api/models"
)

const glassDataset = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-4.42, 36.72]}, "properties": {"tooltip": "Glass bin A"}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-4.43, 36.73]}, "properties": {}},
		{"type": "Feature", "geometry": null, "properties": {"tooltip": "broken"}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-4.44]}, "properties": {"tooltip": "half a point"}}
	]
}`

func TestNormalizeShapesAndDefaults(t *testing.T) {
	fc, err := ParseCollection([]byte(glassDataset))
	require.NoError(t, err)

	zones := Normalize(fc, "vidrio")
	require.Len(t, zones, 2, "malformed features are skipped, not surfaced")

	first := zones[0]
	assert.Equal(t, "Glass bin A", first.Title)
	assert.Equal(t, "vidrio", first.Residuo)
	assert.Equal(t, models.SeverityMedium, first.Severity)
	assert.Equal(t, models.ZoneStatusDirty, first.Status)
	assert.Equal(t, 36.72, first.Latitude)
	assert.Equal(t, -4.42, first.Longitude)
	assert.Nil(t, first.CreatedAt)
	assert.Nil(t, first.Description)
	assert.Nil(t, first.ImgURL)
	assert.True(t, first.IsContainer())

	assert.Equal(t, FallbackTitle, zones[1].Title)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	fc, err := ParseCollection([]byte(glassDataset))
	require.NoError(t, err)

	a := Normalize(fc, "vidrio")
	b := Normalize(fc, "vidrio")
	assert.Empty(t, cmp.Diff(a, b), "same input and category must yield identical output")
}

func TestNormalizeIDsDifferByCategory(t *testing.T) {
	fc, err := ParseCollection([]byte(glassDataset))
	require.NoError(t, err)

	glass := Normalize(fc, "vidrio")
	paper := Normalize(fc, "papel")
	assert.NotEqual(t, glass[0].ID, paper[0].ID)
}

func TestNormalizeNilCollection(t *testing.T) {
	assert.Empty(t, Normalize(nil, "vidrio"))
}

func TestParseCollectionRejectsGarbage(t *testing.T) {
	_, err := ParseCollection([]byte(`{"features": "nope"`))
	assert.Error(t, err)
}
