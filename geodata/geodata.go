// File: /geodata/geodata.go
package geodata

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"cleanworld-api/client"
	"cleanworld-api/models"
)

// Categories lists the recycling categories in display order. The aggregator
// appends container zones in this order after the user-reported zones.
var Categories = []string{
	"envases",
	"vidrio",
	"papel",
	"aceite",
	"pilas",
	"ropa",
	"restos",
	"industria",
}

// FallbackTitle labels container features whose dataset carries no tooltip.
const FallbackTitle = "Zona sin título"

// containerNamespace seeds the deterministic synthetic ids so the same
// feature always maps to the same zone id across loads.
var containerNamespace = uuid.MustParse("8f9a1f4e-53c2-4c46-9d05-cc0a62e14c21")

// FeatureCollection is the slice of GeoJSON the container datasets use.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string       `json:"type"`
	Geometry   *Geometry    `json:"geometry"`
	Properties FeatureProps `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type FeatureProps struct {
	Tooltip string `json:"tooltip"`
}

// ParseCollection decodes a raw per-category dataset.
func ParseCollection(data []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("geodata: invalid feature collection: %w", err)
	}
	return &fc, nil
}

// Normalize converts one category's features into container zones. Features
// with missing or malformed geometry are skipped so bad static data never
// breaks the map. Pure: same input and category always yields the same
// output, ids included.
func Normalize(fc *FeatureCollection, category string) []client.Zone {
	if fc == nil {
		return nil
	}
	zones := make([]client.Zone, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry == nil || len(f.Geometry.Coordinates) < 2 {
			continue
		}
		// GeoJSON order is [longitude, latitude].
		lon := f.Geometry.Coordinates[0]
		lat := f.Geometry.Coordinates[1]

		title := f.Properties.Tooltip
		if title == "" {
			title = FallbackTitle
		}

		zones = append(zones, client.Zone{
			ID:        containerID(category, lat, lon, title),
			Title:     title,
			Latitude:  lat,
			Longitude: lon,
			Severity:  models.SeverityMedium,
			Status:    models.ZoneStatusDirty,
			Residuo:   category,
		})
	}
	return zones
}

func containerID(category string, lat, lon float64, title string) client.ID {
	seed := fmt.Sprintf("%s|%.7f|%.7f|%s", category, lat, lon, title)
	return client.ID(uuid.NewSHA1(containerNamespace, []byte(seed)).String())
}
