package export

import (
	"encoding/json"
	"testing"

	"github.com/maptrail/timeline2geo/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *timeline.Model {
	return &timeline.Model{
		Visits: []timeline.Visit{
			{
				Name: "Cafe", Lat: 1.0, Lng: 2.0,
				StartTime: "2024-01-15T08:00:00Z",
				EndTime:   "2024-01-15T09:00:00Z",
				PlaceID:   "p1",
			},
		},
		Activities: []timeline.Activity{
			{
				Type:           "WALKING",
				StartTime:      "2024-01-15T09:00:00Z",
				EndTime:        "2024-01-15T09:30:00Z",
				DistanceMeters: 1200,
				Path:           [][2]float64{{1.0, 2.0}, {1.5, 2.5}},
			},
			{
				Type: "STILL",
				Path: [][2]float64{{3.0, 4.0}},
			},
		},
	}
}

func TestGeoJSONFeatureOrderAndCount(t *testing.T) {
	fc := GeoJSON(sampleModel(), nil)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3) // visits first, then activities

	assert.Equal(t, "visit", fc.Features[0].Properties["type"])
	assert.Equal(t, "activity", fc.Features[1].Properties["type"])
	assert.Equal(t, "activity", fc.Features[2].Properties["type"])
}

func TestGeoJSONVisitFeature(t *testing.T) {
	fc := GeoJSON(sampleModel(), nil)
	visit := fc.Features[0]

	assert.Equal(t, "Point", visit.Geometry.Type)
	assert.Equal(t, []float64{2.0, 1.0}, visit.Geometry.Coordinates) // lng, lat

	props := visit.Properties
	assert.Equal(t, "Cafe", props["name"])
	assert.Equal(t, "2024-01-15", props["date"])
	assert.Equal(t, 2024, props["year"])
	assert.Equal(t, "Monday", props["weekday"])
	assert.Equal(t, "p1", props["place_id"])
	assert.Nil(t, props["semantic_type"])
	assert.Equal(t, "#FF0000", props["marker-color"])
	assert.Equal(t, "marker", props["marker-symbol"])
}

func TestGeoJSONActivityFeature(t *testing.T) {
	fc := GeoJSON(sampleModel(), nil)
	walk := fc.Features[1]

	assert.Equal(t, "LineString", walk.Geometry.Type)
	assert.Equal(t, [][]float64{{2.0, 1.0}, {2.5, 1.5}}, walk.Geometry.Coordinates)

	props := walk.Properties
	assert.Equal(t, "Walking", props["name"])
	assert.Equal(t, "WALKING", props["activity_type"])
	assert.Equal(t, 1200.0, props["distance_meters"])
	assert.Equal(t, "#DB4437", props["stroke"])
	assert.Equal(t, 4, props["stroke-width"])
	assert.Equal(t, 0.8, props["stroke-opacity"])
}

func TestGeoJSONSinglePointActivityIsPoint(t *testing.T) {
	fc := GeoJSON(sampleModel(), nil)
	still := fc.Features[2]

	assert.Equal(t, "Point", still.Geometry.Type)
	assert.Equal(t, []float64{4.0, 3.0}, still.Geometry.Coordinates)
	assert.Nil(t, still.Properties["start_time"])
	assert.Nil(t, still.Properties["date"])
}

func TestGeoJSONColorOverrides(t *testing.T) {
	fc := GeoJSON(sampleModel(), map[string]string{"WALKING": "#123456"})
	assert.Equal(t, "#123456", fc.Features[1].Properties["stroke"])
}

func TestGeoJSONIdempotent(t *testing.T) {
	model := sampleModel()

	first, err := json.MarshalIndent(GeoJSON(model, nil), "", "  ")
	require.NoError(t, err)
	second, err := json.MarshalIndent(GeoJSON(model, nil), "", "  ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
