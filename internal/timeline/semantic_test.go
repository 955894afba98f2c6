package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticParseVisitAndActivity(t *testing.T) {
	data := `{"semanticSegments": [
		{
			"startTime": "2024-06-01T12:00:00Z",
			"endTime": "2024-06-01T13:00:00Z",
			"visit": {"topCandidate": {
				"name": "Museum",
				"placeId": "xyz789",
				"placeLocation": {"latLng": "48.8606°, 2.3376°"}
			}}
		},
		{
			"startTime": "2024-06-01T13:00:00Z",
			"endTime": "2024-06-01T13:30:00Z",
			"timelinePath": [
				{"point": "48.8606°, 2.3376°"},
				{"point": "48.8530°, 2.3499°"}
			],
			"activity": {
				"distanceMeters": 1500,
				"topCandidate": {"type": "WALKING"},
				"start": {"latLng": "48.8606°, 2.3376°"},
				"end": {"latLng": "48.8530°, 2.3499°"}
			}
		}
	]}`

	model, format, err := Load([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, FormatSemantic, format)
	require.Len(t, model.Visits, 1)
	require.Len(t, model.Activities, 1)

	visit := model.Visits[0]
	assert.Equal(t, "Museum", visit.Name)
	assert.Equal(t, 48.8606, visit.Lat)
	assert.Equal(t, 2.3376, visit.Lng)
	assert.Equal(t, "xyz789", visit.PlaceID)

	activity := model.Activities[0]
	assert.Equal(t, "WALKING", activity.Type)
	assert.Equal(t, 1500.0, activity.DistanceMeters)
	assert.Equal(t, [][2]float64{{48.8606, 2.3376}, {48.853, 2.3499}}, activity.Path)
}

func TestSemanticActivityFallbackToStartEnd(t *testing.T) {
	data := `{"semanticSegments": [
		{
			"startTime": "2024-06-01T13:00:00Z",
			"endTime": "2024-06-01T13:30:00Z",
			"activity": {
				"topCandidate": {"type": "CYCLING"},
				"start": {"latLng": "1.0°, 2.0°"},
				"end": {"latLng": "3.0°, 4.0°"}
			}
		}
	]}`

	model, err := semanticParser{}.Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, model.Activities, 1)
	assert.Equal(t, [][2]float64{{1.0, 2.0}, {3.0, 4.0}}, model.Activities[0].Path)
}

func TestSemanticVisitBadCoordinatesDropped(t *testing.T) {
	data := `{"semanticSegments": [
		{"startTime": "2024-06-01T12:00:00Z", "endTime": "2024-06-01T13:00:00Z",
		 "visit": {"topCandidate": {"name": "Lost", "placeLocation": {"latLng": "nowhere"}}}},
		{"startTime": "2024-06-01T14:00:00Z", "endTime": "2024-06-01T15:00:00Z",
		 "visit": {"topCandidate": {"name": "Found", "placeLocation": {"latLng": "1.0°, 2.0°"}}}}
	]}`

	model, err := semanticParser{}.Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, model.Visits, 1)
	assert.Equal(t, "Found", model.Visits[0].Name)
}

func TestSemanticUnnamedVisit(t *testing.T) {
	data := `{"semanticSegments": [
		{"startTime": "2024-06-01T12:00:00Z", "endTime": "2024-06-01T13:00:00Z",
		 "visit": {"topCandidate": {"placeLocation": {"latLng": "1.0°, 2.0°"}}}}
	]}`

	model, err := semanticParser{}.Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, model.Visits, 1)
	assert.Equal(t, "Unknown Location", model.Visits[0].Name)
}
