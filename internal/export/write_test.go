package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/maptrail/timeline2geo/internal/geo"
	"github.com/maptrail/timeline2geo/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iosFixture = `[
	{"startTime": "2024-01-15T08:00:00Z", "endTime": "2024-01-15T09:00:00Z",
	 "visit": {"topCandidate": {"name": "Cafe", "placeLocation": "geo:1.0,2.0"}}},
	{"startTime": "2024-01-15T09:00:00Z", "endTime": "2024-01-15T09:30:00Z",
	 "activity": {"start": "geo:1.0,2.0", "end": "geo:1.5,2.5",
	              "distanceMeters": 1200, "topCandidate": {"type": "WALKING"}}}
]`

func runOptions(dir string) Options {
	return Options{
		Dir:          dir,
		BaseName:     "Timeline",
		DocName:      "Timeline Export - Timeline",
		WriteGeoJSON: true,
		WriteKML:     true,
		WriteKMZ:     true,
	}
}

func TestRunWritesAllOutputs(t *testing.T) {
	dir := t.TempDir()

	result, err := Run([]byte(iosFixture), runOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, timeline.FormatIOS, result.Format)
	assert.Equal(t, 1, result.Visits)
	assert.Equal(t, 1, result.Activities)
	require.Len(t, result.Files, 3)

	for _, name := range []string{"Timeline.geojson", "Timeline.kml", "Timeline.kmz"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Timeline.geojson"))
	require.NoError(t, err)

	var fc geo.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Len(t, fc.Features, 2)
}

func TestRunCompactGeoJSON(t *testing.T) {
	dir := t.TempDir()

	opts := runOptions(dir)
	opts.WriteKML = false
	opts.WriteKMZ = false
	opts.Compact = true

	_, err := Run([]byte(iosFixture), opts)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Timeline.geojson"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n ")
	assert.True(t, json.Valid(data))
}

func TestRunFormatSelection(t *testing.T) {
	dir := t.TempDir()

	opts := runOptions(dir)
	opts.WriteGeoJSON = false
	opts.WriteKML = false

	result, err := Run([]byte(iosFixture), opts)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	_, err = os.Stat(filepath.Join(dir, "Timeline.kmz"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Timeline.kml"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunUnrecognizedFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := Run([]byte(`{"locations": []}`), runOptions(dir))
	assert.ErrorIs(t, err, timeline.ErrUnrecognizedFormat)

	// nothing gets written when parsing fails
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunInvalidJSON(t *testing.T) {
	_, err := Run([]byte(`{"timelineObjects": [`), runOptions(t.TempDir()))
	assert.Error(t, err)
}
