// Package export renders the normalized timeline model as GeoJSON, KML
// and KMZ, and writes the output files.
package export

import (
	"strings"

	"github.com/maptrail/timeline2geo/internal/geo"
	"github.com/maptrail/timeline2geo/internal/timeline"
)

// colorFor applies profile overrides before the built-in vocabulary.
func colorFor(token string, overrides map[string]string) string {
	if color, ok := overrides[strings.ToUpper(token)]; ok {
		return color
	}
	return timeline.ActivityColor(token)
}

func strOrNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func intOrNil(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// GeoJSON renders the model as an RFC 7946 FeatureCollection: all visits
// as Point features in source order, followed by all activities as
// LineString features (Point when only a single path point survived
// parsing). colorOverrides may be nil.
func GeoJSON(model *timeline.Model, colorOverrides map[string]string) geo.FeatureCollection {
	fc := geo.FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]geo.Feature, 0, len(model.Visits)+len(model.Activities)),
	}

	for _, visit := range model.Visits {
		parts := timeline.ExtractTimeParts(visit.StartTime)

		fc.Features = append(fc.Features, geo.Feature{
			Type: "Feature",
			Geometry: geo.Geometry{
				Type:        "Point",
				Coordinates: []float64{visit.Lng, visit.Lat},
			},
			Properties: map[string]interface{}{
				"name":          visit.Name,
				"type":          "visit",
				"date":          strOrNil(parts.Date),
				"year":          intOrNil(parts.Year),
				"month":         intOrNil(parts.Month),
				"day":           intOrNil(parts.Day),
				"weekday":       strOrNil(parts.Weekday),
				"start_time":    strOrNil(visit.StartTime),
				"end_time":      strOrNil(visit.EndTime),
				"place_id":      strOrNil(visit.PlaceID),
				"semantic_type": strOrNil(visit.SemanticType),
				"marker-color":  "#FF0000",
				"marker-symbol": "marker",
			},
		})
	}

	for _, activity := range model.Activities {
		parts := timeline.ExtractTimeParts(activity.StartTime)

		var geometry geo.Geometry
		if len(activity.Path) >= 2 {
			coords := make([][]float64, 0, len(activity.Path))
			for _, pt := range activity.Path {
				coords = append(coords, []float64{pt[1], pt[0]}) // GeoJSON is lng, lat
			}
			geometry = geo.Geometry{Type: "LineString", Coordinates: coords}
		} else {
			geometry = geo.Geometry{
				Type:        "Point",
				Coordinates: []float64{activity.Path[0][1], activity.Path[0][0]},
			}
		}

		fc.Features = append(fc.Features, geo.Feature{
			Type:     "Feature",
			Geometry: geometry,
			Properties: map[string]interface{}{
				"name":            timeline.ActivityLabel(activity.Type),
				"type":            "activity",
				"activity_type":   activity.Type,
				"date":            strOrNil(parts.Date),
				"year":            intOrNil(parts.Year),
				"month":           intOrNil(parts.Month),
				"day":             intOrNil(parts.Day),
				"weekday":         strOrNil(parts.Weekday),
				"start_time":      strOrNil(activity.StartTime),
				"end_time":        strOrNil(activity.EndTime),
				"distance_meters": activity.DistanceMeters,
				"stroke":          colorFor(activity.Type, colorOverrides),
				"stroke-width":    4,
				"stroke-opacity":  0.8,
			},
		})
	}

	return fc
}
