package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/maptrail/timeline2geo/internal/geo"
)

// Internal structures for JSON parsing
type semanticRoot struct {
	SemanticSegments []json.RawMessage `json:"semanticSegments"`
}

type semanticSegment struct {
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	TimelinePath []struct {
		Point string `json:"point"` // "12.345°, 67.890°"
	} `json:"timelinePath"`
	Visit *struct {
		TopCandidate struct {
			Name          string `json:"name"`
			PlaceID       string `json:"placeId"`
			SemanticType  string `json:"semanticType"`
			PlaceLocation struct {
				LatLng string `json:"latLng"`
			} `json:"placeLocation"`
		} `json:"topCandidate"`
	} `json:"visit"`
	Activity *struct {
		Start struct {
			LatLng string `json:"latLng"`
		} `json:"start"`
		End struct {
			LatLng string `json:"latLng"`
		} `json:"end"`
		DistanceMeters flexFloat `json:"distanceMeters"`
		TopCandidate   struct {
			Type string `json:"type"`
		} `json:"topCandidate"`
	} `json:"activity"`
}

// semanticParser handles the newer on-device export:
// {"semanticSegments": [...]} with degree-annotated coordinate strings.
// Activity paths come from the segment's timelinePath, falling back to
// the activity's own start/end coordinates.
type semanticParser struct{}

func (semanticParser) Parse(data []byte) (*Model, error) {
	var root semanticRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing semantic timeline: %w", err)
	}

	model := &Model{}

	for _, raw := range root.SemanticSegments {
		var seg semanticSegment
		if err := json.Unmarshal(raw, &seg); err != nil {
			continue
		}

		switch {
		case seg.Visit != nil:
			cand := seg.Visit.TopCandidate
			lat, lng, ok := geo.ParseDegrees(cand.PlaceLocation.LatLng)
			if !ok || !geo.ValidLatLng(lat, lng) {
				continue
			}

			model.Visits = append(model.Visits, Visit{
				Name:         normalizeName(cand.Name, cand.SemanticType),
				Lat:          lat,
				Lng:          lng,
				StartTime:    seg.StartTime,
				EndTime:      seg.EndTime,
				PlaceID:      cand.PlaceID,
				SemanticType: cand.SemanticType,
			})

		case seg.Activity != nil:
			act := seg.Activity

			var path [][2]float64
			for _, pt := range seg.TimelinePath {
				if lat, lng, ok := geo.ParseDegrees(pt.Point); ok && geo.ValidLatLng(lat, lng) {
					path = append(path, [2]float64{lat, lng})
				}
			}

			if len(path) < 2 {
				if lat, lng, ok := geo.ParseDegrees(act.Start.LatLng); ok && geo.ValidLatLng(lat, lng) {
					path = [][2]float64{{lat, lng}}
				}
				if lat, lng, ok := geo.ParseDegrees(act.End.LatLng); ok && geo.ValidLatLng(lat, lng) {
					path = append(path, [2]float64{lat, lng})
				}
			}
			if len(path) == 0 {
				continue
			}

			activityType := act.TopCandidate.Type
			if activityType == "" {
				activityType = "UNKNOWN"
			}

			model.Activities = append(model.Activities, Activity{
				Type:           activityType,
				StartTime:      seg.StartTime,
				EndTime:        seg.EndTime,
				DistanceMeters: float64(act.DistanceMeters),
				Path:           path,
			})
		}
	}

	return model, nil
}
