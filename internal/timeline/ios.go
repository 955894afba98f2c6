package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/maptrail/timeline2geo/internal/geo"
)

// Internal structures for JSON parsing
type iosRecord struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Visit     *struct {
		TopCandidate iosCandidate `json:"topCandidate"`
	} `json:"visit"`
	Activity *struct {
		Start          string       `json:"start"`
		End            string       `json:"end"`
		DistanceMeters flexFloat    `json:"distanceMeters"`
		TopCandidate   iosCandidate `json:"topCandidate"`
	} `json:"activity"`
}

type iosCandidate struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	PlaceID       string `json:"placeID"`
	SemanticType  string `json:"semanticType"`
	PlaceLocation string `json:"placeLocation"` // "geo:lat,lng"
}

// iosParser handles the iOS export: a bare array of records where every
// location is a "geo:lat,lng" string and activities carry only their
// start and end points.
type iosParser struct{}

func (iosParser) Parse(data []byte) (*Model, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing ios timeline: %w", err)
	}

	model := &Model{}

	for _, raw := range records {
		var rec iosRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.StartTime == "" || rec.EndTime == "" {
			continue
		}

		switch {
		case rec.Visit != nil:
			cand := rec.Visit.TopCandidate
			lat, lng, ok := geo.ParseGeoURI(cand.PlaceLocation)
			if !ok || !geo.ValidLatLng(lat, lng) {
				continue
			}

			model.Visits = append(model.Visits, Visit{
				Name:         normalizeName(cand.Name, cand.SemanticType),
				Lat:          lat,
				Lng:          lng,
				StartTime:    rec.StartTime,
				EndTime:      rec.EndTime,
				PlaceID:      cand.PlaceID,
				SemanticType: cand.SemanticType,
			})

		case rec.Activity != nil:
			act := rec.Activity

			var path [][2]float64
			if lat, lng, ok := geo.ParseGeoURI(act.Start); ok && geo.ValidLatLng(lat, lng) {
				path = append(path, [2]float64{lat, lng})
			}
			if lat, lng, ok := geo.ParseGeoURI(act.End); ok && geo.ValidLatLng(lat, lng) {
				end := [2]float64{lat, lng}
				// A start-only segment should stay a single point
				if len(path) == 0 || path[0] != end {
					path = append(path, end)
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
				StartTime:      rec.StartTime,
				EndTime:        rec.EndTime,
				DistanceMeters: float64(act.DistanceMeters),
				Path:           path,
			})
		}
	}

	return model, nil
}
