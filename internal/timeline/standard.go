package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/maptrail/timeline2geo/internal/geo"
)

// Internal structures for JSON parsing
type standardRoot struct {
	TimelineObjects []json.RawMessage `json:"timelineObjects"`
}

type standardObject struct {
	PlaceVisit *struct {
		Location struct {
			LatitudeE7   int64  `json:"latitudeE7"`
			LongitudeE7  int64  `json:"longitudeE7"`
			Name         string `json:"name"`
			PlaceID      string `json:"placeId"`
			SemanticType string `json:"semanticType"`
		} `json:"location"`
		Duration standardDuration `json:"duration"`
	} `json:"placeVisit"`
	ActivitySegment *struct {
		Duration     standardDuration `json:"duration"`
		Distance     flexFloat        `json:"distance"`
		ActivityType string           `json:"activityType"`
		Activities   []struct {
			ActivityType string `json:"activityType"`
		} `json:"activities"`
		StartLocation e7Location `json:"startLocation"`
		EndLocation   e7Location `json:"endLocation"`
		WaypointPath  struct {
			Waypoints []standardPoint `json:"waypoints"`
		} `json:"waypointPath"`
		SimplifiedRawPath struct {
			Points []standardPoint `json:"points"`
		} `json:"simplifiedRawPath"`
		TimelinePath struct {
			Points []standardPoint `json:"points"`
		} `json:"timelinePath"`
	} `json:"activitySegment"`
}

type standardDuration struct {
	StartTimestamp string `json:"startTimestamp"`
	EndTimestamp   string `json:"endTimestamp"`
}

type e7Location struct {
	LatitudeE7  int64 `json:"latitudeE7"`
	LongitudeE7 int64 `json:"longitudeE7"`
}

// standardPoint accepts both the E7 fixed-point and the plain float
// encodings seen in path entries, keyed independently per axis.
type standardPoint struct {
	LatE7 *int64  `json:"latE7"`
	LngE7 *int64  `json:"lngE7"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

func (p standardPoint) latLng() (float64, float64) {
	lat, lng := p.Lat, p.Lng
	if p.LatE7 != nil {
		lat = geo.FromE7(*p.LatE7)
	}
	if p.LngE7 != nil {
		lng = geo.FromE7(*p.LngE7)
	}
	return lat, lng
}

// standardParser handles the Takeout export: {"timelineObjects": [...]}
// with E7 fixed-point integer coordinates. Activity paths come from the
// first non-empty of waypointPath, simplifiedRawPath and timelinePath,
// with the segment's own start/end locations as a last resort.
type standardParser struct{}

func (standardParser) Parse(data []byte) (*Model, error) {
	var root standardRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing standard timeline: %w", err)
	}

	model := &Model{}

	for _, raw := range root.TimelineObjects {
		var obj standardObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			continue
		}

		switch {
		case obj.PlaceVisit != nil:
			loc := obj.PlaceVisit.Location
			lat := geo.FromE7(loc.LatitudeE7)
			lng := geo.FromE7(loc.LongitudeE7)
			if lat == 0 || lng == 0 || !geo.ValidLatLng(lat, lng) {
				continue
			}

			model.Visits = append(model.Visits, Visit{
				Name:         normalizeName(loc.Name, loc.SemanticType),
				Lat:          lat,
				Lng:          lng,
				StartTime:    obj.PlaceVisit.Duration.StartTimestamp,
				EndTime:      obj.PlaceVisit.Duration.EndTimestamp,
				PlaceID:      loc.PlaceID,
				SemanticType: loc.SemanticType,
			})

		case obj.ActivitySegment != nil:
			seg := obj.ActivitySegment

			// First non-empty source list wins, even if none of its
			// points turn out to be usable.
			points := seg.WaypointPath.Waypoints
			if len(points) == 0 {
				points = seg.SimplifiedRawPath.Points
			}
			if len(points) == 0 {
				points = seg.TimelinePath.Points
			}

			var path [][2]float64
			for _, pt := range points {
				lat, lng := pt.latLng()
				if lat != 0 && lng != 0 && geo.ValidLatLng(lat, lng) {
					path = append(path, [2]float64{lat, lng})
				}
			}

			if len(path) < 2 {
				startLat := geo.FromE7(seg.StartLocation.LatitudeE7)
				startLng := geo.FromE7(seg.StartLocation.LongitudeE7)
				endLat := geo.FromE7(seg.EndLocation.LatitudeE7)
				endLng := geo.FromE7(seg.EndLocation.LongitudeE7)

				if startLat != 0 && startLng != 0 {
					path = [][2]float64{{startLat, startLng}}
				}
				if endLat != 0 && endLng != 0 {
					path = append(path, [2]float64{endLat, endLng})
				}
			}
			if len(path) == 0 {
				continue
			}

			activityType := seg.ActivityType
			if activityType == "" && len(seg.Activities) > 0 {
				activityType = seg.Activities[0].ActivityType
			}
			if activityType == "" {
				activityType = "UNKNOWN"
			}

			model.Activities = append(model.Activities, Activity{
				Type:           activityType,
				StartTime:      seg.Duration.StartTimestamp,
				EndTime:        seg.Duration.EndTimestamp,
				DistanceMeters: float64(seg.Distance),
				Path:           path,
			})
		}
	}

	return model, nil
}
