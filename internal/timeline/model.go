// Package timeline normalizes personal location history exports into a
// single model of visits and activities. Three mutually incompatible
// export schemas are supported and detected from the document shape.
package timeline

// Visit is a recorded stay at a geographic place.
type Visit struct {
	Name         string
	Lat          float64
	Lng          float64
	StartTime    string // raw source timestamp, "" when absent
	EndTime      string
	PlaceID      string
	SemanticType string
}

// Activity is a recorded movement segment between places.
type Activity struct {
	Type           string // raw source token, e.g. "IN_VEHICLE"
	StartTime      string
	EndTime        string
	DistanceMeters float64
	Path           [][2]float64 // (lat, lng) pairs in temporal order, len >= 1
}

// Model is the normalized timeline. Both slices keep source encounter
// order and are never mutated after parsing.
type Model struct {
	Visits     []Visit
	Activities []Activity
}
