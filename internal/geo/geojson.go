// Package geo handles geographic data structures and coordinate conversions.
package geo

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties"`
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry represents the geometry of a feature. Coordinates holds
// []float64 for a Point and [][]float64 for a LineString, both [Lon, Lat].
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}
