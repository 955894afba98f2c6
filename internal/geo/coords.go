package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// degreesRegex captures two signed decimal numbers, optionally annotated
// with degree signs, e.g. "12.345°, 67.890°".
var degreesRegex = regexp.MustCompile(`(-?\d+\.?\d*)\s*°?,?\s*(-?\d+\.?\d*)`)

// ParseGeoURI parses "geo:lat,lng" location strings.
func ParseGeoURI(s string) (lat, lng float64, ok bool) {
	const prefix = "geo:"
	if !strings.HasPrefix(s, prefix) {
		return 0, 0, false
	}

	latStr, lngStr, found := strings.Cut(s[len(prefix):], ",")
	if !found {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}

	return lat, lng, true
}

// ParseDegrees parses degree-annotated coordinate strings like
// "12.345°, 67.890°". The degree signs and comma are optional.
func ParseDegrees(s string) (lat, lng float64, ok bool) {
	if s == "" {
		return 0, 0, false
	}

	match := degreesRegex.FindStringSubmatch(s)
	if match == nil {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(match[1], 64)
	lng, errLng := strconv.ParseFloat(match[2], 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}

	return lat, lng, true
}

// FromE7 converts an E7 fixed-point coordinate to degrees.
func FromE7(v int64) float64 {
	return float64(v) / 1e7
}

// ValidLatLng reports whether the pair is within WGS84 bounds.
func ValidLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
