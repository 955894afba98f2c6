package timeline

import "strings"

// defaultColor is the neutral gray used for unrecognized activity types.
const defaultColor = "#9E9E9E"

// activityColors maps upper-cased activity tokens to hex colors, one
// color per travel-mode family.
var activityColors = map[string]string{
	"DRIVING":              "#4285F4",
	"IN_VEHICLE":           "#4285F4",
	"IN_PASSENGER_VEHICLE": "#4285F4",
	"DRIVE":                "#4285F4",
	"IN_TAXI":              "#FFEB3B",
	"MOTORCYCLING":         "#1E90FF",
	"CYCLING":              "#0F9D58",
	"ON_BICYCLE":           "#0F9D58",
	"BICYCLE":              "#0F9D58",
	"WALKING":              "#DB4437",
	"ON_FOOT":              "#DB4437",
	"WALK":                 "#DB4437",
	"RUNNING":              "#DB4437",
	"HIKING":               "#0F9D58",
	"IN_BUS":               "#9C27B0",
	"IN_SUBWAY":            "#673AB7",
	"IN_TRAIN":             "#673AB7",
	"IN_TRAM":              "#673AB7",
	"IN_FERRY":             "#673AB7",
	"FLYING":               "#03A9F4",
	"BOATING":              "#00BCD4",
	"SWIMMING":             "#00BCD4",
	"UNKNOWN":              "#9E9E9E",
}

// activityLabels maps upper-cased activity tokens to display titles.
var activityLabels = map[string]string{
	"IN_VEHICLE":           "Driving",
	"IN_PASSENGER_VEHICLE": "In Vehicle",
	"DRIVE":                "Driving",
	"IN_TAXI":              "Taxi",
	"MOTORCYCLING":         "Motorcycling",
	"ON_BICYCLE":           "Cycling",
	"CYCLING":              "Cycling",
	"BICYCLE":              "Cycling",
	"ON_FOOT":              "Walking",
	"WALKING":              "Walking",
	"WALK":                 "Walking",
	"RUNNING":              "Running",
	"HIKING":               "Hiking",
	"IN_BUS":               "Bus",
	"IN_SUBWAY":            "Subway",
	"IN_TRAIN":             "Train",
	"IN_TRAM":              "Tram",
	"IN_FERRY":             "Ferry",
	"STILL":                "Stationary",
	"FLYING":               "Flying",
	"BOATING":              "Boating",
	"SWIMMING":             "Swimming",
}

// ActivityColor returns the hex color for an activity token. Unknown
// tokens get the neutral gray.
func ActivityColor(token string) string {
	if color, ok := activityColors[strings.ToUpper(token)]; ok {
		return color
	}
	return defaultColor
}

// ActivityLabel returns a display title for an activity token. Unknown
// tokens have underscores replaced with spaces and each word title-cased.
func ActivityLabel(token string) string {
	if label, ok := activityLabels[strings.ToUpper(token)]; ok {
		return label
	}

	words := strings.Fields(strings.ReplaceAll(token, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
