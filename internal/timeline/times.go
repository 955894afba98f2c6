package timeline

import (
	"strconv"
	"time"
)

// TimeParts holds calendar fields derived from a raw source timestamp.
// Zero values mean the field could not be determined.
type TimeParts struct {
	Date    string // YYYY-MM-DD
	Year    int
	Month   int
	Day     int
	Weekday string // full name, e.g. "Monday"
}

// isoLayouts are tried in order for the structured parse. time.Parse
// tolerates fractional seconds with any of them.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(ts string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractTimeParts derives date, year, month, day and weekday from a raw
// timestamp string. A structured ISO-8601 parse is attempted first; on
// failure each field independently falls back to a fixed substring slice
// of the raw value. The weekday has no substring fallback and is only
// set when the structured parse succeeds.
func ExtractTimeParts(ts string) TimeParts {
	var parts TimeParts
	if ts == "" {
		return parts
	}

	if t, ok := parseISO(ts); ok {
		parts.Date = t.Format("2006-01-02")
		parts.Year = t.Year()
		parts.Month = int(t.Month())
		parts.Day = t.Day()
		parts.Weekday = t.Weekday().String()
		return parts
	}

	if len(ts) >= 10 {
		parts.Date = ts[:10]
	}
	if len(ts) >= 4 {
		if year, err := strconv.Atoi(ts[0:4]); err == nil {
			parts.Year = year
		}
	}
	if len(ts) >= 7 {
		if month, err := strconv.Atoi(ts[5:7]); err == nil {
			parts.Month = month
		}
	}
	if len(ts) >= 10 {
		if day, err := strconv.Atoi(ts[8:10]); err == nil {
			parts.Day = day
		}
	}

	return parts
}
