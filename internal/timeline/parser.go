package timeline

import (
	"bytes"
	"strconv"
)

// Parser converts one schema's record list into the normalized model.
// Implementations never fail on a single malformed record; the record
// is skipped and parsing continues. Only structural failures abort.
type Parser interface {
	Parse(data []byte) (*Model, error)
}

// ParserFor returns the parser for a detected format.
func ParserFor(f Format) Parser {
	switch f {
	case FormatIOS:
		return iosParser{}
	case FormatStandard:
		return standardParser{}
	case FormatSemantic:
		return semanticParser{}
	}
	return nil
}

// Load detects the schema and parses the whole document.
func Load(data []byte) (*Model, Format, error) {
	format, err := Detect(data)
	if err != nil {
		return nil, "", err
	}

	model, err := ParserFor(format).Parse(data)
	if err != nil {
		return nil, format, err
	}

	return model, format, nil
}

// normalizeName picks the visit display name. Places the source marks as
// home or work are always shown as "Home"/"Work" regardless of the
// source's own place name.
func normalizeName(name, semanticType string) string {
	switch semanticType {
	case "TYPE_HOME", "Home":
		return "Home"
	case "TYPE_WORK", "Work":
		return "Work"
	}
	if name == "" {
		return "Unknown Location"
	}
	return name
}

// flexFloat tolerates numbers encoded as JSON strings; some exports
// carry distanceMeters as "123.45". Anything unparseable becomes 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}
