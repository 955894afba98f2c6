package timeline

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Format identifies one of the supported timeline export schemas.
type Format string

const (
	// FormatIOS is the iOS on-device export: a bare array of records
	// with "geo:lat,lng" location strings.
	FormatIOS Format = "ios"
	// FormatStandard is the Takeout export: {"timelineObjects": [...]}
	// with E7 fixed-point coordinates.
	FormatStandard Format = "standard"
	// FormatSemantic is the newer on-device export:
	// {"semanticSegments": [...]} with degree-annotated coordinates.
	FormatSemantic Format = "semantic"
)

// ErrUnrecognizedFormat is returned when the document matches none of
// the known timeline shapes. It aborts the whole run; no partial
// conversion is attempted.
var ErrUnrecognizedFormat = errors.New("unrecognized timeline format")

// Detect inspects the root shape of the parsed document and selects a
// parsing strategy. No schema version field exists in any of the
// exports, so the shape is all there is to go on.
func Detect(data []byte) (Format, error) {
	if !json.Valid(data) {
		return "", errors.New("invalid JSON document")
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatIOS, nil
	}

	// The document is valid JSON at this point, so an unmarshal failure
	// means the root is neither an array nor an object.
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return "", ErrUnrecognizedFormat
	}

	if _, ok := root["timelineObjects"]; ok {
		return FormatStandard, nil
	}
	if _, ok := root["semanticSegments"]; ok {
		return FormatSemantic, nil
	}

	return "", ErrUnrecognizedFormat
}
