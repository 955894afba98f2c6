package export

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// KMZ wraps a KML document in a zip archive as the single
// deflate-compressed entry doc.kml.
func KMZ(kml []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entry, err := zw.Create("doc.kml")
	if err != nil {
		return nil, fmt.Errorf("creating doc.kml entry: %w", err)
	}
	if _, err := entry.Write(kml); err != nil {
		return nil, fmt.Errorf("writing doc.kml entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	return buf.Bytes(), nil
}
