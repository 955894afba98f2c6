package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maptrail/timeline2geo/internal/timeline"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// Options controls a single conversion run.
type Options struct {
	Dir      string // output directory
	BaseName string // output file base name, e.g. "Timeline"
	DocName  string // KML document name

	WriteGeoJSON bool
	WriteKML     bool
	WriteKMZ     bool

	// Compact emits minified GeoJSON instead of the 2-space indented
	// default.
	Compact bool

	// Colors overrides the built-in activity color vocabulary, keyed by
	// upper-cased activity token.
	Colors map[string]string
}

// Result reports what a conversion run produced.
type Result struct {
	Format     timeline.Format
	Visits     int
	Activities int
	Files      []string
}

// Run parses the raw export document and writes the requested output
// files. Already-written files are not rolled back when a later write
// fails.
func Run(data []byte, opts Options) (Result, error) {
	model, format, err := timeline.Load(data)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Format:     format,
		Visits:     len(model.Visits),
		Activities: len(model.Activities),
	}

	log.Info().
		Str("format", string(format)).
		Int("visits", result.Visits).
		Int("activities", result.Activities).
		Msg("Timeline loaded")

	if opts.WriteGeoJSON {
		out, err := marshalGeoJSON(model, opts)
		if err != nil {
			return result, err
		}

		path := filepath.Join(opts.Dir, opts.BaseName+".geojson")
		if err := saveFile(path, out); err != nil {
			return result, fmt.Errorf("writing GeoJSON: %w", err)
		}
		result.Files = append(result.Files, path)
		log.Info().Str("path", path).Msg("Saved GeoJSON")
	}

	if opts.WriteKML || opts.WriteKMZ {
		kml, err := KML(model, opts.DocName, opts.Colors)
		if err != nil {
			return result, err
		}

		if opts.WriteKML {
			path := filepath.Join(opts.Dir, opts.BaseName+".kml")
			if err := saveFile(path, kml); err != nil {
				return result, fmt.Errorf("writing KML: %w", err)
			}
			result.Files = append(result.Files, path)
			log.Info().Str("path", path).Msg("Saved KML")
		}

		if opts.WriteKMZ {
			kmz, err := KMZ(kml)
			if err != nil {
				return result, err
			}

			path := filepath.Join(opts.Dir, opts.BaseName+".kmz")
			if err := saveFile(path, kmz); err != nil {
				return result, fmt.Errorf("writing KMZ: %w", err)
			}
			result.Files = append(result.Files, path)
			log.Info().Str("path", path).Msg("Saved KMZ")
		}
	}

	return result, nil
}

func marshalGeoJSON(model *timeline.Model, opts Options) ([]byte, error) {
	fc := GeoJSON(model, opts.Colors)

	out, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling GeoJSON: %w", err)
	}

	if opts.Compact {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		out, err = m.Bytes("application/json", out)
		if err != nil {
			return nil, fmt.Errorf("minifying GeoJSON: %w", err)
		}
	}

	return out, nil
}

// saveFile writes data to path with a scoped file handle.
func saveFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	_, err = f.Write(data)
	return err
}
