package main

import (
	"os"
	"path/filepath"

	"github.com/maptrail/timeline2geo/internal/config"
	"github.com/maptrail/timeline2geo/internal/export"
	"github.com/maptrail/timeline2geo/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input       string `short:"i" long:"in"     env:"TIMELINE_INPUT" description:"Path to the timeline JSON export" default:"Timeline.json"`
	OutputDir   string `short:"o" long:"out"    env:"TIMELINE_OUTPUT" description:"Output directory (defaults to the input's directory)"`
	BaseName    string `short:"b" long:"base"   description:"Base name for output files" default:"Timeline"`
	DocName     string `short:"n" long:"name"   description:"KML document name (defaults to 'Timeline Export - <base>')"`
	ConfigFile  string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to a YAML conversion profile"`
	Compact     bool   `long:"compact"      description:"Minify GeoJSON output instead of indenting"`
	GeoJSONOnly bool   `short:"g" long:"geojson-only" description:"Write GeoJSON only"`
	KMLOnly     bool   `short:"k" long:"kml-only"     description:"Write KML and KMZ only"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	profile := &config.Profile{}
	if opts.ConfigFile != "" {
		var err error
		profile, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load conversion profile")
		}
	}

	baseName := opts.BaseName
	if baseName == "Timeline" && profile.BaseName != "" {
		baseName = profile.BaseName
	}

	docName := opts.DocName
	if docName == "" {
		docName = profile.DocumentName
	}
	if docName == "" {
		docName = "Timeline Export - " + baseName
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(opts.Input)
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read timeline export")
	}

	writeGeoJSON := true
	writeKML := true
	if opts.GeoJSONOnly && !opts.KMLOnly {
		writeKML = false
	} else if opts.KMLOnly && !opts.GeoJSONOnly {
		writeGeoJSON = false
	}

	eopts := export.Options{
		Dir:          outputDir,
		BaseName:     baseName,
		DocName:      docName,
		WriteGeoJSON: writeGeoJSON && profile.HasFormat("geojson"),
		WriteKML:     writeKML && profile.HasFormat("kml"),
		WriteKMZ:     writeKML && profile.HasFormat("kmz"),
		Compact:      opts.Compact,
		Colors:       profile.Colors,
	}

	result, err := export.Run(data, eopts)
	if err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}

	if result.Visits == 0 && result.Activities == 0 {
		log.Warn().Msg("No timeline data found in input")
	}

	log.Info().
		Strs("files", result.Files).
		Msg("Conversion complete")
}
