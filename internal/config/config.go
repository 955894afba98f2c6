// Package config handles optional YAML conversion profiles.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is a reusable conversion setup: output naming, which formats
// to produce, and activity color overrides. Flags take precedence over
// profile values.
type Profile struct {
	DocumentName string            `yaml:"document_name,omitempty"`
	BaseName     string            `yaml:"base_name,omitempty"`
	Formats      []string          `yaml:"formats,omitempty"` // subset of geojson, kml, kmz
	Colors       map[string]string `yaml:"colors,omitempty"`  // activity token -> hex color
}

// Load reads and parses a YAML profile from the specified path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	// Color lookups are keyed by upper-cased token
	if len(profile.Colors) > 0 {
		colors := make(map[string]string, len(profile.Colors))
		for token, color := range profile.Colors {
			colors[strings.ToUpper(token)] = color
		}
		profile.Colors = colors
	}

	return &profile, nil
}

// HasFormat reports whether the profile enables the given format. An
// empty formats list enables everything.
func (p *Profile) HasFormat(name string) bool {
	if len(p.Formats) == 0 {
		return true
	}
	for _, f := range p.Formats {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}
