// Package config loads the cargotab configuration from a TOML file.
// Everything has a compiled-in default so the file is optional; a
// config file only needs the keys it wants to override.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gaurav-prasanna/cargotab/core"
)

// SourceConfig describes how to reach one upstream tracking system.
type SourceConfig struct {
	// Label overrides the human-readable source name in the envelope.
	Label string `toml:"label"`
	// URLTemplate builds the tracking page URL; it must contain one %s
	// for the tracking id.
	URLTemplate string `toml:"url_template"`
}

// Config is the full cargotab configuration.
type Config struct {
	OutputDir      string                  `toml:"output_dir"`
	TimeoutSeconds int                     `toml:"timeout_seconds"`
	Sources        map[string]SourceConfig `toml:"sources"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: 30,
		Sources: map[string]SourceConfig{
			string(core.SourceSkyCargo): {
				URLTemplate: "https://tracking.skycargo.example/awb?number=%s",
			},
			string(core.SourceSeaLine): {
				URLTemplate: "https://www.sealine.example/track/container/%s",
			},
		},
	}
}

// Load reads a TOML file and applies it over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var overrides Config
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if overrides.OutputDir != "" {
		cfg.OutputDir = overrides.OutputDir
	}
	if overrides.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = overrides.TimeoutSeconds
	}
	for code, src := range overrides.Sources {
		merged := cfg.Sources[code]
		if src.Label != "" {
			merged.Label = src.Label
		}
		if src.URLTemplate != "" {
			merged.URLTemplate = src.URLTemplate
		}
		cfg.Sources[code] = merged
	}

	return cfg, nil
}

// TrackingURL builds the page URL for a tracking id on the given source.
func (c *Config) TrackingURL(source core.Source, trackingID string) (string, error) {
	src, ok := c.Sources[string(source)]
	if !ok || src.URLTemplate == "" {
		return "", fmt.Errorf("no url template configured for source %q", source)
	}
	return fmt.Sprintf(src.URLTemplate, trackingID), nil
}
