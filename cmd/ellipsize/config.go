// ABOUTME: YAML config for default marker, line limit, and punctuation pattern
// ABOUTME: A missing config file is not an error; flags override config values

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds persistent defaults for the CLI.
type Config struct {
	Marker         string `yaml:"marker"`
	Lines          int    `yaml:"lines"`
	Locale         string `yaml:"locale"`
	EndPunctuation string `yaml:"end_punctuation"` // regexp, anchored at end by convention
}

// loadConfig reads the config at path, or the default location when path is
// empty. A file that does not exist yields a zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "ellipsize", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
