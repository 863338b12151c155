// Package config loads the optional nilfer configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MarkerPackage declares one package whose generic aliases act as
// nullability markers. Empty alias names fall back to Nonnull and
// Nullable.
type MarkerPackage struct {
	Package  string `yaml:"package"`
	Nonnull  string `yaml:"nonnull,omitempty"`
	Nullable string `yaml:"nullable,omitempty"`
}

// Config is the file-level configuration. Pointer fields distinguish
// "not set" from an explicit false so command line flags keep their
// defaults when the file is silent.
type Config struct {
	Markers        []MarkerPackage `yaml:"markers,omitempty"`
	IncludeTrivial *bool           `yaml:"include_trivial,omitempty"`
	Diagnostics    *bool           `yaml:"diagnostics,omitempty"`
	Evidence       *bool           `yaml:"evidence,omitempty"`
	Records        *bool           `yaml:"records,omitempty"`
}

// Load reads a configuration file. An empty path is not an error, it
// just yields the zero configuration.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read configuration file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse configuration file %s: %w", path, err)
	}

	for i, m := range cfg.Markers {
		if m.Package == "" {
			return cfg, fmt.Errorf("%s: markers[%d] misses the package path", path, i)
		}
	}

	return cfg, nil
}
