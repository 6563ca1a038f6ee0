// Package settings loads field options from YAML files and keeps named
// presets in the user's data directory.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/dotted-glow-go/internal/field"
)

// Decode overlays YAML data on the default options and validates the result.
// Keys absent from data keep their defaults.
func Decode(data []byte) (field.Config, error) {
	cfg := field.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return field.Config{}, fmt.Errorf("failed to parse field config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return field.Config{}, fmt.Errorf("invalid field config: %w", err)
	}
	return cfg, nil
}

// Encode renders cfg as YAML
func Encode(cfg field.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field config: %w", err)
	}
	return data, nil
}

// LoadFile reads a YAML config file. An empty path returns the defaults.
func LoadFile(path string) (field.Config, error) {
	if path == "" {
		return field.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return field.Config{}, fmt.Errorf("failed to read field config: %w", err)
	}
	return Decode(data)
}
