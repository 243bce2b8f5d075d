package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML settings file. Empty fields are left to the
// command line defaults.
type File struct {
	LogLevel  string `yaml:"log_level,omitempty"`  // debug, info, warn or error
	LogFormat string `yaml:"log_format,omitempty"` // text or json
	Workers   int    `yaml:"workers,omitempty"`    // files parsed concurrently per directory
}

// LoadFile reads the settings file at path. A missing file is an error: the
// caller only asks for a file the user named.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if file.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	return &file, nil
}
