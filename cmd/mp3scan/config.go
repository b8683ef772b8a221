package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the shape of the optional ~/.mp3scanrc.toml config file. CLI
// flags, when given, override whatever this file supplies.
type fileConfig struct {
	Debug        bool   `toml:"debug"`
	OutputFormat string `toml:"output_format" validate:"omitempty,oneof=text json"`
}

var configValidator = validator.New()

// loadFileConfig reads and validates path, if it exists. A missing file is
// not an error: it returns the default config (Debug off, OutputFormat "text").
func loadFileConfig(path string) (fileConfig, error) {
	cfg := fileConfig{OutputFormat: "text"}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := configValidator.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
