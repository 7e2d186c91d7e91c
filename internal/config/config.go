// Package config loads the watcher configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete watcher configuration.
type Config struct {
	Import ImportSettings `hcl:"import,block"`
	Parser ParserSettings `hcl:"parser,block"`
	Log    LogSettings    `hcl:"log,block"`
}

// ImportSettings controls the directory watcher.
type ImportSettings struct {
	Dir             string `hcl:"dir"`
	IntervalSeconds int    `hcl:"interval_seconds,optional"`
	Workers         int    `hcl:"workers,optional"`
	StateFile       string `hcl:"state_file,optional"`
}

// ParserSettings selects the room grammar.
type ParserSettings struct {
	Room string `hcl:"room,optional"`
}

// LogSettings controls log output.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Import: ImportSettings{
			IntervalSeconds: 5,
			Workers:         4,
		},
		Parser: ParserSettings{
			Room: "pokerstars",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if config.Import.IntervalSeconds == 0 {
		config.Import.IntervalSeconds = defaults.Import.IntervalSeconds
	}
	if config.Import.Workers == 0 {
		config.Import.Workers = defaults.Import.Workers
	}
	if config.Parser.Room == "" {
		config.Parser.Room = defaults.Parser.Room
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Import.Dir == "" {
		return fmt.Errorf("import dir is required")
	}
	if c.Import.IntervalSeconds <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.Import.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Parser.Room == "" {
		return fmt.Errorf("parser room is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}
