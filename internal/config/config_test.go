package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handhistory.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
import {
  dir              = "/var/hands"
  interval_seconds = 30
  workers          = 8
  state_file       = "/var/hands/.state.json"
}

parser {
  room = "pokerstars"
}

log {
  level = "debug"
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Import.Dir != "/var/hands" {
		t.Errorf("Dir = %q", cfg.Import.Dir)
	}
	if cfg.Import.IntervalSeconds != 30 {
		t.Errorf("IntervalSeconds = %d", cfg.Import.IntervalSeconds)
	}
	if cfg.Import.Workers != 8 {
		t.Errorf("Workers = %d", cfg.Import.Workers)
	}
	if cfg.Import.StateFile != "/var/hands/.state.json" {
		t.Errorf("StateFile = %q", cfg.Import.StateFile)
	}
	if cfg.Parser.Room != "pokerstars" {
		t.Errorf("Room = %q", cfg.Parser.Room)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
import {
  dir = "/var/hands"
}

parser {
}

log {
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	defaults := Default()
	if cfg.Import.IntervalSeconds != defaults.Import.IntervalSeconds {
		t.Errorf("IntervalSeconds = %d", cfg.Import.IntervalSeconds)
	}
	if cfg.Import.Workers != defaults.Import.Workers {
		t.Errorf("Workers = %d", cfg.Import.Workers)
	}
	if cfg.Parser.Room != defaults.Parser.Room {
		t.Errorf("Room = %q", cfg.Parser.Room)
	}
	if cfg.Log.Level != defaults.Log.Level {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Parser.Room != "pokerstars" {
		t.Errorf("Room = %q", cfg.Parser.Room)
	}
}

func TestLoadMalformedHCL(t *testing.T) {
	path := writeConfig(t, "import {\n  dir = \n}")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed HCL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing dir",
			mutate:  func(c *Config) { c.Import.Dir = "" },
			wantErr: true,
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Import.IntervalSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Import.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "missing room",
			mutate:  func(c *Config) { c.Parser.Room = "" },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Import.Dir = "/var/hands"
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
