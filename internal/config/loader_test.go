package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("embedded defaults differ from DefaultConfig()")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  max_attempts: 3\nsession:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.World.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, expected 3", cfg.World.MaxAttempts)
	}
	if cfg.Session.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Session.Lives)
	}
	if cfg.World.Resolution != DefaultConfig().World.Resolution {
		t.Errorf("Resolution = %d, expected default to survive", cfg.World.Resolution)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted altitude", func(c *Config) { c.Flight.MinAlt = 30 }},
		{"inverted refugees", func(c *Config) { c.Placement.RefugeeMin = 30 }},
		{"tiny grid", func(c *Config) { c.World.Resolution = 4 }},
		{"zero attempts", func(c *Config) { c.World.MaxAttempts = 0 }},
		{"cyclone radii", func(c *Config) { c.Cyclone.NearRadius = 100 }},
		{"no lives", func(c *Config) { c.Session.Lives = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Session.Lives != 5 {
		t.Errorf("easy Lives = %d, expected 5", cfg.Session.Lives)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable scaling")
	}
}

func TestForRoundScaling(t *testing.T) {
	cfg := DefaultConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	r1 := dm.ForRound(cfg.Cyclone, 1)
	r5 := dm.ForRound(cfg.Cyclone, 5)
	if r5.CycloneSpeed <= r1.CycloneSpeed {
		t.Errorf("round 5 speed %v should exceed round 1 speed %v", r5.CycloneSpeed, r1.CycloneSpeed)
	}
	if r5.SeekAccel <= r1.SeekAccel {
		t.Errorf("round 5 accel %v should exceed round 1 accel %v", r5.SeekAccel, r1.SeekAccel)
	}

	dm.SetEnabled(false)
	if got := dm.ForRound(cfg.Cyclone, 5); got != dm.ForRound(cfg.Cyclone, 1) {
		t.Error("disabled scaling should make every round identical")
	}
}
