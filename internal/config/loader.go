package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.zxrescue/config.yaml -> ./configs/zxrescue.yaml -> embedded default.
// Files are decoded over DefaultConfig, so a partial file only overrides the keys it names.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			user := DefaultConfig()
			if err := yaml.Unmarshal(data, &user); err == nil && user.Validate() == nil {
				return user, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/zxrescue.yaml"); err == nil {
		local := DefaultConfig()
		if err := yaml.Unmarshal(data, &local); err == nil && local.Validate() == nil {
			return local, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zxrescue", filename)
}

// Validate rejects configurations the generator or simulation cannot run with.
func (c Config) Validate() error {
	w := c.World
	switch {
	case w.Resolution < 8:
		return fmt.Errorf("%w: world.resolution %d below 8", ErrInvalid, w.Resolution)
	case w.Size <= 0:
		return fmt.Errorf("%w: world.size must be positive", ErrInvalid)
	case w.MaxAttempts < 1:
		return fmt.Errorf("%w: world.max_attempts must be at least 1", ErrInvalid)
	case w.MinLargestShare > w.MaxLargestShare:
		return fmt.Errorf("%w: world.min_largest_share %.3f exceeds max %.3f", ErrInvalid, w.MinLargestShare, w.MaxLargestShare)
	case w.LandThreshold < w.SeaLevel:
		return fmt.Errorf("%w: world.land_threshold below sea_level", ErrInvalid)
	}

	p := c.Placement
	switch {
	case p.CrateCount < 0:
		return fmt.Errorf("%w: placement.crate_count negative", ErrInvalid)
	case p.RefugeeMin > p.RefugeeMax:
		return fmt.Errorf("%w: placement.refugee_min %d exceeds max %d", ErrInvalid, p.RefugeeMin, p.RefugeeMax)
	case p.HelipadMin < 1 || p.HelipadMin > p.HelipadMax:
		return fmt.Errorf("%w: placement helipad range [%d,%d]", ErrInvalid, p.HelipadMin, p.HelipadMax)
	case p.PlacementTries < 1:
		return fmt.Errorf("%w: placement.placement_tries must be at least 1", ErrInvalid)
	case p.CellsPerBuilding < 1:
		return fmt.Errorf("%w: placement.cells_per_building must be at least 1", ErrInvalid)
	}

	f := c.Flight
	switch {
	case f.MinAlt > f.MaxAlt:
		return fmt.Errorf("%w: flight.min_alt %.2f exceeds max_alt %.2f", ErrInvalid, f.MinAlt, f.MaxAlt)
	case f.MaxSpeedLevel < 1:
		return fmt.Errorf("%w: flight.max_speed_level must be at least 1", ErrInvalid)
	}

	if c.Cyclone.NearRadius > c.Cyclone.MidRadius || c.Cyclone.MidRadius > c.Cyclone.FarRadius {
		return fmt.Errorf("%w: cyclone radii must satisfy near <= mid <= far", ErrInvalid)
	}
	if c.Planes.SpawnMin > c.Planes.SpawnMax || c.Planes.SpeedMin > c.Planes.SpeedMax {
		return fmt.Errorf("%w: planes ranges inverted", ErrInvalid)
	}
	if c.Rope.MaxLength <= 0 || c.Rope.RetractSpeed <= 0 {
		return fmt.Errorf("%w: rope.max_length and rope.retract_speed must be positive", ErrInvalid)
	}
	if c.Fuel.Max <= 0 {
		return fmt.Errorf("%w: fuel.max must be positive", ErrInvalid)
	}

	s := c.Session
	switch {
	case s.FixedDt <= 0:
		return fmt.Errorf("%w: session.fixed_dt must be positive", ErrInvalid)
	case s.MaxStepsPerFrame < 1:
		return fmt.Errorf("%w: session.max_steps_per_frame must be at least 1", ErrInvalid)
	case s.Lives < 1:
		return fmt.Errorf("%w: session.lives must be at least 1", ErrInvalid)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Fuel.TimeLimitSec = 480
		cfg.Fuel.BaseDrain = 0.8
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Fuel.TimeLimitSec = 300
		cfg.Planes.CeilingAlt = 14
	}
}
