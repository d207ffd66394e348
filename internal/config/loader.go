package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "fortress.yaml"

// Load loads the fortress configuration.
// Search order: customPath -> ~/.fortress/configs/fortress.yaml -> ./configs/fortress.yaml -> embedded default.
// Files are decoded over the defaults, so a file may override only some keys.
func Load(customPath string) (FortressConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FortressConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FortressConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFortressYAML)
	if err != nil {
		return DefaultFortressConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (FortressConfig, error) {
	cfg := DefaultFortressConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FortressConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FortressConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg FortressConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every value that would make the simulation meaningless.
func (c FortressConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("fortress.width", c.Fortress.Width)
	positive("fortress.height", c.Fortress.Height)
	positive("fortress.health", c.Fortress.Health)
	positive("lane.thickness", c.Lane.Thickness)
	positive("enemies.tiers", c.Enemies.Tiers)
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	if c.Defenses.Tiers < 2 {
		errs = append(errs, fmt.Errorf("defenses.tiers must be at least 2, got %d", c.Defenses.Tiers))
	}
	positive("defenses.width", c.Defenses.Width)
	positive("defenses.height", c.Defenses.Height)
	positive("projectiles.lifetime", c.Projectiles.Lifetime)
	positive("economy.first_threshold", c.Economy.FirstThreshold)

	if c.Enemies.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("enemies.base_speed must be positive, got %g", c.Enemies.BaseSpeed))
	}
	if c.Enemies.SpeedBoost < 0 {
		errs = append(errs, fmt.Errorf("enemies.speed_boost must not be negative, got %g", c.Enemies.SpeedBoost))
	}
	if c.Enemies.EntryMaxOffset < c.Enemies.EntryMinOffset {
		errs = append(errs, fmt.Errorf("enemies.entry_max_offset (%d) is below entry_min_offset (%d)",
			c.Enemies.EntryMaxOffset, c.Enemies.EntryMinOffset))
	}
	if c.Economy.StartingCurrency < 0 {
		errs = append(errs, fmt.Errorf("economy.starting_currency must not be negative, got %d", c.Economy.StartingCurrency))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fortress", "configs", filename)
}
