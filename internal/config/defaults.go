package config

import (
	_ "embed"
)

//go:embed defaults/fortress.yaml
var defaultFortressYAML []byte

// DefaultFortressConfig returns the built-in configuration.
// It mirrors defaults/fortress.yaml and is used when the embedded copy
// cannot be parsed.
func DefaultFortressConfig() FortressConfig {
	return FortressConfig{
		World: WorldConfig{
			Width:  1000,
			Height: 600,
		},
		Fortress: FortressSettings{
			X:      100,
			Y:      250,
			Width:  100,
			Height: 150,
			Health: 1000,
		},
		Lane: LaneConfig{
			Thickness: 150,
		},
		Enemies: EnemyConfig{
			Tiers:          19,
			Width:          40,
			Height:         40,
			BaseSpeed:      1.0,
			SpeedBoost:     0.5,
			EntryMinOffset: 10,
			EntryMaxOffset: 50,
		},
		Defenses: DefenseConfig{
			Tiers:        15,
			Width:        50,
			Height:       50,
			BaseCooldown: 25,
		},
		Projectiles: ProjectileConfig{
			Lifetime: 3,
		},
		Economy: EconomyConfig{
			StartingCurrency: 100,
			FirstThreshold:   3000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFortressYAML
}
