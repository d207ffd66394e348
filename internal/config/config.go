// Package config provides YAML-based configuration loading and difficulty
// presets for the fortress game.
package config

// FortressConfig contains all tunables of a fortress session.
// Values are fixed once a game is constructed.
type FortressConfig struct {
	World       WorldConfig      `yaml:"world"`
	Fortress    FortressSettings `yaml:"fortress"`
	Lane        LaneConfig       `yaml:"lane"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Defenses    DefenseConfig    `yaml:"defenses"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Economy     EconomyConfig    `yaml:"economy"`
}

// WorldConfig defines the play area in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FortressSettings defines the defended building.
type FortressSettings struct {
	X      int `yaml:"x"` // Footprint center
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Health int `yaml:"health"`
}

// LaneConfig defines the enemy corridor.
type LaneConfig struct {
	Thickness int `yaml:"thickness"`
}

// EnemyConfig defines enemy spawning and movement.
type EnemyConfig struct {
	Tiers          int     `yaml:"tiers"`            // Number of distinct unit tiers
	Width          int     `yaml:"width"`            // Footprint size
	Height         int     `yaml:"height"`           //
	BaseSpeed      float64 `yaml:"base_speed"`       // Leftward speed per tick at level 1
	SpeedBoost     float64 `yaml:"speed_boost"`      // Added to every enemy on level-up
	EntryMinOffset int     `yaml:"entry_min_offset"` // Spawn x range beyond the right edge
	EntryMaxOffset int     `yaml:"entry_max_offset"`
}

// DefenseConfig defines player structures.
type DefenseConfig struct {
	Tiers        int `yaml:"tiers"` // Upgrade tiers, bounds the max level
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BaseCooldown int `yaml:"base_cooldown"` // Cooldown after a shot is base_cooldown - level
}

// ProjectileConfig defines shot traces.
type ProjectileConfig struct {
	Lifetime int `yaml:"lifetime"` // Ticks a trace stays visible
}

// EconomyConfig defines the starting economy.
type EconomyConfig struct {
	StartingCurrency int `yaml:"starting_currency"`
	FirstThreshold   int `yaml:"first_threshold"` // Score needed for level 2, doubled each level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
