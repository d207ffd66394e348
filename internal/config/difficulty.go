package config

// ApplyPreset adjusts the starting economy and fortress durability.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *FortressConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartingCurrency *= 2
		cfg.Fortress.Health = cfg.Fortress.Health * 3 / 2
	case DifficultyHard:
		cfg.Economy.StartingCurrency = cfg.Economy.StartingCurrency * 3 / 5
		cfg.Fortress.Health = cfg.Fortress.Health * 7 / 10
		cfg.Enemies.BaseSpeed *= 1.5
	}
}
