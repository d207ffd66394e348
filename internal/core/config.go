package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 25)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the simulation cadence of the reference build.
const DefaultTickRate = 25

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform reads after every tick.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level
	Kills    int  // Enemies destroyed by defenses
	Ticks    int  // Ticks simulated since the last reset
	GameOver bool // Whether the fortress has fallen
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
