package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
	"github.com/vovakirdan/fortress/internal/games/fortress"
	"github.com/vovakirdan/fortress/internal/platform/tui"
	"github.com/vovakirdan/fortress/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game immediately.

Controls:
  Left click / Space   - Build a defense, or upgrade the one under the cursor
  Right click / X      - Demolish for half its value
  Arrows / hjkl        - Move the build cursor
  R                    - Restart (after game over)
  ?                    - More keys
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Double starting money, sturdier fortress
  normal - Default tunables
  hard   - Less money, weaker fortress, faster enemies

Examples:
  fortress play
  fortress play --difficulty hard
  fortress play --seed 42 --fps 30
  fortress play --config ./my-fortress.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty()
	if err != nil {
		return err
	}

	base, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer, _ = openLogger("")
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	res, err := playOnce(base, preset, runtimeConfig(), store, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	printSummary(res.State)
	return nil
}

// playOnce runs a single game with the preset applied on top of base.
func playOnce(base config.FortressConfig, preset config.DifficultyPreset, rt core.RuntimeConfig,
	store *storage.Store, logger *log.Logger,
) (tui.PlayResult, error) {
	cfg := base
	config.ApplyPreset(&cfg, preset)

	player := playerName()
	logger.Info("game started", "player", player, "difficulty", preset, "seed", rt.Seed)

	res, err := tui.Run(fortress.New(cfg), tui.Options{
		Store:      store,
		Logger:     logger,
		Player:     player,
		Difficulty: preset,
		Runtime:    rt,
	})
	if err != nil {
		logger.Error("game failed", "error", err)
		return res, err
	}

	logger.Info("game ended",
		"player", player,
		"score", res.State.Score,
		"level", res.State.Level,
		"kills", res.State.Kills,
		"game_over", res.State.GameOver,
	)
	return res, nil
}

func printSummary(st core.GameState) {
	if st.Ticks == 0 {
		return
	}
	fmt.Printf("Score: %d  Level: %d  Kills: %d\n", st.Score, st.Level, st.Kills)
}
