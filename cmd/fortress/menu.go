package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress/internal/platform/tui"
	"github.com/vovakirdan/fortress/internal/storage"
)

func runMenu(_ *cobra.Command, _ []string) error {
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
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, base, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, playerName(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		// A fixed --seed replays the same game; otherwise every game gets a new one.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		res, err := playOnce(base, menuResult.Preset, cfg, store, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		cfg.ScreenW, cfg.ScreenH = res.Config.ScreenW, res.Config.ScreenH

		if !res.BackToMenu {
			printSummary(res.State)
			return nil
		}
	}
}
