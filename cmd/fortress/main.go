// fortress is a terminal tower-defense game: hold the road against waves of
// enemies by building and upgrading defenses along it.
//
// Usage:
//
//	fortress                 - Pick a difficulty and play, with a scoreboard
//	fortress play            - Play a game directly
//	fortress scores          - Show the leaderboard
//	fortress serve           - Start SSH server for remote play
//	fortress config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 25)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.fortress/scores.db)
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fortress",
	Short: "Fortress - hold the road in your terminal",
	Long: `Fortress is a terminal tower-defense game. Enemies march along the road
toward your fortress; build defenses beside the road, upgrade them with the
bounty they earn and survive as long as you can.

Running fortress without a command opens the difficulty menu.

Available commands:
  play     - Play a game directly
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  fortress
  fortress play --difficulty hard
  fortress serve --ssh :2222
  fortress scores --filter easy`,
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fortress/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.fortress/fortress.log", "Log file for play sessions (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// parseDifficulty validates the --difficulty flag.
func parseDifficulty() (config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return preset, nil
}

// loadConfig loads the game configuration without any preset applied.
func loadConfig() (config.FortressConfig, error) {
	return config.Load(flagConfig)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName returns the name runs are recorded under.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger creates the session logger. The terminal belongs to Bubble Tea
// while playing, so logs go to a file.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "fortress",
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
