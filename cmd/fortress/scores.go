package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
	"github.com/vovakirdan/fortress/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresFilter string
	flagScoresMine   bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best recorded runs.

Examples:
  fortress scores
  fortress scores --limit 25
  fortress scores --filter hard
  fortress scores --mine
  fortress scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresFilter, "filter", "", "Only show runs of one difficulty: easy, normal, hard")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show runs of the current player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run")
}

func runScores(_ *cobra.Command, _ []string) error {
	var preset config.DifficultyPreset
	if flagScoresFilter != "" {
		p, ok := config.ParsePreset(flagScoresFilter)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagScoresFilter)
		}
		preset = p
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	title := "All runs"
	var runs []storage.Run
	switch {
	case flagScoresMine:
		title = "Runs of " + playerName()
		runs, err = store.PlayerRuns(playerName(), flagScoresLimit)
	case flagScoresFilter != "":
		title = fmt.Sprintf("Runs on %s", preset)
		runs, err = store.DifficultyRuns(string(preset), flagScoresLimit)
	default:
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fortress play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %8s  %5s  %5s  %6s  %s\n", "Rank", "Player", "Mode", "Score", "Level", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %8s  %5s  %5s  %6s  %s\n", "----", "------", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range runs {
		secs := r.Ticks / core.DefaultTickRate
		fmt.Printf("  %-4d  %-12s  %-6s  %8d  %5d  %5d  %3d:%02d  %s\n",
			i+1, r.Player, r.Difficulty, r.Score, r.Level, r.Kills,
			secs/60, secs%60, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return nil
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Best level: %d  Total kills: %d\n",
		stats.RunCount, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalKills)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
