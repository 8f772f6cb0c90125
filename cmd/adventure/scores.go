package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [world]",
	Short: "Show the best team scores of a world",
	Long: `Display the top 10 team scores and the best score of a world.
Without an argument the configured world is shown.

Examples:
  adventure scores
  adventure scores classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	worldID := cfg.World.ID
	if len(args) == 1 {
		worldID = args[0]
	}

	path := flagDBPath
	if path == "" {
		path = cfg.Storage.Path
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(worldID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", worldID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'adventure play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Team", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(worldID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	if stats, err := store.GetWorldStats(worldID); err == nil {
		fmt.Printf("Games: %d, average %.0f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
