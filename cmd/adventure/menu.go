package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the adventure with the main menu",
	Long: `Start the adventure in interactive menu mode.

After a game ends, you return to the menu to play again.

Controls:
  1          - Start a new game
  8          - Instructions and keys
  9/Q        - Exit
  Tab        - Scores
  Up/Down    - Navigate, Enter to select

Examples:
  adventure menu
  adventure menu --world ./my-world
  adventure menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, menuCmd} {
		c.Flags().StringVar(&flagWorld, "world", "", "World id or directory (default from config)")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		c.Flags().BoolVar(&flagSave, "save", false, "Record steps and results files of each game")
	}
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}
	if err := checkTerminal(); err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	w, err := openWorld(flagWorld, cfg, logger)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	// Menu loop
	for {
		choice, err := tui.RunMenu(w.ID, cfg, store)
		if err != nil {
			return err
		}

		switch choice {
		case tui.ChoiceQuit:
			return nil

		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, w.ID)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil // User quit from scoreboard
			}

		case tui.ChoiceStart:
			res, err := playOnce(w, cfg, store, logger)
			if err != nil {
				return err
			}
			if !res.Home {
				printResult(res, cfg)
				return nil
			}
		}
	}
}
