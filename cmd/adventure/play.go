package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/storage"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

var (
	flagSave       bool
	flagWorld      string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away, without the menu.

Controls (default):
  Player 1   W/A/X/D move, S stay, E drop item
  Player 2   I/J/M/L move, K stay, O drop item
  R          Restart the current room
  Esc        Pause, then H for the menu
  Ctrl+C     Quit

With --save the keys and results of the game are written to the steps and
results files named in the config, ready for 'adventure replay'.

Difficulty options:
  easy    5 lives, short respawn
  normal  3 lives
  hard    1 life, long respawn

Examples:
  adventure play
  adventure play --save
  adventure play --world ./my-world
  adventure play --difficulty easy --config ./adventure.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSave, "save", false, "Record steps and results files")
	playCmd.Flags().StringVar(&flagWorld, "world", "", "World id or directory (default from config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	res, err := playOnce(w, cfg, store, logger)
	if err != nil {
		return err
	}
	printResult(res, cfg)
	return nil
}

// playOnce runs one interactive game.
func playOnce(w *world.World, cfg config.AdventureConfig, store *storage.Store, logger *log.Logger) (tui.GameResult, error) {
	return tui.RunGame(tui.GameOptions{
		WorldID: w.ID,
		World:   w,
		Config:  cfg,
		Store:   store,
		Logger:  logger,
		Save:    flagSave,
	})
}

func printResult(res tui.GameResult, cfg config.AdventureConfig) {
	switch res.Outcome {
	case storage.OutcomeFinished:
		fmt.Printf("Both players made it! Team score: %d (P1 %d, P2 %d)\n", res.Team(), res.Score1, res.Score2)
	case storage.OutcomeDied:
		fmt.Printf("Game over after %d cycles. Team score: %d\n", res.Cycles, res.Team())
	default:
		fmt.Printf("Game left after %d cycles.\n", res.Cycles)
	}
	if res.Recorded {
		fmt.Printf("Recorded run %s to %s and %s\n", res.RunID, cfg.Replay.StepsFile, cfg.Replay.ResultsFile)
	}
}
