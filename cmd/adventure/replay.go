package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/engine"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/replay"
)

var (
	flagSilent      bool
	flagStepsFile   string
	flagResultsFile string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded game and check its results",
	Long: `Play back the keys of a steps file and compare what happens with the
results file recorded alongside it. Riddles are answered with the recorded
answers.

The replay stops when the game ends or the steps run out, then reports the
first result that differs. The exit status is non-zero on any difference.

The room files listed in the recording must be the files of the world.

Examples:
  adventure replay
  adventure replay --silent
  adventure replay --steps run.steps --results run.results --world ./my-world`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagSilent, "silent", false, "Run without drawing, print only the verdict")
	replayCmd.Flags().StringVar(&flagStepsFile, "steps", "", "Steps file (default from config)")
	replayCmd.Flags().StringVar(&flagResultsFile, "results", "", "Results file (default from config)")
	replayCmd.Flags().StringVar(&flagWorld, "world", "", "World id or directory (default from config)")
}

func runReplay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	stepsPath, resultsPath := flagStepsFile, flagResultsFile
	if stepsPath == "" {
		stepsPath = cfg.Replay.StepsFile
	}
	if resultsPath == "" {
		resultsPath = cfg.Replay.ResultsFile
	}

	logger := stderrLogger()
	closeLog := func() {}
	if !flagSilent {
		if err := checkTerminal(); err != nil {
			return err
		}
		logger, closeLog = fileLogger()
	}
	defer closeLog()

	w, err := openWorld(flagWorld, cfg, logger)
	if err != nil {
		return err
	}
	steps, err := replay.LoadSteps(stepsPath)
	if err != nil {
		return err
	}
	expected, err := replay.LoadResults(resultsPath)
	if err != nil {
		return err
	}

	runner, err := replay.NewRunner(w, steps, expected, cfg.Controls.Keymap(), nil,
		engine.WithRules(cfg.Rules),
		engine.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("replay started", "run", steps.RunID, "steps", len(steps.Steps), "results", len(expected.Entries))

	if flagSilent {
		err = runSilent(runner, cfg.Timing.SilentTickMs)
	} else {
		err = tui.RunReplay(runner, cfg.Timing.ReplayTickMs)
	}
	if err != nil {
		fmt.Printf("Replay FAILED at cycle %d: %v\n", runner.Game().Cycle(), err)
		return fmt.Errorf("replay did not match the recording")
	}

	fmt.Printf("Replay PASSED: %d results over %d cycles\n", len(runner.Actual()), runner.Game().Cycle())
	return nil
}

// runSilent steps the replay to the end, sleeping ms between steps when
// ms is positive, and verifies it.
func runSilent(runner *replay.Runner, ms int) error {
	for {
		done, err := runner.Step()
		if err != nil {
			return err
		}
		if done {
			break
		}
		if ms > 0 {
			time.Sleep(time.Duration(ms) * time.Millisecond)
		}
	}
	return runner.Verify()
}
