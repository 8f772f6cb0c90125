package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/storage"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// loadConfig reads the configuration and applies the global overrides.
func loadConfig(difficulty string) (config.AdventureConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (easy, normal, hard)", difficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagTick > 0 {
		cfg.Timing.TickMs = flagTick
		cfg.Timing.ReplayTickMs = flagTick
	}
	return cfg, nil
}

func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// stderrLogger logs for commands that do not take over the terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "adventure",
		Level:           logLevel(),
	})
}

// fileLogger logs for the alt-screen commands. It falls back to discarding
// output when the log file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	logger, f, err := tui.OpenLogFile(tui.DefaultLogPath, logLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	return logger, func() { f.Close() }
}

// openWorld loads the world named by ref, or the configured one.
func openWorld(ref string, cfg config.AdventureConfig, logger *log.Logger) (*world.World, error) {
	if ref == "" {
		ref = cfg.World.ID
	}
	return world.Open(ref, world.WithLogger(logger))
}

// openStore opens the score history. Failure is only a warning: the game
// runs without history.
func openStore(cfg config.AdventureConfig) *storage.Store {
	path := flagDBPath
	if path == "" {
		path = cfg.Storage.Path
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// checkTerminal makes sure the playfield and its status line fit.
func checkTerminal() error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("not a terminal: %w", err)
	}
	if w < core.GridWidth || h < core.GridHeight+1 {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, core.GridWidth, core.GridHeight+1)
	}
	return nil
}
