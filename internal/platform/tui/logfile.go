package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/config"
)

// DefaultLogPath is where the interactive game logs, since stderr belongs
// to the alt screen.
const DefaultLogPath = "~/.adventure/adventure.log"

// OpenLogFile opens path for appending and returns a logger writing to it.
// The caller closes the returned file.
func OpenLogFile(path string, level log.Level) (*log.Logger, io.Closer, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "adventure",
		Level:           level,
	})
	return logger, f, nil
}
