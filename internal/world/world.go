// Package world loads a world: the ordered room files adv-world_NN.screen
// and the riddles.txt that goes with them. A world is read from any fs.FS,
// so built-in worlds are embedded and custom ones come from a directory.
package world

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/registry"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

const (
	roomPattern = "adv-world_[0-9][0-9].screen"
	riddlesFile = "riddles.txt"
)

// World is a validated set of rooms. Rooms are parsed again on every
// LoadRoom, so a restarted room starts from its file.
type World struct {
	ID       string
	fsys     fs.FS
	files    []string
	riddles  []room.RiddleRecord
	warnings []string
	logger   *log.Logger
}

// Option configures Load.
type Option func(*World)

// WithLogger sets the logger for load warnings.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// Load reads and validates the world stored in fsys. Every room is parsed
// once so that format errors surface here and not in the middle of a game.
func Load(id string, fsys fs.FS, opts ...Option) (*World, error) {
	w := &World{ID: id, fsys: fsys, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(w)
	}

	files, err := fs.Glob(fsys, roomPattern)
	if err != nil {
		return nil, fmt.Errorf("world: list rooms: %w", err)
	}
	sort.Strings(files)
	if len(files) < room.MinRooms || len(files) > room.MaxRooms {
		return nil, fmt.Errorf("world: %s has %d room files, need %d to %d", id, len(files), room.MinRooms, room.MaxRooms)
	}
	w.files = files

	data, err := fs.ReadFile(fsys, riddlesFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		w.logger.Debug("no riddles file", "world", id)
	case err != nil:
		return nil, fmt.Errorf("world: read %s: %w", riddlesFile, err)
	default:
		if w.riddles, err = room.ParseRiddles(riddlesFile, data); err != nil {
			return nil, err
		}
	}
	if err := w.checkRiddleRooms(); err != nil {
		return nil, err
	}

	for id := 1; id <= len(files); id++ {
		r, warnings, err := w.parse(id)
		if err != nil {
			return nil, err
		}
		if err := r.ValidateDoors(len(files)); err != nil {
			return nil, err
		}
		for _, msg := range warnings {
			w.logger.Warn("room loaded with warnings", "world", w.ID, "warning", msg)
		}
		w.warnings = append(w.warnings, warnings...)
	}
	w.logger.Info("world loaded", "world", w.ID, "rooms", len(files), "riddles", len(w.riddles))
	return w, nil
}

// LoadDir loads the world stored in directory dir. Its id is the directory name.
func LoadDir(dir string, opts ...Option) (*World, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("world: %s is not a directory", dir)
	}
	return Load(filepath.Base(filepath.Clean(dir)), os.DirFS(dir), opts...)
}

// Open loads a registered world by id, or a world directory when ref is
// not a registered id.
func Open(ref string, opts ...Option) (*World, error) {
	if registry.Exists(ref) {
		fsys, err := registry.Create(ref)
		if err != nil {
			return nil, err
		}
		return Load(ref, fsys, opts...)
	}
	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("world: %q is neither a registered world nor a directory", ref)
	}
	return LoadDir(ref, opts...)
}

// NumRooms returns the number of rooms, not counting the final room.
func (w *World) NumRooms() int {
	return len(w.files)
}

// LoadRoom parses room id (1-based) and binds its riddles.
func (w *World) LoadRoom(id int) (*room.Room, error) {
	r, _, err := w.parse(id)
	return r, err
}

// Files returns the room file names in room order.
func (w *World) Files() []string {
	return append([]string(nil), w.files...)
}

// Warnings returns the non-fatal problems found while loading.
func (w *World) Warnings() []string {
	return append([]string(nil), w.warnings...)
}

// Riddles returns the riddle records of the world.
func (w *World) Riddles() []room.RiddleRecord {
	return append([]room.RiddleRecord(nil), w.riddles...)
}

func (w *World) parse(id int) (*room.Room, []string, error) {
	if id < 1 || id > len(w.files) {
		return nil, nil, fmt.Errorf("world: no room %d in %s", id, w.ID)
	}
	name := w.files[id-1]
	data, err := fs.ReadFile(w.fsys, name)
	if err != nil {
		return nil, nil, fmt.Errorf("world: read %s: %w", name, err)
	}
	r, warnings, err := room.Parse(id, name, data)
	if err != nil {
		return nil, warnings, err
	}
	if err := r.ValidateLinks(); err != nil {
		return nil, warnings, err
	}
	if err := r.ValidateLegend(); err != nil {
		return nil, warnings, err
	}
	r.ClearLegend()
	if err := r.ApplyRiddles(w.riddles); err != nil {
		return nil, warnings, err
	}
	return r, warnings, nil
}

// checkRiddleRooms rejects records addressed to rooms the world lacks.
func (w *World) checkRiddleRooms() error {
	for _, rec := range w.riddles {
		if rec.RoomID < 1 || rec.RoomID > len(w.files) {
			return fmt.Errorf("world: riddle record refers to non-existing room %d", rec.RoomID)
		}
	}
	return nil
}
