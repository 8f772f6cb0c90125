package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/engine"
	"github.com/vovakirdan/tui-adventure/internal/registry"
	"github.com/vovakirdan/tui-adventure/internal/room"
	"github.com/vovakirdan/tui-adventure/internal/room/roomtest"
)

func mapFS(rooms ...*roomtest.Builder) fstest.MapFS {
	fsys := fstest.MapFS{}
	for i, b := range rooms {
		fsys[roomtest.FileName(i+1)] = &fstest.MapFile{Data: b.Bytes()}
	}
	return fsys
}

func TestClassicWorld(t *testing.T) {
	if !registry.Exists(ClassicID) {
		t.Fatalf("registry.Exists(%q) = false", ClassicID)
	}
	w, err := Open(ClassicID)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if w.NumRooms() != 3 {
		t.Errorf("NumRooms() = %d, expected 3", w.NumRooms())
	}
	want := []string{"adv-world_01.screen", "adv-world_02.screen", "adv-world_03.screen"}
	for i, f := range w.Files() {
		if f != want[i] {
			t.Errorf("Files()[%d] = %q, expected %q", i, f, want[i])
		}
	}
	if len(w.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, expected none", w.Warnings())
	}

	r, err := w.LoadRoom(1)
	if err != nil {
		t.Fatalf("LoadRoom(1) error = %v", err)
	}
	q := r.RiddleAt(core.P(60, 9))
	if q == nil || !q.Answerable() {
		t.Fatalf("riddle at (60,9) = %+v, expected an answerable riddle", q)
	}
	if !q.Check("PIANO") {
		t.Error("Check(PIANO) = false, expected true")
	}

	g, err := engine.New(w)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	if g.NumRooms() != 3 || g.ActiveRoomID() != 1 {
		t.Errorf("game rooms = %d, active = %d, expected 3 and 1", g.NumRooms(), g.ActiveRoomID())
	}
}

func TestLoadReparsesRooms(t *testing.T) {
	w, err := Load("test", mapFS(roomtest.New().Put(5, 5, "K"), roomtest.New(), roomtest.New()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	a, _ := w.LoadRoom(1)
	a.Erase(core.P(5, 5))
	b, _ := w.LoadRoom(1)
	if b.At(core.P(5, 5)) != room.KeyRune {
		t.Errorf("At(5,5) = %q after reload, expected a key", b.At(core.P(5, 5)))
	}
	if _, err := w.LoadRoom(4); err == nil {
		t.Error("LoadRoom(4) error = nil, expected an error")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "too few rooms",
			fsys: mapFS(roomtest.New(), roomtest.New()),
			want: "has 2 room files",
		},
		{
			name: "too many rooms",
			fsys: mapFS(roomtest.New(), roomtest.New(), roomtest.New(), roomtest.New(), roomtest.New(),
				roomtest.New(), roomtest.New(), roomtest.New(), roomtest.New()),
			want: "has 9 room files",
		},
		{
			name: "door out of range",
			fsys: mapFS(roomtest.New().Put(10, 10, "7"), roomtest.New(), roomtest.New()),
			want: "allowed range: (2 - 4)",
		},
		{
			name: "door back to the first room",
			fsys: mapFS(roomtest.New(), roomtest.New().Put(10, 10, "1"), roomtest.New()),
			want: "door destination 1",
		},
		{
			name: "unknown rule",
			fsys: mapFS(roomtest.New().Rule("PORTAL 1 1"), roomtest.New(), roomtest.New()),
			want: "unknown rule type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("test", tt.fsys)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, expected it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRiddles(t *testing.T) {
	withRiddle := func(text string) fstest.MapFS {
		fsys := mapFS(roomtest.New().Put(10, 5, "?"), roomtest.New(), roomtest.New())
		fsys[riddlesFile] = &fstest.MapFile{Data: []byte(text)}
		return fsys
	}

	w, err := Load("test", withRiddle("1 10 5\nWhat is 2+2?\nfour|4\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, _ := w.LoadRoom(1)
	if q := r.RiddleAt(core.P(10, 5)); q == nil || !q.Check("4") {
		t.Errorf("riddle = %+v, expected to accept \"4\"", q)
	}

	if _, err := Load("test", withRiddle("1 11 5\nWhat is 2+2?\nfour\n")); err == nil {
		t.Error("Load() with a record for a missing riddle succeeded")
	}
	if _, err := Load("test", withRiddle("5 10 5\nWhat is 2+2?\nfour\n")); err == nil {
		t.Error("Load() with a record for a missing room succeeded")
	}

	var pe *room.ParseError
	if _, err := Load("test", withRiddle("1 10\nWhat?\nfour\n")); !errors.As(err, &pe) || pe.Line != 1 {
		t.Errorf("Load() error = %v, expected a ParseError on line 1", err)
	}
}

func TestLoadWarnings(t *testing.T) {
	w, err := Load("test", mapFS(roomtest.New().Put(5, 5, "xyz"), roomtest.New(), roomtest.New()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(w.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, expected one warning", w.Warnings())
	}
}

func TestOpenDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mine")
	if err := os.Mkdir(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, roomtest.FileName(i)), roomtest.New().Bytes(), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	// Files that do not match the room pattern are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if w.ID != "mine" || w.NumRooms() != 3 {
		t.Errorf("world = %q with %d rooms, expected mine with 3", w.ID, w.NumRooms())
	}

	if _, err := Open(filepath.Join(dir, "missing")); err == nil {
		t.Error("Open() of a missing directory succeeded")
	}
}
