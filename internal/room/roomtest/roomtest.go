// Package roomtest builds room files in memory for tests.
package roomtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

// Default legend anchor used by New. The box covers the bottom-right corner.
var LegendAnchor = core.P(56, 19)

// Builder assembles the text of a room file.
type Builder struct {
	rows  [core.GridHeight][]rune
	rules []string
}

// New returns a room walled on all four sides with the legend anchor in the
// bottom-right corner.
func New() *Builder {
	b := &Builder{}
	for y := range b.rows {
		row := make([]rune, core.GridWidth)
		for x := range row {
			switch {
			case y == 0 || y == core.GridHeight-1 || x == 0 || x == core.GridWidth-1:
				row[x] = room.Wall
			default:
				row[x] = room.Empty
			}
		}
		b.rows[y] = row
	}
	b.rows[LegendAnchor.Y][LegendAnchor.X] = room.Anchor
	return b
}

// Put writes s horizontally starting at (x, y).
func (b *Builder) Put(x, y int, s string) *Builder {
	for i, r := range []rune(s) {
		if x+i < core.GridWidth {
			b.rows[y][x+i] = r
		}
	}
	return b
}

// Rule appends a rule line.
func (b *Builder) Rule(format string, args ...any) *Builder {
	b.rules = append(b.rules, fmt.Sprintf(format, args...))
	return b
}

// Bytes returns the file contents.
func (b *Builder) Bytes() []byte {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	for _, r := range b.rules {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Room parses and validates the room the way the world loader does.
func (b *Builder) Room(t testing.TB, id int) *room.Room {
	t.Helper()
	r, err := b.load(id)
	if err != nil {
		t.Fatalf("load room %d: %v", id, err)
	}
	return r
}

func (b *Builder) load(id int) (*room.Room, error) {
	r, _, err := room.Parse(id, FileName(id), b.Bytes())
	if err != nil {
		return nil, err
	}
	if err := r.ValidateLinks(); err != nil {
		return nil, err
	}
	if err := r.ValidateLegend(); err != nil {
		return nil, err
	}
	r.ClearLegend()
	return r, nil
}

// FileName returns the conventional file name of room id.
func FileName(id int) string {
	return fmt.Sprintf("adv-world_%02d.screen", id)
}

// World serves builders as rooms 1..n. Every LoadRoom parses afresh and
// binds the riddle records of the room.
type World struct {
	Rooms   []*Builder
	Riddles []room.RiddleRecord
}

// NewWorld returns a world of the given rooms.
func NewWorld(rooms ...*Builder) *World {
	return &World{Rooms: rooms}
}

// WithRiddle adds a riddle record.
func (w *World) WithRiddle(roomID int, p core.Point, question, answer string) *World {
	w.Riddles = append(w.Riddles, room.RiddleRecord{RoomID: roomID, Pos: p, Question: question, Answer: answer})
	return w
}

// NumRooms returns the number of builders.
func (w *World) NumRooms() int { return len(w.Rooms) }

// LoadRoom parses room id.
func (w *World) LoadRoom(id int) (*room.Room, error) {
	if id < 1 || id > len(w.Rooms) {
		return nil, fmt.Errorf("no room %d", id)
	}
	r, err := w.Rooms[id-1].load(id)
	if err != nil {
		return nil, err
	}
	if err := r.ApplyRiddles(w.Riddles); err != nil {
		return nil, err
	}
	return r, nil
}
