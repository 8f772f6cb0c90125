package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/actor"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// PlayerSnapshot is the observable state of one player.
type PlayerSnapshot struct {
	X, Y       int
	Dir        int
	Speed      int
	AccelTimer int
	Lives      int
	Score      int
	Dead       bool
	Room       int
	Finished   bool
	Item       rune
}

// Snapshot contains the observable game state, for determinism checks and
// tooling. Uses primitive types only.
type Snapshot struct {
	Cycle   uint64
	Room    int
	Over    bool
	Players [core.NumPlayers]PlayerSnapshot
	Board   []string // rows of the active room
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Cycle: g.cycle,
		Room:  g.curr,
		Over:  g.over,
		Board: make([]string, core.GridHeight),
	}
	for _, id := range playerOrder {
		p := g.players[id]
		snap.Players[id] = PlayerSnapshot{
			X:          p.Pos.X,
			Y:          p.Pos.Y,
			Dir:        int(p.Dir),
			Speed:      p.Speed,
			AccelTimer: p.AccelTimer,
			Lives:      p.Lives,
			Score:      p.Score,
			Dead:       p.Dead,
			Room:       g.playerRoom[id],
			Finished:   g.finished[id],
			Item:       actor.ItemGlyph(p.Inventory),
		}
	}
	r := g.active()
	for y := range core.GridHeight {
		snap.Board[y] = r.Row(y)
	}
	return snap
}

// Hash computes a hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Cycle
	h = h*31 + uint64(snap.Room) //#nosec G115 -- hash computation
	if snap.Over {
		h = h*31 + 1
	}
	for _, p := range snap.Players {
		for _, v := range []int{p.X, p.Y, p.Dir, p.Speed, p.AccelTimer, p.Lives, p.Score, p.Room, int(p.Item)} {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
		if p.Dead {
			h = h*31 + 1
		}
		if p.Finished {
			h = h*31 + 2
		}
	}
	for _, row := range snap.Board {
		for _, c := range row {
			h = h*31 + uint64(c) //#nosec G115 -- hash computation
		}
	}
	return h
}
