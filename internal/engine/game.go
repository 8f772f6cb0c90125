// Package engine runs a game session: it owns the rooms of a world and the
// two players and resolves one tick at a time.
//
// A tick clears the torch light, snapshots the player positions, moves
// player 1 then player 2 cell by cell, ticks the bombs of the active room and
// finally checks whether both players are done. Everything a tick produces
// beyond state changes is reported to a Sink.
package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/actor"
	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

// Player glyphs and start cells.
var (
	Start1 = core.P(3, 9)
	Start2 = core.P(3, 11)
)

const (
	Glyph1 = '$'
	Glyph2 = '&'
)

// RoomLoader provides freshly parsed and validated rooms. Rooms are
// numbered from 1; the final room is not loaded, it is generated.
type RoomLoader interface {
	NumRooms() int
	LoadRoom(id int) (*room.Room, error)
}

// Outcome describes how a finished game ended.
type Outcome struct {
	Reason EndReason
	Player core.PlayerID // player whose move ended the game
	Score1 int
	Score2 int
}

// Team returns the combined score.
func (o Outcome) Team() int {
	return o.Score1 + o.Score2
}

// Game is one session over a world.
type Game struct {
	loader RoomLoader
	rooms  []*room.Room // index 0 unused, last is the final room

	players    [core.NumPlayers]*actor.Player
	playerRoom [core.NumPlayers]int
	roomsDone  [core.NumPlayers]int
	finished   [core.NumPlayers]bool
	prevPos    [core.NumPlayers]core.Point
	resolved   [core.NumPlayers]bool // player already moved this tick

	curr    int // active room
	cycle   uint64
	over    bool
	outcome Outcome

	rules  config.RulesConfig
	sink   Sink
	solver RiddleSolver
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithSink sets the event consumer.
func WithSink(s Sink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithSolver sets the source of riddle answers.
func WithSolver(s RiddleSolver) Option {
	return func(g *Game) {
		if s != nil {
			g.solver = s
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRules overrides the default rules.
func WithRules(r config.RulesConfig) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// New loads every room of the world and places both players in the first
// room.
func New(loader RoomLoader, opts ...Option) (*Game, error) {
	g := &Game{
		loader: loader,
		rules:  config.DefaultRules(),
		sink:   Discard,
		solver: NoAnswers,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	n := loader.NumRooms()
	if n < 1 {
		return nil, fmt.Errorf("engine: world has no rooms")
	}
	g.rooms = make([]*room.Room, n+2)
	for id := room.FirstRoomID; id <= n; id++ {
		r, err := loader.LoadRoom(id)
		if err != nil {
			return nil, fmt.Errorf("engine: load room %d: %w", id, err)
		}
		g.rooms[id] = r
	}
	g.rooms[n+1] = room.NewFinal(n + 1)

	g.players[core.Player1] = actor.New(core.Player1, Start1, Glyph1, g.rules.Lives, g.rules.EntryRespawnTicks)
	g.players[core.Player2] = actor.New(core.Player2, Start2, Glyph2, g.rules.Lives, g.rules.EntryRespawnTicks)
	g.curr = room.FirstRoomID
	for id := range g.playerRoom {
		g.playerRoom[id] = room.FirstRoomID
	}
	g.logger.Debug("game created", "rooms", n)
	return g, nil
}

// Tick runs one game-loop iteration: the cycle counter advances, the
// intents are applied in order and the world is resolved once. It returns
// the intents that changed a player's state.
func (g *Game) Tick(intents []core.Intent) []core.Intent {
	if g.over {
		return nil
	}
	g.cycle++
	var applied []core.Intent
	for _, in := range intents {
		if g.Apply(in) {
			applied = append(applied, in)
		}
	}
	g.resolve()
	return applied
}

// Apply handles one key press before the tick is resolved. Movement sets
// the player's direction; Dispose drops the held item on the current cell.
// It reports whether anything changed.
func (g *Game) Apply(in core.Intent) bool {
	if g.over || in.Player < 0 || int(in.Player) >= core.NumPlayers {
		return false
	}
	if g.finished[in.Player] {
		return false
	}
	p := g.players[in.Player]
	if in.Dir == core.DirDispose {
		return g.dispose(in.Player)
	}
	return p.SetDir(in.Dir)
}

// RestartRoom reloads the active room from its source and puts every player
// in it back on its start cell. The final room cannot be restarted.
func (g *Game) RestartRoom() error {
	if g.over || g.rooms[g.curr].Final {
		return nil
	}
	r, err := g.loader.LoadRoom(g.curr)
	if err != nil {
		return fmt.Errorf("engine: restart room %d: %w", g.curr, err)
	}
	g.rooms[g.curr] = r
	for id, p := range g.players {
		if g.playerRoom[id] == g.curr && !g.finished[id] {
			p.ResetForRoom(g.rules.EntryRespawnTicks)
		}
	}
	g.logger.Info("room restarted", "room", g.curr, "cycle", g.cycle)
	return nil
}

// Cycle returns the number of ticks run so far.
func (g *Game) Cycle() uint64 { return g.cycle }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.over }

// Outcome returns how the game ended. It is only meaningful once Over is true.
func (g *Game) Outcome() Outcome { return g.outcome }

// Player returns the player with the given id.
func (g *Game) Player(id core.PlayerID) *actor.Player { return g.players[id] }

// ActiveRoomID returns the id of the room being played and shown.
func (g *Game) ActiveRoomID() int { return g.curr }

// ActiveRoom returns the room being played and shown.
func (g *Game) ActiveRoom() *room.Room { return g.rooms[g.curr] }

// Room returns the room with the given id.
func (g *Game) Room(id int) *room.Room { return g.rooms[id] }

// NumRooms returns the number of rooms including the final room.
func (g *Game) NumRooms() int { return len(g.rooms) - 1 }

// PlayerRoom returns the room a player is in.
func (g *Game) PlayerRoom(id core.PlayerID) int { return g.playerRoom[id] }

// Finished reports whether a player has reached the final room.
func (g *Game) Finished(id core.PlayerID) bool { return g.finished[id] }

// Rules returns the rules in effect.
func (g *Game) Rules() config.RulesConfig { return g.rules }

func (g *Game) active() *room.Room {
	return g.rooms[g.curr]
}

// present reports whether a player is alive in the active room.
func (g *Game) present(id core.PlayerID) bool {
	return !g.finished[id] && g.playerRoom[id] == g.curr && !g.players[id].Dead
}

func (g *Game) emit(ev Event) {
	g.sink.Emit(g.cycle, ev)
}

func (g *Game) award(id core.PlayerID, reason ScoreReason, points int) {
	p := g.players[id]
	p.AddScore(points)
	g.emit(ScoreAwardedEvent{Player: id, Reason: reason, Points: points, Total: p.Score})
}

func (g *Game) end(id core.PlayerID, reason EndReason) {
	g.over = true
	g.outcome = Outcome{
		Reason: reason,
		Player: id,
		Score1: g.players[core.Player1].Score,
		Score2: g.players[core.Player2].Score,
	}
	g.emit(GameEndedEvent{Player: id, Reason: reason, Score1: g.outcome.Score1, Score2: g.outcome.Score2})
	g.logger.Info("game over", "reason", reason, "player", id, "team", g.outcome.Team(), "cycle", g.cycle)
}
