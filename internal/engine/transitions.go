package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// moveRoom takes player id through a door into room dest.
func (g *Game) moveRoom(id core.PlayerID, dest int) {
	p := g.players[id]
	oid := id.Other()
	entry := g.entryPoint(id, dest, p.Pos.Y)

	// A room that comes into view drops the torch light of its last visit.
	prev := g.curr
	defer func() {
		if g.curr != prev {
			g.active().ClearIllumination()
		}
	}()

	p.Start = entry
	p.MoveTo(entry)
	p.StopAcceleration()
	p.Compression = 0
	p.Pushing = false
	g.playerRoom[id] = dest

	if g.rooms[dest].Final {
		g.finished[id] = true
		if !g.finished[oid] {
			g.curr = g.playerRoom[oid]
			g.award(id, ScoreFinishFirst, g.rules.Scores.FinishFirst)
			g.emit(PlayerFinishedEvent{Player: id, Place: 1, Score: p.Score})
			g.logger.Info("player finished", "player", id, "place", 1, "score", p.Score)
			return
		}
		g.curr = dest
		g.award(id, ScoreFinishSecond, g.rules.Scores.FinishSecond)
		g.emit(PlayerFinishedEvent{Player: id, Place: 2, Score: p.Score})
		g.logger.Info("player finished", "player", id, "place", 2, "score", p.Score)
		g.end(id, EndReasonFinished)
		return
	}

	g.roomsDone[id]++
	p.ClearInventory()
	g.award(id, ScoreOpenDoor, g.rules.Scores.OpenDoor)
	g.emit(RoomChangedEvent{Player: id, Room: dest})
	g.logger.Info("room changed", "player", id, "room", dest, "cycle", g.cycle)

	// The view stays with whoever is behind.
	switch {
	case g.roomsDone[core.Player1] < g.roomsDone[core.Player2]:
		g.curr = g.playerRoom[core.Player1]
	case g.roomsDone[core.Player2] < g.roomsDone[core.Player1]:
		g.curr = g.playerRoom[core.Player2]
	default:
		g.curr = dest
	}
}

// entryPoint returns where player id appears in room dest: column 1 or 2 of
// the door's row, or the first free cell of the room.
func (g *Game) entryPoint(id core.PlayerID, dest, row int) core.Point {
	r := g.rooms[dest]
	x := 1
	if id == core.Player2 {
		x = 2
	}
	start := core.P(x, row)
	if !r.IsLegend(start) && r.IsEmpty(start) && !g.taken(id, dest, start) {
		return start
	}
	for y := 1; y < core.GridHeight; y++ {
		for x := 1; x < core.GridWidth; x++ {
			p := core.P(x, y)
			if !r.IsLegend(p) && r.IsEmpty(p) && !g.taken(id, dest, p) {
				return p
			}
		}
	}
	return start
}

// taken reports whether the other player stands on p in room dest.
func (g *Game) taken(id core.PlayerID, dest int, p core.Point) bool {
	oid := id.Other()
	return g.playerRoom[oid] == dest && !g.players[oid].Dead && g.players[oid].Pos == p
}

// loseLife takes a life from player id. Losing the last one ends the game.
func (g *Game) loseLife(id core.PlayerID) {
	p := g.players[id]
	alive := p.LoseLife(g.rules.RespawnTicks)
	g.emit(LifeLostEvent{Player: id, LivesLeft: p.Lives})
	g.logger.Info("life lost", "player", id, "lives", p.Lives, "cycle", g.cycle)
	if !alive && !g.over {
		g.end(id, EndReasonDied)
	}
}
