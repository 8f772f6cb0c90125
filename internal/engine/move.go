package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/actor"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

var playerOrder = [core.NumPlayers]core.PlayerID{core.Player1, core.Player2}

// resolve advances the world by one tick.
func (g *Game) resolve() {
	g.active().ClearIllumination()

	for _, id := range playerOrder {
		g.prevPos[id] = g.players[id].Pos
		g.resolved[id] = false
	}

	for _, id := range playerOrder {
		g.movePlayer(id)
		g.resolved[id] = true
		if g.over {
			return
		}
	}

	g.handleBombs()

	if !g.over && g.finished[core.Player1] && g.finished[core.Player2] {
		g.end(core.Player2, EndReasonFinished)
	}
}

func (g *Game) movePlayer(id core.PlayerID) {
	p := g.players[id]
	if g.resolved[id] || g.finished[id] || g.playerRoom[id] != g.curr {
		return
	}
	if p.Dead {
		if p.Respawn() {
			g.logger.Debug("player respawned", "player", id, "pos", p.Pos)
		}
		return
	}

	g.handleTorch(id)

	// The step count is the speed before the launch timer moves on.
	steps := p.Speed
	if p.Accelerating() {
		p.TickAcceleration()
	}

	room := g.playerRoom[id]
	for range steps {
		if p.Accelerating() {
			if g.acceleratedStep(id) {
				return
			}
		} else if g.step(id, p.Dir) {
			return
		}
		if g.over || g.playerRoom[id] != room || p.Dead {
			return
		}
	}
}

// acceleratedStep moves a launched player through the cells of one
// sub-step: the forced direction first, then the requested side step.
// A chain push ends the launch movement for the tick.
func (g *Game) acceleratedStep(id core.PlayerID) (stop bool) {
	p := g.players[id]
	for _, d := range p.Hops() {
		p.Pushing = false
		if g.step(id, d) {
			return true
		}
		if !p.Accelerating() || p.Pushing {
			return true
		}
	}
	return false
}

// step resolves one cell of movement in direction d. It reports whether the
// player must not move any further this tick.
func (g *Game) step(id core.PlayerID, d core.Direction) (stop bool) {
	p := g.players[id]
	r := g.active()
	next := p.Pos.Next(d)

	if r.IsLegend(next) {
		return true
	}
	if g.handleSprings(id, d) {
		return true
	}
	if !d.IsMove() {
		return true
	}
	if g.handleTeleport(id, next) {
		return true
	}
	if g.handleObstacle(id, next, d) {
		return true
	}
	if !g.handleRiddle(id, next) {
		p.Dir = core.DirStay
		return true
	}
	if !r.IsCellFree(next) {
		if p.Accelerating() {
			p.StopAcceleration()
			g.logger.Debug("launch stopped by wall", "player", id, "at", next)
		}
		return true
	}
	if g.playersCollide(id, next, d) {
		return true
	}

	p.MoveTo(next)
	return g.afterMove(id)
}

// afterMove applies what the new cell holds: a door, then a switch, then
// an item. It reports whether the player left the room or the game ended.
func (g *Game) afterMove(id core.PlayerID) (stop bool) {
	before := g.playerRoom[id]
	g.handleDoor(id)
	if g.over || g.playerRoom[id] != before {
		return true
	}
	g.handleSwitch(id)
	g.handleCollectibles(id)
	return g.players[id].Dead
}

// handleTorch lights the dark around a player carrying a torch.
func (g *Game) handleTorch(id core.PlayerID) {
	p := g.players[id]
	if _, ok := p.Inventory.(actor.TorchItem); ok {
		g.active().Illuminate(p.Pos, g.rules.TorchRadius)
	}
}

// occupied returns the cells of the players standing in the active room.
func (g *Game) occupied() []core.Point {
	var cells []core.Point
	for _, id := range playerOrder {
		if g.present(id) {
			cells = append(cells, g.players[id].Pos)
		}
	}
	return cells
}
