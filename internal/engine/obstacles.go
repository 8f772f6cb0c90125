package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

// handleObstacle tries to push the obstacle at next. It reports whether the
// step is over, which is always the case when next is an obstacle cell: the
// player either follows the obstacle onto the cell it left or stays put.
func (g *Game) handleObstacle(id core.PlayerID, next core.Point, d core.Direction) bool {
	r := g.active()
	if !r.IsObstacle(next) {
		return false
	}
	o := r.ObstacleAt(next)
	if o == nil {
		return false
	}
	if !g.canPush(id, o, d) {
		return true
	}
	r.PushObstacle(o, d)
	g.players[id].MoveTo(next)
	return true
}

// canPush reports whether player id, helped by the other player, moves o
// one cell in direction d.
func (g *Game) canPush(id core.PlayerID, o *room.ObstacleBody, d core.Direction) bool {
	if !o.CanBePushed(g.calcForce(id, o, d)) {
		return false
	}
	return g.active().CanMoveObstacle(o, o.NextBody(d), g.occupied()...)
}

// calcForce returns the force player id applies to o in direction d. The
// other player adds its speed when it heads the same way and, judging by
// the positions at the start of the tick, either stands behind o itself or
// stands right behind the pusher.
func (g *Game) calcForce(id core.PlayerID, o *room.ObstacleBody, d core.Direction) int {
	pusher := g.players[id]
	force := pusher.Speed

	oid := id.Other()
	other := g.players[oid]
	if !g.present(oid) || other.Dir != d {
		return force
	}

	pusherStart := g.prevPos[id]
	otherStart := g.prevPos[oid]
	if o.Contains(otherStart.Next(d)) || otherStart == pusherStart.Next(d.Opposite()) {
		force += other.Speed
	}
	return force
}

// chainPush pushes the obstacle blocking the other player when the mover
// adds enough force through it. The other player follows the obstacle and
// does not move again this tick.
func (g *Game) chainPush(id core.PlayerID, d core.Direction, at core.Point) bool {
	r := g.active()
	o := r.ObstacleAt(at)
	if o == nil || !g.canPush(id, o, d) {
		return false
	}
	r.PushObstacle(o, d)
	g.players[id.Other()].MoveTo(at)
	g.resolved[id.Other()] = true
	g.logger.Debug("chain push", "player", id, "obstacle", at, "dir", d)
	return true
}
