package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// playersCollide reports whether player id, stepping onto next in direction
// d, runs into the other player and must stop.
func (g *Game) playersCollide(id core.PlayerID, next core.Point, d core.Direction) bool {
	oid := id.Other()
	if !g.present(oid) || g.playerRoom[oid] != g.playerRoom[id] {
		return false
	}
	me, other := g.players[id], g.players[oid]
	if next != other.Pos {
		return false
	}
	if me.Accelerating() && other.Accelerating() {
		return false
	}

	// Standing still or coming the other way.
	if other.Dir == core.DirStay || core.AreOpposite(d, other.Dir) {
		g.bump(id)
		return true
	}

	r := g.active()
	otherNext := other.Pos.Next(other.Dir)
	if r.IsObstacle(otherNext) {
		if g.chainPush(id, d, otherNext) {
			me.Pushing = true
			return false
		}
		g.bump(id)
		return true
	}

	// A player that already moved this tick, or cannot move, stays where it is.
	if g.resolved[oid] || g.blocked(oid, otherNext) {
		g.bump(id)
		return true
	}
	return false
}

// blocked reports whether player id, heading for next, stays on its cell
// this tick. An unsolved riddle counts as blocking since answering it is
// up to the solver.
func (g *Game) blocked(id core.PlayerID, next core.Point) bool {
	r := g.active()
	p := g.players[id]
	d := p.Dir

	if r.IsLegend(next) || !r.IsCellFree(next) {
		return true
	}
	if r.RiddleAt(next) != nil {
		return true
	}
	if sp := r.SpringAt(next); sp != nil && d != sp.Dir {
		// Only pressing the tip with links left to give moves the player.
		return next != sp.Tip() || !sp.CompressedBy(d) || sp.CurrSize < 2
	}
	if p.Compression > 0 && g.adjacentSpring(p.Pos) != nil {
		// Letting go of a spring launches the player in place.
		return true
	}
	if next != p.Arrival {
		if dest, ok := r.TeleportDest(next); ok {
			for _, q := range g.occupied() {
				if q == dest {
					return true
				}
			}
		}
	}
	return false
}

// bump reports a blocked move and hands an acceleration over to the other
// player.
func (g *Game) bump(id core.PlayerID) {
	oid := id.Other()
	if g.players[id].BumpedInto(g.players[oid]) {
		g.logger.Debug("launch transferred", "from", id, "to", oid)
	}
	g.emit(BumpedEvent{Player: id, Other: oid})
}
