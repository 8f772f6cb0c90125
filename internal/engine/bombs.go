package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

// handleBombs ticks every bomb of the active room once, then detonates the
// ones whose fuse ran out.
func (g *Game) handleBombs() {
	r := g.active()
	var due []core.Point
	for i := range r.Bombs {
		if r.Bombs[i].Tick() {
			due = append(due, r.Bombs[i].Pos)
		}
	}
	for _, c := range due {
		g.explode(c)
	}
}

// explode detonates the bomb at center. Bombs caught in the blast join the
// queue and go off after the current one, in the order they were hit.
func (g *Game) explode(center core.Point) {
	r := g.active()
	if !r.RemoveBombAt(center) {
		return
	}
	queue := []core.Point{center}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		g.logger.Debug("bomb exploded", "room", r.ID, "at", c)

		for _, ray := range room.BlastPattern(c, g.rules.BlastRadius) {
			for i, p := range ray {
				if !p.InBounds() {
					break
				}
				if ch := r.At(p); room.IsBarrier(ch) {
					// Only a barrier right next to the bomb breaks.
					if i == 0 && room.IsBreakable(ch) {
						r.Erase(p)
					}
					break
				}
				if r.RemoveBombAt(p) {
					queue = append(queue, p)
				}
				r.RemoveObjectsAt(p)
				g.blastPlayers(p)
			}
		}
	}
}

// blastPlayers costs a life to every player standing on p.
func (g *Game) blastPlayers(p core.Point) {
	for _, id := range playerOrder {
		if g.present(id) && g.players[id].Pos == p {
			g.loseLife(id)
		}
	}
}
