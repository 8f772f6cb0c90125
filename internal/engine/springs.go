package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

// handleSprings resolves a step of player id in direction d against the
// springs of the active room. It reports whether the step is over: the
// player either pressed a link in or was blocked by the side of a spring.
//
// A player that walks away from a compressed spring, or stops pressing it,
// is launched by the spring it was pressing. If that spring cannot be found
// next to the player the compression is dropped.
func (g *Game) handleSprings(id core.PlayerID, d core.Direction) bool {
	p := g.players[id]
	r := g.active()
	next := p.Pos.Next(d)

	sp := r.SpringAt(next)
	if sp == nil || next == p.Pos {
		if p.Compression == 0 {
			return false
		}
		adj := g.adjacentSpring(p.Pos)
		if adj == nil {
			p.Compression = 0
			return false
		}
		g.launch(id, adj)
		return true
	}

	// Riding out along the spring, as after a launch, passes over it.
	if d == sp.Dir {
		return false
	}
	if next != sp.Tip() || !sp.CompressedBy(d) {
		return true
	}

	if p.Accelerating() {
		p.StopAcceleration()
	}
	p.Compression++
	if r.CompressSpring(sp) {
		p.MoveTo(next)
		return true
	}
	g.launch(id, sp)
	return true
}

// adjacentSpring finds a partly compressed spring next to pos.
func (g *Game) adjacentSpring(pos core.Point) *room.Spring {
	r := g.active()
	for _, d := range core.Cardinals {
		q := pos.Next(d)
		for i := range r.Springs {
			sp := &r.Springs[i]
			if sp.Removed || sp.CurrSize == sp.FullSize {
				continue
			}
			if sp.Spans(q) && (sp.CurrSize == 0 || q == sp.Tip()) {
				return sp
			}
		}
	}
	return nil
}

// launch releases sp and throws the player along the spring's direction
// with the force of the compressed links.
func (g *Game) launch(id core.PlayerID, sp *room.Spring) {
	p := g.players[id]
	force := g.active().ReleaseSpring(sp)
	if force > 0 {
		p.Accel(force, sp.Dir)
		g.logger.Debug("player launched", "player", id, "force", force, "dir", sp.Dir)
	}
	p.Compression = 0
}
