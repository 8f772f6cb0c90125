package engine

import (
	"github.com/vovakirdan/tui-adventure/internal/actor"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/room"
)

// handleDoor uses a matching key on a closed door and walks through the door
// once it is open.
func (g *Game) handleDoor(id core.PlayerID) {
	p := g.players[id]
	r := g.active()
	d := r.DoorAt(p.Pos)
	if d == nil {
		return
	}
	if d.Open {
		g.moveRoom(id, d.Dest)
		return
	}

	if !d.KeyOK {
		if it, ok := p.Inventory.(actor.KeyItem); ok && r.Key(it.Index).DoorID == d.ID {
			p.ClearInventory()
			r.Key(it.Index).Removed = true
			d.UseKey()
			g.award(id, ScoreUseKey, g.rules.Scores.UseKey)
		}
	}

	if d.Ready() {
		d.Open = true
		g.logger.Debug("door opened", "room", r.ID, "door", d.ID, "dest", d.Dest)
		g.moveRoom(id, d.Dest)
	}
}

// handleSwitch toggles the switch under the player and updates its door.
func (g *Game) handleSwitch(id core.PlayerID) {
	r := g.active()
	s := r.SwitchAt(g.players[id].Pos)
	if s == nil {
		return
	}
	r.ToggleSwitch(s)
	r.RefreshDoor(s.DoorID)
}

// handleCollectibles picks up the item under the player if the slot is free
// and the player did not just drop something here.
func (g *Game) handleCollectibles(id core.PlayerID) {
	p := g.players[id]
	if p.Holding() || p.AfterDispose {
		return
	}
	r := g.active()
	switch r.At(p.Pos) {
	case room.KeyRune:
		if i, ok := r.CollectKey(p.Pos); ok {
			p.Take(actor.KeyItem{Index: i})
		}
	case room.BombRune:
		if i, ok := r.CollectBomb(p.Pos); ok {
			p.Take(actor.BombItem{Index: i})
		}
	case room.TorchRune:
		if i, ok := r.CollectTorch(p.Pos); ok {
			p.Take(actor.TorchItem{Index: i})
		}
	}
}

// dispose drops the held item on the player's cell. A bomb is armed where
// it lands. The cell must be empty.
func (g *Game) dispose(id core.PlayerID) bool {
	p := g.players[id]
	if !p.Holding() || p.Dead {
		return false
	}
	r := g.rooms[g.playerRoom[id]]
	if r.At(p.Pos) != room.Empty {
		return false
	}
	switch it := p.Inventory.(type) {
	case actor.KeyItem:
		r.PlaceKey(it.Index, p.Pos)
	case actor.TorchItem:
		r.PlaceTorch(it.Index, p.Pos)
	case actor.BombItem:
		r.ArmBomb(it.Index, p.Pos, g.rules.BombFuse)
		g.logger.Debug("bomb armed", "player", id, "at", p.Pos, "fuse", g.rules.BombFuse)
	}
	p.Drop()
	return true
}

// handleRiddle asks the solver when next holds a riddle. It reports whether
// the player may go on: there is no riddle, or it was answered correctly.
func (g *Game) handleRiddle(id core.PlayerID, next core.Point) bool {
	r := g.active()
	q := r.RiddleAt(next)
	if q == nil {
		return true
	}
	if !q.Answerable() {
		return false
	}
	answer, ok := g.solver.Answer(g.cycle, id, q.Question)
	if !ok {
		return false
	}
	correct := q.Check(answer)
	g.emit(RiddleAnsweredEvent{Player: id, Question: q.Question, Answer: answer, Correct: correct})
	if !correct {
		return false
	}
	r.SolveRiddle(q)
	g.award(id, ScoreSolveRiddle, g.rules.Scores.SolveRiddle)
	return true
}

// handleTeleport moves the player to the partner of the teleporter at next.
// It reports whether the player was moved.
func (g *Game) handleTeleport(id core.PlayerID, next core.Point) bool {
	p := g.players[id]
	if next == p.Arrival {
		return false
	}
	dest, ok := g.active().TeleportDest(next)
	if !ok {
		return false
	}
	for _, q := range g.occupied() {
		if q == dest {
			return true
		}
	}
	p.MoveTo(dest)
	p.Arrival = dest
	return true
}
