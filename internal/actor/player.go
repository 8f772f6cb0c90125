// Package actor models the two players: position, movement state,
// acceleration after a spring launch, inventory, lives and score.
package actor

import "github.com/vovakirdan/tui-adventure/internal/core"

// Player is one of the two cooperating players.
type Player struct {
	ID    core.PlayerID
	Glyph rune

	Pos   core.Point
	Start core.Point // respawn and room entry anchor
	Dir   core.Direction

	Speed      int
	AccelTimer int
	ForcedDir  core.Direction
	Pushing    bool // moved through a chain push on this hop

	Dead         bool
	RespawnTimer int

	Inventory    Item
	AfterDispose bool // set by a drop, cleared by the next move
	Compression  int
	Arrival      core.Point // teleporter cell just arrived on

	Lives int
	Score int
}

// New creates a player standing at start.
func New(id core.PlayerID, start core.Point, glyph rune, lives, respawn int) *Player {
	return &Player{
		ID:           id,
		Glyph:        glyph,
		Pos:          start,
		Start:        start,
		Dir:          core.DirStay,
		Speed:        1,
		ForcedDir:    core.DirStay,
		RespawnTimer: respawn,
		Arrival:      core.None,
		Lives:        lives,
	}
}

// Accelerating reports whether a spring launch is still in effect.
func (p *Player) Accelerating() bool {
	return p.AccelTimer > 0
}

// SetDir applies a movement request and reports whether it changed the
// direction. While accelerating, Stay, the forced direction and its
// opposite are ignored.
func (p *Player) SetDir(d core.Direction) bool {
	if d == core.DirDispose {
		return false
	}
	if p.Accelerating() {
		if d == core.DirStay || d == p.ForcedDir || core.AreOpposite(d, p.ForcedDir) {
			return false
		}
	}
	if p.Dir == d {
		return false
	}
	p.Dir = d
	return true
}

// Accel launches the player: speed and direction are forced for force²
// ticks.
func (p *Player) Accel(force int, d core.Direction) {
	p.Speed = force
	p.AccelTimer = force * force
	p.ForcedDir = d
	p.Dir = d
}

// StopAcceleration ends a launch immediately.
func (p *Player) StopAcceleration() {
	p.Speed = 1
	p.AccelTimer = 0
	p.ForcedDir = core.DirStay
}

// TickAcceleration counts the launch down by one tick.
func (p *Player) TickAcceleration() {
	if p.AccelTimer <= 0 {
		return
	}
	p.AccelTimer--
	if p.AccelTimer == 0 {
		p.Speed = 1
		p.ForcedDir = core.DirStay
	}
}

// Hops returns the directions of the cells crossed in one accelerated
// sub-step: the forced direction, then a side step if one is requested.
func (p *Player) Hops() []core.Direction {
	if !p.Accelerating() || !p.ForcedDir.IsMove() {
		return nil
	}
	hops := []core.Direction{p.ForcedDir}
	if p.Dir.IsMove() && p.Dir != p.ForcedDir && !core.AreOpposite(p.Dir, p.ForcedDir) {
		hops = append(hops, p.Dir)
	}
	return hops
}

// MoveTo places the player on q. Leaving the current cell re-enables
// pickups.
func (p *Player) MoveTo(q core.Point) {
	if q != p.Pos {
		p.AfterDispose = false
		if p.Arrival != q {
			p.Arrival = core.None
		}
	}
	p.Pos = q
}

// BumpedInto applies the effect of p running into other. An accelerating
// mover hands its launch over to a player at rest. It reports whether the
// launch was transferred.
func (p *Player) BumpedInto(other *Player) bool {
	if !p.Accelerating() || other.Accelerating() {
		return false
	}
	other.Speed = p.Speed
	other.AccelTimer = p.AccelTimer
	other.ForcedDir = p.ForcedDir
	other.Dir = p.ForcedDir
	return true
}

// LoseLife takes a life away and starts the respawn countdown. It reports
// whether the player has lives left.
func (p *Player) LoseLife(respawn int) bool {
	if p.Lives > 0 {
		p.Lives--
	}
	p.Dead = true
	p.RespawnTimer = respawn
	p.StopAcceleration()
	p.Compression = 0
	return p.Lives > 0
}

// Respawn counts a dead player down and puts it back on its start cell when
// the timer runs out. It reports whether the player is back.
func (p *Player) Respawn() bool {
	if !p.Dead {
		return true
	}
	if p.RespawnTimer > 0 {
		p.RespawnTimer--
	}
	if p.RespawnTimer > 0 {
		return false
	}
	p.Pos = p.Start
	p.Dir = core.DirStay
	p.Dead = false
	return true
}

// ResetForRoom puts the player back on its start cell with a clean state.
func (p *Player) ResetForRoom(respawn int) {
	p.Pos = p.Start
	p.Dir = core.DirStay
	p.StopAcceleration()
	p.Dead = false
	p.RespawnTimer = respawn
	p.Pushing = false
	p.Inventory = nil
	p.AfterDispose = false
	p.Compression = 0
	p.Arrival = core.None
}

// Holding reports whether the inventory slot is in use.
func (p *Player) Holding() bool {
	return p.Inventory != nil
}

// Take puts it in the inventory slot.
func (p *Player) Take(it Item) {
	p.Inventory = it
}

// Drop empties the inventory slot and blocks pickups until the next move.
func (p *Player) Drop() {
	p.Inventory = nil
	p.AfterDispose = true
}

// ClearInventory empties the inventory slot.
func (p *Player) ClearInventory() {
	p.Inventory = nil
}

// AddScore adds points.
func (p *Player) AddScore(points int) {
	p.Score += points
}
