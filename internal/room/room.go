package room

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Room is one screen of the world. Objects are stored in per-type arenas
// and referenced by index. Removed objects are tombstoned rather than
// compacted so indices held elsewhere stay valid.
type Room struct {
	ID     int
	Source string // file the room was parsed from, empty for the final room
	Final  bool

	board [core.GridHeight][core.GridWidth]rune

	Doors     []Door
	Keys      []Key
	Bombs     []Bomb
	Switches  []Switch
	Springs   []Spring
	Obstacles []ObstacleBody
	Torches   []Torch
	Riddles   []Riddle
	Teleports []TeleportPair
	DarkAreas []core.Rect
	legend    core.Rect
	hasLegend bool
	lit       mapset.Set[core.Point]
}

func newRoom(id int, source string) *Room {
	r := &Room{ID: id, Source: source, lit: mapset.New[core.Point]()}
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = Empty
		}
	}
	return r
}

// At returns the board character at p. Cells off the grid read as walls.
func (r *Room) At(p core.Point) rune {
	if !p.InBounds() {
		return Wall
	}
	return r.board[p.Y][p.X]
}

func (r *Room) set(p core.Point, c rune) {
	if p.InBounds() {
		r.board[p.Y][p.X] = c
	}
}

// Erase clears a single cell of the board.
func (r *Room) Erase(p core.Point) {
	r.set(p, Empty)
}

// Legend returns the HUD rectangle and whether the room has one.
func (r *Room) Legend() (core.Rect, bool) {
	return r.legend, r.hasLegend
}

// IsLegend reports whether p lies inside the HUD rectangle.
func (r *Room) IsLegend(p core.Point) bool {
	return r.hasLegend && r.legend.Contains(p)
}

// IsWall reports whether p holds a wall or a barrier.
func (r *Room) IsWall(p core.Point) bool {
	return IsBarrier(r.At(p))
}

// IsCellFree reports whether a player may stand on p as far as the board goes.
func (r *Room) IsCellFree(p core.Point) bool {
	return p.InBounds() && !r.IsWall(p)
}

// IsEmpty reports whether p is an in-bounds blank cell.
func (r *Room) IsEmpty(p core.Point) bool {
	return p.InBounds() && r.At(p) == Empty
}

// IsItem reports whether p holds a collectible.
func (r *Room) IsItem(p core.Point) bool {
	c := r.At(p)
	return c == KeyRune || c == BombRune || c == TorchRune
}

// IsDoor reports whether p holds a door.
func (r *Room) IsDoor(p core.Point) bool {
	return p.InBounds() && IsDoorRune(r.At(p))
}

// IsSwitch reports whether p holds a switch.
func (r *Room) IsSwitch(p core.Point) bool {
	c := r.At(p)
	return p.InBounds() && (c == SwitchOn || c == SwitchOff)
}

// IsObstacle reports whether p holds an obstacle cell.
func (r *Room) IsObstacle(p core.Point) bool {
	return p.InBounds() && r.At(p) == Obstacle
}

// IsSpring reports whether p holds a spring link.
func (r *Room) IsSpring(p core.Point) bool {
	return p.InBounds() && r.At(p) == SpringRune
}

// DoorAt returns the door at p or nil.
func (r *Room) DoorAt(p core.Point) *Door {
	for i := range r.Doors {
		if d := &r.Doors[i]; !d.Removed && d.Pos == p {
			return d
		}
	}
	return nil
}

// DoorByID returns the door with the given logical id.
// An unknown id means the room was not validated and panics.
func (r *Room) DoorByID(id int) *Door {
	if d := r.findDoor(id); d != nil {
		return d
	}
	panic(fmt.Sprintf("room %d: no door with id %d", r.ID, id))
}

func (r *Room) findDoor(id int) *Door {
	for i := range r.Doors {
		if d := &r.Doors[i]; !d.Removed && d.ID == id {
			return d
		}
	}
	return nil
}

// KeyAt returns the index of the key lying at p.
func (r *Room) KeyAt(p core.Point) (int, bool) {
	for i := range r.Keys {
		if k := &r.Keys[i]; k.Active && !k.Removed && k.Pos == p {
			return i, true
		}
	}
	return -1, false
}

// BombAt returns the index of the bomb at p, armed or not.
func (r *Room) BombAt(p core.Point) (int, bool) {
	for i := range r.Bombs {
		if b := &r.Bombs[i]; b.Active && b.Pos == p {
			return i, true
		}
	}
	return -1, false
}

// TorchAt returns the index of the torch lying at p.
func (r *Room) TorchAt(p core.Point) (int, bool) {
	for i := range r.Torches {
		if t := &r.Torches[i]; t.Active && !t.Removed && t.Pos == p {
			return i, true
		}
	}
	return -1, false
}

// SwitchAt returns the switch at p or nil.
func (r *Room) SwitchAt(p core.Point) *Switch {
	for i := range r.Switches {
		if s := &r.Switches[i]; !s.Removed && s.Pos == p {
			return s
		}
	}
	return nil
}

// RiddleAt returns the unsolved riddle at p or nil.
func (r *Room) RiddleAt(p core.Point) *Riddle {
	for i := range r.Riddles {
		if q := &r.Riddles[i]; !q.Solved && q.Pos == p {
			return q
		}
	}
	return nil
}

// SpringAt returns the spring with an extended link at p, or nil.
func (r *Room) SpringAt(p core.Point) *Spring {
	for i := range r.Springs {
		if s := &r.Springs[i]; !s.Removed && s.Contains(p) {
			return s
		}
	}
	return nil
}

// ObstacleAt returns the obstacle covering p, or nil.
func (r *Room) ObstacleAt(p core.Point) *ObstacleBody {
	for i := range r.Obstacles {
		if o := &r.Obstacles[i]; !o.Removed && o.Contains(p) {
			return o
		}
	}
	return nil
}

// TeleportDest returns the partner of the teleporter at p.
func (r *Room) TeleportDest(p core.Point) (core.Point, bool) {
	for _, t := range r.Teleports {
		if t.Removed {
			continue
		}
		if dest, ok := t.Other(p); ok {
			return dest, true
		}
	}
	return core.None, false
}

// Key returns the key stored at index i.
func (r *Room) Key(i int) *Key { return &r.Keys[i] }

// Bomb returns the bomb stored at index i.
func (r *Room) Bomb(i int) *Bomb { return &r.Bombs[i] }

// Torch returns the torch stored at index i.
func (r *Room) Torch(i int) *Torch { return &r.Torches[i] }

// CollectKey lifts the key at p off the board.
func (r *Room) CollectKey(p core.Point) (int, bool) {
	i, ok := r.KeyAt(p)
	if !ok {
		return -1, false
	}
	r.Keys[i].Active = false
	r.Erase(p)
	return i, true
}

// CollectBomb lifts an unarmed bomb at p off the board.
func (r *Room) CollectBomb(p core.Point) (int, bool) {
	i, ok := r.BombAt(p)
	if !ok || r.Bombs[i].Ticking {
		return -1, false
	}
	r.Bombs[i].Active = false
	r.Erase(p)
	return i, true
}

// CollectTorch lifts the torch at p off the board.
func (r *Room) CollectTorch(p core.Point) (int, bool) {
	i, ok := r.TorchAt(p)
	if !ok {
		return -1, false
	}
	r.Torches[i].Active = false
	r.Erase(p)
	return i, true
}

// PlaceKey puts a carried key back on the board at p.
func (r *Room) PlaceKey(i int, p core.Point) {
	k := &r.Keys[i]
	k.Pos = p
	k.Active = true
	r.set(p, KeyRune)
}

// PlaceTorch puts a carried torch back on the board at p.
func (r *Room) PlaceTorch(i int, p core.Point) {
	t := &r.Torches[i]
	t.Pos = p
	t.Active = true
	r.set(p, TorchRune)
}

// ArmBomb places a carried bomb at p and lights its fuse.
func (r *Room) ArmBomb(i int, p core.Point, fuse int) {
	r.Bombs[i].Arm(p, fuse)
	r.set(p, BombRune)
}

// ToggleSwitch flips the switch and redraws it.
func (r *Room) ToggleSwitch(s *Switch) {
	s.Toggle()
	r.set(s.Pos, s.Glyph())
}

// RefreshDoor recomputes the switch gate of the door with the given id
// from every switch linked to it.
func (r *Room) RefreshDoor(id int) {
	d := r.DoorByID(id)
	total, on := 0, 0
	for _, s := range r.Switches {
		if s.Removed || s.DoorID != id {
			continue
		}
		total++
		if s.On {
			on++
		}
	}
	switch d.Rule {
	case AllOn:
		d.SwitchOK = total == on
	case AllOff:
		d.SwitchOK = on == 0
	}
}

// RefreshDoors evaluates every switch rule against the current switch states.
func (r *Room) RefreshDoors() {
	seen := mapset.New[int]()
	for _, s := range r.Switches {
		if s.Removed || seen.Has(s.DoorID) || r.findDoor(s.DoorID) == nil {
			continue
		}
		seen.Put(s.DoorID)
		r.RefreshDoor(s.DoorID)
	}
}

// SolveRiddle marks the riddle solved and clears its cell.
func (r *Room) SolveRiddle(q *Riddle) {
	q.Solved = true
	r.Erase(q.Pos)
}

// CompressSpring removes the tip link and reports whether links remain.
func (r *Room) CompressSpring(s *Spring) bool {
	if s.CurrSize == 0 {
		return false
	}
	r.Erase(s.Tip())
	s.CurrSize--
	return s.CurrSize > 0
}

// ReleaseSpring extends the spring back to full length and returns the
// launch force.
func (r *Room) ReleaseSpring(s *Spring) int {
	force := s.Release()
	for i := 0; i < s.CurrSize; i++ {
		p := s.LinkPos(i)
		if c := r.At(p); c == Empty || c == SpringRune {
			r.set(p, SpringRune)
		}
	}
	return force
}

// PushObstacle moves every cell of o one step in d.
// The caller has already checked that the target cells are free.
func (r *Room) PushObstacle(o *ObstacleBody, d core.Direction) {
	for _, c := range o.Cells {
		r.Erase(c)
	}
	o.Cells = o.NextBody(d)
	for _, c := range o.Cells {
		r.set(c, Obstacle)
	}
}

// CanMoveObstacle reports whether o fits at next: every cell is on the grid,
// outside the legend and either blank or already part of o. Cells listed in
// occupied (players) are refused.
func (r *Room) CanMoveObstacle(o *ObstacleBody, next []core.Point, occupied ...core.Point) bool {
	for _, p := range next {
		if !p.InBounds() || r.IsLegend(p) {
			return false
		}
		for _, q := range occupied {
			if q == p {
				return false
			}
		}
		if r.At(p) == Empty {
			continue
		}
		if r.At(p) == Obstacle && o.Contains(p) {
			continue
		}
		return false
	}
	return true
}

// ClearIllumination resets the torch light mask.
func (r *Room) ClearIllumination() {
	r.lit = mapset.New[core.Point]()
}

// Illuminate lights cells within the given Manhattan radius of center,
// clipped to a square of side 2*(radius-1)+1.
func (r *Room) Illuminate(center core.Point, radius int) {
	reach := radius - 1
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if core.Abs(dx)+core.Abs(dy) > radius {
				continue
			}
			if p := center.Add(dx, dy); p.InBounds() {
				r.lit.Put(p)
			}
		}
	}
}

// IsLit reports whether a torch lights p this tick.
func (r *Room) IsLit(p core.Point) bool {
	return r.lit.Has(p)
}

// InDark reports whether p lies inside a dark area.
func (r *Room) InDark(p core.Point) bool {
	for _, a := range r.DarkAreas {
		if a.Contains(p) {
			return true
		}
	}
	return false
}

// IsVisible reports whether p is drawn as is.
func (r *Room) IsVisible(p core.Point) bool {
	return !r.InDark(p) || r.IsLit(p)
}

// Draw renders the board onto s. Unlit dark cells show as dots, walls
// always show.
func (r *Room) Draw(s *core.Screen) {
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			p := core.P(x, y)
			c := r.board[y][x]
			if c != Wall && !r.IsVisible(p) {
				c = DarkRune
			}
			s.SetColored(x, y, c, ColorOf(c))
		}
	}
	for _, d := range r.Doors {
		if !d.Removed && d.Open && r.IsVisible(d.Pos) {
			s.SetColored(d.Pos.X, d.Pos.Y, d.Glyph(), core.ColorDoorOpen)
		}
	}
	if r.Final {
		DrawBanner(s)
	}
}

// Row returns the raw board row y, for tests and tooling.
func (r *Room) Row(y int) string {
	return string(r.board[y][:])
}

// Stats counts the live objects of the room.
type Stats struct {
	Doors, Keys, Bombs, Switches, Springs, Obstacles, Torches, Riddles, Teleports, DarkAreas int
}

// Stats returns object counts for listings.
func (r *Room) Stats() Stats {
	var st Stats
	for _, d := range r.Doors {
		if !d.Removed {
			st.Doors++
		}
	}
	for _, k := range r.Keys {
		if k.Active && !k.Removed {
			st.Keys++
		}
	}
	for _, b := range r.Bombs {
		if b.Active {
			st.Bombs++
		}
	}
	for _, s := range r.Switches {
		if !s.Removed {
			st.Switches++
		}
	}
	for _, s := range r.Springs {
		if !s.Removed {
			st.Springs++
		}
	}
	for _, o := range r.Obstacles {
		if !o.Removed {
			st.Obstacles++
		}
	}
	for _, t := range r.Torches {
		if t.Active && !t.Removed {
			st.Torches++
		}
	}
	for _, q := range r.Riddles {
		if !q.Solved {
			st.Riddles++
		}
	}
	for _, t := range r.Teleports {
		if !t.Removed {
			st.Teleports++
		}
	}
	st.DarkAreas = len(r.DarkAreas)
	return st
}
