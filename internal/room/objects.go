package room

import (
	"strings"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// SwitchRule decides when the switches linked to a door let it open.
type SwitchRule int

const (
	AllOn  SwitchRule = iota // every linked switch is on
	AllOff                   // every linked switch is off
	NoRule                   // switches are ignored
)

func (r SwitchRule) String() string {
	switch r {
	case AllOn:
		return "ALL_ON"
	case AllOff:
		return "ALL_OFF"
	case NoRule:
		return "NO_RULE"
	default:
		return "UNKNOWN"
	}
}

// Door leads to another room once both of its gates are satisfied.
type Door struct {
	Pos        core.Point
	ID         int // logical id matched by keys and switches
	Dest       int // destination room id
	Open       bool
	NeededKeys int
	Rule       SwitchRule
	KeyOK      bool
	SwitchOK   bool
	Removed    bool
}

// ApplyRules configures the door from a DOOR rule line.
func (d *Door) ApplyRules(id, keys int, open bool, rule SwitchRule) {
	d.ID = id
	d.NeededKeys = keys
	d.Open = open
	d.Rule = rule
	if keys == 0 {
		d.KeyOK = true
	}
	if rule == NoRule {
		d.SwitchOK = true
	}
}

// UseKey consumes one of the needed keys. keyOK latches once none are left.
func (d *Door) UseKey() {
	if d.NeededKeys > 0 {
		d.NeededKeys--
	}
	if d.NeededKeys == 0 {
		d.KeyOK = true
	}
}

// Ready reports whether both gates are satisfied.
func (d *Door) Ready() bool {
	return d.KeyOK && d.SwitchOK
}

// Glyph returns the board character of the door.
func (d *Door) Glyph() rune {
	return rune('0' + d.Dest)
}

// Key opens the door with the matching id.
type Key struct {
	Pos     core.Point
	DoorID  int
	Active  bool // on the board (false while carried)
	Removed bool
}

// Torch lights dark areas around its holder.
type Torch struct {
	Pos     core.Point
	Active  bool
	Removed bool
}

// Bomb is placed and armed by a player and explodes when its fuse runs out.
type Bomb struct {
	Pos     core.Point
	Timer   int
	Active  bool // on the board
	Ticking bool
}

// Arm places the bomb at p and starts its fuse.
func (b *Bomb) Arm(p core.Point, fuse int) {
	b.Pos = p
	b.Timer = fuse
	b.Active = true
	b.Ticking = true
}

// Tick advances the fuse and reports whether the bomb detonates now.
// A bomb that is not armed never detonates.
func (b *Bomb) Tick() bool {
	if !b.Active || !b.Ticking || b.Timer <= 0 {
		return false
	}
	b.Timer--
	return b.Timer == 0
}

// Ray is one line of blast cells ordered from the center outwards.
type Ray []core.Point

var blastRays = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// BlastPattern returns the center ray followed by the eight rays of the
// given radius, in the order they are processed.
func BlastPattern(center core.Point, radius int) []Ray {
	rays := make([]Ray, 0, len(blastRays)+1)
	rays = append(rays, Ray{center})
	for _, d := range blastRays {
		ray := make(Ray, 0, radius)
		for i := 1; i <= radius; i++ {
			ray = append(ray, center.Add(d[0]*i, d[1]*i))
		}
		rays = append(rays, ray)
	}
	return rays
}

// Switch toggles on every step and feeds the rule of its door.
type Switch struct {
	Pos     core.Point
	DoorID  int
	On      bool
	Removed bool
}

// Toggle flips the switch.
func (s *Switch) Toggle() {
	s.On = !s.On
}

// Glyph returns the board character for the current state.
func (s *Switch) Glyph() rune {
	if s.On {
		return SwitchOn
	}
	return SwitchOff
}

// Spring is a straight chain of links growing from a base next to a wall.
type Spring struct {
	Base     core.Point
	Dir      core.Direction
	FullSize int
	CurrSize int
	Removed  bool
}

// LinkPos returns the cell of link i (0 is the base).
func (s *Spring) LinkPos(i int) core.Point {
	dx, dy := s.Dir.Delta()
	return s.Base.Add(dx*i, dy*i)
}

// Tip returns the outermost extended link, or the base when fully compressed.
func (s *Spring) Tip() core.Point {
	if s.CurrSize == 0 {
		return s.Base
	}
	return s.LinkPos(s.CurrSize - 1)
}

// Contains reports whether p is one of the extended links.
func (s *Spring) Contains(p core.Point) bool {
	i := s.linkIndex(p)
	return i >= 0 && i < s.CurrSize
}

// Spans reports whether p lies on the spring's line at full extension.
func (s *Spring) Spans(p core.Point) bool {
	i := s.linkIndex(p)
	return i >= 0 && i < s.FullSize
}

func (s *Spring) linkIndex(p core.Point) int {
	dx, dy := s.Dir.Delta()
	switch {
	case dx != 0 && p.Y == s.Base.Y:
		return (p.X - s.Base.X) * dx
	case dy != 0 && p.X == s.Base.X:
		return (p.Y - s.Base.Y) * dy
	default:
		return -1
	}
}

// CompressedBy reports whether moving in d pushes the spring in.
func (s *Spring) CompressedBy(d core.Direction) bool {
	return core.AreOpposite(s.Dir, d)
}

// Release restores the full length and returns the launch force, which is
// the number of links that were compressed.
func (s *Spring) Release() int {
	force := s.FullSize - s.CurrSize
	s.CurrSize = s.FullSize
	return force
}

// ObstacleBody is a 4-connected group of cells pushed as one piece.
type ObstacleBody struct {
	Cells   []core.Point
	Removed bool
}

// Size is the number of cells, which is also the force needed to push it.
func (o *ObstacleBody) Size() int {
	return len(o.Cells)
}

// Contains reports whether p is part of the body.
func (o *ObstacleBody) Contains(p core.Point) bool {
	for _, c := range o.Cells {
		if c == p {
			return true
		}
	}
	return false
}

// CanBePushed reports whether force is enough to move the body.
func (o *ObstacleBody) CanBePushed(force int) bool {
	return force >= o.Size()
}

// NextBody returns the cells the body would occupy after moving in d.
func (o *ObstacleBody) NextBody(d core.Direction) []core.Point {
	next := make([]core.Point, len(o.Cells))
	for i, c := range o.Cells {
		next[i] = c.Next(d)
	}
	return next
}

// Riddle gates a cell until it is answered.
type Riddle struct {
	Pos      core.Point
	Question string
	Answer   string // alternatives separated by '|'
	Solved   bool
}

// Answerable reports whether the riddle has text bound to it.
func (r *Riddle) Answerable() bool {
	return r.Question != "" && r.Answer != ""
}

// Check compares an answer with the accepted alternatives, ignoring case
// and surrounding blanks.
func (r *Riddle) Check(answer string) bool {
	in := strings.ToUpper(strings.TrimSpace(answer))
	if in == "" || strings.Contains(in, "|") {
		return false
	}
	accepted := "|" + strings.ToUpper(strings.TrimSpace(r.Answer)) + "|"
	return strings.Contains(accepted, "|"+in+"|")
}

// TeleportPair links two teleporter cells both ways.
type TeleportPair struct {
	A, B    core.Point
	Removed bool
}

// Other returns the partner of p and whether p belongs to the pair.
func (t TeleportPair) Other(p core.Point) (core.Point, bool) {
	switch p {
	case t.A:
		return t.B, true
	case t.B:
		return t.A, true
	}
	return core.None, false
}
