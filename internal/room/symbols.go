// Package room holds the state of a single room: the character board and
// the typed objects that live on it. Board and objects are kept in sync by
// the mutation helpers in this package; callers never write the board
// directly.
package room

import "github.com/vovakirdan/tui-adventure/internal/core"

// Board characters.
const (
	Empty      = ' '
	Wall       = 'W'
	BarrierH   = '='
	BarrierV   = '|'
	KeyRune    = 'K'
	BombRune   = '@'
	TorchRune  = '!'
	RiddleRune = '?'
	SpringRune = '#'
	Obstacle   = '*'
	SwitchOn   = '/'
	SwitchOff  = 'o'
	Teleport   = '^'
	Anchor     = 'L'
	DarkRune   = '.'
)

// Legend (HUD) box size, anchored at its top-left corner.
const (
	LegendWidth  = 23
	LegendHeight = 5
)

// Room id limits.
const (
	FirstRoomID = 1
	MinRooms    = 3
	MaxRooms    = 8
)

// IsDoorRune reports whether r is a door digit.
func IsDoorRune(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsBarrier reports whether r is a wall that stops movement.
func IsBarrier(r rune) bool {
	return r == Wall || r == BarrierH || r == BarrierV
}

// IsBreakable reports whether a blast can destroy r.
func IsBreakable(r rune) bool {
	return r == BarrierH || r == BarrierV
}

// validBoardRune reports whether r may appear in a room file.
func validBoardRune(r rune) bool {
	if IsDoorRune(r) {
		return true
	}
	switch r {
	case Empty, Wall, BarrierH, BarrierV, KeyRune, BombRune, TorchRune,
		RiddleRune, SpringRune, Obstacle, SwitchOn, SwitchOff, Teleport, Anchor:
		return true
	}
	return false
}

// ColorOf maps a board character to its semantic color.
func ColorOf(r rune) core.Color {
	switch {
	case r == Wall:
		return core.ColorWall
	case r == BarrierH || r == BarrierV:
		return core.ColorBarrier
	case IsDoorRune(r):
		return core.ColorDoor
	case r == KeyRune:
		return core.ColorKey
	case r == BombRune:
		return core.ColorBomb
	case r == TorchRune:
		return core.ColorTorch
	case r == RiddleRune:
		return core.ColorRiddle
	case r == SpringRune:
		return core.ColorSpring
	case r == Obstacle:
		return core.ColorObstacle
	case r == SwitchOn:
		return core.ColorSwitchOn
	case r == SwitchOff:
		return core.ColorSwitchOff
	case r == Teleport:
		return core.ColorTeleport
	case r == DarkRune:
		return core.ColorDark
	default:
		return core.ColorDefault
	}
}
