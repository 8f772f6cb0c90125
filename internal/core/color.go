package core

// Color is the semantic color of a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorBarrier
	ColorDoor
	ColorDoorOpen
	ColorKey
	ColorBomb
	ColorTorch
	ColorRiddle
	ColorSpring
	ColorObstacle
	ColorSwitchOn
	ColorSwitchOff
	ColorTeleport
	ColorDark
	ColorPlayer1
	ColorPlayer2
	ColorLegend
	ColorBanner
)
