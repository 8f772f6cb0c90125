package core

import "fmt"

// Direction is a movement request or action key of a player.
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
	DirStay
	DirDispose // Not a movement: drop the held item
)

// Cardinals lists the four movement directions in scan order (up, down, left, right).
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirStay:
		return "Stay"
	case DirDispose:
		return "Dispose"
	default:
		return "Unknown"
	}
}

// IsMove reports whether d moves a player (one of the four cardinals).
func (d Direction) IsMove() bool {
	return d <= DirUp
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction. Stay and Dispose are their own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

// AreOpposite reports whether a and b are opposite movement directions.
// It is symmetric and always false for Stay and Dispose.
func AreOpposite(a, b Direction) bool {
	return a.IsMove() && b.IsMove() && a.Opposite() == b
}

// Point is a cell coordinate on the room grid.
type Point struct {
	X, Y int
}

// P is shorthand for Point{X: x, Y: y}.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// None marks "no position" (used for the teleport arrival cell).
var None = Point{X: -1, Y: -1}

// Next returns the adjacent cell in direction d. Non-movement directions return p.
func (p Point) Next(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies on the room grid.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// Manhattan returns the taxicab distance between two cells.
func (p Point) Manhattan(o Point) int {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// Less orders points row-major (by Y, then X).
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
