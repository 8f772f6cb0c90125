// Package core provides the grid primitives shared by every layer of the adventure:
// positions, directions, rectangles, the character cell buffer and player intents.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Grid dimensions of every room.
const (
	GridWidth  = 80
	GridHeight = 25
)

// Rect is an axis-aligned cell rectangle. Legend panels and dark areas use it.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners builds a rectangle from two inclusive corner cells.
// Corners may be given in any order.
func RectFromCorners(a, b Point) Rect {
	x0, x1 := Min(a.X, b.X), Max(a.X, b.X)
	y0, y1 := Min(a.Y, b.Y), Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the cell p is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Cells calls fn for every cell of the rectangle in row-major order.
func (r Rect) Cells(fn func(p Point)) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
