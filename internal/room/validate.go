package room

import "fmt"

// ValidateDoors checks that every door leads to a room between 2 and the
// final room of a world with numRooms rooms.
func (r *Room) ValidateDoors(numRooms int) error {
	for _, d := range r.Doors {
		if d.Dest < 2 || d.Dest > numRooms+1 {
			return &ParseError{File: r.Source, Msg: fmt.Sprintf(
				"door destination %d out of range, allowed range: (2 - %d)", d.Dest, numRooms+1)}
		}
	}
	return nil
}

// ValidateLinks checks that every switch drives a door of this room.
func (r *Room) ValidateLinks() error {
	for _, s := range r.Switches {
		if r.findDoor(s.DoorID) == nil {
			return &ParseError{File: r.Source, Msg: fmt.Sprintf(
				"switch at %v is not linked to a door (id %d)", s.Pos, s.DoorID)}
		}
	}
	return nil
}

// ValidateLegend checks that the HUD rectangle fits on the grid and covers
// only blanks and walls.
func (r *Room) ValidateLegend() error {
	if !r.hasLegend {
		return nil
	}
	l := r.legend
	if l.X < 0 || l.Y < 0 || l.Right() > len(r.board[0]) || l.Bottom() > len(r.board) {
		return &ParseError{File: r.Source, Msg: fmt.Sprintf(
			"invalid LEGEND placement: %dx%d box at (%d,%d) does not fit the screen", l.W, l.H, l.X, l.Y)}
	}
	for y := l.Y; y < l.Bottom(); y++ {
		for x := l.X; x < l.Right(); x++ {
			if c := r.board[y][x]; c != Empty && c != Wall {
				return &ParseError{File: r.Source, Msg: fmt.Sprintf(
					"invalid LEGEND placement: overlaps forbidden object '%c' at position (%d,%d)", c, x, y)}
			}
		}
	}
	return nil
}

// ClearLegend blanks the HUD rectangle on the board.
func (r *Room) ClearLegend() {
	if !r.hasLegend {
		return
	}
	for y := r.legend.Y; y < r.legend.Bottom() && y < len(r.board); y++ {
		for x := r.legend.X; x < r.legend.Right() && x < len(r.board[y]); x++ {
			r.board[y][x] = Empty
		}
	}
}
