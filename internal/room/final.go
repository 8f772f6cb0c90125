package room

import "github.com/vovakirdan/tui-adventure/internal/core"

const finalEdge = "WWWWWWWWWWWWWWWW   WWWWWWWWWWWW   WWWWWWWWWWWW  WWWWWWWWWWWW  WWWWWWWWWWWWWWWW W"

// BannerLine is a centered line of text drawn over a room.
type BannerLine struct {
	Y    int
	Text string
}

// FinalBanner is the text of the final room.
var FinalBanner = []BannerLine{
	{Y: 4, Text: "FINAL ROOM"},
	{Y: 6, Text: "YOU WON!"},
	{Y: 20, Text: "PRESS 'H' TO RETURN TO THE MAIN MENU"},
}

// NewFinal builds the closing room every world ends in.
func NewFinal(id int) *Room {
	r := newRoom(id, "")
	r.Final = true
	for x, c := range finalEdge {
		r.board[0][x] = c
		r.board[core.GridHeight-1][x] = c
	}
	for y := 1; y < core.GridHeight-1; y++ {
		r.board[y][0] = Wall
		r.board[y][core.GridWidth-1] = Wall
	}
	return r
}

// DrawBanner writes the final room text onto s.
func DrawBanner(s *core.Screen) {
	for _, b := range FinalBanner {
		s.DrawTextCentered(b.Y, b.Text, core.ColorBanner)
	}
}
