package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-adventure/internal/actor"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Final scoreboard layout.
const (
	scoreboardWidth  = 20
	scoreboardStartY = 8
)

// Render draws the active room, the players in it and either the legend or,
// in the final room, the scoreboard.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	r := g.active()
	r.Draw(s)
	g.drawPlayers(s)
	if r.Final {
		g.drawScoreboard(s)
		return
	}
	g.drawLegend(s)
}

func (g *Game) drawPlayers(s *core.Screen) {
	for _, id := range playerOrder {
		p := g.players[id]
		if g.playerRoom[id] != g.curr || p.Dead {
			continue
		}
		c := core.ColorPlayer1
		if id == core.Player2 {
			c = core.ColorPlayer2
		}
		s.SetColored(p.Pos.X, p.Pos.Y, p.Glyph, c)
	}
}

// drawLegend fills the HUD box with score, lives and inventory per player.
func (g *Game) drawLegend(s *core.Screen) {
	box, ok := g.active().Legend()
	if !ok {
		return
	}
	s.FillRect(box, ' ', core.ColorLegend)
	s.DrawFrame(box, core.ColorLegend)

	cx, cy := box.X+1, box.Y+1
	s.DrawTextColored(cx+3, cy, "SCORE  LIVES  INV", core.ColorLegend)
	for row, id := range playerOrder {
		p := g.players[id]
		y := cy + 1 + row
		s.DrawTextColored(cx, y, fmt.Sprintf("%s: %d", id, p.Score), core.ColorLegend)
		s.DrawTextColored(cx+8, y, strings.Repeat("<3 ", p.Lives), core.ColorLegend)
		s.SetColored(cx+18, y, actor.ItemGlyph(p.Inventory), core.ColorLegend)
	}
}

// ScoreboardLines returns the text of the final scoreboard.
func (g *Game) ScoreboardLines() []string {
	s1 := g.players[core.Player1].Score
	s2 := g.players[core.Player2].Score
	return []string{
		strings.Repeat("=", scoreboardWidth),
		"   FINAL SCORES",
		strings.Repeat("-", scoreboardWidth),
		fmt.Sprintf("Player 1 : %d", s1),
		fmt.Sprintf("Player 2 : %d", s2),
		strings.Repeat("-", scoreboardWidth),
		fmt.Sprintf("TEAM SCORE : %d", s1+s2),
		strings.Repeat("=", scoreboardWidth),
	}
}

func (g *Game) drawScoreboard(s *core.Screen) {
	x := (core.GridWidth - scoreboardWidth) / 2
	for i, line := range g.ScoreboardLines() {
		s.DrawTextColored(x, scoreboardStartY+i, line, core.ColorBanner)
	}
}
