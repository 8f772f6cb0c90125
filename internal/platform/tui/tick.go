// Package tui provides the Bubble Tea front end of the adventure.
// It runs the tick loop, turns key presses into player intents, asks riddles
// through a modal and shows the menu, the scoreboard and replays.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// minTickMs keeps a zero or negative interval from spinning the terminal.
const minTickMs = 1

// tickCmd returns a Bubble Tea command that sends a tick message after ms
// milliseconds.
func tickCmd(ms int) tea.Cmd {
	if ms < minTickMs {
		ms = minTickMs
	}
	interval := time.Duration(ms) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
