package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// KeyMapper translates Bubble Tea key messages to player intents and
// session commands. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	letters *core.Keymap
	pause   string
}

// NewKeyMapper creates a key mapper for the configured controls.
func NewKeyMapper(c config.ControlsConfig) *KeyMapper {
	pause := strings.ToLower(c.Pause)
	if pause == "" {
		pause = "esc"
	}
	return &KeyMapper{letters: c.Keymap(), pause: pause}
}

// Keymap returns the decoder for control letters, shared with replays.
func (km *KeyMapper) Keymap() *core.Keymap {
	return km.letters
}

// MapKey translates a key message. A player key gives an intent with ok set;
// anything else gives a session command, possibly MetaNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Intent, meta core.Meta, ok bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.Intent{}, core.MetaQuit, false
	case km.pause:
		return core.Intent{}, core.MetaPause, false
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return core.Intent{}, core.MetaNone, false
	}
	r := msg.Runes[0]
	if in, ok := km.letters.Intent(r); ok {
		return in, core.MetaNone, true
	}
	return core.Intent{}, km.letters.Meta(r), false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionStart
	MenuActionInstructions
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "9":
		return MenuActionQuit
	case "up", "k": // vim-style k for up
		return MenuActionUp
	case "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "1":
		return MenuActionStart
	case "8":
		return MenuActionInstructions
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
