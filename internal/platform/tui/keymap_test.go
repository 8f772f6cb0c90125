package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(config.DefaultConfig().Controls)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		intent core.Intent
		meta   core.Meta
		ok     bool
	}{
		{"P1 right", runeKey('d'), core.Intent{Player: core.Player1, Dir: core.DirRight, Key: 'D'}, core.MetaNone, true},
		{"P1 up upper-case", runeKey('W'), core.Intent{Player: core.Player1, Dir: core.DirUp, Key: 'W'}, core.MetaNone, true},
		{"P2 right", runeKey('l'), core.Intent{Player: core.Player2, Dir: core.DirRight, Key: 'L'}, core.MetaNone, true},
		{"P2 dispose", runeKey('o'), core.Intent{Player: core.Player2, Dir: core.DirDispose, Key: 'O'}, core.MetaNone, true},
		{"restart", runeKey('r'), core.Intent{}, core.MetaRestart, false},
		{"home", runeKey('h'), core.Intent{}, core.MetaHome, false},
		{"pause", tea.KeyMsg{Type: tea.KeyEsc}, core.Intent{}, core.MetaPause, false},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Intent{}, core.MetaQuit, false},
		{"unbound letter", runeKey('z'), core.Intent{}, core.MetaNone, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.Intent{}, core.MetaNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, meta, ok := km.MapKey(tt.msg)
			if ok != tt.ok || meta != tt.meta {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", meta, ok, tt.meta, tt.ok)
			}
			if in != tt.intent {
				t.Errorf("MapKey() intent = %+v, expected %+v", in, tt.intent)
			}
		})
	}
}

func TestMapKeyCustomPause(t *testing.T) {
	controls := config.DefaultConfig().Controls
	controls.Pause = "P"
	km := NewKeyMapper(controls)

	if _, meta, _ := km.MapKey(runeKey('p')); meta != core.MetaPause {
		t.Errorf("MapKey(p) = %v, expected %v", meta, core.MetaPause)
	}
	if _, meta, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyEsc}); meta != core.MetaNone {
		t.Errorf("MapKey(esc) = %v, expected %v", meta, core.MetaNone)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(config.DefaultConfig().Controls)

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('1'), MenuActionStart},
		{runeKey('8'), MenuActionInstructions},
		{runeKey('9'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
