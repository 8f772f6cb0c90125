package core

import "unicode"

// Keymap decodes control letters into player intents and session commands.
// Letters are case-insensitive.
type Keymap struct {
	intents map[rune]Intent
	meta    map[rune]Meta
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		intents: make(map[rune]Intent),
		meta:    make(map[rune]Meta),
	}
}

// Bind maps key to direction d of player id.
func (k *Keymap) Bind(key rune, id PlayerID, d Direction) {
	key = unicode.ToUpper(key)
	k.intents[key] = Intent{Player: id, Dir: d, Key: key}
}

// BindMeta maps key to a session command.
func (k *Keymap) BindMeta(key rune, m Meta) {
	k.meta[unicode.ToUpper(key)] = m
}

// Intent returns the player intent bound to key.
func (k *Keymap) Intent(key rune) (Intent, bool) {
	in, ok := k.intents[unicode.ToUpper(key)]
	return in, ok
}

// Meta returns the session command bound to key, or MetaNone.
func (k *Keymap) Meta(key rune) Meta {
	return k.meta[unicode.ToUpper(key)]
}
