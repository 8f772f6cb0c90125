package actor

import "github.com/vovakirdan/tui-adventure/internal/room"

// Item is the content of a player's single inventory slot. A nil Item is an
// empty slot. Each variant refers to an object of the current room by its
// arena index.
type Item interface {
	item()
	// Glyph returns the board character of the item.
	Glyph() rune
}

// KeyItem is a carried key.
type KeyItem struct{ Index int }

// BombItem is a carried, unarmed bomb.
type BombItem struct{ Index int }

// TorchItem is a carried torch.
type TorchItem struct{ Index int }

func (KeyItem) item()   {}
func (BombItem) item()  {}
func (TorchItem) item() {}

func (KeyItem) Glyph() rune   { return room.KeyRune }
func (BombItem) Glyph() rune  { return room.BombRune }
func (TorchItem) Glyph() rune { return room.TorchRune }

// ItemGlyph returns the glyph of it, or a blank for an empty slot.
func ItemGlyph(it Item) rune {
	if it == nil {
		return ' '
	}
	return it.Glyph()
}
