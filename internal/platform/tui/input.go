package tui

import "github.com/vovakirdan/tui-adventure/internal/core"

// KeyboardSource buffers the intents typed between two ticks. It is an
// engine.IntentSource.
type KeyboardSource struct {
	queue core.IntentQueue
}

// Push adds a decoded key press.
func (k *KeyboardSource) Push(in core.Intent) {
	k.queue.Push(in)
}

// Intents returns what was typed since the last call, at most one move and
// one dispose per player.
func (k *KeyboardSource) Intents(uint64) []core.Intent {
	return k.queue.Drain()
}
