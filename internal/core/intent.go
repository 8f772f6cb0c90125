package core

// PlayerID identifies one of the two cooperating players.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// NumPlayers is the fixed number of players in a session.
const NumPlayers = 2

// Other returns the partner of id.
func (id PlayerID) Other() PlayerID {
	return 1 - id
}

// String returns "P1" or "P2".
func (id PlayerID) String() string {
	switch id {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Intent is one decoded key press: a direction (or Dispose) for a player.
// Key keeps the control letter that produced it so recorders can replay it.
type Intent struct {
	Player PlayerID
	Dir    Direction
	Key    rune
}

// Meta is a session-level command that is not addressed to a player.
type Meta int

const (
	MetaNone    Meta = iota
	MetaPause        // Esc - pause or resume
	MetaRestart      // R - restart the active room
	MetaHome         // H - back to the menu
	MetaQuit         // Ctrl+C - exit immediately
)

// String returns a human-readable name for the command.
func (m Meta) String() string {
	switch m {
	case MetaNone:
		return "None"
	case MetaPause:
		return "Pause"
	case MetaRestart:
		return "Restart"
	case MetaHome:
		return "Home"
	case MetaQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IntentQueue buffers intents between ticks in arrival order.
type IntentQueue struct {
	items []Intent
}

// Push appends an intent.
func (q *IntentQueue) Push(in Intent) {
	q.items = append(q.items, in)
}

// Len returns the number of buffered intents.
func (q *IntentQueue) Len() int {
	return len(q.items)
}

// Drain returns the buffered intents and empties the queue.
// At most one intent per player is kept (the latest), in arrival order of
// the kept entries. Dispose is kept in addition to a movement.
func (q *IntentQueue) Drain() []Intent {
	if len(q.items) == 0 {
		return nil
	}
	var lastMove [NumPlayers]int
	var lastDispose [NumPlayers]int
	for i := range lastMove {
		lastMove[i], lastDispose[i] = -1, -1
	}
	for i, in := range q.items {
		if in.Player < 0 || int(in.Player) >= NumPlayers {
			continue
		}
		if in.Dir == DirDispose {
			lastDispose[in.Player] = i
		} else {
			lastMove[in.Player] = i
		}
	}
	out := make([]Intent, 0, 2*NumPlayers)
	for i, in := range q.items {
		if in.Player < 0 || int(in.Player) >= NumPlayers {
			continue
		}
		if lastMove[in.Player] == i || lastDispose[in.Player] == i {
			out = append(out, in)
		}
	}
	q.items = q.items[:0]
	return out
}
