package engine

import "github.com/vovakirdan/tui-adventure/internal/core"

// Event is a discrete outcome raised by the game during a tick.
type Event interface {
	gameEvent()
}

// RoomChangedEvent is raised when a player walks through a door into a
// regular room.
type RoomChangedEvent struct {
	Player core.PlayerID
	Room   int
}

func (RoomChangedEvent) gameEvent() {}

// LifeLostEvent is raised when a blast hits a player.
// LivesLeft is 0 when the hit ended the game.
type LifeLostEvent struct {
	Player    core.PlayerID
	LivesLeft int
}

func (LifeLostEvent) gameEvent() {}

// RiddleAnsweredEvent is raised for every answer given to a riddle.
type RiddleAnsweredEvent struct {
	Player   core.PlayerID
	Question string
	Answer   string
	Correct  bool
}

func (RiddleAnsweredEvent) gameEvent() {}

// PlayerFinishedEvent is raised when a player reaches the final room.
type PlayerFinishedEvent struct {
	Player core.PlayerID
	Place  int // 1 or 2
	Score  int // the player's score on arrival
}

func (PlayerFinishedEvent) gameEvent() {}

// GameEndedEvent is raised once, when the game is over.
type GameEndedEvent struct {
	Player core.PlayerID // player whose move ended the game
	Reason EndReason
	Score1 int
	Score2 int
}

func (GameEndedEvent) gameEvent() {}

// Score returns the score of the player who ended the game.
func (e GameEndedEvent) Score() int {
	if e.Player == core.Player2 {
		return e.Score2
	}
	return e.Score1
}

// BumpedEvent is raised when a move is blocked by the other player.
type BumpedEvent struct {
	Player core.PlayerID
	Other  core.PlayerID
}

func (BumpedEvent) gameEvent() {}

// ScoreAwardedEvent accompanies every score change.
type ScoreAwardedEvent struct {
	Player core.PlayerID
	Reason ScoreReason
	Points int
	Total  int
}

func (ScoreAwardedEvent) gameEvent() {}

// EndReason describes why the game ended.
type EndReason int

const (
	EndReasonFinished EndReason = iota // both players reached the final room
	EndReasonDied                      // a player lost the last life
)

func (r EndReason) String() string {
	switch r {
	case EndReasonFinished:
		return "finished"
	case EndReasonDied:
		return "died"
	default:
		return "unknown"
	}
}

// ScoreReason names what a score award was for.
type ScoreReason int

const (
	ScoreUseKey ScoreReason = iota
	ScoreOpenDoor
	ScoreSolveRiddle
	ScoreFinishFirst
	ScoreFinishSecond
)

func (r ScoreReason) String() string {
	switch r {
	case ScoreUseKey:
		return "use key"
	case ScoreOpenDoor:
		return "open door"
	case ScoreSolveRiddle:
		return "solve riddle"
	case ScoreFinishFirst:
		return "finish first"
	case ScoreFinishSecond:
		return "finish second"
	default:
		return "unknown"
	}
}

// Sink consumes events in the order they are raised.
type Sink interface {
	Emit(cycle uint64, ev Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(cycle uint64, ev Event)

// Emit calls f.
func (f SinkFunc) Emit(cycle uint64, ev Event) { f(cycle, ev) }

type multiSink []Sink

func (m multiSink) Emit(cycle uint64, ev Event) {
	for _, s := range m {
		s.Emit(cycle, ev)
	}
}

// Sinks fans events out to every non-nil sink.
func Sinks(sinks ...Sink) Sink {
	var m multiSink
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

// Discard is a Sink that drops every event.
var Discard Sink = SinkFunc(func(uint64, Event) {})
