package engine

import "github.com/vovakirdan/tui-adventure/internal/core"

// IntentSource supplies the decoded key presses for a cycle.
type IntentSource interface {
	Intents(cycle uint64) []core.Intent
}

// RiddleSolver is asked for an answer when a player walks into a riddle.
// ok is false when no answer is available; the game then blocks the move.
// The game checks the answer itself.
type RiddleSolver interface {
	Answer(cycle uint64, player core.PlayerID, question string) (answer string, ok bool)
}

// SolverFunc adapts a function to a RiddleSolver.
type SolverFunc func(cycle uint64, player core.PlayerID, question string) (string, bool)

// Answer calls f.
func (f SolverFunc) Answer(cycle uint64, player core.PlayerID, question string) (string, bool) {
	return f(cycle, player, question)
}

// NoAnswers never answers, so riddles stay closed.
var NoAnswers RiddleSolver = SolverFunc(func(uint64, core.PlayerID, string) (string, bool) {
	return "", false
})
