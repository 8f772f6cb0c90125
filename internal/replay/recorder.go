package replay

import (
	"github.com/oklog/ulid/v2"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/engine"
)

// Recorder collects the steps and results of a run. It is an engine.Sink.
type Recorder struct {
	steps   Steps
	results Results
}

// NewRecorder starts a recording of a run on the given room files under a
// fresh run id.
func NewRecorder(screens []string) *Recorder {
	h := Header{RunID: ulid.Make().String(), Screens: append([]string(nil), screens...)}
	return &Recorder{
		steps:   Steps{Header: h},
		results: Results{Header: h},
	}
}

// RunID returns the id written to both file headers.
func (r *Recorder) RunID() string {
	return r.steps.RunID
}

// Record adds the keys of the intents that changed the game in a cycle.
func (r *Recorder) Record(cycle uint64, applied []core.Intent) {
	for _, in := range applied {
		r.steps.Add(cycle, in.Key)
	}
}

// RecordKey adds a session key, such as a room restart, pressed before the
// given cycle.
func (r *Recorder) RecordKey(cycle uint64, key rune) {
	r.steps.Add(cycle, key)
}

// Emit turns game events into result entries.
func (r *Recorder) Emit(cycle uint64, ev engine.Event) {
	if res, ok := ResultOf(cycle, ev); ok {
		r.results.Entries = append(r.results.Entries, res)
	}
}

// ResultOf maps a game event to its result entry. Events that are not
// part of the results file report false.
func ResultOf(cycle uint64, ev engine.Event) (Result, bool) {
	switch e := ev.(type) {
	case engine.RoomChangedEvent:
		return Result{Cycle: cycle, Kind: KindScreenChange, Room: e.Room}, true
	case engine.LifeLostEvent:
		return Result{Cycle: cycle, Kind: KindLostLife}, true
	case engine.RiddleAnsweredEvent:
		return Result{Cycle: cycle, Kind: KindRiddle, Question: e.Question, Answer: e.Answer, Correct: e.Correct}, true
	case engine.PlayerFinishedEvent:
		return Result{Cycle: cycle, Kind: KindGameEnd, Score: e.Score}, true
	case engine.GameEndedEvent:
		// A finished game was already reported by the second arrival.
		if e.Reason == engine.EndReasonDied {
			return Result{Cycle: cycle, Kind: KindGameEnd, Score: e.Score()}, true
		}
	}
	return Result{}, false
}

// Steps returns the recorded steps.
func (r *Recorder) Steps() *Steps {
	return &r.steps
}

// Results returns the recorded results.
func (r *Recorder) Results() *Results {
	return &r.results
}

// Save writes both files.
func (r *Recorder) Save(stepsPath, resultsPath string) error {
	if err := saveFile(stepsPath, r.steps.Write); err != nil {
		return err
	}
	return saveFile(resultsPath, r.results.Write)
}
