package replay

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/engine"
)

// World is what a replay runs on: the rooms and the names of their files.
type World interface {
	engine.RoomLoader
	Files() []string
}

// Runner plays a recording back without a terminal.
type Runner struct {
	game     *engine.Game
	source   *StepSource
	recorder *Recorder
	expected []Result
	lastExp  uint64
}

// NewRunner checks that the recording belongs to w and prepares a game
// that takes its keys from steps and its riddle answers from expected.
// Events also go to sink when it is not nil. opts set rules and logging.
func NewRunner(w World, steps *Steps, expected *Results, keymap *core.Keymap, sink engine.Sink, opts ...engine.Option) (*Runner, error) {
	if err := steps.CheckScreens(w.Files()); err != nil {
		return nil, err
	}
	if err := expected.CheckScreens(w.Files()); err != nil {
		return nil, err
	}

	r := &Runner{
		source:   NewStepSource(steps.Steps, keymap),
		recorder: NewRecorder(w.Files()),
		expected: expected.Entries,
	}
	if n := len(expected.Entries); n > 0 {
		r.lastExp = expected.Entries[n-1].Cycle
	}

	all := make([]engine.Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all,
		engine.WithSink(engine.Sinks(r.recorder, sink)),
		engine.WithSolver(NewScriptedSolver(expected.Entries)),
	)
	g, err := engine.New(w, all...)
	if err != nil {
		return nil, err
	}
	r.game = g
	return r, nil
}

// Game returns the game being replayed.
func (r *Runner) Game() *engine.Game {
	return r.game
}

// Done reports whether the replay has nothing left to do: the game is over,
// or every step was fed and the last expected result is behind us.
func (r *Runner) Done() bool {
	if r.game.Over() {
		return true
	}
	c := r.game.Cycle()
	return r.source.Done() && c >= r.source.LastCycle() && c >= r.lastExp
}

// Step runs one cycle and reports whether the replay is done afterwards.
func (r *Runner) Step() (bool, error) {
	if r.Done() {
		return true, nil
	}
	cycle := r.game.Cycle() + 1
	intents, meta := r.source.Take(cycle)
	for _, m := range meta {
		if m == core.MetaRestart {
			if err := r.game.RestartRoom(); err != nil {
				return true, err
			}
		}
	}
	r.game.Tick(intents)
	return r.Done(), nil
}

// Run steps until the replay is done.
func (r *Runner) Run() error {
	for {
		done, err := r.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Actual returns the results produced so far.
func (r *Runner) Actual() []Result {
	return r.recorder.Results().Entries
}

// Verify compares the results produced so far with the expected ones.
func (r *Runner) Verify() error {
	return Compare(r.expected, r.Actual())
}
