package replay

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// StepSource feeds recorded key presses back at their cycles. It is an
// engine.IntentSource.
type StepSource struct {
	steps  []Step
	next   int
	keymap *core.Keymap
}

// NewStepSource plays steps back through keymap.
func NewStepSource(steps []Step, keymap *core.Keymap) *StepSource {
	return &StepSource{steps: steps, keymap: keymap}
}

// Take consumes the steps of cycle and decodes them. Steps recorded for an
// earlier cycle that were never taken are dropped.
func (s *StepSource) Take(cycle uint64) (intents []core.Intent, meta []core.Meta) {
	for s.next < len(s.steps) && s.steps[s.next].Cycle <= cycle {
		st := s.steps[s.next]
		s.next++
		if st.Cycle < cycle {
			continue
		}
		if in, ok := s.keymap.Intent(st.Key); ok {
			intents = append(intents, in)
			continue
		}
		if m := s.keymap.Meta(st.Key); m != core.MetaNone {
			meta = append(meta, m)
		}
	}
	return intents, meta
}

// Intents returns the player intents of cycle.
func (s *StepSource) Intents(cycle uint64) []core.Intent {
	intents, _ := s.Take(cycle)
	return intents
}

// Done reports whether every step was consumed.
func (s *StepSource) Done() bool {
	return s.next >= len(s.steps)
}

// LastCycle returns the cycle of the last step, or 0.
func (s *StepSource) LastCycle() uint64 {
	if len(s.steps) == 0 {
		return 0
	}
	return s.steps[len(s.steps)-1].Cycle
}

// ScriptedSolver answers riddles with the answers of a results file, in
// the order they were given at each cycle. It is an engine.RiddleSolver.
type ScriptedSolver struct {
	answers map[uint64][]string
}

// NewScriptedSolver collects the riddle answers of expected.
func NewScriptedSolver(expected []Result) *ScriptedSolver {
	s := &ScriptedSolver{answers: make(map[uint64][]string)}
	for _, r := range expected {
		if r.Kind == KindRiddle {
			s.answers[r.Cycle] = append(s.answers[r.Cycle], r.Answer)
		}
	}
	return s
}

// Answer returns the next recorded answer of cycle.
func (s *ScriptedSolver) Answer(cycle uint64, _ core.PlayerID, _ string) (string, bool) {
	queue := s.answers[cycle]
	if len(queue) == 0 {
		return "", false
	}
	s.answers[cycle] = queue[1:]
	return queue[0], true
}
