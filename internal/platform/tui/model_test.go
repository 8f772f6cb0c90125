package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/engine"
	"github.com/vovakirdan/tui-adventure/internal/replay"
	"github.com/vovakirdan/tui-adventure/internal/room/roomtest"
	"github.com/vovakirdan/tui-adventure/internal/storage"
)

type testWorld struct {
	*roomtest.World
}

func (w testWorld) Files() []string {
	files := make([]string, w.NumRooms())
	for i := range files {
		files[i] = roomtest.FileName(i + 1)
	}
	return files
}

// corridor is two rooms with open doors on the start rows. With a riddle,
// room 1 holds one in front of P1.
func corridor(riddle bool) testWorld {
	first := roomtest.New().
		Put(10, 9, "2").Put(10, 11, "2").
		Rule("DOOR 10 9 ID 1 OPEN 1 KEYS 0 RULE 2").
		Rule("DOOR 10 11 ID 2 OPEN 1 KEYS 0 RULE 2")
	second := roomtest.New().
		Put(10, 9, "3").Put(10, 11, "3").
		Rule("DOOR 10 9 ID 1 OPEN 1 KEYS 0 RULE 2").
		Rule("DOOR 10 11 ID 2 OPEN 1 KEYS 0 RULE 2")
	w := roomtest.NewWorld(first, second)
	if riddle {
		first.Put(6, 9, "?")
		w.WithRiddle(1, core.P(6, 9), "What is 2+2?", "four|4")
	}
	return testWorld{w}
}

func testOptions(t *testing.T, w testWorld) GameOptions {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Timing.TickMs = 1
	cfg.Replay.StepsFile = filepath.Join(dir, "adv-world.steps")
	cfg.Replay.ResultsFile = filepath.Join(dir, "adv-world.results")

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return GameOptions{WorldID: "corridor", World: w, Config: cfg, Store: store, Save: true}
}

func newTestModel(t *testing.T, opts GameOptions) GameModel {
	t.Helper()
	m, err := NewGameModel(opts)
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	return m
}

// collect runs cmd and returns the messages it produces, minus timer ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if _, ok := msg.(TickMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

func update(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

// step runs one tick to completion.
func step(m GameModel) GameModel {
	m, cmd := update(m, TickMsg{})
	for _, msg := range collect(cmd) {
		m, _ = update(m, msg)
	}
	return m
}

func press(m GameModel, keys ...rune) GameModel {
	for _, k := range keys {
		m, _ = update(m, runeKey(k))
	}
	return m
}

func TestGameModelPlaysToTheEnd(t *testing.T) {
	w := corridor(false)
	opts := testOptions(t, w)
	m := newTestModel(t, opts)

	m = press(m, 'd', 'l')
	for i := 0; i < 100 && !m.over; i++ {
		m = step(m)
	}
	if !m.over {
		t.Fatal("game did not end")
	}
	if !strings.Contains(m.View(), "TEAM SCORE") {
		t.Error("View() should show the final scoreboard")
	}

	res := m.Result()
	if res.Outcome != storage.OutcomeFinished || !res.Recorded || res.Team() == 0 {
		t.Errorf("Result() = %+v, expected a recorded finished run with a score", res)
	}

	high, err := opts.Store.HighScore("corridor")
	if err != nil || high != res.Team() {
		t.Errorf("HighScore() = %d, %v, expected %d", high, err, res.Team())
	}
	run, err := opts.Store.RunByID(res.RunID)
	if err != nil || run == nil || run.Cycles != res.Cycles {
		t.Errorf("RunByID() = %+v, %v, expected the run of %d cycles", run, err, res.Cycles)
	}

	// The recording replays to the same results.
	steps, err := replay.LoadSteps(opts.Config.Replay.StepsFile)
	if err != nil {
		t.Fatalf("LoadSteps() error = %v", err)
	}
	results, err := replay.LoadResults(opts.Config.Replay.ResultsFile)
	if err != nil {
		t.Fatalf("LoadResults() error = %v", err)
	}
	if steps.RunID != res.RunID {
		t.Errorf("steps run id = %q, expected %q", steps.RunID, res.RunID)
	}
	runner, err := replay.NewRunner(w, steps, results, opts.Config.Controls.Keymap(), nil)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	if err := runner.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := runner.Verify(); err != nil {
		t.Errorf("Verify() = %v, expected nil", err)
	}

	next, cmd := m.Update(runeKey('h'))
	m = next.(GameModel)
	if !m.Result().Home || cmd == nil {
		t.Error("H after game over should go home")
	}
}

func TestGameModelPause(t *testing.T) {
	opts := testOptions(t, corridor(false))
	opts.Save = false
	m := newTestModel(t, opts)

	m = press(m, 'd')
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause banner")
	}
	m = step(m)
	if m.game.Cycle() != 0 {
		t.Errorf("Cycle() = %d while paused, expected 0", m.game.Cycle())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = step(m)
	if m.game.Cycle() != 1 {
		t.Errorf("Cycle() = %d after resume, expected 1", m.game.Cycle())
	}
	if got := m.game.Player(core.Player1).Pos; got != core.P(4, 9) {
		t.Errorf("P1 at %v, expected (4,9)", got)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(m, runeKey('h'))
	if cmd == nil || !m.Result().Home {
		t.Fatal("H while paused should go home")
	}
	if m.Result().Outcome != storage.OutcomeQuit || m.Result().Recorded {
		t.Errorf("Result() = %+v, expected an unrecorded quit", m.Result())
	}
	if _, err := os.Stat(opts.Config.Replay.StepsFile); !os.IsNotExist(err) {
		t.Error("steps file written without --save")
	}
}

func TestGameModelRestart(t *testing.T) {
	m := newTestModel(t, testOptions(t, corridor(false)))

	m = press(m, 'd')
	m = step(m)
	m = step(m)
	if got := m.game.Player(core.Player1).Pos; got == engine.Start1 {
		t.Fatal("P1 did not move")
	}

	m = press(m, 'r')
	m = step(m)
	if got := m.game.Player(core.Player1).Pos; got != engine.Start1 {
		t.Errorf("P1 at %v after restart, expected %v", got, engine.Start1)
	}

	steps := m.recorder.Steps().Steps
	expected := []replay.Step{{Cycle: 1, Key: 'D'}, {Cycle: 3, Key: 'R'}}
	if len(steps) != len(expected) {
		t.Fatalf("recorded %v, expected %v", steps, expected)
	}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Errorf("steps[%d] = %v, expected %v", i, steps[i], expected[i])
		}
	}
}

func TestGameModelRiddle(t *testing.T) {
	tests := []struct {
		answer  string
		verdict string
		passed  bool
	}{
		{"Four", VerdictCorrect, true},
		{"five", VerdictWrong, false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			opts := testOptions(t, corridor(true))
			opts.Save = false
			m := newTestModel(t, opts)

			asks := make(chan tea.Msg, 1)
			go func() { asks <- m.solver.listen()() }()

			m = press(m, 'd')
			var done chan []tea.Msg
			for i := 0; i < 10 && m.riddle == nil; i++ {
				var cmd tea.Cmd
				m, cmd = update(m, TickMsg{})
				done = make(chan []tea.Msg, 1)
				go func(ch chan<- []tea.Msg, cmd tea.Cmd) { ch <- collect(cmd) }(done, cmd)

				select {
				case msgs := <-done:
					for _, msg := range msgs {
						m, _ = update(m, msg)
					}
				case ask := <-asks:
					m, _ = update(m, ask)
				case <-time.After(5 * time.Second):
					t.Fatal("tick did not finish")
				}
			}
			if m.riddle == nil {
				t.Fatal("riddle was never asked")
			}
			if !strings.Contains(m.View(), "What is 2+2?") {
				t.Error("View() should show the question")
			}

			// Ticks wait while the modal is open.
			m, _ = update(m, TickMsg{})

			m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.answer)})
			m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
			select {
			case msgs := <-done:
				for _, msg := range msgs {
					m, _ = update(m, msg)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("tick did not finish after the answer")
			}

			if m.riddle == nil || m.riddle.verdict != tt.verdict {
				t.Fatalf("verdict = %v, expected %q", m.riddle, tt.verdict)
			}
			if !strings.Contains(m.View(), tt.verdict) {
				t.Errorf("View() should show %q", tt.verdict)
			}

			m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.riddle != nil {
				t.Error("Enter should close the verdict")
			}
			onRiddle := m.game.Player(core.Player1).Pos == core.P(6, 9)
			if onRiddle != tt.passed {
				t.Errorf("P1 at %v, passed = %v, expected %v", m.game.Player(core.Player1).Pos, onRiddle, tt.passed)
			}
		})
	}
}

func TestReplayModel(t *testing.T) {
	w := corridor(false)
	opts := testOptions(t, w)
	m := newTestModel(t, opts)
	m = press(m, 'd', 'l')
	for i := 0; i < 100 && !m.over; i++ {
		m = step(m)
	}

	steps, _ := replay.LoadSteps(opts.Config.Replay.StepsFile)
	results, _ := replay.LoadResults(opts.Config.Replay.ResultsFile)
	runner, err := replay.NewRunner(w, steps, results, opts.Config.Controls.Keymap(), nil)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	rm := NewReplayModel(runner, 1)
	for i := 0; i < 100 && !rm.done; i++ {
		next, _ := rm.Update(TickMsg{})
		rm = next.(ReplayModel)
	}
	if rm.Err() != nil {
		t.Errorf("Err() = %v, expected nil", rm.Err())
	}
	if !strings.Contains(rm.View(), "PASSED") {
		t.Error("View() should report PASSED")
	}
}
