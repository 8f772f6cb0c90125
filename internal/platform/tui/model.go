package tui

import (
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/engine"
	"github.com/vovakirdan/tui-adventure/internal/replay"
	"github.com/vovakirdan/tui-adventure/internal/storage"
)

// GameOptions configures an interactive game.
type GameOptions struct {
	WorldID string
	World   replay.World
	Config  config.AdventureConfig
	Store   *storage.Store // nil disables score history
	Logger  *log.Logger
	Save    bool // write the steps and results files when the game ends
}

// GameResult describes how an interactive game ended.
type GameResult struct {
	RunID    string
	WorldID  string
	Outcome  string // storage.OutcomeFinished, OutcomeDied or OutcomeQuit
	Score1   int
	Score2   int
	Cycles   uint64
	Recorded bool
	Home     bool // the player asked for the menu rather than to quit
}

// Team returns the combined score.
func (r GameResult) Team() int {
	return r.Score1 + r.Score2
}

// tickDoneMsg is sent when a tick finished on its goroutine.
type tickDoneMsg struct {
	events []engine.Event
}

// eventLog collects the events of the tick in flight.
type eventLog struct {
	events []engine.Event
}

func (l *eventLog) Emit(_ uint64, ev engine.Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) take() []engine.Event {
	ev := l.events
	l.events = nil
	return ev
}

type leaveMode int

const (
	stay leaveMode = iota
	leaveHome
	leaveQuit
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for an interactive game.
//
// A tick runs on a command goroutine because the riddle solver blocks it
// until the modal is answered. While a tick is in flight the model only
// touches the game through messages; the frame and status line are cached
// after every tick.
type GameModel struct {
	opts     GameOptions
	game     *engine.Game
	keys     *KeyMapper
	input    *KeyboardSource
	recorder *replay.Recorder
	solver   *ModalSolver
	events   *eventLog
	logger   *log.Logger
	screen   *core.Screen

	frame  string
	status string
	width  int
	height int

	busy       bool
	paused     bool
	over       bool
	restart    bool
	restartKey rune
	riddle     *riddleModal
	leaving    leaveMode
	finished   bool
	result     GameResult
}

// NewGameModel creates the game and the collaborators that feed it.
func NewGameModel(opts GameOptions) (GameModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := GameModel{
		opts:     opts,
		keys:     NewKeyMapper(opts.Config.Controls),
		input:    &KeyboardSource{},
		recorder: replay.NewRecorder(opts.World.Files()),
		solver:   NewModalSolver(),
		events:   &eventLog{},
		logger:   logger,
		screen:   core.NewScreen(core.GridWidth, core.GridHeight),
		width:    core.GridWidth,
		height:   core.GridHeight + 1,
	}
	game, err := engine.New(opts.World,
		engine.WithRules(opts.Config.Rules),
		engine.WithLogger(logger),
		engine.WithSolver(m.solver),
		engine.WithSink(engine.Sinks(m.recorder, m.events)),
	)
	if err != nil {
		return GameModel{}, err
	}
	m.game = game
	m.redraw()
	logger.Info("game started", "world", opts.WorldID, "run", m.recorder.RunID(), "save", opts.Save)
	return m, nil
}

// Init starts the tick loop and the riddle listener.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.Config.Timing.TickMs), m.solver.listen())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.riddle != nil {
			return m.handleRiddleKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()

	case tickDoneMsg:
		return m.handleTickDone(msg)

	case riddleAskMsg:
		m.riddle = newRiddleModal(msg)
		return m, tea.Batch(textinput.Blink, m.solver.listen())
	}

	if m.riddle != nil {
		return m, m.riddle.update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in, meta, ok := m.keys.MapKey(msg)
	if meta == core.MetaQuit {
		return m.leave(leaveQuit)
	}

	if m.over {
		if meta == core.MetaHome {
			return m.leave(leaveHome)
		}
		return m, nil
	}

	if meta == core.MetaPause {
		m.paused = !m.paused
		if !m.busy {
			m.redraw()
		}
		return m, nil
	}
	if m.paused {
		if meta == core.MetaHome {
			return m.leave(leaveHome)
		}
		return m, nil
	}

	switch {
	case ok:
		m.input.Push(in)
	case meta == core.MetaRestart:
		m.restart = true
		m.restartKey = unicode.ToUpper(msg.Runes[0])
	}
	return m, nil
}

// handleRiddleKey routes keys to the open modal.
func (m GameModel) handleRiddleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.riddle.cancel()
		return m.leave(leaveQuit)
	case "enter":
		if m.riddle.verdict != "" {
			m.riddle = nil
			return m, nil
		}
		m.riddle.submit()
		return m, nil
	}
	if m.riddle.sent {
		return m, nil
	}
	return m, m.riddle.update(msg)
}

// handleTick starts a simulation tick unless one is running or the game
// waits for the player.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.over || m.leaving != stay {
		return m, nil
	}
	next := tickCmd(m.opts.Config.Timing.TickMs)
	if m.busy || m.paused || m.riddle != nil {
		return m, next
	}

	if m.restart {
		m.restart = false
		if err := m.game.RestartRoom(); err != nil {
			m.logger.Error("restart failed", "err", err)
		} else {
			m.recorder.RecordKey(m.game.Cycle()+1, m.restartKey)
		}
	}

	intents := m.input.Intents(m.game.Cycle() + 1)
	m.busy = true
	return m, tea.Batch(m.runTick(intents), next)
}

// runTick resolves one tick on a command goroutine.
func (m GameModel) runTick(intents []core.Intent) tea.Cmd {
	game, rec, events := m.game, m.recorder, m.events
	return func() tea.Msg {
		applied := game.Tick(intents)
		rec.Record(game.Cycle(), applied)
		return tickDoneMsg{events: events.take()}
	}
}

// handleTickDone takes the game back after a tick.
func (m GameModel) handleTickDone(msg tickDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	answered := false
	for _, ev := range msg.events {
		m.logEvent(ev)
		if e, ok := ev.(engine.RiddleAnsweredEvent); ok && m.riddle != nil {
			m.riddle.setVerdict(e.Correct)
			answered = true
		}
	}
	if m.riddle != nil && !answered {
		// cancelled before an answer was given
		m.riddle = nil
	}

	m.over = m.game.Over()
	if m.over {
		m.finish()
	}
	m.redraw()

	if m.leaving != stay {
		m.finish()
		m.result.Home = m.leaving == leaveHome
		return m, tea.Quit
	}
	return m, nil
}

// leave ends the session once no tick is in flight.
func (m GameModel) leave(mode leaveMode) (tea.Model, tea.Cmd) {
	m.leaving = mode
	if m.busy {
		return m, nil
	}
	m.finish()
	m.result.Home = mode == leaveHome
	return m, tea.Quit
}

// finish writes the recording and the score history once.
func (m *GameModel) finish() {
	if m.finished {
		return
	}
	m.finished = true

	res := GameResult{
		RunID:   m.recorder.RunID(),
		WorldID: m.opts.WorldID,
		Outcome: storage.OutcomeQuit,
		Score1:  m.game.Player(core.Player1).Score,
		Score2:  m.game.Player(core.Player2).Score,
		Cycles:  m.game.Cycle(),
	}
	if m.game.Over() {
		res.Outcome = storage.OutcomeFinished
		if m.game.Outcome().Reason == engine.EndReasonDied {
			res.Outcome = storage.OutcomeDied
		}
	}

	if m.opts.Save {
		rc := m.opts.Config.Replay
		if err := m.recorder.Save(rc.StepsFile, rc.ResultsFile); err != nil {
			m.logger.Error("cannot save recording", "err", err)
		} else {
			res.Recorded = true
			m.logger.Info("recording saved", "steps", rc.StepsFile, "results", rc.ResultsFile)
		}
	}

	if store := m.opts.Store; store != nil {
		if m.game.Over() && res.Team() > 0 {
			if _, err := store.SaveScore(res.WorldID, res.Team()); err != nil {
				m.logger.Warn("cannot save score", "err", err)
			}
		}
		run := storage.Run{
			RunID:    res.RunID,
			WorldID:  res.WorldID,
			Score1:   res.Score1,
			Score2:   res.Score2,
			Cycles:   res.Cycles,
			Outcome:  res.Outcome,
			Recorded: res.Recorded,
		}
		if _, err := store.SaveRun(run); err != nil {
			m.logger.Warn("cannot save run", "err", err)
		}
	}

	m.logger.Info("game finished", "run", res.RunID, "outcome", res.Outcome, "team", res.Team(), "cycles", res.Cycles)
	m.result = res
}

func (m GameModel) logEvent(ev engine.Event) {
	switch e := ev.(type) {
	case engine.RoomChangedEvent:
		m.logger.Info("room changed", "player", e.Player, "room", e.Room)
	case engine.LifeLostEvent:
		m.logger.Info("life lost", "player", e.Player, "lives", e.LivesLeft)
	case engine.RiddleAnsweredEvent:
		m.logger.Info("riddle answered", "player", e.Player, "correct", e.Correct)
	case engine.PlayerFinishedEvent:
		m.logger.Info("player finished", "player", e.Player, "place", e.Place, "score", e.Score)
	case engine.ScoreAwardedEvent:
		m.logger.Debug("score", "player", e.Player, "reason", e.Reason, "points", e.Points, "total", e.Total)
	case engine.BumpedEvent:
		m.logger.Debug("bumped", "player", e.Player, "other", e.Other)
	}
}

// redraw renders the game with its overlays into the cached frame. It must
// not run while a tick is in flight.
func (m *GameModel) redraw() {
	m.game.Render(m.screen)
	hint := "Esc: pause  R: restart room"
	switch {
	case m.game.Over() && m.game.Outcome().Reason == engine.EndReasonDied:
		drawBanner(m.screen, "GAME OVER", fmt.Sprintf("Team score: %d", m.game.Outcome().Team()))
		hint = "H: home  Ctrl+C: quit"
	case m.game.Over():
		hint = "H: home  Ctrl+C: quit"
	case m.paused:
		drawBanner(m.screen, "PAUSED", "Esc: continue   H: home")
		hint = ""
	}
	m.frame = RenderScreen(m.screen)
	m.status = fmt.Sprintf("Room %d/%d  Cycle %d  %s",
		m.game.ActiveRoomID(), m.game.NumRooms(), m.game.Cycle(), hint)
}

// View renders the cached frame, or the riddle modal over the playfield.
func (m GameModel) View() string {
	if m.leaving != stay && m.finished {
		return ""
	}
	if m.riddle != nil {
		return lipgloss.Place(core.GridWidth, core.GridHeight, lipgloss.Center, lipgloss.Center, m.riddle.view()) +
			"\n" + statusStyle.Render(m.status)
	}
	return m.frame + "\n" + statusStyle.Render(m.status)
}

// Result returns how the game ended. It is set once the model quits.
func (m GameModel) Result() GameResult {
	return m.result
}

// RunGame plays one game in the terminal.
func RunGame(opts GameOptions) (GameResult, error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return GameResult{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return m.Result(), nil
}
