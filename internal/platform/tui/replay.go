package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/replay"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// ReplayModel plays a recording back on screen.
type ReplayModel struct {
	runner *replay.Runner
	tickMs int
	screen *core.Screen
	frame  string
	done   bool
	err    error // a replay or verification failure
	quit   bool
}

// NewReplayModel shows runner at one step per tickMs milliseconds.
func NewReplayModel(runner *replay.Runner, tickMs int) ReplayModel {
	m := ReplayModel{
		runner: runner,
		tickMs: tickMs,
		screen: core.NewScreen(core.GridWidth, core.GridHeight),
	}
	m.redraw()
	return m
}

// Init starts the tick loop.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.tickMs)
}

// Update advances the replay on ticks and leaves on any key once it is done.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quit = true
			return m, tea.Quit
		}
		if m.done {
			return m, tea.Quit
		}

	case TickMsg:
		if m.done {
			return m, nil
		}
		done, err := m.runner.Step()
		m.redraw()
		if err != nil {
			m.done, m.err = true, err
			return m, nil
		}
		if done {
			m.done = true
			m.err = m.runner.Verify()
			return m, nil
		}
		return m, tickCmd(m.tickMs)
	}
	return m, nil
}

func (m *ReplayModel) redraw() {
	m.runner.Game().Render(m.screen)
	m.frame = RenderScreen(m.screen)
}

// View renders the replayed game and, at the end, the verdict.
func (m ReplayModel) View() string {
	if m.quit {
		return ""
	}
	g := m.runner.Game()
	status := statusStyle.Render(fmt.Sprintf("REPLAY  Room %d/%d  Cycle %d  q: stop", g.ActiveRoomID(), g.NumRooms(), g.Cycle()))
	if m.done {
		if m.err != nil {
			status = failStyle.Render("FAILED: "+m.err.Error()) + statusStyle.Render("  any key: exit")
		} else {
			status = passStyle.Render("PASSED") + statusStyle.Render("  any key: exit")
		}
	}
	return m.frame + "\n" + status
}

// Err returns the replay verdict. An interrupted replay is not verified.
func (m ReplayModel) Err() error {
	if !m.done {
		return fmt.Errorf("replay: interrupted at cycle %d", m.runner.Game().Cycle())
	}
	return m.err
}

// RunReplay shows a replay in the terminal and returns its verdict.
func RunReplay(runner *replay.Runner, tickMs int) error {
	p := tea.NewProgram(NewReplayModel(runner, tickMs), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	m, ok := finalModel.(ReplayModel)
	if !ok {
		return nil
	}
	return m.Err()
}
