package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/registry"
	"github.com/vovakirdan/tui-adventure/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores = 10 // top scores per world
	maxRuns   = 50 // recent runs per world
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextWorld key.Binding
	PrevWorld key.Binding
	Toggle    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextWorld, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextWorld, k.PrevWorld},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextWorld: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next world"),
		),
		PrevWorld: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev world"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "scores/runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the score history screen.
type ScoreboardModel struct {
	worlds      []string
	worldCursor int
	store       *storage.Store
	showRuns    bool
	best        int
	rows        int
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewScoreboardModel creates a scoreboard over the registered worlds and
// current, which is shown first.
func NewScoreboardModel(store *storage.Store, current string, width, height int) ScoreboardModel {
	worlds := []string{current}
	for _, w := range registry.List() {
		if w.ID != current {
			worlds = append(worlds, w.ID)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		worlds: worlds,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// createTable creates a table for the current mode.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Team", Width: 10},
		{Title: "Date", Width: 18},
	}
	if m.showRuns {
		columns = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "P1", Width: 6},
			{Title: "P2", Width: 6},
			{Title: "Cycles", Width: 8},
			{Title: "Outcome", Width: 10},
			{Title: "Rec", Width: 4},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload rebuilds the table for the selected world and mode.
func (m *ScoreboardModel) reload() {
	m.table = m.createTable()
	m.rows = 0
	m.best = 0
	if m.store == nil {
		return
	}
	worldID := m.worlds[m.worldCursor]

	var rows []table.Row
	if m.showRuns {
		runs, err := m.store.RecentRuns(worldID, maxRuns)
		if err == nil {
			for _, r := range runs {
				rec := ""
				if r.Recorded {
					rec = "yes"
				}
				rows = append(rows, table.Row{
					r.CreatedAt.Format("Jan 02 15:04"),
					fmt.Sprintf("%d", r.Score1),
					fmt.Sprintf("%d", r.Score2),
					fmt.Sprintf("%d", r.Cycles),
					r.Outcome,
					rec,
				})
			}
		}
	} else {
		scores, err := m.store.TopScores(worldID, maxScores)
		if err == nil {
			for i, s := range scores {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", s.Score),
					s.CreatedAt.Format("Jan 02 15:04"),
				})
			}
			if len(scores) > 0 {
				m.best = scores[0].Score
			}
		}
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextWorld):
			m.worldCursor = (m.worldCursor + 1) % len(m.worlds)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevWorld):
			m.worldCursor--
			if m.worldCursor < 0 {
				m.worldCursor = len(m.worlds) - 1
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.showRuns = !m.showRuns
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("HIGH SCORES - %s", m.worlds[m.worldCursor])
	if m.showRuns {
		title = fmt.Sprintf("RECENT RUNS - %s", m.worlds[m.worldCursor])
	}
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if len(m.worlds) > 1 {
		tabs := make([]string, len(m.worlds))
		for i, w := range m.worlds {
			if i == m.worldCursor {
				tabs[i] = cursorItem.Render("[" + w + "]")
			} else {
				tabs[i] = statusStyle.Render(" " + w + " ")
			}
		}
		b.WriteString(centerText(strings.Join(tabs, " "), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if !m.showRuns && m.rows > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best team score: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.rows == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.store == nil {
			return emptyStyle.Render("Score history is unavailable.")
		}
		return emptyStyle.Render("No games recorded yet.\nFinish a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, current string) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, current, 80, 25),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
