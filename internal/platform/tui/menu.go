package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Key    string
	Title  string
	Action MenuAction
}

var menuItems = []MenuItem{
	{Key: "1", Title: "Start a new game", Action: MenuActionStart},
	{Key: "8", Title: "Present instructions and keys", Action: MenuActionInstructions},
	{Key: "9", Title: "EXIT", Action: MenuActionQuit},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorItem = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// MenuModel is the Bubble Tea model for the main menu and the
// instructions screen.
type MenuModel struct {
	worldID      string
	highScore    int
	controls     config.ControlsConfig
	rules        config.RulesConfig
	keyMapper    *KeyMapper
	cursor       int
	width        int
	height       int
	instructions bool
	choice       MenuChoice
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(worldID string, cfg config.AdventureConfig, store *storage.Store) MenuModel {
	m := MenuModel{
		worldID:   worldID,
		controls:  cfg.Controls,
		rules:     cfg.Rules,
		keyMapper: NewKeyMapper(cfg.Controls),
		width:     80,
		height:    25,
	}
	if store != nil {
		// the menu shows 0 when the history is unreadable
		m.highScore, _ = store.HighScore(worldID)
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.instructions {
		if action == MenuActionQuit && msg.String() == "ctrl+c" {
			m.choice = ChoiceQuit
			return m, tea.Quit
		}
		// Any key goes back
		m.instructions = false
		return m, nil
	}

	if action == MenuActionSelect {
		action = menuItems[m.cursor].Action
	}

	switch action {
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionStart:
		m.choice = ChoiceStart
		return m, tea.Quit

	case MenuActionInstructions:
		m.instructions = true

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}
	if m.instructions {
		return m.instructionsView()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T H E   A D V E N T U R E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("World: %s    Best team score: %d", m.worldID, m.highScore), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("(%s) %s", item.Key, item.Title)
		if i == m.cursor {
			line = cursorItem.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText(statusStyle.Render("1/8/9 or Up/Down + Enter  |  Tab: Scores"), m.width))
	b.WriteString("\n")

	return b.String()
}

// instructionsView renders the rules summary and the control table.
func (m MenuModel) instructionsView() string {
	p1, p2 := m.controls.Player1, m.controls.Player2
	rows := [][3]string{
		{"", "Player 1 ($)", "Player 2 (&)"},
		{"Up", p1.Up, p2.Up},
		{"Down", p1.Down, p2.Down},
		{"Left", p1.Left, p2.Left},
		{"Right", p1.Right, p2.Right},
		{"Stay", p1.Stay, p2.Stay},
		{"Drop item", p1.Dispose, p2.Dispose},
	}
	var keys strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&keys, "%-10s %-14s %s\n", r[0], r[1], r[2])
	}
	fmt.Fprintf(&keys, "\n%s: restart room   %s: pause   %s: home (when paused)",
		m.controls.Restart, m.controls.Pause, m.controls.Home)

	rules := fmt.Sprintf(
		"Lead both players through every room to the final room.\n"+
			"Pick up keys (K), bombs (@) and torches (!), one item at a time.\n"+
			"Keys open doors, switches (/ on, o off) drive them, riddles (?) must be answered.\n"+
			"Push obstacles (*) together, ride springs (#) and teleports (^).\n"+
			"A blast costs a life. Each player has %d lives.\n"+
			"Key %d, door %d, riddle %d, first to finish %d, second %d.",
		m.rules.Lives,
		m.rules.Scores.UseKey, m.rules.Scores.OpenDoor, m.rules.Scores.SolveRiddle,
		m.rules.Scores.FinishFirst, m.rules.Scores.FinishSecond,
	)

	body := titleStyle.Render("HOW TO PLAY") + "\n\n" + rules + "\n\n" +
		titleStyle.Render("KEYS") + "\n\n" + keys.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		panelStyle.Render(body)+"\n\n"+statusStyle.Render("any key: back"))
}

// Choice returns what was picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the menu and returns the choice.
func RunMenu(worldID string, cfg config.AdventureConfig, store *storage.Store) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(worldID, cfg, store),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ChoiceQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return ChoiceQuit, nil
	}
	return m.Choice(), nil
}
