package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Verdicts shown after a riddle answer.
const (
	VerdictCorrect = ">>> CORRECT! You may pass. <<<"
	VerdictWrong   = ">>> WRONG! You shall NOT pass. <<<"
)

type riddleReply struct {
	answer string
	ok     bool
}

// riddleAskMsg carries a question from the tick goroutine to the UI.
type riddleAskMsg struct {
	player   core.PlayerID
	question string
	reply    chan<- riddleReply
}

// ModalSolver is an engine.RiddleSolver that asks the player through the
// terminal. Answer blocks the tick goroutine until the modal is submitted
// or cancelled.
type ModalSolver struct {
	asks chan riddleAskMsg
}

// NewModalSolver creates a solver with no pending question.
func NewModalSolver() *ModalSolver {
	return &ModalSolver{asks: make(chan riddleAskMsg)}
}

// Answer hands the question to the UI and waits for the reply.
func (s *ModalSolver) Answer(_ uint64, player core.PlayerID, question string) (string, bool) {
	reply := make(chan riddleReply, 1)
	s.asks <- riddleAskMsg{player: player, question: question, reply: reply}
	r := <-reply
	return r.answer, r.ok
}

// listen waits for the next question.
func (s *ModalSolver) listen() tea.Cmd {
	return func() tea.Msg {
		return <-s.asks
	}
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(1, 2).
			Width(60)
	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	correctStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	wrongStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// riddleModal is the question dialog. Once the answer is checked it shows
// the verdict until Enter is pressed.
type riddleModal struct {
	ask     riddleAskMsg
	input   textinput.Model
	sent    bool
	verdict string
	correct bool
}

func newRiddleModal(ask riddleAskMsg) *riddleModal {
	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.CharLimit = 60
	ti.Width = 40
	ti.Focus()
	return &riddleModal{ask: ask, input: ti}
}

// submit sends the typed answer to the waiting solver.
func (m *riddleModal) submit() {
	if m.sent {
		return
	}
	m.sent = true
	m.ask.reply <- riddleReply{answer: m.input.Value(), ok: true}
}

// cancel releases the waiting solver without an answer.
func (m *riddleModal) cancel() {
	if m.sent {
		return
	}
	m.sent = true
	m.ask.reply <- riddleReply{}
}

func (m *riddleModal) setVerdict(correct bool) {
	m.correct = correct
	m.verdict = VerdictWrong
	if correct {
		m.verdict = VerdictCorrect
	}
}

func (m *riddleModal) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *riddleModal) view() string {
	title := modalTitleStyle.Render(fmt.Sprintf("%s faces a riddle", m.ask.player))
	body := title + "\n\n" + m.ask.question + "\n\n"
	switch {
	case m.verdict == VerdictCorrect:
		body += correctStyle.Render(m.verdict) + "\n\n" + hintStyle.Render("Enter: continue")
	case m.verdict != "":
		body += wrongStyle.Render(m.verdict) + "\n\n" + hintStyle.Render("Enter: continue")
	case m.sent:
		body += hintStyle.Render("checking...")
	default:
		body += m.input.View() + "\n\n" + hintStyle.Render("Enter: answer")
	}
	return modalStyle.Render(body)
}
