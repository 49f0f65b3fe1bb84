// Package tui implements the interactive chat session.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	refusalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sourceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// answerMsg carries one completed pipeline run back into the model.
type answerMsg struct {
	answer *domain.Answer
	err    error
}

// Chat is the Bubble Tea model for the chat session.
type Chat struct {
	assistant  driving.AssistantService
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	waiting    bool
	ready      bool
}

// NewChat creates the chat model.
func NewChat(assistant driving.AssistantService) Chat {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a physics question and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	return Chat{
		assistant: assistant,
		input:     ti,
		viewport:  viewport.New(0, 0),
	}
}

// Init initializes the model (text input cursor blink).
func (m Chat) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ih := inputBoxStyle.GetFrameSize()
		vh := msg.Height - ih - 3
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n"))
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.waiting {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			m.appendLine(questionStyle.Render("You: ") + question)
			return m, m.ask(question)
		case tea.KeyUp:
			m.viewport.ScrollUp(1)
			return m, nil
		case tea.KeyDown:
			m.viewport.ScrollDown(1)
			return m, nil
		}

	case answerMsg:
		m.waiting = false
		m.appendAnswer(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the pipeline off the UI goroutine.
func (m Chat) ask(question string) tea.Cmd {
	assistant := m.assistant
	return func() tea.Msg {
		answer, err := assistant.Ask(context.Background(), question)
		return answerMsg{answer: answer, err: err}
	}
}

// appendAnswer formats one pipeline result into the transcript.
func (m *Chat) appendAnswer(msg answerMsg) {
	switch {
	case msg.err != nil:
		m.appendLine(errorStyle.Render("Error: " + msg.err.Error()))

	case !msg.answer.Classification.Allowed:
		m.appendLine(refusalStyle.Render(msg.answer.Text))

	default:
		m.appendLine(msg.answer.Text)
		if sources := msg.answer.Sources(); len(sources) > 0 {
			m.appendLine(sourceStyle.Render("Sources: " + strings.Join(sources, ", ")))
		}
	}
	m.appendLine("")
}

// appendLine adds a line to the transcript and scrolls to it.
func (m *Chat) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// View renders the chat layout.
func (m Chat) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := "Enter to ask, Esc to quit"
	if m.waiting {
		status = "Thinking..."
	}

	return m.viewport.View() + "\n" +
		inputBoxStyle.Render(m.input.View()) + "\n" +
		sourceStyle.Render(status)
}
