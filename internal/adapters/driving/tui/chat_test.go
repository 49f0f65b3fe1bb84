package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

type stubAssistant struct {
	answer *domain.Answer
	err    error
}

func (s *stubAssistant) Ask(_ context.Context, _ string) (*domain.Answer, error) {
	return s.answer, s.err
}

func TestNewChat(t *testing.T) {
	m := NewChat(&stubAssistant{})

	assert.False(t, m.ready)
	assert.False(t, m.waiting)
	assert.Empty(t, m.transcript)
}

func TestChat_ViewBeforeSize(t *testing.T) {
	m := NewChat(&stubAssistant{})
	assert.Equal(t, "Loading...", m.View())
}

func TestChat_WindowSize(t *testing.T) {
	m := NewChat(&stubAssistant{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	chat := updated.(Chat)

	assert.True(t, chat.ready)
	assert.Equal(t, 80, chat.viewport.Width)
	assert.Contains(t, chat.View(), "Enter to ask")
}

func TestChat_EnterAsksQuestion(t *testing.T) {
	m := NewChat(&stubAssistant{
		answer: &domain.Answer{
			Question:       "what is resistance",
			Classification: domain.Accepted(),
			Text:           "Resistance opposes current.",
		},
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	chat := updated.(Chat)
	chat.input.SetValue("what is resistance")

	updated, cmd := chat.Update(tea.KeyMsg{Type: tea.KeyEnter})
	chat = updated.(Chat)

	require.NotNil(t, cmd)
	assert.True(t, chat.waiting)
	assert.Contains(t, strings.Join(chat.transcript, "\n"), "what is resistance")

	msg := cmd()
	answer, ok := msg.(answerMsg)
	require.True(t, ok)
	require.NoError(t, answer.err)

	updated, _ = chat.Update(answer)
	chat = updated.(Chat)

	assert.False(t, chat.waiting)
	assert.Contains(t, strings.Join(chat.transcript, "\n"), "Resistance opposes current.")
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	m := NewChat(&stubAssistant{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	chat := updated.(Chat)

	_, cmd := chat.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestChat_RefusalShown(t *testing.T) {
	m := NewChat(&stubAssistant{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	chat := updated.(Chat)

	updated, _ = chat.Update(answerMsg{
		answer: &domain.Answer{
			Classification: domain.Rejected(domain.RefusalOutOfDomain, "That's outside physics."),
			Text:           "That's outside physics.",
		},
	})
	chat = updated.(Chat)

	assert.Contains(t, strings.Join(chat.transcript, "\n"), "That's outside physics.")
}

func TestChat_ErrorShown(t *testing.T) {
	m := NewChat(&stubAssistant{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	chat := updated.(Chat)

	updated, _ = chat.Update(answerMsg{err: errors.New("llm unavailable")})
	chat = updated.(Chat)

	assert.Contains(t, strings.Join(chat.transcript, "\n"), "llm unavailable")
}

func TestChat_EscQuits(t *testing.T) {
	m := NewChat(&stubAssistant{})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.NotNil(t, updated)
	assert.Equal(t, tea.Quit(), cmd())
}
