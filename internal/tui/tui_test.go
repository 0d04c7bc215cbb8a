package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/nudge-cli/nudge/internal/engine"
	"github.com/nudge-cli/nudge/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPromptModelAnswers(t *testing.T) {
	activity := model.NewActivity("a1", "stretch", time.Now())

	t.Run("yes", func(t *testing.T) {
		m := NewPromptModel(activity)
		_, cmd := m.Update(keyMsg("y"))
		assert.NotNil(t, cmd)
		assert.True(t, m.Result().Answered)
		assert.True(t, m.Result().Completed)
	})

	t.Run("no", func(t *testing.T) {
		m := NewPromptModel(activity)
		_, cmd := m.Update(keyMsg("n"))
		assert.NotNil(t, cmd)
		assert.True(t, m.Result().Answered)
		assert.False(t, m.Result().Completed)
	})

	t.Run("dismiss", func(t *testing.T) {
		m := NewPromptModel(activity)
		_, cmd := m.Update(keyMsg("q"))
		assert.NotNil(t, cmd)
		assert.False(t, m.Result().Answered)
	})
}

func TestPromptModelView(t *testing.T) {
	m := NewPromptModel(model.NewActivity("a1", "drink water", time.Now()))
	view := m.View()
	assert.Contains(t, view, "drink water")
}

func TestSummaryModelDismiss(t *testing.T) {
	m := NewSummaryModel(engine.Stats{Completed: 3, Total: 5, Percentage: 60})

	view := m.View()
	assert.Contains(t, view, "3")
	assert.Contains(t, view, "60%")

	assert.False(t, m.Dismissed())
	_, cmd := m.Update(keyMsg("x"))
	assert.NotNil(t, cmd)
	assert.True(t, m.Dismissed())
}
