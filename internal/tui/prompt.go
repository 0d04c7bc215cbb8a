package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudge-cli/nudge/internal/model"
)

// PromptResult carries the outcome of an interactive prompt.
type PromptResult struct {
	// Answered is false if the user dismissed the prompt without
	// answering; the engine stays in the prompting state then.
	Answered  bool
	Completed bool
}

// PromptModel is the bubbletea model asking one yes/no question about
// an activity.
type PromptModel struct {
	activity *model.Activity
	result   PromptResult
	width    int
}

// NewPromptModel creates a prompt view for the given activity.
func NewPromptModel(activity *model.Activity) *PromptModel {
	return &PromptModel{activity: activity}
}

// Init initializes the model.
func (m *PromptModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.result = PromptResult{Answered: true, Completed: true}
			return m, tea.Quit
		case "n", "N":
			m.result = PromptResult{Answered: true, Completed: false}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the prompt.
func (m *PromptModel) View() string {
	question := StyleQuestion.Render(fmt.Sprintf("Did you %s?", m.activity.Text))
	choices := fmt.Sprintf("%s / %s",
		StyleYes.Render("[y]es"),
		StyleNo.Render("[n]o"))
	help := StyleHelp.Render("q to answer later")

	return StyleBox.Render(
		StyleTitle.Render("Nudge") + "\n" +
			question + "\n\n" +
			choices + "\n" +
			help,
	) + "\n"
}

// Result returns the outcome after the program has finished.
func (m *PromptModel) Result() PromptResult {
	return m.result
}

// RunPrompt shows the interactive prompt and blocks until answered or
// dismissed.
func RunPrompt(activity *model.Activity) (PromptResult, error) {
	m := NewPromptModel(activity)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return PromptResult{}, err
	}
	return m.Result(), nil
}
