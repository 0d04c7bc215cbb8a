package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudge-cli/nudge/internal/engine"
)

// SummaryModel is the bubbletea model showing the end-of-day
// completion summary. Any key dismisses it.
type SummaryModel struct {
	stats     engine.Stats
	dismissed bool
}

// NewSummaryModel creates a summary view for the given stats.
func NewSummaryModel(stats engine.Stats) *SummaryModel {
	return &SummaryModel{stats: stats}
}

// Init initializes the model.
func (m *SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m *SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.dismissed = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the summary.
func (m *SummaryModel) View() string {
	body := fmt.Sprintf("Completed %d of %d prompts today: %s",
		m.stats.Completed, m.stats.Total,
		StylePercent.Render(fmt.Sprintf("%d%%", m.stats.Percentage)))
	help := StyleHelp.Render("press any key to dismiss")

	return StyleBox.Render(
		StyleTitle.Render("Daily summary") + "\n" +
			body + "\n" +
			help,
	) + "\n"
}

// Dismissed returns true once the user acknowledged the summary.
func (m *SummaryModel) Dismissed() bool {
	return m.dismissed
}

// RunSummary shows the summary and blocks until dismissed. Returns
// true if the user acknowledged it.
func RunSummary(stats engine.Stats) (bool, error) {
	m := NewSummaryModel(stats)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return false, err
	}
	return m.Dismissed(), nil
}
