package output

import (
	"github.com/nudge-cli/nudge/internal/engine"
	"github.com/nudge-cli/nudge/internal/model"
)

// PrintActivities writes the activity pool in the active format.
func (f *Formatter) PrintActivities(activities []*model.Activity) error {
	if f.IsJSON() {
		return f.PrintJSON(activities)
	}

	if len(activities) == 0 {
		f.Println("No activities yet. Add one with 'nudge add <text>'.")
		return nil
	}
	for _, a := range activities {
		f.Printf("%s  %s\n", a.ShortID(), a.Text)
	}
	return nil
}

// PrintStats writes an aggregation result in the active format.
func (f *Formatter) PrintStats(label string, stats engine.Stats) error {
	if f.IsJSON() {
		return f.PrintJSON(map[string]interface{}{
			"window": label,
			"stats":  stats,
		})
	}

	f.Printf("%s: %d/%d completed (%d%%)\n", label, stats.Completed, stats.Total, stats.Percentage)
	return nil
}

// PrintSnapshot writes the current engine state in the active format.
func (f *Formatter) PrintSnapshot(snap *engine.Snapshot) error {
	if f.IsJSON() {
		return f.PrintJSON(snap)
	}

	switch snap.State {
	case model.StatePrompting:
		f.Printf("Prompting: %s\n", snap.Activity.Text)
		f.Println("Answer with 'nudge respond yes' or 'nudge respond no'.")
	case model.StateSummary:
		f.Println("Today's quota is done. See 'nudge summary'.")
	default:
		f.Printf("Idle. %d of %d prompts answered today.\n",
			snap.PromptedToday, snap.Settings.NotificationsToday)
	}
	f.Printf("Activities: %d\n", len(snap.Activities))
	return nil
}

// PrintSettings writes the settings record in the active format.
func (f *Formatter) PrintSettings(settings *model.Settings) error {
	if f.IsJSON() {
		return f.PrintJSON(settings)
	}

	f.Printf("Prompts per day: %d-%d (today: %d, generated %s)\n",
		settings.MinNotifications, settings.MaxNotifications,
		settings.NotificationsToday, settings.LastGeneratedDate)
	return nil
}
