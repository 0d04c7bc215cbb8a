package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagMinPrompts int
	flagMaxPrompts int
)

// settingsCmd shows or edits the prompt bounds. Out-of-range values
// are clamped, never rejected.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change prompt settings",
	Long: `Show or change how many prompts fire per day.

The daily count is drawn between --min and --max at each day start.
Changing the bounds takes effect from the next day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var min, max *int
		if cmd.Flags().Changed("min") {
			min = &flagMinPrompts
		}
		if cmd.Flags().Changed("max") {
			max = &flagMaxPrompts
		}

		settings, err := ctx.Engine.UpdateSettings(min, max)
		if err != nil {
			return err
		}
		return ctx.Formatter.PrintSettings(settings)
	},
}

func init() {
	settingsCmd.Flags().IntVar(&flagMinPrompts, "min", 0, "Minimum prompts per day")
	settingsCmd.Flags().IntVar(&flagMaxPrompts, "max", 0, "Maximum prompts per day")
}
