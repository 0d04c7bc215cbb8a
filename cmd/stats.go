package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/parser"
)

// statsCmd aggregates completion statistics over a window.
var statsCmd = &cobra.Command{
	Use:   "stats [window]",
	Short: "Show completion statistics",
	Long: `Show completion statistics over a window.

Windows: today, week, 1m, 3m, 6m, 1y, all (default), or a natural
language expression like '3 months ago'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		window := ""
		if len(args) > 0 {
			window = args[0]
		}

		start, err := parser.ParseWindow(window, ctx.Engine.Now())
		if err != nil {
			return err
		}

		stats, err := ctx.Engine.Stats(start)
		if err != nil {
			return err
		}

		label := window
		if label == "" {
			label = "all time"
		}
		return ctx.Formatter.PrintStats(label, stats)
	},
}
