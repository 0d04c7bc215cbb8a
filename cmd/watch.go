package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/engine"
	"github.com/nudge-cli/nudge/internal/logging"
	"github.com/nudge-cli/nudge/internal/model"
	"github.com/nudge-cli/nudge/internal/scheduler"
	"github.com/nudge-cli/nudge/internal/tui"
)

// watchCmd runs the foreground scheduler: random prompt times are
// planned across the day and each due prompt opens the interactive
// question.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run in the foreground, prompting at random times",
	RunE: func(cmd *cobra.Command, args []string) error {
		onPrompt := func(activity *model.Activity) {
			result, err := tui.RunPrompt(activity)
			if err != nil {
				logging.Error("prompt view failed", logging.KeyError, err)
				return
			}
			if !result.Answered {
				return
			}
			if _, err := ctx.Engine.Respond(result.Completed); err != nil {
				logging.Error("respond failed", logging.KeyError, err)
			}
		}

		onSummary := func(stats engine.Stats) {
			dismissed, err := tui.RunSummary(stats)
			if err != nil {
				logging.Error("summary view failed", logging.KeyError, err)
				return
			}
			if dismissed {
				if _, err := ctx.Engine.DismissSummary(); err != nil {
					logging.Error("dismiss failed", logging.KeyError, err)
				}
			}
		}

		watcher := scheduler.NewWatcher(ctx.Engine, onPrompt, onSummary)
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()

		// Immediate check so a restart mid-day resumes a pending
		// prompt or summary right away.
		watcher.Tick()

		ctx.Formatter.Printf("Watching. %d prompt(s) still planned for today. Ctrl-C to stop.\n",
			len(watcher.PendingPlan()))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		ctx.Formatter.Println("\nStopping.")
		return nil
	},
}
