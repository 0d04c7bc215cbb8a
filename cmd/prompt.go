package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/clock"
	"github.com/nudge-cli/nudge/internal/model"
	"github.com/nudge-cli/nudge/internal/tui"
)

// promptCmd fires one trigger and, on a terminal, asks the question
// interactively.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fire one prompt now",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := ctx.Engine.Trigger()
		if err != nil {
			return err
		}

		switch snap.State {
		case model.StatePrompting:
			if interactive() {
				return answerInteractively()
			}
			return ctx.Formatter.PrintSnapshot(snap)
		case model.StateSummary:
			return showSummary(false)
		default:
			if !ctx.IsJSON() {
				ctx.Formatter.Println("Nothing to prompt: the activity list is empty.")
				return nil
			}
			return ctx.Formatter.PrintSnapshot(snap)
		}
	},
}

// respondCmd answers the active prompt non-interactively.
var respondCmd = &cobra.Command{
	Use:       "respond yes|no",
	Short:     "Answer the active prompt",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"yes", "no"},
	RunE: func(cmd *cobra.Command, args []string) error {
		completed := args[0] == "yes"

		entry, err := ctx.Engine.Respond(completed)
		if err != nil {
			return err
		}
		if entry == nil {
			if !ctx.IsJSON() {
				ctx.Formatter.Println("No prompt is waiting for an answer.")
			}
			return nil
		}

		if ctx.IsJSON() {
			return ctx.Formatter.PrintJSON(entry)
		}
		ctx.Formatter.Printf("Logged: %s -> %s\n", entry.ActivityText, args[0])
		return nil
	},
}

// summaryCmd shows today's completion summary; --dismiss acknowledges
// a pending one.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's completion summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		dismiss, _ := cmd.Flags().GetBool("dismiss")
		return showSummary(dismiss)
	},
}

func init() {
	summaryCmd.Flags().Bool("dismiss", false, "Acknowledge the pending summary")
}

func interactive() bool {
	return !ctx.IsJSON() && isatty.IsTerminal(os.Stdout.Fd())
}

// answerInteractively runs the TUI prompt for the active prompt and
// feeds the answer back into the engine.
func answerInteractively() error {
	snap, err := ctx.Engine.Snapshot()
	if err != nil {
		return err
	}
	if snap.Activity == nil {
		return nil
	}

	result, err := tui.RunPrompt(snap.Activity)
	if err != nil {
		return err
	}
	if !result.Answered {
		ctx.Formatter.Println("Left unanswered; 'nudge respond yes|no' when ready.")
		return nil
	}

	entry, err := ctx.Engine.Respond(result.Completed)
	if err != nil {
		return err
	}
	if entry != nil {
		ctx.Formatter.Printf("Logged: %s\n", entry.ActivityText)
	}
	return nil
}

// showSummary prints today's stats, optionally dismissing the pending
// summary state.
func showSummary(dismiss bool) error {
	dayStart := clock.StartOfDay(ctx.Engine.Now())
	stats, err := ctx.Engine.Stats(&dayStart)
	if err != nil {
		return err
	}

	if err := ctx.Formatter.PrintStats("today", stats); err != nil {
		return err
	}

	if dismiss {
		if _, err := ctx.Engine.DismissSummary(); err != nil {
			return err
		}
	}
	return nil
}
