package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/nudge-cli/nudge/internal/errors"
)

// addCmd appends a new activity to the pool.
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add an activity to be reminded about",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		activity, err := ctx.Engine.AddActivity(text)
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.PrintJSON(activity)
		}
		ctx.Formatter.Printf("Added %s  %s\n", activity.ShortID(), activity.Text)
		return nil
	},
}

// listCmd shows the activity pool.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := ctx.Engine.Activities().List()
		if err != nil {
			return err
		}
		return ctx.Formatter.PrintActivities(activities)
	},
}

// removeCmd deletes an activity by id or id prefix.
var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an activity",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveActivityID(args[0])
		if err != nil {
			return err
		}

		if err := ctx.Engine.DeleteActivity(id); err != nil {
			return err
		}

		if !ctx.IsJSON() {
			ctx.Formatter.Printf("Removed %s\n", args[0])
		}
		return nil
	},
}

// resolveActivityID matches a full id or unambiguous prefix against
// the pool.
func resolveActivityID(input string) (string, error) {
	activities, err := ctx.Engine.Activities().List()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, a := range activities {
		if a.ID == input {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", apperrors.ErrActivityNotFound
	case 1:
		return matches[0], nil
	default:
		return "", apperrors.NewUserErrorWithField("id", input,
			"ambiguous activity id", "use more characters of the id from 'nudge list'")
	}
}
