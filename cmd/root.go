// Package cmd provides the CLI commands for Nudge.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/logging"
	"github.com/nudge-cli/nudge/internal/output"
	"github.com/nudge-cli/nudge/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Random daily reminders for the things that matter",
	Long: `Nudge keeps a list of activities you care about and, a random number
of times each day, asks whether you did one of them. Answers are
logged, and once the day's quota is done you get a completion summary.

Examples:
  nudge add 'drink water'
  nudge watch
  nudge respond yes
  nudge stats 3m`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		} else {
			logging.Init(logging.DefaultConfig())
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the current state.
		return runStatus(cmd, args)
	},
}

// runStatus reconciles with the wall clock and prints the state.
func runStatus(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Engine.Snapshot()
	if err != nil {
		return err
	}

	if err := ctx.Formatter.PrintSnapshot(snap); err != nil {
		return err
	}

	if !snap.HasSeenOnboarding && !ctx.IsJSON() {
		ctx.Formatter.Println("")
		ctx.Formatter.Println("First time here? Add activities with 'nudge add <text>',")
		ctx.Formatter.Println("then run 'nudge watch' to get prompted through the day.")
		ctx.Formatter.Println("Run 'nudge onboarded' to hide this hint.")
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(respondCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(onboardedCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("nudge %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// onboardedCmd hides the first-run hint.
var onboardedCmd = &cobra.Command{
	Use:   "onboarded",
	Short: "Hide the first-run onboarding hint",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ctx.Engine.DismissOnboarding()
	},
}

// Die prints an error and exits.
func Die(err error) {
	os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	os.Exit(1)
}
