// Package cli is the demo host for the scheduling engine: it feeds items
// in, projects views and renders them as text. The engine itself stays
// renderer-agnostic.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	icsFile string
	verbose bool
	logger  *slog.Logger
	app     *App
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Almanac - calendar item scheduling engine",
	Long: `Almanac projects schedulable items onto month, week and day grids.

Item kinds (events, tasks, meals, vacations, appointments, meetings) are
pluggable at runtime; views are derived fresh from the supplied items on
every invocation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("command start",
			"command", cmd.CommandPath(),
		)
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&icsFile, "ics", "i", "", "ICS file to load items from")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetApp wires the application dependencies into the CLI.
func SetApp(a *App) {
	app = a
}

// GetApp returns the wired application, or nil when running bare.
func GetApp() *App {
	return app
}
