package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var monthDate string

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show the month grid",
	Long: `Render a month grid padded to whole weeks (Sunday through Saturday),
with the number of items on each day.

Examples:
  almanac month                          # Current month
  almanac month --date 2024-02-15       # Month containing a date
  almanac month --ics calendar.ics      # With items from an ICS file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		reference, err := parseDateFlag(monthDate)
		if err != nil {
			return err
		}

		items, err := a.loadItems()
		if err != nil {
			return err
		}

		days := a.Engine.ProjectMonth(reference)
		fmt.Fprint(cmd.OutOrStdout(), renderMonthGrid(reference, days, items))
		return nil
	},
}

// parseDateFlag reads a YYYY-MM-DD flag value, defaulting to today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	return t, nil
}

func init() {
	monthCmd.Flags().StringVar(&monthDate, "date", "", "date inside the month to show (YYYY-MM-DD)")
	rootCmd.AddCommand(monthCmd)
}
