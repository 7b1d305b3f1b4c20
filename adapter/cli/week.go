package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the week",
	Long: `Render the week containing a date, Sunday through Saturday, with the
items of each day.

Examples:
  almanac week                          # Current week
  almanac week --date 2024-02-15       # Week containing a date`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		reference, err := parseDateFlag(weekDate)
		if err != nil {
			return err
		}

		items, err := a.loadItems()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, day := range a.Engine.ProjectWeek(reference) {
			fmt.Fprint(out, renderDayList(day, a.Engine.ItemsForDate(items, day)))
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "date inside the week to show (YYYY-MM-DD)")
	rootCmd.AddCommand(weekCmd)
}
