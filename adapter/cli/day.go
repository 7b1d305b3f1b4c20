package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a single day",
	Long: `Render the timeline of a single day: the hour slots between the
configured day bounds, with timed items placed on them and all-day
items listed first.

Examples:
  almanac day                           # Today
  almanac day --date 2024-02-15        # A specific day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		date, err := parseDateFlag(dayDate)
		if err != nil {
			return err
		}

		items, err := a.loadItems()
		if err != nil {
			return err
		}

		dayItems := a.Engine.ItemsForDate(items, date)
		out := cmd.OutOrStdout()

		fmt.Fprint(out, titleStyle.Render(date.Format("Monday, January 2, 2006")))
		fmt.Fprintln(out)

		var allDay, timed []*domain.Item
		for _, item := range dayItems {
			if item.AllDay {
				allDay = append(allDay, item)
			} else {
				timed = append(timed, item)
			}
		}

		for _, item := range allDay {
			fmt.Fprintf(out, "  %s\n", renderItemLine(item))
		}
		if len(allDay) > 0 {
			fmt.Fprintln(out)
		}

		startHour := a.Config.DayStartHour
		for _, slot := range a.Engine.ProjectHours(date, startHour, a.Config.DayEndHour) {
			fmt.Fprintf(out, "  %s\n", headerStyle.Render(slot.Format("15:04")))
			for _, item := range timed {
				if item.Start.Hour() != slot.Hour() || !domain.SameDay(item.Start, slot) {
					continue
				}
				line := renderItemLine(item)
				if box, ok := a.Engine.LayoutTimedItem(item, startHour, a.Config.SlotHeight); ok && verbose {
					line += mutedStyle.Render(fmt.Sprintf("  top=%.0f height=%.0f", box.Top, box.Height))
				}
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
		return nil
	},
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "day to show (YYYY-MM-DD)")
	rootCmd.AddCommand(dayCmd)
}
