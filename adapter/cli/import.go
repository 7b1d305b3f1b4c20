package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import items from an ICS file",
	Long: `Parse an iCalendar file and print the items it yields. Malformed
events are skipped with a warning; the remaining events become
calendar items of the built-in event type.

Examples:
  almanac import calendar.ics`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		body, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		items, err := a.Importer.Import(body)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "imported %d items\n", len(items))
		for _, item := range items {
			fmt.Fprintf(out, "  %s  %s\n", item.Start.Format("2006-01-02"), renderItemLine(item))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
