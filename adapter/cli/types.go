package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered item types",
	Long: `List the item types currently registered with the engine, with their
icon, color and the time patterns they support.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, t := range a.Engine.ListItemTypes() {
			patterns := make([]string, 0, len(t.TimePatterns))
			for _, p := range t.TimePatterns {
				patterns = append(patterns, string(p))
			}
			fmt.Fprintf(out, "  %s %s %s\n",
				t.Icon,
				itemTitleStyle.Render(fmt.Sprintf("%-14s", t.Key)),
				mutedStyle.Render(t.DisplayName),
			)
			fmt.Fprintf(out, "     %s\n", mutedStyle.Render(strings.Join(patterns, ", ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
