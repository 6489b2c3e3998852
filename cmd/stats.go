package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/inovacc/rostr/internal/core"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show roster statistics",
	Long: `Display the student count and the average grade.

Examples:
  rostr stats
  rostr stats --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := openRoster()
		if err != nil {
			return err
		}

		summary := core.Summarize(roster.Students())

		if statsJSON {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, string(data))

			return nil
		}

		_, _ = fmt.Fprintf(os.Stdout, "Total: %d students - Average grade: %.2f\n", summary.Count, summary.Average)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}
