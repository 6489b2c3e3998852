package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search students by name",
	Long: `Find students whose name contains the given text, case-insensitively.

Examples:
  rostr search ana
  rostr search "ana maria"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := openRoster()
		if err != nil {
			return err
		}

		matches := roster.Find(args[0])
		if len(matches) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No matches.")
			return nil
		}

		for i, m := range matches {
			_, _ = fmt.Fprintln(os.Stdout, studentRow(i+1, m.Student))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
