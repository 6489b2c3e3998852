package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/rostr/internal/cli"
	"github.com/inovacc/rostr/internal/core"
	"github.com/spf13/cobra"
)

var listInteractive bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students",
	Long:  `Print the roster in store order with a count and average grade footer. With --interactive, browse it in a filterable list instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := openRoster()
		if err != nil {
			return err
		}

		students := roster.Students()

		if listInteractive {
			m := cli.NewBrowser(students)

			p := tea.NewProgram(m)
			_, err = p.Run()

			return err
		}

		if len(students) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No students found.")
			return nil
		}

		for i, st := range students {
			_, _ = fmt.Fprintln(os.Stdout, studentRow(i+1, st))
		}

		s := core.Summarize(students)
		_, _ = fmt.Fprintf(os.Stdout, "Total: %d students - Average grade: %.2f\n", s.Count, s.Average)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listInteractive, "interactive", false, "Browse the roster in an interactive list")
}
