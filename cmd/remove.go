package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/rostr/internal/cli"
	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a student from the roster",
	Long: `Remove the student matching [name]. The search must resolve to exactly
one student. Without a name, pick the student from an interactive list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := openRoster()
		if err != nil {
			return err
		}

		var idx int

		if len(args) > 0 {
			idx, err = findOne(roster, args[0])
			if err != nil {
				return err
			}
		} else {
			// Interactive mode
			m := cli.NewBrowser(roster.Students())

			p := tea.NewProgram(m)

			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			browser := finalModel.(cli.BrowserModel)
			if browser.GetSelected() == nil {
				return nil
			}

			idx = browser.GetSelectedIndex()
		}

		student, err := roster.Get(idx)
		if err != nil {
			return err
		}

		if !removeYes {
			if !promptConfirm(fmt.Sprintf("Delete '%s'? [y/N]: ", student.Name)) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		removed, err := roster.Remove(idx)
		if err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		log.Info().Str("name", removed.Name).Msg("student deleted")
		fmt.Printf("Student deleted: %s\n", removed.Name)

		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}
