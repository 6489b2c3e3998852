package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/rostr/internal/model"
	"github.com/spf13/cobra"
)

var (
	updName  string
	updAge   int
	updGrade float64
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update one field of a student",
	Long: `Update a single field of the student matching <name>. The search must
resolve to exactly one student; refine it when several match. Exactly one
of --name, --age or --grade is required.

Examples:
  rostr update ana --grade 18
  rostr update "ana maria" --name sofia`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	studentFlags(updateCmd.Flags(), &updName, &updAge, &updGrade)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var changed []string

	for _, f := range []string{"name", "age", "grade"} {
		if cmd.Flags().Changed(f) {
			changed = append(changed, f)
		}
	}

	if len(changed) != 1 {
		return fmt.Errorf("exactly one of --name, --age or --grade is required")
	}

	roster, err := openRoster()
	if err != nil {
		return err
	}

	idx, err := findOne(roster, args[0])
	if err != nil {
		return err
	}

	student, err := roster.Get(idx)
	if err != nil {
		return err
	}

	switch changed[0] {
	case "name":
		if !model.ValidName(updName) {
			return fmt.Errorf("%w: %q", model.ErrInvalidName, updName)
		}

		student.Name = model.NormalizeName(updName)

	case "age":
		if !model.ValidAge(updAge) {
			return fmt.Errorf("%w: %d is out of range", model.ErrInvalidAge, updAge)
		}

		student.Age = updAge

	case "grade":
		if !model.ValidGrade(updGrade) {
			return fmt.Errorf("%w: %g is out of range", model.ErrInvalidGrade, updGrade)
		}

		student.Grade = updGrade
	}

	if err := roster.Set(idx, student); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}

	log.Info().Str("name", student.Name).Str("field", changed[0]).Msg("student updated")
	_, _ = fmt.Fprintf(os.Stdout, "Student updated: %s\n", student)

	return nil
}
