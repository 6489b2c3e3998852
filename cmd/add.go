package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/inovacc/rostr/internal/model"
	"github.com/spf13/cobra"
)

var (
	addName  string
	addAge   int
	addGrade float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student to the roster",
	Long: `Add a student record. Values can be passed as flags or entered at
the prompts; the name is normalized to title case before saving.

Examples:
  rostr add --name ana --age 20 --grade 15.5
  rostr add                                   # prompt for each field`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	studentFlags(addCmd.Flags(), &addName, &addAge, &addGrade)
}

func runAdd(cmd *cobra.Command, args []string) error {
	roster, err := openRoster()
	if err != nil {
		return err
	}

	name := addName
	if !cmd.Flags().Changed("name") {
		name = promptLine("Name: ")
	}

	ageInput := strconv.Itoa(addAge)
	if !cmd.Flags().Changed("age") {
		ageInput = promptLine("Age: ")
	}

	age, err := model.ParseAge(ageInput)
	if err != nil {
		return err
	}

	gradeInput := strconv.FormatFloat(addGrade, 'g', -1, 64)
	if !cmd.Flags().Changed("grade") {
		gradeInput = promptLine("Grade (0 - 20): ")
	}

	grade, err := model.ParseGrade(gradeInput)
	if err != nil {
		return err
	}

	student, err := model.NewStudent(name, age, grade)
	if err != nil {
		return err
	}

	if err := roster.Add(student); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}

	log.Info().Str("name", student.Name).Msg("student added")
	_, _ = fmt.Fprintf(os.Stdout, "Student added: %s\n", student)

	return nil
}
