package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/rostr/internal/config"
	"github.com/inovacc/rostr/internal/core"
	"github.com/inovacc/rostr/internal/logger"
	"github.com/inovacc/rostr/internal/model"
	"github.com/inovacc/rostr/internal/store"
	"github.com/rs/zerolog"
)

// ErrInterrupted reports that the user left through the terminal menu's
// interrupt keys rather than the exit choice.
var ErrInterrupted = errors.New("session interrupted")

var errInputClosed = errors.New("input closed")

const (
	wideDivider = "===================================================="
	thinDivider = "----------------------------------------------------"
)

// Session runs the menu loop over one roster. All reads go through a single
// scanner and all writes through one writer, keeping the session fully
// scriptable.
type Session struct {
	roster   *core.Roster
	cfg      *config.Config
	in       *bufio.Scanner
	out      io.Writer
	log      zerolog.Logger
	terminal bool
}

func NewSession(roster *core.Roster, cfg *config.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		roster: roster,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    logger.Discard(),
	}
}

// WithLogger sets the session logger.
func (s *Session) WithLogger(log zerolog.Logger) *Session {
	s.log = log
	return s
}

// WithTerminal switches the menu to the bubbletea rendition. Prompts still
// read from the session input either way.
func (s *Session) WithTerminal(on bool) *Session {
	s.terminal = on
	return s
}

// WarnLoad surfaces load-time problems the way the menu loop surfaces
// everything else: a message and a pause, never a crash.
func (s *Session) WarnLoad(err error, skipped int) {
	var corrupt *store.CorruptError
	if errors.As(err, &corrupt) {
		fmt.Fprintf(s.out, "Warning: Could not read %s (corrupt?). Starting with empty list.\n", corrupt.Path)
		s.log.Warn().Err(err).Msg("data file unreadable, starting empty")
		s.pause()

		return
	}

	if skipped > 0 {
		fmt.Fprintf(s.out, "Warning: skipped %d malformed record(s) in %s.\n", skipped, s.cfg.DataFile)
		s.log.Warn().Int("skipped", skipped).Msg("rejected malformed roster entries")
		s.pause()
	}
}

// Run drives the menu loop until exit, interrupt, or the end of input.
func (s *Session) Run() error {
	for {
		choice, err := s.menuChoice()
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				fmt.Fprintln(s.out, "\nInterrupted - goodbye!")
				return ErrInterrupted
			}
			// Input ran out; leave as cleanly as an explicit exit.
			s.farewell()

			return nil
		}

		s.log.Debug().Int("choice", int(choice)).Msg("menu choice")

		switch choice {
		case ChoiceAdd:
			err = s.runAdd()
		case ChoiceView:
			err = s.runView()
		case ChoiceSearch:
			err = s.runSearch()
		case ChoiceUpdate:
			err = s.runUpdate()
		case ChoiceDelete:
			err = s.runDelete()
		case ChoiceExport:
			s.runExport()
			s.pause()
		case ChoiceExit:
			s.farewell()

			return nil
		}

		if err != nil {
			s.farewell()

			return nil
		}
	}
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, "* Program closed successfully. Bye! *")
}

// menuChoice renders the menu and reads one valid selection, reporting
// invalid entries and asking again.
func (s *Session) menuChoice() (Choice, error) {
	if s.terminal {
		return s.terminalMenuChoice()
	}

	for {
		renderMenu(s.out)

		line, err := s.prompt("\nEnter choice: ")
		if err != nil {
			return 0, err
		}

		choice, ok := ParseChoice(line)
		if ok {
			return choice, nil
		}

		fmt.Fprintln(s.out, "Invalid choice. Try again.")
	}
}

func (s *Session) terminalMenuChoice() (Choice, error) {
	p := tea.NewProgram(NewMenuModel())

	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("menu: %w", err)
	}

	m := final.(MenuModel)
	if m.Interrupted() {
		return 0, ErrInterrupted
	}

	if !m.Chosen() {
		return 0, errInputClosed
	}

	return m.Choice(), nil
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	if !s.in.Scan() {
		return "", errInputClosed
	}

	return s.in.Text(), nil
}

func (s *Session) pause() {
	fmt.Fprint(s.out, "\nPress Enter to continue...")

	s.in.Scan()

	fmt.Fprintln(s.out)
}

func (s *Session) banner(title string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, wideDivider)
	fmt.Fprintf(s.out, "%s\n", centerText(title, len(wideDivider)))
	fmt.Fprintln(s.out, wideDivider)
}

func (s *Session) runAdd() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Add Student")
	fmt.Fprintln(s.out, "========================================")

	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}

	if !model.ValidName(name) {
		fmt.Fprintln(s.out, "Invalid name.")
		s.pause()

		return nil
	}

	ageInput, err := s.prompt("Age: ")
	if err != nil {
		return err
	}

	age, perr := model.ParseAge(ageInput)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid age. Must be positive integer.")
		s.pause()

		return nil
	}

	gradeInput, err := s.prompt("Grade (0 - 20): ")
	if err != nil {
		return err
	}

	grade, perr := model.ParseGrade(gradeInput)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid grade. Must be a number between 0 and 20.")
		s.pause()

		return nil
	}

	student, perr := model.NewStudent(name, age, grade)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid name.")
		s.pause()

		return nil
	}

	if serr := s.roster.Add(student); serr != nil {
		fmt.Fprintf(s.out, "Error saving data: %v\n", serr)
		s.log.Error().Err(serr).Msg("save failed after add")
	}

	fmt.Fprintf(s.out, "Student added: %s - Age: %d, Grade: %.2f\n", student.Name, student.Age, student.Grade)
	s.log.Info().Str("name", student.Name).Msg("student added")
	s.pause()

	return nil
}

func (s *Session) runView() error {
	s.banner("Students List")

	students := s.roster.Students()
	if len(students) == 0 {
		fmt.Fprintln(s.out, "No students found.")
		s.pause()

		return nil
	}

	for i, st := range students {
		fmt.Fprintf(s.out, "[%d] %-20s | Age: %-3s | Grade: %.2f\n", i+1, st.Name, strconv.Itoa(st.Age), st.Grade)
	}

	fmt.Fprintln(s.out, wideDivider)
	fmt.Fprintf(s.out, "Total: %d students - Average grade: %.2f\n", len(students), s.roster.AverageGrade())
	s.pause()

	return nil
}

func (s *Session) runSearch() error {
	query, err := s.prompt("Name to search: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)

	matches := s.roster.Find(query)

	fmt.Fprintf(s.out, "Search results for '%s':\n", query)
	fmt.Fprintln(s.out, thinDivider)

	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No matches.")
	} else {
		for i, m := range matches {
			fmt.Fprintf(s.out, "[%d] %s\n", i+1, m.Student)
		}
	}

	s.pause()

	return nil
}

// chooseFrom resolves search matches to a roster index: an empty result is
// no selection, a single match selects itself without prompting, several
// matches are listed for a numbered pick.
func (s *Session) chooseFrom(matches []core.Match) (int, error) {
	if len(matches) == 0 {
		return 0, core.ErrNoMatches
	}

	if len(matches) == 1 {
		return matches[0].Index, nil
	}

	fmt.Fprintln(s.out, "Select one of the results:")
	fmt.Fprintln(s.out, thinDivider)

	for i, m := range matches {
		fmt.Fprintf(s.out, "[%d] %s\n", i+1, m.Student)
	}

	fmt.Fprintln(s.out, thinDivider)

	input, err := s.prompt(fmt.Sprintf("\nEnter number (1-%d) or 0 to cancel: ", len(matches)))
	if err != nil {
		return 0, err
	}

	idx, serr := core.SelectMatch(matches, input)
	if serr != nil {
		if !core.Cancelled(serr) {
			fmt.Fprintln(s.out, "Invalid selection.")
		}

		return 0, serr
	}

	return idx, nil
}

func (s *Session) runUpdate() error {
	s.banner("Update Student")

	if s.roster.Len() == 0 {
		fmt.Fprintln(s.out, "No students to update.")
		s.pause()

		return nil
	}

	query, err := s.prompt("Search by name (partial allowed): ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)

	matches := s.roster.Find(query)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No matches found.")
		s.pause()

		return nil
	}

	idx, err := s.chooseFrom(matches)
	if err != nil {
		if errors.Is(err, errInputClosed) {
			return err
		}

		s.pause()

		return nil
	}

	selected, err := s.roster.Get(idx)
	if err != nil {
		return nil
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, thinDivider)
	fmt.Fprintf(s.out, "Selected: %s\n", selected)
	fmt.Fprintln(s.out, thinDivider)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "1) Update name")
	fmt.Fprintln(s.out, "2) Update age")
	fmt.Fprintln(s.out, "3) Update grade")
	fmt.Fprintln(s.out, "0) Cancel")
	fmt.Fprintln(s.out)

	opt, err := s.prompt("Choose option: ")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(opt) {
	case "1":
		name, perr := s.prompt("New name: ")
		if perr != nil {
			return perr
		}

		if !model.ValidName(name) {
			fmt.Fprintln(s.out, "Invalid name.")
			s.pause()

			return nil
		}

		selected.Name = model.NormalizeName(name)

	case "2":
		input, perr := s.prompt("New age: ")
		if perr != nil {
			return perr
		}

		age, aerr := model.ParseAge(input)
		if aerr != nil {
			fmt.Fprintln(s.out, "Invalid age.")
			s.pause()

			return nil
		}

		selected.Age = age

	case "3":
		input, perr := s.prompt("New grade (0-20): ")
		if perr != nil {
			return perr
		}

		grade, gerr := model.ParseGrade(input)
		if gerr != nil {
			fmt.Fprintln(s.out, "Invalid grade.")
			s.pause()

			return nil
		}

		selected.Grade = grade

	case "0":
		fmt.Fprintln(s.out, "Cancelled.")
		s.pause()

		return nil

	default:
		fmt.Fprintln(s.out, "Invalid choice.")
		s.pause()

		return nil
	}

	if serr := s.roster.Set(idx, selected); serr != nil {
		fmt.Fprintf(s.out, "Error saving data: %v\n", serr)
		s.log.Error().Err(serr).Msg("save failed after update")
	}

	fmt.Fprintln(s.out, "Student updated successfully.")
	s.log.Info().Str("name", selected.Name).Msg("student updated")
	s.pause()

	return nil
}

func (s *Session) runDelete() error {
	s.banner("Delete Student")

	if s.roster.Len() == 0 {
		fmt.Fprintln(s.out, "No students to delete.")
		s.pause()

		return nil
	}

	query, err := s.prompt("Search by name (partial allowed): ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)

	matches := s.roster.Find(query)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No matches found.")
		s.pause()

		return nil
	}

	idx, err := s.chooseFrom(matches)
	if err != nil {
		if errors.Is(err, errInputClosed) {
			return err
		}

		s.pause()

		return nil
	}

	selected, err := s.roster.Get(idx)
	if err != nil {
		return nil
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "You are about to delete:")
	fmt.Fprintln(s.out, thinDivider)
	fmt.Fprintf(s.out, "%s\n", selected)
	fmt.Fprintln(s.out, thinDivider)
	fmt.Fprintln(s.out)

	confirm, err := s.prompt("Type 'delete' to confirm or anything else to cancel: ")
	if err != nil {
		return err
	}

	if strings.EqualFold(strings.TrimSpace(confirm), "delete") {
		removed, rerr := s.roster.Remove(idx)
		if rerr != nil {
			var idxErr *core.IndexError
			if errors.As(rerr, &idxErr) {
				s.pause()

				return nil
			}

			fmt.Fprintf(s.out, "Error saving data: %v\n", rerr)
			s.log.Error().Err(rerr).Msg("save failed after delete")
		}

		fmt.Fprintln(s.out, "Student deleted.")
		s.log.Info().Str("name", removed.Name).Msg("student deleted")
	}

	s.pause()

	return nil
}

func (s *Session) runExport() {
	students := s.roster.Students()

	if err := store.ExportCSVFile(s.cfg.ExportFile, students); err != nil {
		fmt.Fprintf(s.out, "Failed to export CSV: %v\n", err)
		s.log.Error().Err(err).Msg("csv export failed")
		s.pause()

		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Exported %d students to %s\n", len(students), s.cfg.ExportFile)
	s.log.Info().Int("students", len(students)).Str("path", s.cfg.ExportFile).Msg("csv exported")
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}

	left := (width - len(text)) / 2

	return strings.Repeat(" ", left) + text
}
