package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/inovacc/rostr/internal/core"
	"github.com/inovacc/rostr/internal/model"
	"github.com/inovacc/rostr/internal/store"
	"github.com/spf13/pflag"
)

// studentFlags registers the record field flags shared by add and update.
func studentFlags(fs *pflag.FlagSet, name *string, age *int, grade *float64) {
	fs.StringVar(name, "name", "", "Student name")
	fs.IntVar(age, "age", 0, "Student age (1-149)")
	fs.Float64Var(grade, "grade", 0, "Student grade (0-20)")
}

// openRoster loads the configured roster file. Unlike the interactive
// session, subcommands treat a corrupt data file as a hard error; skipped
// malformed entries are only warned about.
func openRoster() (*core.Roster, error) {
	st := store.NewFileStore(cfg.DataFile).WithLogger(log)

	roster, skipped, err := core.LoadRoster(st)
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed record(s) in %s.\n", skipped, cfg.DataFile)
		log.Warn().Int("skipped", skipped).Msg("rejected malformed roster entries")
	}

	return roster, nil
}

// promptLine reads one line from stdin, without the trailing newline.
func promptLine(prompt string) string {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	reader := bufio.NewReader(os.Stdin)

	line, _ := reader.ReadString('\n')

	return strings.TrimRight(line, "\r\n")
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this record? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// studentRow formats one roster line for the list and search outputs.
// n is the 1-based display number.
func studentRow(n int, st model.Student) string {
	return fmt.Sprintf("[%d] %-20s | Age: %-3s | Grade: %.2f", n, st.Name, strconv.Itoa(st.Age), st.Grade)
}

// findOne resolves a query to exactly one roster index. Zero or several
// matches are errors, with the candidates listed so the caller can refine.
func findOne(roster *core.Roster, query string) (int, error) {
	if roster.Len() == 0 {
		return 0, core.ErrEmptyRoster
	}

	matches := roster.Find(query)

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("no student matches %q", query)
	case 1:
		return matches[0].Index, nil
	}

	for i, m := range matches {
		_, _ = fmt.Fprintln(os.Stderr, studentRow(i+1, m.Student))
	}

	return 0, fmt.Errorf("%d students match %q, refine the search", len(matches), query)
}

// defaultExportPath derives the export target for a format from the
// configured CSV path when no --output is given.
func defaultExportPath(base, format string) string {
	if format == "csv" {
		return base
	}

	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + "." + format
}
