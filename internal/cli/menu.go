package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Choice is a main menu selection. The numeric values are the menu digits.
type Choice int

const (
	ChoiceExit Choice = iota
	ChoiceAdd
	ChoiceView
	ChoiceSearch
	ChoiceUpdate
	ChoiceDelete
	ChoiceExport
)

var menuEntries = []struct {
	digit int
	label string
}{
	{1, "Add student"},
	{2, "View all students"},
	{3, "Search student"},
	{4, "Update student"},
	{5, "Delete student"},
	{6, "Export to CSV"},
	{0, "Exit"},
}

const menuDivider = "========================================"

// renderMenu writes the banner and the numbered menu items.
func renderMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, menuDivider)
	fmt.Fprintln(w, "    Student Management System  -  CLI")
	fmt.Fprintln(w, menuDivider)
	fmt.Fprintln(w)

	for _, e := range menuEntries {
		fmt.Fprintf(w, "  %d) %s\n", e.digit, e.label)
	}
}

// ParseChoice maps trimmed input to a menu choice. The second return is
// false for anything that is not an integer from 0 to 6.
func ParseChoice(input string) (Choice, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 || n > int(ChoiceExport) {
		return 0, false
	}

	return Choice(n), true
}

// MenuModel is the terminal rendition of the main menu: the same numbered
// items with a digit-entry prompt instead of cursor navigation, so the
// typed-choice contract holds in both plain and terminal modes.
type MenuModel struct {
	input       textinput.Model
	choice      Choice
	chosen      bool
	invalid     bool
	interrupted bool
}

func NewMenuModel() MenuModel {
	ti := textinput.New()
	ti.Prompt = "Enter choice: "
	ti.CharLimit = 3
	ti.Width = 6
	ti.Focus()

	return MenuModel{input: ti}
}

func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.interrupted = true

			return m, tea.Quit

		case "enter":
			choice, ok := ParseChoice(m.input.Value())
			if !ok {
				m.invalid = true
				m.input.SetValue("")

				return m, nil
			}

			m.choice = choice
			m.chosen = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m MenuModel) View() string {
	if m.chosen || m.interrupted {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(menuDivider + "\n")
	sb.WriteString(titleStyle.Render("    Student Management System  -  CLI") + "\n")
	sb.WriteString(menuDivider + "\n\n")

	for _, e := range menuEntries {
		sb.WriteString(fmt.Sprintf("  %d) %s\n", e.digit, e.label))
	}

	sb.WriteString("\n" + m.input.View() + "\n")

	if m.invalid {
		sb.WriteString(invalidStyle.Render("Invalid choice. Try again.") + "\n")
	}

	sb.WriteString(helpStyle.Render("type a number and press enter") + "\n")

	return sb.String()
}

// Choice returns the submitted selection; valid only when Chosen is true.
func (m MenuModel) Choice() Choice {
	return m.choice
}

// Chosen reports whether a valid selection was submitted.
func (m MenuModel) Chosen() bool {
	return m.chosen
}

// Interrupted reports whether the menu ended on ctrl+c or escape.
func (m MenuModel) Interrupted() bool {
	return m.interrupted
}
