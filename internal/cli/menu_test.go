package cli

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  Choice
		ok    bool
	}{
		{"0", ChoiceExit, true},
		{"1", ChoiceAdd, true},
		{"6", ChoiceExport, true},
		{" 3 ", ChoiceSearch, true},
		{"7", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseChoice(tt.input)
		require.Equal(t, tt.ok, ok, "input %q", tt.input)

		if tt.ok {
			require.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestRenderMenuListsAllOptions(t *testing.T) {
	var buf bytes.Buffer

	renderMenu(&buf)

	out := buf.String()
	require.Contains(t, out, "Student Management System")

	for _, label := range []string{
		"1) Add student",
		"2) View all students",
		"3) Search student",
		"4) Update student",
		"5) Delete student",
		"6) Export to CSV",
		"0) Exit",
	} {
		require.Contains(t, out, label)
	}
}

func typeKeys(t *testing.T, m MenuModel, keys string) MenuModel {
	t.Helper()

	for _, r := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(MenuModel)
	}

	return m
}

func pressEnter(t *testing.T, m MenuModel) MenuModel {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	return next.(MenuModel)
}

func TestMenuModelSubmitsChoice(t *testing.T) {
	m := NewMenuModel()
	m = typeKeys(t, m, "3")
	m = pressEnter(t, m)

	require.True(t, m.Chosen())
	require.Equal(t, ChoiceSearch, m.Choice())
	require.Empty(t, m.View())
}

func TestMenuModelRejectsInvalidEntry(t *testing.T) {
	m := NewMenuModel()
	m = typeKeys(t, m, "9")
	m = pressEnter(t, m)

	require.False(t, m.Chosen())
	require.Contains(t, m.View(), "Invalid choice. Try again.")

	// The field resets so the next digits start clean.
	m = typeKeys(t, m, "2")
	m = pressEnter(t, m)

	require.True(t, m.Chosen())
	require.Equal(t, ChoiceView, m.Choice())
}

func TestMenuModelInterrupts(t *testing.T) {
	m := NewMenuModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(MenuModel)

	require.True(t, m.Interrupted())
	require.False(t, m.Chosen())
	require.Empty(t, m.View())
}

func TestMenuModelViewShowsItems(t *testing.T) {
	m := NewMenuModel()

	view := m.View()
	require.Contains(t, view, "Student Management System")
	require.Contains(t, view, "6) Export to CSV")
	require.Contains(t, view, "Enter choice:")
}
