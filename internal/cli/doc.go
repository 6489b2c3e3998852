// Package cli provides the interactive surfaces for rostr.
//
// The package has two renditions of the same menu contract. [Session] is
// the line-based one: it reads lines from a single reader and writes plain
// text, so a scripted run over pipes behaves exactly like a human at a
// terminal. The [Bubbletea] models are the styled one, used when stdin is
// a terminal, with [Lipgloss] for styling.
//
// # Components
//
// The package provides several UI components:
//   - Session: the menu loop and all roster operations
//   - MenuModel: digit-entry main menu for terminals
//   - BrowserModel: filterable roster list with selection
//   - ConfigureModel: configuration wizard with form navigation
//
// Terminal components follow the standard Bubbletea Model-View-Update
// architecture: a model struct holding the state, Init() tea.Cmd,
// Update(tea.Msg) (tea.Model, tea.Cmd) and View() string.
//
// # Session Scripting
//
// Every prompt consumes exactly one input line and every pause consumes
// one more, so a whole session can be driven from a string:
//
//	s := cli.NewSession(roster, cfg, strings.NewReader("1\nana\n20\n15.5\n\n0\n"), &out)
//	err := s.Run()
//
// # Styling
//
// Use Lipgloss for consistent styling across components. Common styles
// are defined as package-level variables for reuse.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
