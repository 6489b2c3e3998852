package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/rostr/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

type studentItem struct {
	student model.Student
	index   int
}

func (i studentItem) Title() string {
	return i.student.Name
}

func (i studentItem) Description() string {
	return fmt.Sprintf("Age: %d | Grade: %.2f", i.student.Age, i.student.Grade)
}

func (i studentItem) FilterValue() string {
	return i.student.Name
}

// BrowserModel is a scrollable, filterable roster view. Enter picks a
// record, q or esc leaves without one.
type BrowserModel struct {
	list     list.Model
	selected *model.Student
	index    int
	quitting bool
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(studentItem)
			if ok {
				m.selected = &i.student
				m.index = i.index
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelected returns the picked record, or nil when the browser was left
// without choosing.
func (m BrowserModel) GetSelected() *model.Student {
	return m.selected
}

// GetSelectedIndex returns the roster index of the picked record.
func (m BrowserModel) GetSelectedIndex() int {
	if m.selected == nil {
		return -1
	}

	return m.index
}

func NewBrowser(students []model.Student) BrowserModel {
	items := make([]list.Item, len(students))
	for i, st := range students {
		items[i] = studentItem{student: st, index: i}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Students (%d)", len(students))

	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return BrowserModel{list: l, index: -1}
}
