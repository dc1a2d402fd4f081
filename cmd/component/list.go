package component

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// ListItem is one rendered step.
type ListItem struct {
	Text            string
	DescriptionText string
}

var _ list.DefaultItem = ListItem{}

func (i ListItem) Title() string {
	if i.Text == "" {
		return "(empty)"
	}
	return i.Text
}
func (i ListItem) Description() string { return i.DescriptionText }
func (i ListItem) FilterValue() string {
	return strings.Join([]string{i.Text, i.DescriptionText}, " ")
}

type ListModel struct {
	list list.Model
}

var copyBinding = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy line"))

func NewListModel(items []ListItem, title string) ListModel {
	var listItems []list.Item
	for _, i := range items {
		listItems = append(listItems, i)
	}
	m := ListModel{
		list: list.New(listItems, list.NewDefaultDelegate(), 0, 0),
	}
	m.list.Title = title

	m.list.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{copyBinding}
	}

	m.list.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{copyBinding}
	}

	return m
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Keys typed into the filter belong to the filter.
		if key.Matches(msg, copyBinding) && m.list.FilterState() != list.Filtering {
			return m, m.copySelected()
		}

	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ListModel) copySelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(item.Text); err != nil {
		return m.list.NewStatusMessage("copy failed: " + err.Error())
	}
	return m.list.NewStatusMessage("copied")
}

func (m ListModel) View() string {
	return docStyle.Render(m.list.View())
}

// Browse shows items in a full screen list until the user quits.
func Browse(title string, items []ListItem) error {
	_, err := tea.NewProgram(NewListModel(items, title), tea.WithAltScreen()).Run()
	return err
}
