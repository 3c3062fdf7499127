package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lambda-mine/internal/mine/levels"
	"github.com/vovakirdan/lambda-mine/internal/storage"
)

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns the default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pickerModel is the level selection screen, shown by `mine play` when no
// level is named.
type pickerModel struct {
	entries []levels.Entry
	store   *storage.Store
	table   table.Model
	help    help.Model
	keys    PickerKeyMap
	width   int
	height  int
}

// newPickerModel creates a picker for the given catalog.
func newPickerModel(entries []levels.Entry, store *storage.Store, width, height int) pickerModel {
	m := pickerModel{
		entries: entries,
		store:   store,
		keys:    DefaultPickerKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the catalog table with best-result annotations.
func (m *pickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Name", Width: 22},
		{Title: "Size", Width: 8},
		{Title: "λ", Width: 4},
		{Title: "Best", Width: 16},
	}

	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		best := "—"
		if m.store != nil {
			if entry, err := m.store.BestResult(e.Level.ID); err == nil && entry != nil {
				best = fmt.Sprintf("%s λ%d/%d", entry.Outcome, entry.Lambdas, entry.Moves)
			}
		}
		rows = append(rows, table.Row{
			e.Level.ID,
			e.Level.Name,
			fmt.Sprintf("%dx%d", e.Level.Width, e.Level.Height),
			fmt.Sprintf("%d", e.Level.Lambdas),
			best,
		})
	}

	height := len(rows) + 1
	if limit := m.height - 6; height > limit && limit > 2 {
		height = limit
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// update handles one message; it reports a selected catalog index (or -1)
// and whether the user quit.
func (m *pickerModel) update(msg tea.Msg) (selected int, quit bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return -1, true, nil
		case key.Matches(msg, m.keys.Select):
			return m.table.Cursor(), false, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
	}

	m.table, cmd = m.table.Update(msg)
	return -1, false, cmd
}

// view renders the picker screen.
func (m pickerModel) view() string {
	title := lipgloss.NewStyle().Bold(true).Render(" Lambda Mine — choose a level")
	return title + "\n\n" + m.table.View() + "\n\n" + m.help.View(m.keys) + "\n"
}
