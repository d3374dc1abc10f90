// Package browse is a Bubble Tea table for reviewing failed items.
package browse

import (
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/quiz"
)

const defaultWidth = 80

// Model renders the browse UI using Bubble Tea.
type Model struct {
	state   State
	table   table.Model
	width   int
	noColor bool
}

// Options configures the browse model.
type Options struct {
	Label   string
	NoColor bool
}

// NewModel constructs a browse model over items in their given order.
func NewModel(items []*quiz.Item, opts Options) Model {
	label := opts.Label
	if label == "" {
		label = "failed"
	}
	state := NewState(label, items)
	t := table.New(
		table.WithColumns(columnsForWidth(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(min(max(len(state.Rows), 1), 15)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	m := Model{state: state, table: t, width: defaultWidth, noColor: opts.NoColor}
	m.syncRows()
	return m
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-10, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.syncRows()
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			m.state = Reduce(m.state, Action{Kind: ActionToggleAnswer})
			return m, nil
		case "s":
			m.state = Reduce(m.state, Action{Kind: ActionCycleSort})
			m.syncRows()
			m.table.SetCursor(m.state.Selected)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.state = Reduce(m.state, Action{Kind: ActionSelect, Index: m.table.Cursor()})
	return m, cmd
}

// View renders the browse UI.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.state, m.noColor),
		m.table.View(),
		"",
		renderDetail(m.state, m.noColor),
		"",
		renderFooter(m.noColor),
	)
}

func (m *Model) syncRows() {
	columns := columnsForWidth(m.width)
	m.table.SetRows(rowsForState(m.state, columns[1].Width))
}

// Run shows the browse UI until the user quits.
func Run(items []*quiz.Item, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewModel(items, opts), tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	return err
}
