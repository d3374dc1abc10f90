package browse

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	rankWidth   = 4
	missesWidth = 7
	hintWidth   = 5
)

// columnsForWidth sizes the question column to the terminal.
func columnsForWidth(width int) []table.Column {
	question := width - rankWidth - missesWidth - hintWidth - 8
	if question < 20 {
		question = 20
	}
	return []table.Column{
		{Title: "#", Width: rankWidth},
		{Title: "Question", Width: question},
		{Title: "Misses", Width: missesWidth},
		{Title: "Hint", Width: hintWidth},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, questionWidth int) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatRank(row.Rank),
			formatQuestionText(row.Question, questionWidth),
			strconv.Itoa(row.WrongCount),
			formatHintFlag(row.Hint),
		})
	}
	return rows
}
