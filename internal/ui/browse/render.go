package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title line.
func renderHeader(state State, noColor bool) string {
	line := fmt.Sprintf("Browsing %s items | %d items | %d misses | sorted by %s",
		state.Label, len(state.Rows), state.TotalMisses(), state.Sort)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderDetail renders the selected item in full.
func renderDetail(state State, noColor bool) string {
	row, ok := state.Current()
	if !ok {
		return stylize("Nothing to show.", noColor, lipgloss.Color("244"))
	}
	var b strings.Builder
	b.WriteString(row.Question)
	if row.Hint != "" {
		b.WriteString("\n")
		b.WriteString(stylize("Hint: "+row.Hint, noColor, lipgloss.Color("244")))
	}
	b.WriteString("\n")
	if state.Revealed {
		b.WriteString(stylize("Answers: "+strings.Join(row.Answers, " || "), noColor, lipgloss.Color("42")))
	} else {
		b.WriteString(stylize("Answers hidden (enter to reveal)", noColor, lipgloss.Color("240")))
	}
	return b.String()
}

// renderFooter renders key help.
func renderFooter(noColor bool) string {
	return stylize("up/down move | enter reveal | s sort | q quit", noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
