package browse

import (
	"strconv"
	"strings"
)

// formatQuestionText collapses whitespace and truncates for a table cell.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 {
		limit = 4
	}
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// formatRank renders a 1-based rank, padded to two digits.
func formatRank(rank int) string {
	if rank >= 10 {
		return strconv.Itoa(rank)
	}
	return "0" + strconv.Itoa(rank)
}

// formatHintFlag marks rows that carry a hint.
func formatHintFlag(hint string) string {
	if hint == "" {
		return ""
	}
	return "yes"
}
