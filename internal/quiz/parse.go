package quiz

import (
	"iter"
	"strings"
)

// Authoring markers recognized at the start of a trimmed line.
const (
	MarkerBoundary = ":+"
	MarkerAnswers  = ":="
	MarkerHint     = ":!"

	answerSeparator = "||"
)

// Parsed is one authored block after parsing.
type Parsed struct {
	Question string
	Answers  []string
	Hint     string
}

// Empty reports whether the block carried nothing worth storing.
func (p Parsed) Empty() bool {
	return p.Question == "" && len(p.Answers) == 0 && p.Hint == ""
}

// SplitBlocks yields the blocks of text separated by boundary lines.
// Boundary lines are dropped and the trailing block is always yielded.
func SplitBlocks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var current []string
		for _, line := range splitLines(text) {
			if strings.HasPrefix(strings.TrimSpace(line), MarkerBoundary) {
				if !yield(strings.Join(current, "\n")) {
					return
				}
				current = current[:0]
				continue
			}
			current = append(current, line)
		}
		yield(strings.Join(current, "\n"))
	}
}

// ParseBlock extracts the question body, answers, and hint from one block.
func ParseBlock(block string) Parsed {
	lines := trimBlankLines(splitLines(block))

	var parsed Parsed
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			body = append(body, "")
		case strings.HasPrefix(trimmed, MarkerHint):
			parsed.Hint = strings.TrimSpace(trimmed[len(MarkerHint):])
		case strings.HasPrefix(trimmed, MarkerAnswers):
			if answers := SplitAnswers(trimmed[len(MarkerAnswers):]); len(answers) > 0 {
				parsed.Answers = answers
			}
		case strings.HasPrefix(trimmed, MarkerBoundary):
		default:
			body = append(body, line)
		}
	}
	parsed.Question = strings.TrimSpace(strings.Join(body, "\n"))
	return parsed
}

// SplitAnswers splits an answer list on "||", trimming and dropping empty pieces.
func SplitAnswers(raw string) []string {
	pieces := strings.Split(raw, answerSeparator)
	answers := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if piece = strings.TrimSpace(piece); piece != "" {
			answers = append(answers, piece)
		}
	}
	return answers
}

// FormatBlock renders a parsed item back into the authoring format.
func FormatBlock(p Parsed) string {
	var b strings.Builder
	b.WriteString(p.Question)
	b.WriteString("\n")
	b.WriteString(MarkerAnswers)
	b.WriteString(strings.Join(p.Answers, answerSeparator))
	if p.Hint != "" {
		b.WriteString("\n")
		b.WriteString(MarkerHint)
		b.WriteString(p.Hint)
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
