package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// printer writes session output, optionally colored.
type printer struct {
	out     io.Writer
	noColor bool
}

var (
	colorHeader  = lipgloss.Color("33")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorNotice  = lipgloss.Color("214")
	colorDim     = lipgloss.Color("244")
)

func (p printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p printer) styled(color lipgloss.Color, bold bool, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if !p.noColor {
		text = lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
	}
	fmt.Fprintln(p.out, text)
}

func (p printer) header(format string, args ...any) { p.styled(colorHeader, true, format, args...) }
func (p printer) correct(format string, args ...any) { p.styled(colorCorrect, true, format, args...) }
func (p printer) wrong(format string, args ...any) { p.styled(colorWrong, true, format, args...) }
func (p printer) notice(format string, args ...any) { p.styled(colorNotice, false, format, args...) }
func (p printer) dim(format string, args ...any) { p.styled(colorDim, false, format, args...) }

func (p printer) prompt(label string) {
	fmt.Fprint(p.out, label)
}

// JoinAnswers renders an answer list the way it is authored.
func JoinAnswers(answers []string) string {
	return strings.Join(answers, " || ")
}
