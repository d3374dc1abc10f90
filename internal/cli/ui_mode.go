package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"quizbank/internal/config"
)

// uiModeDecision captures whether output is styled.
type uiModeDecision struct {
	color   bool
	forced  bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether to style output.
func resolveUIMode(mode string, noColor bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = config.UIModeAuto
	}
	switch normalized {
	case config.UIModeAuto:
		return uiModeDecision{color: !noColor && isTerminal(stdout)}, nil
	case config.UIModePlain:
		return uiModeDecision{}, nil
	case config.UIModeColor:
		if noColor {
			return uiModeDecision{warning: "Color output requested but NO_COLOR is set; using plain output."}, nil
		}
		if isTerminal(stdout) {
			return uiModeDecision{color: true}, nil
		}
		return uiModeDecision{
			color:   true,
			forced:  true,
			warning: "Color output requested but stdout is not a TTY; writing escape codes anyway.",
		}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|plain|color)", mode)
	}
}

// applyColorProfile makes lipgloss emit colors even when it would detect a
// plain writer.
func applyColorProfile(decision uiModeDecision) {
	if decision.forced {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
