package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizbank/internal/wrongnote"
)

// runNote builds the handler for the note command.
func runNote(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		formatValue := flags.String("format", "md", "Note format: md|html")
		output := flags.String("output", "", "Output path (default: wrong_note from config)")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		format, err := wrongnote.ParseFormat(*formatValue)
		if err != nil {
			fmt.Fprintln(stderr, err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Note failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		path := strings.TrimSpace(*output)
		if path == "" {
			path = notePath(env.cfg.WrongNote, format)
		}
		if err := env.exportNote(path, format, stdout); err != nil {
			fmt.Fprintf(stderr, "Note failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// notePath swaps the configured note extension for the chosen format.
func notePath(configured string, format wrongnote.Format) string {
	return strings.TrimSuffix(configured, filepath.Ext(configured)) + format.Extension()
}

// exportNote writes the failed items as a wrong note.
func (e *appEnv) exportNote(path string, format wrongnote.Format, stdout io.Writer) error {
	items, ok := failedOrNotice(e.store, stdout)
	if !ok {
		return nil
	}
	if err := wrongnote.Write(path, items, format); err != nil {
		return err
	}
	e.logger.Info("wrong note written", "path", path, "items", len(items), "format", string(format))
	fmt.Fprintf(stdout, "Wrote wrong note to %s\n", path)
	return nil
}

