package cli

import (
	"fmt"
	"io"

	"quizbank/internal/config"
	"quizbank/internal/quiz"
	"quizbank/internal/store"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		cfg, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		items, err := store.Document{Path: cfg.Store, Key: store.KeyQuiz}.Read()
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if err := quiz.Validate(items); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintf(stdout, "Store OK (%d items)\n", len(items))
		return ExitOK
	}
}
