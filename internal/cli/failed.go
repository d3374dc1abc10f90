package cli

import (
	"errors"
	"fmt"
	"io"

	"quizbank/internal/quiz"
	"quizbank/internal/session"
	"quizbank/internal/store"
)

// runFailed builds the handler for the failed command.
func runFailed(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Listing failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		items, ok := failedOrNotice(env.store, stdout)
		if !ok {
			return ExitOK
		}
		printFailed(items, stdout)
		return ExitOK
	}
}

// failedOrNotice returns the ranked failed items, or prints why there are
// none.
func failedOrNotice(st *store.Store, stdout io.Writer) ([]*quiz.Item, bool) {
	items, err := st.FailedItems()
	switch {
	case errors.Is(err, quiz.ErrNoItems):
		fmt.Fprintln(stdout, "There are no quiz items yet.")
		return nil, false
	case errors.Is(err, quiz.ErrNoneFailed):
		fmt.Fprintln(stdout, "No failed items!")
		return nil, false
	}
	return items, true
}

func printFailed(items []*quiz.Item, stdout io.Writer) {
	for i, item := range items {
		fmt.Fprintf(stdout, "%2d. [missed %d] %s\n", i+1, item.WrongCount, preview(item.Question))
		fmt.Fprintf(stdout, "    answers: %s\n", session.JoinAnswers(item.Answers))
	}
}
