package cli

import (
	"fmt"
	"io"
	"os"

	"quizbank/internal/ui/browse"
)

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		items, ok := failedOrNotice(env.store, stdout)
		if !ok {
			return ExitOK
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "Browse needs a terminal; falling back to a plain list.")
			printFailed(items, stdout)
			return ExitOK
		}
		in := input
		if in == nil {
			in = os.Stdin
		}
		if err := browse.Run(items, browse.Options{Label: "failed", NoColor: !env.color}, in, stdout); err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
