package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"quizbank/internal/config"
	"quizbank/internal/history"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		limit := flags.Int("limit", 10, "Number of recent sessions to show")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		cfg, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		if _, err := os.Stat(cfg.History); os.IsNotExist(err) {
			fmt.Fprintln(stdout, "No sessions recorded yet.")
			return ExitOK
		}

		ctx := context.Background()
		db, err := history.Open(ctx, cfg.History)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		summary, err := db.Summarize(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		if summary.Sessions == 0 {
			fmt.Fprintln(stdout, "No sessions recorded yet.")
			return ExitOK
		}
		entries, err := db.Recent(ctx, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "%d sessions, %d of %d answered correctly (%.2f%%)\n",
			summary.Sessions, summary.Correct, summary.Attempted, summary.Percent())
		fmt.Fprintf(stdout, "%-16s  %-12s  %7s  %7s  %s\n", "Started", "Mode", "Score", "Rate", "Failed")
		for _, entry := range entries {
			status := strconv.Itoa(entry.Failed)
			if entry.Quit {
				status += " (quit)"
			}
			fmt.Fprintf(stdout, "%-16s  %-12s  %7s  %6.2f%%  %s\n",
				entry.StartedAt.Local().Format("2006-01-02 15:04"),
				entry.Mode,
				fmt.Sprintf("%d/%d", entry.Correct, entry.Attempted),
				entry.Percent(),
				status)
		}
		return ExitOK
	}
}
