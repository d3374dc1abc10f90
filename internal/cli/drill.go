package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"quizbank/internal/quiz"
	"quizbank/internal/session"
	"quizbank/internal/store"
)

// Drill modes accepted by --mode.
const (
	modeAll        = "all"
	modeFailed     = "failed"
	modeLastFailed = "last-failed"
)

// runDrill builds the handler for the drill command.
func runDrill(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		mode := flags.String("mode", modeAll, "Items to drill: all|failed|last-failed")
		seed := flags.Uint64("seed", 0, "Shuffle seed (0 picks a random order)")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		if _, err := modeLabel(*mode); err != nil {
			fmt.Fprintln(stderr, err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Drill failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		if _, err := env.drill(context.Background(), *mode, *seed, newInputReader(), stdout); err != nil {
			fmt.Fprintf(stderr, "Drill failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// modeLabel names a drill mode in session headers.
func modeLabel(mode string) (string, error) {
	switch mode {
	case modeAll:
		return "all", nil
	case modeFailed:
		return "failed", nil
	case modeLastFailed:
		return "recently failed", nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected all|failed|last-failed)", mode)
	}
}

// drillSource resolves the items for mode. An empty result comes with the
// message explaining why.
func drillSource(st *store.Store, mode string) ([]*quiz.Item, string, error) {
	switch mode {
	case modeAll:
		items := st.All().Items()
		if len(items) == 0 {
			return nil, "There are no quiz items yet. Add some first.", nil
		}
		return items, "", nil
	case modeFailed:
		items, err := st.FailedItems()
		switch {
		case errors.Is(err, quiz.ErrNoItems):
			return nil, "There are no quiz items yet. Add some first.", nil
		case errors.Is(err, quiz.ErrNoneFailed):
			return nil, "No failed items!", nil
		case err != nil:
			return nil, "", err
		}
		return items, "", nil
	case modeLastFailed:
		items := st.LastFailed()
		if len(items) == 0 {
			return nil, "No recent failures.", nil
		}
		st.Track(items)
		return items, "", nil
	default:
		_, err := modeLabel(mode)
		return nil, "", err
	}
}

// drill runs one session over the items selected by mode. It returns nil
// when there was nothing to drill.
func (e *appEnv) drill(ctx context.Context, mode string, seed uint64, reader *bufio.Reader, stdout io.Writer) (*session.Session, error) {
	label, err := modeLabel(mode)
	if err != nil {
		return nil, err
	}
	items, empty, err := drillSource(e.store, mode)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		fmt.Fprintln(stdout, empty)
		return nil, nil
	}

	opts := session.Options{Label: label, Logger: e.logger, NoColor: !e.color}
	if seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	s := session.New(e.store, items, opts)
	report := s.Run(session.NewLineReader(reader), stdout)
	e.recordHistory(ctx, mode, report)
	return s, nil
}
