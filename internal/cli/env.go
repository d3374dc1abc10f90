package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"quizbank/internal/config"
	"quizbank/internal/history"
	"quizbank/internal/logging"
	"quizbank/internal/session"
	"quizbank/internal/store"
)

// input allows tests to override stdin for interactive commands.
var input io.Reader = os.Stdin

// newInputReader wraps the current input source.
func newInputReader() *bufio.Reader {
	in := input
	if in == nil {
		in = os.Stdin
	}
	return bufio.NewReader(in)
}

// appEnv bundles what every data command needs.
type appEnv struct {
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
	store  *store.Store
	color  bool
}

// openEnv resolves config, builds the logger, and opens the quiz store.
func openEnv(configPath string, stdout, stderr io.Writer) (*appEnv, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}
	decision, err := resolveUIMode(cfg.UI.Mode, cfg.UI.NoColor, stdout)
	if err != nil {
		return nil, err
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}
	applyColorProfile(decision)

	logger, closer := logging.New(cfg.Log, stderr)
	st, err := store.Open(store.Options{
		QuizPath:       cfg.Store,
		LastFailedPath: cfg.LastFailed,
		Logger:         logger,
	})
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	logger.Debug("store opened", "path", cfg.Store, "items", st.All().Len())
	return &appEnv{cfg: cfg, logger: logger, closer: closer, store: st, color: decision.color}, nil
}

// Close flushes the log sink.
func (e *appEnv) Close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

// recordHistory appends a finished session to the history database. History
// is best effort: failures are logged and never interrupt the drill.
func (e *appEnv) recordHistory(ctx context.Context, mode string, report session.Report) {
	if e.cfg.History == "" || report.Total == 0 {
		return
	}
	db, err := history.Open(ctx, e.cfg.History)
	if err != nil {
		e.logger.Warn("open history", "path", e.cfg.History, "error", err)
		return
	}
	defer db.Close()
	entry := history.Entry{
		ID:        report.ID,
		Mode:      mode,
		StartedAt: report.StartedAt,
		EndedAt:   report.EndedAt,
		Total:     report.Total,
		Attempted: report.Attempted,
		Correct:   report.Correct,
		Failed:    len(report.Failed),
		Quit:      report.Quit,
	}
	if err := db.Record(ctx, entry); err != nil {
		e.logger.Warn("record history", "session", report.ID, "error", err)
	}
}
