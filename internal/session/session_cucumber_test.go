//go:build cucumber

package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"quizbank/internal/quiz"
	"quizbank/internal/store"
)

// TestSessionScenarios runs the drill session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "session", "testing.feature")
	suite := godog.TestSuite{
		Name: "session",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			InitializeSessionScenario(ctx, t.TempDir)
		},
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext, tempDir func() string) {
	state := &sessionScenarioState{tempDir: tempDir}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a store with the item "([^"]*)" answered by "([^"]*)" with hint "([^"]*)"$`, state.givenStoredItem)
	ctx.Step(`^I drill with the answers:$`, state.whenDrill)
	ctx.Step(`^I add the last answer as correct$`, state.whenAddLast)
	ctx.Step(`^the session score is (\d+)$`, state.thenScore)
	ctx.Step(`^the item "([^"]*)" has (\d+) misses$`, state.thenMisses)
	ctx.Step(`^the item "([^"]*)" accepts "([^"]*)"$`, state.thenAccepts)
	ctx.Step(`^the failed snapshot is empty$`, state.thenSnapshotEmpty)
	ctx.Step(`^the failed snapshot holds "([^"]*)"$`, state.thenSnapshotHolds)
	ctx.Step(`^the output reveals "([^"]*)"$`, state.thenOutputReveals)
}

type sessionScenarioState struct {
	tempDir func() string
	opts    store.Options
	store   *store.Store
	session *Session
	report  Report
	output  bytes.Buffer
}

// reset clears scenario state.
func (s *sessionScenarioState) reset() {
	s.opts = store.Options{}
	s.store = nil
	s.session = nil
	s.report = Report{}
	s.output.Reset()
}

// reopen loads the documents from disk again.
func (s *sessionScenarioState) reopen() (*store.Store, error) {
	return store.Open(s.opts)
}

// givenStoredItem seeds the store with one item.
func (s *sessionScenarioState) givenStoredItem(question, answers, hint string) error {
	dir := s.tempDir()
	s.opts = store.Options{
		QuizPath:       filepath.Join(dir, "quiz.json"),
		LastFailedPath: filepath.Join(dir, "last_failed.json"),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	st, err := store.Open(s.opts)
	if err != nil {
		return err
	}
	if _, err := st.Upsert(quiz.Parsed{Question: question, Answers: quiz.SplitAnswers(answers), Hint: hint}); err != nil {
		return err
	}
	s.store = st
	return nil
}

// whenDrill runs a session fed by the table rows.
func (s *sessionScenarioState) whenDrill(table *godog.Table) error {
	var lines []string
	for _, row := range table.Rows {
		lines = append(lines, row.Cells[0].Value)
	}
	s.session = New(s.store, s.store.All().Items(), Options{NoColor: true, Logger: s.opts.Logger})
	s.report = s.session.Run(NewLineReader(strings.NewReader(strings.Join(lines, "\n")+"\n")), &s.output)
	return nil
}

// whenAddLast registers the last answer out of band.
func (s *sessionScenarioState) whenAddLast() error {
	anchor := s.session.Correction()
	result, err := CorrectLast(s.store, &anchor, true)
	if err != nil {
		return err
	}
	if result != CorrectionAdded {
		return fmt.Errorf("expected answer to be added, got %s", result)
	}
	return nil
}

// thenScore checks the session report.
func (s *sessionScenarioState) thenScore(score int) error {
	if s.report.Correct != score {
		return fmt.Errorf("expected score %d, got %d", score, s.report.Correct)
	}
	return nil
}

func (s *sessionScenarioState) persisted(question string) (*quiz.Item, error) {
	st, err := s.reopen()
	if err != nil {
		return nil, err
	}
	item, ok := st.All().Get(question)
	if !ok {
		return nil, fmt.Errorf("item %q not stored", question)
	}
	return item, nil
}

// thenMisses checks the persisted miss count.
func (s *sessionScenarioState) thenMisses(question string, misses int) error {
	item, err := s.persisted(question)
	if err != nil {
		return err
	}
	if item.WrongCount != misses {
		return fmt.Errorf("expected %d misses, got %d", misses, item.WrongCount)
	}
	return nil
}

// thenAccepts checks a persisted answer.
func (s *sessionScenarioState) thenAccepts(question, answer string) error {
	item, err := s.persisted(question)
	if err != nil {
		return err
	}
	if !item.HasAnswer(answer) {
		return fmt.Errorf("expected %q to accept %q, answers %v", question, answer, item.Answers)
	}
	return nil
}

// thenSnapshotEmpty checks the persisted failed snapshot.
func (s *sessionScenarioState) thenSnapshotEmpty() error {
	st, err := s.reopen()
	if err != nil {
		return err
	}
	if failed := st.LastFailed(); len(failed) != 0 {
		return fmt.Errorf("expected empty snapshot, got %d items", len(failed))
	}
	return nil
}

// thenSnapshotHolds checks the snapshot contents.
func (s *sessionScenarioState) thenSnapshotHolds(question string) error {
	st, err := s.reopen()
	if err != nil {
		return err
	}
	failed := st.LastFailed()
	if len(failed) != 1 || failed[0].Key() != quiz.Key(question) {
		return fmt.Errorf("expected snapshot [%q], got %d items", question, len(failed))
	}
	return nil
}

// thenOutputReveals checks the session transcript.
func (s *sessionScenarioState) thenOutputReveals(text string) error {
	if !strings.Contains(s.output.String(), text) {
		return fmt.Errorf("expected %q in output %q", text, s.output.String())
	}
	return nil
}
