package browse

import (
	"testing"
	"time"

	"quizbank/internal/quiz"
	"quizbank/internal/testutil"
)

func sampleItems() []*quiz.Item {
	return []*quiz.Item{
		{Question: "zeta?", Answers: []string{"z"}, WrongCount: 3, Hint: "last letter"},
		{Question: "Alpha?", Answers: []string{"a", "A"}, WrongCount: 1},
		{Question: "mid?", Answers: []string{"m"}, WrongCount: 2},
	}
}

// TestNewStateKeepsRank verifies rows mirror the input order.
func TestNewStateKeepsRank(t *testing.T) {
	state := NewState("failed", append(sampleItems(), nil))
	if len(state.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(state.Rows))
	}
	if state.Rows[2].Rank != 3 || state.Rows[2].Question != "mid?" {
		t.Fatalf("unexpected third row: %+v", state.Rows[2])
	}
	if state.TotalMisses() != 6 {
		t.Fatalf("expected 6 misses, got %d", state.TotalMisses())
	}
}

// TestReduceSelectClampsAndHides verifies selection bounds and reveal reset.
func TestReduceSelectClampsAndHides(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		state := NewState("failed", sampleItems())
		state = Reduce(state, Action{Kind: ActionToggleAnswer})
		if !state.Revealed {
			t.Fatalf("expected answers revealed")
		}
		state = Reduce(state, Action{Kind: ActionSelect, Index: 99})
		if state.Selected != 2 {
			t.Fatalf("expected clamp to 2, got %d", state.Selected)
		}
		if state.Revealed {
			t.Fatalf("expected reveal reset on move")
		}
		state = Reduce(state, Action{Kind: ActionSelect, Index: -4})
		if state.Selected != 0 {
			t.Fatalf("expected clamp to 0, got %d", state.Selected)
		}
	})
}

// TestReduceCycleSort verifies both orderings.
func TestReduceCycleSort(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		state := NewState("failed", sampleItems())
		state = Reduce(state, Action{Kind: ActionSelect, Index: 2})

		state = Reduce(state, Action{Kind: ActionCycleSort})
		if state.Sort != SortByQuestion {
			t.Fatalf("expected question sort, got %s", state.Sort)
		}
		if state.Rows[0].Question != "Alpha?" || state.Rows[2].Question != "zeta?" {
			t.Fatalf("unexpected alphabetical order: %+v", state.Rows)
		}
		if state.Selected != 0 {
			t.Fatalf("expected selection reset, got %d", state.Selected)
		}

		state = Reduce(state, Action{Kind: ActionCycleSort})
		got := []int{state.Rows[0].WrongCount, state.Rows[1].WrongCount, state.Rows[2].WrongCount}
		if got[0] != 3 || got[1] != 2 || got[2] != 1 {
			t.Fatalf("expected misses descending, got %v", got)
		}
	})
}

// TestReduceEmptyState verifies actions on no rows are harmless.
func TestReduceEmptyState(t *testing.T) {
	state := Reduce(State{}, Action{Kind: ActionToggleAnswer})
	state = Reduce(state, Action{Kind: ActionSelect, Index: 3})
	if state.Revealed || state.Selected != 0 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

// TestFormatQuestionText verifies whitespace collapse and truncation.
func TestFormatQuestionText(t *testing.T) {
	if got := formatQuestionText("a\n  b", 20); got != "a b" {
		t.Fatalf("expected collapsed text, got %q", got)
	}
	if got := formatQuestionText("수도는 어디인가요?", 6); got != "수도는..." {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
