package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizbank/internal/quiz"
)

func rankedItems() []*quiz.Item {
	return []*quiz.Item{
		{Question: "a?", Answers: []string{"1"}},
		{Question: "b?", Answers: []string{"2"}, WrongCount: 3},
		{Question: "c?", Answers: []string{"3"}, WrongCount: 1},
		{Question: "d?", Answers: []string{"4"}, WrongCount: 3},
	}
}

// TestFailedListsByMissCount verifies ranking with stable ties.
func TestFailedListsByMissCount(t *testing.T) {
	ws := newWorkspace(t)
	ws.seed(t, rankedItems()...)

	code, out, _ := ws.run(t, "", "failed")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	b, d, c := strings.Index(out, "b?"), strings.Index(out, "d?"), strings.Index(out, "c?")
	if b < 0 || d < 0 || c < 0 || !(b < d && d < c) {
		t.Fatalf("expected b, d, c order, got %q", out)
	}
	if strings.Contains(out, "a?") {
		t.Fatalf("expected a? to be excluded, got %q", out)
	}
}

// TestNoteWritesMarkdownAndHTML verifies both export formats.
func TestNoteWritesMarkdownAndHTML(t *testing.T) {
	ws := newWorkspace(t)
	ws.seed(t, rankedItems()...)

	code, out, errOut := ws.run(t, "", "note")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	mdPath := filepath.Join(ws.root, "wrong_quiz_note.md")
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(string(data), "## 1. (missed 3 times)") || !strings.Contains(out, mdPath) {
		t.Fatalf("unexpected note %q / %q", data, out)
	}

	htmlPath := filepath.Join(ws.root, "out", "note.html")
	if code, _, _ := ws.run(t, "", "note", "--format", "html", "--output", htmlPath); code != ExitOK {
		t.Fatalf("expected html export to succeed")
	}
	data, err = os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("read html note: %v", err)
	}
	if !strings.Contains(string(data), "<h1>Wrong Note</h1>") {
		t.Fatalf("expected rendered html, got %q", data)
	}
}

// TestNoteRejectsUnknownFormat verifies format validation.
func TestNoteRejectsUnknownFormat(t *testing.T) {
	ws := newWorkspace(t)
	if code, _, _ := ws.run(t, "", "note", "--format", "pdf"); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestNotePathSwapsExtension verifies the default path follows the format.
func TestNotePathSwapsExtension(t *testing.T) {
	if got := notePath("/data/wrong_quiz_note.md", "html"); got != "/data/wrong_quiz_note.html" {
		t.Fatalf("unexpected path %q", got)
	}
}

// TestBrowseFallsBackWithoutTTY verifies non-terminal output gets a list.
func TestBrowseFallsBackWithoutTTY(t *testing.T) {
	withTerminal(t, false)
	ws := newWorkspace(t)
	ws.seed(t, rankedItems()...)

	code, out, errOut := ws.run(t, "", "browse")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut, "falling back") || !strings.Contains(out, "[missed 3] b?") {
		t.Fatalf("unexpected fallback output %q / %q", out, errOut)
	}
}
