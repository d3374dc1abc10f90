package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizbank/internal/config"
	"quizbank/internal/quiz"
	"quizbank/internal/store"
)

// workspace is a temporary data root with a config file.
type workspace struct {
	root       string
	configPath string
}

// newWorkspace writes a minimal config under a temp root.
func newWorkspace(t *testing.T) workspace {
	t.Helper()
	root := t.TempDir()
	configPath := config.ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("version: 1\nui:\n  mode: plain\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return workspace{root: root, configPath: configPath}
}

func (w workspace) quizPath() string {
	return filepath.Join(w.root, config.DefaultQuizFile)
}

func (w workspace) lastFailedPath() string {
	return filepath.Join(w.root, config.DefaultFailedFile)
}

// seed writes items to the quiz document.
func (w workspace) seed(t *testing.T, items ...*quiz.Item) {
	t.Helper()
	if err := (store.Document{Path: w.quizPath(), Key: store.KeyQuiz}).Write(items); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
}

// items reads the quiz document back.
func (w workspace) items(t *testing.T) []*quiz.Item {
	t.Helper()
	items, err := store.Document{Path: w.quizPath(), Key: store.KeyQuiz}.Read()
	if err != nil {
		t.Fatalf("read quiz: %v", err)
	}
	return items
}

// lastFailed reads the failed snapshot back.
func (w workspace) lastFailed(t *testing.T) []*quiz.Item {
	t.Helper()
	items, err := store.Document{Path: w.lastFailedPath(), Key: store.KeyLastFailed}.Read()
	if err != nil {
		t.Fatalf("read last failed: %v", err)
	}
	return items
}

// writeFile writes a file under the workspace root and returns its path.
func (w workspace) writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(w.root, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// run executes a command against the workspace config.
func (w workspace) run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	withInput(t, stdin)
	full := append([]string{args[0], "--config", w.configPath}, args[1:]...)
	var out, errOut bytes.Buffer
	code := Run(full, &out, &errOut)
	return code, out.String(), errOut.String()
}

// withInput replaces stdin for the rest of the test.
func withInput(t *testing.T, text string) {
	t.Helper()
	original := input
	input = strings.NewReader(text)
	t.Cleanup(func() { input = original })
}

// withTerminal forces TTY detection for the rest of the test.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

func capital() *quiz.Item {
	return &quiz.Item{Question: "Capital of France?", Answers: []string{"Paris", "paris"}, Hint: "European city"}
}
