package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizbank/internal/config"
)

// TestInitCommandCreatesConfig verifies defaults are scaffolded and loadable.
func TestInitCommandCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := config.ConfigPath(dir)
	withInput(t, "\n\n\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote "+configPath) {
		t.Fatalf("expected output to include writes, got %q", out.String())
	}
	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		t.Fatalf("load scaffolded config: %v", loadErr)
	}
	if cfg.Store != filepath.Join(dir, config.DefaultQuizFile) {
		t.Fatalf("unexpected store path %q", cfg.Store)
	}
	if cfg.Log.File != filepath.Join(dir, defaultLogFile) {
		t.Fatalf("unexpected log path %q", cfg.Log.File)
	}
}

// TestInitCommandUpdatesGitignore verifies the gitignore prompt in a checkout.
func TestInitCommandUpdatesGitignore(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("create .git: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("bin/"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}
	withInput(t, "y\ncards.json\n\ny\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", config.ConfigPath(dir)}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	data, readErr := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if readErr != nil {
		t.Fatalf("read .gitignore: %v", readErr)
	}
	want := "bin/\n.quizbank/quizbank.log\n.quizbank/history.db\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
	cfg, loadErr := config.Load(config.ConfigPath(dir))
	if loadErr != nil {
		t.Fatalf("load config: %v", loadErr)
	}
	if filepath.Base(cfg.Store) != "cards.json" {
		t.Fatalf("expected custom store, got %q", cfg.Store)
	}
}

// TestInitCommandCancelled verifies a declined prompt writes nothing.
func TestInitCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	configPath := config.ConfigPath(dir)
	withInput(t, "n\n")

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--config", configPath}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file")
	}
}

// TestInitCommandRefusesOverwrite verifies an existing config is kept.
func TestInitCommandRefusesOverwrite(t *testing.T) {
	ws := newWorkspace(t)

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", ws.configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}

// TestAddGitignoreEntriesSkipsPresent verifies idempotent updates.
func TestAddGitignoreEntriesSkipsPresent(t *testing.T) {
	dir := t.TempDir()
	added, err := addGitignoreEntries(dir, "a.log", filepath.Join(dir, "state", "h.db"), "")
	if err != nil {
		t.Fatalf("add entries: %v", err)
	}
	if strings.Join(added, ",") != "a.log,state/h.db" {
		t.Fatalf("unexpected entries %v", added)
	}
	added, err = addGitignoreEntries(dir, "a.log")
	if err != nil || len(added) != 0 {
		t.Fatalf("expected no new entries, got %v %v", added, err)
	}
	if _, err := addGitignoreEntries(dir, "../outside"); err == nil {
		t.Fatalf("expected error for path outside root")
	}
}
