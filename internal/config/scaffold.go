package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScaffoldOptions holds the answers collected by `quizbank init`.
type ScaffoldOptions struct {
	Store   string
	LogFile string
}

// Scaffold writes a starter config file at path.
func Scaffold(path string, opts ScaffoldOptions) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	store := opts.Store
	if store == "" {
		store = DefaultQuizFile
	}
	cfg := Config{
		Version:    1,
		Store:      store,
		LastFailed: DefaultFailedFile,
		WrongNote:  DefaultNoteFile,
		History:    filepath.Join(ConfigDirName, DefaultHistory),
		Log: LogConfig{
			File:  opts.LogFile,
			Level: "info",
		},
		UI: UIConfig{Mode: UIModeAuto},
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
