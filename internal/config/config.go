package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates no config file exists above the start directory.
var ErrNotFound = errors.New("config not found")

// UI modes accepted by ui.mode.
const (
	UIModeAuto  = "auto"
	UIModePlain = "plain"
	UIModeColor = "color"
)

// Config is the .quizbank/config.yml schema.
type Config struct {
	Version    int       `yaml:"version"`
	Store      string    `yaml:"store"`
	LastFailed string    `yaml:"last_failed"`
	WrongNote  string    `yaml:"wrong_note"`
	History    string    `yaml:"history"`
	Log        LogConfig `yaml:"log"`
	UI         UIConfig  `yaml:"ui"`

	// Root is the directory relative paths are resolved against.
	Root string `yaml:"-"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// UIConfig controls terminal styling.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default(root string) Config {
	cfg := Config{Root: root}
	Normalize(&cfg)
	return cfg
}

// Normalize fills defaults and resolves paths against Root.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Store) == "" {
		cfg.Store = DefaultQuizFile
	}
	if strings.TrimSpace(cfg.LastFailed) == "" {
		cfg.LastFailed = DefaultFailedFile
	}
	if strings.TrimSpace(cfg.WrongNote) == "" {
		cfg.WrongNote = DefaultNoteFile
	}
	if strings.TrimSpace(cfg.History) == "" {
		cfg.History = DefaultHistory
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxBackups <= 0 {
		cfg.Log.MaxBackups = 3
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}

	cfg.Store = resolvePath(cfg.Root, cfg.Store)
	cfg.LastFailed = resolvePath(cfg.Root, cfg.LastFailed)
	cfg.WrongNote = resolvePath(cfg.Root, cfg.WrongNote)
	cfg.History = resolvePath(cfg.Root, cfg.History)
	cfg.Log.File = resolvePath(cfg.Root, cfg.Log.File)
}

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.Store == cfg.LastFailed {
		add("last_failed", "must differ from store")
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("log.level", fmt.Sprintf("invalid level %q (expected debug|info|warn|warning|error)", cfg.Log.Level))
	}
	switch cfg.UI.Mode {
	case UIModeAuto, UIModePlain, UIModeColor:
	default:
		add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|plain|color)", cfg.UI.Mode))
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
