package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"quizbank/internal/config"
)

// New builds the process logger. With a log file configured, records at the
// configured level go to a rotating file; otherwise only warnings and errors
// reach stderr so they do not interleave with drill prompts.
func New(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer) {
	if strings.TrimSpace(cfg.File) == "" {
		if stderr == nil {
			stderr = os.Stderr
		}
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(handler), nopCloser{}
	}
	_ = os.MkdirAll(filepath.Dir(cfg.File), 0o755)
	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})
	return slog.New(handler), sink
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
