// Package logger builds the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log levels accepted in configuration
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ParseLevel converts a configured level name into a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case "", LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
	}
}

// New creates a text logger writing to w.
// Неизвестный уровень не фатален: логгер работает на info, ошибка возвращается для предупреждения.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})

	return slog.New(handler), err
}
