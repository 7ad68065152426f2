// Package logging настраивает цветной структурированный лог slog через tint.
//
// Уровень берется из конфигурации (LOG_LEVEL): debug, info, warn, error.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup настраивает лог по строковому уровню из конфигурации
func Setup(level string) {
	SetupWithLevel(os.Stderr, ParseLevel(level))
}

// SetupWithLevel настраивает лог с заданным уровнем и выводом
func SetupWithLevel(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

// ParseLevel переводит строку уровня в slog.Level, по умолчанию INFO
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
