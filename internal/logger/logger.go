package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the process logger. prod logs JSON at info, anything else text
// at debug; a non-empty level overrides either default.
func New(env, level string) *slog.Logger {
	return newLogger(os.Stdout, env, level)
}

func newLogger(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == "prod" {
		opts.Level = slog.LevelInfo
	}
	if lv, ok := parseLevel(level); ok {
		opts.Level = lv
	}

	var h slog.Handler
	if env == "prod" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("app", "gigpulse", "env", env)
}

func parseLevel(s string) (slog.Level, bool) {
	var lv slog.Level
	if strings.TrimSpace(s) == "" {
		return lv, false
	}
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return lv, false
	}
	return lv, true
}
