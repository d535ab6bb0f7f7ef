package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is usable before InitLogger is called so that packages can log from tests.
var Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func InitLogger(logLevel string) {
	InitLoggerWithWriter(logLevel, os.Stdout)
}

func InitLoggerWithWriter(logLevel string, w io.Writer) {
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}))
}

func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
