package logger

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the process-wide logger. Development gets human-readable
// output with debug enabled, everything else structured JSON at info level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize tolerates call sites that pass a bare error or value instead of
// key/value pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}

	out := make([]any, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)

	switch v := args[len(args)-1].(type) {
	case error:
		out = append(out, "error", v.Error())
	default:
		out = append(out, "detail", v)
	}

	return out
}
